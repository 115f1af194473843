// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex name generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for random weights. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithMembership gives every vertex the membership degree m.
// Panics unless m ∈ [0,1].
func WithMembership(m float64) BuilderOption {
	mustUnit("WithMembership", m)

	return func(c *builderConfig) { c.membershipFn = func(int) float64 { return m } }
}

// WithMembershipFn sets a per-index membership policy. Panics on nil.
// Values outside [0,1] surface as core.ErrBadMembership at build time.
func WithMembershipFn(fn func(idx int) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithMembershipFn(nil)")
	}

	return func(c *builderConfig) { c.membershipFn = fn }
}

// WithWeight gives every built edge the black weight b.
// Panics unless b ∈ [0,1].
func WithWeight(b float64) BuilderOption {
	mustUnit("WithWeight", b)

	return func(c *builderConfig) { c.weightFn = func(*rand.Rand) float64 { return b } }
}

// WithWeightFn sets the black weight generator; it receives the configured
// RNG, which may be nil. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithUniformWeights draws black weights from U[lo,hi). If no RNG is
// configured every edge gets lo.
// Panics unless 0 <= lo <= hi <= 1.
func WithUniformWeights(lo, hi float64) BuilderOption {
	mustUnit("WithUniformWeights", lo)
	mustUnit("WithUniformWeights", hi)
	if lo > hi {
		panic(fmt.Sprintf("builder: WithUniformWeights(lo=%v > hi=%v)", lo, hi))
	}

	return WithWeightFn(func(r *rand.Rand) float64 {
		if r == nil {
			return lo
		}

		return lo + r.Float64()*(hi-lo)
	})
}

func mustUnit(method string, x float64) {
	if !(x >= 0 && x <= 1) {
		panic(fmt.Sprintf("builder: %s(%v) outside [0,1]", method, x))
	}
}
