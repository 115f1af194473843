// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn         IDFn
	membershipFn func(idx int) float64
	weightFn     func(rng *rand.Rand) float64
	rng          *rand.Rand // nil means no randomness
}

// Deterministic defaults.
const (
	DefaultMembership = 1.0
	DefaultWeight     = 1.0
)

// newBuilderConfig starts from the defaults and applies opts in order
// (later options override earlier ones).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:         DefaultIDFn,
		membershipFn: func(int) float64 { return DefaultMembership },
		weightFn:     func(*rand.Rand) float64 { return DefaultWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
