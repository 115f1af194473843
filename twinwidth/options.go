// SPDX-License-Identifier: MIT

package twinwidth

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the default tie tolerance between sequence widths.
const DefaultEpsilon = 1e-9

// Options configures Compute.
type Options struct {
	// Pruning cuts branches that cannot reach the best width.
	Pruning bool

	// Workers is the number of goroutines for top-level branches; 1 runs inline.
	Workers int

	// MaxVertices rejects larger graphs with ErrTooLarge; 0 means no limit.
	MaxVertices int

	// Epsilon is the tie tolerance.
	Epsilon float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns pruning on, one worker, no size limit and
// DefaultEpsilon.
func DefaultOptions() Options {
	return Options{
		Pruning: true,
		Workers: 1,
		Epsilon: DefaultEpsilon,
	}
}

// WithPruning toggles branch pruning.
func WithPruning(on bool) Option {
	return func(o *Options) { o.Pruning = on }
}

// WithParallel sets the number of workers. Panics if n < 1.
func WithParallel(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("twinwidth: WithParallel(%d) requires n ≥ 1", n))
	}

	return func(o *Options) { o.Workers = n }
}

// WithMaxVertices limits the graph size; 0 disables the limit.
// Panics if n < 0.
func WithMaxVertices(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("twinwidth: WithMaxVertices(%d) requires n ≥ 0", n))
	}

	return func(o *Options) { o.MaxVertices = n }
}

// WithEpsilon sets the tie tolerance. Panics on a negative or NaN eps.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || eps < 0 {
		panic(fmt.Sprintf("twinwidth: WithEpsilon(%v) requires eps ≥ 0", eps))
	}

	return func(o *Options) { o.Epsilon = eps }
}
