// SPDX-License-Identifier: MIT

package twinwidth_test

import (
	"testing"

	"github.com/katalvlaran/fuzzytwin/builder"
	"github.com/katalvlaran/fuzzytwin/core"
	"github.com/katalvlaran/fuzzytwin/tnorm"
	"github.com/katalvlaran/fuzzytwin/twinwidth"
)

// randomCycle builds a seeded cycle with uniform weights; sizes stay small
// because the search is exhaustive.
func randomCycle(b *testing.B, n int) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSymbolIDs(),
		builder.WithSeed(42),
		builder.WithUniformWeights(0.1, 0.9),
	}, builder.Cycle(n))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkCompute_Cycle6 measures the pruned sequential search.
func BenchmarkCompute_Cycle6(b *testing.B) {
	g := randomCycle(b, 6)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = twinwidth.Compute(g, tnorm.Prod)
	}
}

// BenchmarkCompute_Cycle6_NoPruning measures the full enumeration.
func BenchmarkCompute_Cycle6_NoPruning(b *testing.B) {
	g := randomCycle(b, 6)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = twinwidth.Compute(g, tnorm.Prod, twinwidth.WithPruning(false))
	}
}

// BenchmarkCompute_Cycle6_Parallel4 spreads top-level branches on 4 workers.
func BenchmarkCompute_Cycle6_Parallel4(b *testing.B) {
	g := randomCycle(b, 6)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = twinwidth.Compute(g, tnorm.Prod, twinwidth.WithParallel(4))
	}
}
