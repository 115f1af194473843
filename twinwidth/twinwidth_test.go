// SPDX-License-Identifier: MIT

package twinwidth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuzzytwin/builder"
	"github.com/katalvlaran/fuzzytwin/core"
	"github.com/katalvlaran/fuzzytwin/tnorm"
	"github.com/katalvlaran/fuzzytwin/twinwidth"
)

const eps = 1e-9

func fixture(t *testing.T, ctor builder.Constructor, w float64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSymbolIDs(),
		builder.WithWeight(w),
	}, ctor)
	require.NoError(t, err)

	return g
}

// labels flattens a result into label pairs for comparison.
func labels(r twinwidth.Result) [][][2]string {
	out := make([][][2]string, len(r.Sequences))
	for i, seq := range r.Sequences {
		out[i] = make([][2]string, len(seq))
		for j, s := range seq {
			out[i][j] = s.Labels()
		}
	}

	return out
}

func TestCompute_Errors(t *testing.T) {
	_, err := twinwidth.Compute(nil, tnorm.Min)
	require.ErrorIs(t, err, twinwidth.ErrGraphNil)

	g := fixture(t, builder.Path(3), 0.5)
	_, err = twinwidth.Compute(g, "max")
	require.ErrorIs(t, err, tnorm.ErrUnknownKind)

	_, err = twinwidth.Compute(g, tnorm.Min, twinwidth.WithMaxVertices(2))
	require.ErrorIs(t, err, twinwidth.ErrTooLarge)
	_, err = twinwidth.Compute(g, tnorm.Min, twinwidth.WithMaxVertices(3))
	require.NoError(t, err)
}

func TestCompute_Trivial(t *testing.T) {
	r, err := twinwidth.Compute(core.NewGraph(), tnorm.Min)
	require.NoError(t, err)
	assert.True(t, r.Undefined())
	assert.Empty(t, r.Sequences)

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", 0.3))
	r, err = twinwidth.Compute(g, tnorm.Prod)
	require.NoError(t, err)
	assert.False(t, r.Undefined())
	assert.Zero(t, r.Width)
	require.Len(t, r.Sequences, 1)
	assert.Empty(t, r.Sequences[0])
}

func TestCompute_TwoVertices(t *testing.T) {
	g := fixture(t, builder.Path(2), 0.7)
	for _, k := range tnorm.Kinds() {
		r, err := twinwidth.Compute(g, k)
		require.NoError(t, err, k)
		assert.Zero(t, r.Width, k)
		assert.Equal(t, [][][2]string{{{"A", "B"}}}, labels(r), k)
	}
}

func TestCompute_Triangle(t *testing.T) {
	g := fixture(t, builder.Complete(3), 0.5)

	tests := []struct {
		kind  tnorm.Kind
		width float64
	}{
		{tnorm.Min, 0},
		{tnorm.Prod, 0.5},
		{tnorm.Luk, 1},
		{tnorm.Drast, 1},
	}
	for _, tc := range tests {
		r, err := twinwidth.Compute(g, tc.kind)
		require.NoError(t, err, tc.kind)
		assert.InDelta(t, tc.width, r.Width, eps, tc.kind)
		// Every first merge is symmetric, so all three sequences are optimal.
		assert.Equal(t, [][][2]string{
			{{"A", "B"}, {"C", "{A,B}"}},
			{{"A", "C"}, {"B", "{A,C}"}},
			{{"B", "C"}, {"A", "{B,C}"}},
		}, labels(r), tc.kind)
	}
}

func TestCompute_PathUnderMin(t *testing.T) {
	g := fixture(t, builder.Path(3), 0.5)
	r, err := twinwidth.Compute(g, tnorm.Min)
	require.NoError(t, err)
	assert.InDelta(t, 0, r.Width, eps)
	// Merging the two ends is the only error-free contraction.
	assert.Equal(t, [][][2]string{{{"A", "C"}, {"B", "{A,C}"}}}, labels(r))
}

func TestCompute_SequencesEvaluateToWidth(t *testing.T) {
	g := fixture(t, builder.Cycle(5), 0.6)
	for _, k := range tnorm.Kinds() {
		r, err := twinwidth.Compute(g, k)
		require.NoError(t, err)
		require.NotEmpty(t, r.Sequences)
		for _, seq := range r.Sequences {
			require.Len(t, seq, g.VertexCount()-1)
			w, err := twinwidth.Evaluate(g, k, seq)
			require.NoError(t, err)
			assert.InDelta(t, r.Width, w, eps, k)
		}
	}
}

func TestCompute_PruningAndParallelMatchSequential(t *testing.T) {
	graphs := []*core.Graph{
		fixture(t, builder.Path(5), 0.4),
		fixture(t, builder.Star(5), 0.9),
		fixture(t, builder.Cycle(5), 0.5),
	}
	// An irregular graph with mixed weights and memberships.
	irregular, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSymbolIDs(),
		builder.WithSeed(7),
		builder.WithUniformWeights(0.1, 1),
		builder.WithMembershipFn(func(i int) float64 { return 0.2 * float64(i+1) }),
	}, builder.Path(5))
	require.NoError(t, err)
	require.NoError(t, irregular.AddEdge("A", "D", core.Weight{Black: 0.35}))
	graphs = append(graphs, irregular)

	for gi, g := range graphs {
		for _, k := range tnorm.Kinds() {
			base, err := twinwidth.Compute(g, k, twinwidth.WithPruning(false))
			require.NoError(t, err)

			pruned, err := twinwidth.Compute(g, k)
			require.NoError(t, err)
			assert.Equal(t, labels(base), labels(pruned), "graph %d kind %s pruned", gi, k)
			assert.Equal(t, base.Width, pruned.Width)

			par, err := twinwidth.Compute(g, k, twinwidth.WithParallel(4))
			require.NoError(t, err)
			assert.Equal(t, labels(base), labels(par), "graph %d kind %s parallel", gi, k)
			assert.Equal(t, base.Width, par.Width)
		}
	}
}

func TestCompute_DoesNotMutateInput(t *testing.T) {
	g := fixture(t, builder.Complete(4), 0.5)
	before := g.Edges()
	_, err := twinwidth.Compute(g, tnorm.Prod, twinwidth.WithParallel(2))
	require.NoError(t, err)
	assert.Equal(t, before, g.Edges())
	assert.Equal(t, 4, g.VertexCount())
}

func TestEvaluate_Errors(t *testing.T) {
	g := fixture(t, builder.Path(3), 0.5)
	_, err := twinwidth.Evaluate(nil, tnorm.Min, nil)
	require.ErrorIs(t, err, twinwidth.ErrGraphNil)

	_, err = twinwidth.Evaluate(g, tnorm.Min, nil)
	require.ErrorIs(t, err, twinwidth.ErrIncompleteSequence)

	a, _ := g.Lookup("A")
	_, err = twinwidth.Evaluate(g, tnorm.Min, []twinwidth.Step{{U: a, V: a}})
	require.ErrorIs(t, err, core.ErrSameVertex)
}

func TestOptions(t *testing.T) {
	o := twinwidth.DefaultOptions()
	assert.True(t, o.Pruning)
	assert.Equal(t, 1, o.Workers)
	assert.Zero(t, o.MaxVertices)
	assert.Equal(t, twinwidth.DefaultEpsilon, o.Epsilon)

	assert.Panics(t, func() { twinwidth.WithParallel(0) })
	assert.Panics(t, func() { twinwidth.WithMaxVertices(-1) })
	assert.Panics(t, func() { twinwidth.WithEpsilon(-1) })
}
