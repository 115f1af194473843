// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuzzytwin/core"
	"github.com/katalvlaran/fuzzytwin/tnorm"
)

func TestMergeVertices_Errors(t *testing.T) {
	g := triangle(t, Half)
	a := mustID(t, g, VertexA)

	_, err := g.MergeVertices(a, a, tnorm.Min)
	require.ErrorIs(t, err, core.ErrSameVertex)

	_, err = g.MergeVertices(a, core.VertexID{}, tnorm.Min)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.MergeVertices(a, mustID(t, g, VertexB), tnorm.Kind("max"))
	require.ErrorIs(t, err, tnorm.ErrUnknownKind)

	_, err = g.MergeByName(VertexA, "missing", tnorm.Min)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	// A VertexID from another graph family is not found here.
	other := triangle(t, Half)
	_, err = g.MergeVertices(a, mustID(t, other, VertexB), tnorm.Min)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestMergeVertices_Triangle(t *testing.T) {
	g := triangle(t, Half)
	m, err := g.MergeByName(VertexA, VertexB, tnorm.Min)
	require.NoError(t, err)

	assert.Equal(t, 3, g.VertexCount(), "source graph must not change")
	assert.Equal(t, 2, m.VertexCount())
	requireSymmetric(t, m)

	ab := mustID(t, m, "{A,B}")
	assert.True(t, ab.Composite())
	assert.Equal(t, []string{VertexA, VertexB}, ab.Members())
	assert.True(t, ab.Contains(VertexA))
	assert.False(t, ab.Contains(VertexC))

	w, ok := m.Weight(ab, mustID(t, m, VertexC))
	require.True(t, ok)
	// min: black = max(.5,.5), red = .5 − min(.5,.5) = 0.
	assert.InDelta(t, 0.5, w.Black, 1e-12)
	assert.InDelta(t, 0, w.Red, 1e-12)
	assert.InDelta(t, 0, m.MaxErrorDegree(), 1e-12)
}

func TestMergeVertices_PathCreatesRed(t *testing.T) {
	g := path(t, Half)
	m, err := g.MergeByName(VertexA, VertexB, tnorm.Min)
	require.NoError(t, err)
	requireSymmetric(t, m)

	w, ok := m.Weight(mustID(t, m, "{A,B}"), mustID(t, m, VertexC))
	require.True(t, ok)
	// A has no edge to C: red = max(0,.5) − min(0,.5) = .5.
	assert.InDelta(t, 0.5, w.Black, 1e-12)
	assert.InDelta(t, 0.5, w.Red, 1e-12)
	assert.InDelta(t, 0.5, m.MaxErrorDegree(), 1e-12)

	// Merging the two endpoints keeps the structure intact.
	m2, err := g.MergeByName(VertexA, VertexC, tnorm.Min)
	require.NoError(t, err)
	assert.InDelta(t, 0, m2.MaxErrorDegree(), 1e-12)
}

func TestMergeVertices_Membership(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA, 0.5))
	require.NoError(t, g.AddVertex(VertexB, 0.5))
	cases := map[tnorm.Kind]float64{
		tnorm.Min:   0.5,
		tnorm.Prod:  0.75,
		tnorm.Luk:   1,
		tnorm.Drast: 1,
	}
	for k, want := range cases {
		m, err := g.MergeByName(VertexA, VertexB, k)
		require.NoError(t, err)
		v, ok := m.Vertex(mustID(t, m, "{A,B}"))
		require.True(t, ok)
		assert.InDelta(t, want, v.Membership, 1e-12, "kind %s", k)
		assert.Equal(t, 0, v.Degree())
	}
}

// TestMergeVertices_Invariants merges down to one vertex along every first
// choice and checks vertex count, symmetry and no reference to removed ids.
func TestMergeVertices_Invariants(t *testing.T) {
	names := []string{VertexA, VertexB, VertexC, VertexD}
	g := buildGraph(t, names, [][2]string{
		{VertexA, VertexB}, {VertexB, VertexC}, {VertexC, VertexD}, {VertexA, VertexD}, {VertexA, VertexC},
	}, core.Weight{Black: 0.7})

	for _, k := range tnorm.Kinds() {
		cur := g
		for cur.VertexCount() > 1 {
			ids := cur.Vertices()
			u, v := ids[0], ids[len(ids)-1]
			next, err := cur.MergeVertices(u, v, k)
			require.NoError(t, err)
			require.Equal(t, cur.VertexCount()-1, next.VertexCount())
			requireSymmetric(t, next)
			for _, id := range next.Vertices() {
				assert.NotEqual(t, u, id)
				assert.NotEqual(t, v, id)
				nbs, err := next.Neighbors(id)
				require.NoError(t, err)
				for _, nb := range nbs {
					assert.NotEqual(t, u, nb.ID)
					assert.NotEqual(t, v, nb.ID)
				}
			}
			cur = next
		}
		only := cur.Vertices()[0]
		assert.Equal(t, names, only.Members())
		assert.Equal(t, 0, cur.EdgeCount())
		assert.Equal(t, 0.0, cur.MaxErrorDegree())
	}
}

// TestMergeVertices_SnapshotIsolation ensures sibling snapshots never see each other.
func TestMergeVertices_SnapshotIsolation(t *testing.T) {
	g := path(t, Half)
	ab, err := g.MergeByName(VertexA, VertexB, tnorm.Min)
	require.NoError(t, err)
	bc, err := g.MergeByName(VertexB, VertexC, tnorm.Min)
	require.NoError(t, err)

	require.NoError(t, ab.AddEdge("{A,B}", VertexC, core.Weight{Black: 0.9}))

	w, _ := bc.Weight(mustID(t, bc, VertexA), mustID(t, bc, "{B,C}"))
	assert.InDelta(t, 0.5, w.Black, 1e-12)
	w, _ = g.Weight(mustID(t, g, VertexB), mustID(t, g, VertexC))
	assert.Equal(t, Half, w)
	requireSymmetric(t, g)
}

func TestMergeVertices_SubsumedName(t *testing.T) {
	g := path(t, Half)
	m, err := g.MergeByName(VertexA, VertexB, tnorm.Min)
	require.NoError(t, err)
	require.ErrorIs(t, m.AddVertex(VertexA, 1), core.ErrVertexSubsumed)
	// A brand-new name is still accepted on a snapshot.
	require.NoError(t, m.AddVertex(VertexD, 1))
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 3, g.VertexCount())
}

func TestAddVertex_ReservedName(t *testing.T) {
	g := core.NewGraph()
	for _, name := range []string{"{A,B}", "A,B", "{A", "B}"} {
		require.ErrorIs(t, g.AddVertex(name, 1), core.ErrReservedName, name)
	}
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.Universe().Len())
}

func TestMergeVertices_CompositeLabelIsUnique(t *testing.T) {
	g := path(t, Half)
	m, err := g.MergeByName(VertexA, VertexB, tnorm.Min)
	require.NoError(t, err)

	id, ok := m.Lookup("{A,B}")
	require.True(t, ok)
	assert.True(t, id.Composite())
	assert.Equal(t, []string{VertexA, VertexB}, id.Members())

	// The label syntax cannot be claimed by an original vertex afterwards.
	require.ErrorIs(t, m.AddVertex("{A,B}", 1), core.ErrReservedName)
	for _, v := range m.Vertices() {
		got, ok := m.Lookup(v.String())
		require.True(t, ok)
		assert.Equal(t, v, got)
	}
}
