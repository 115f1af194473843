// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuzzytwin/core"
)

// Common vertex names used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// Half is the black weight used by most fixtures.
var Half = core.Weight{Black: 0.5}

// mustID resolves label in g or fails the test.
func mustID(t *testing.T, g *core.Graph, label string) core.VertexID {
	t.Helper()
	id, ok := g.Lookup(label)
	require.True(t, ok, "Lookup(%q)", label)

	return id
}

// buildGraph adds vertices with membership 1 and the listed edges.
func buildGraph(t *testing.T, names []string, edges [][2]string, w core.Weight) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range names {
		require.NoError(t, g.AddVertex(n, 1))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], w))
	}

	return g
}

// triangle returns A–B–C–A with every edge weighted w.
func triangle(t *testing.T, w core.Weight) *core.Graph {
	return buildGraph(t, []string{VertexA, VertexB, VertexC},
		[][2]string{{VertexA, VertexB}, {VertexB, VertexC}, {VertexA, VertexC}}, w)
}

// path returns A–B–C with every edge weighted w.
func path(t *testing.T, w core.Weight) *core.Graph {
	return buildGraph(t, []string{VertexA, VertexB, VertexC},
		[][2]string{{VertexA, VertexB}, {VertexB, VertexC}}, w)
}

// requireSymmetric asserts the symmetry invariant and Red <= Black on every edge.
func requireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	for _, id := range g.Vertices() {
		nbs, err := g.Neighbors(id)
		require.NoError(t, err)
		for _, nb := range nbs {
			back, ok := g.Weight(nb.ID, id)
			require.True(t, ok, "missing mirror %s→%s", nb.ID, id)
			require.Equal(t, nb.Weight, back, "asymmetric weight %s–%s", id, nb.ID)
			require.LessOrEqual(t, nb.Weight.Red, nb.Weight.Black)
			require.True(t, g.HasVertex(nb.ID), "dangling neighbor %s of %s", nb.ID, id)
		}
	}
}
