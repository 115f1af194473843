// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fuzzytwin/core"
)

var (
	// ErrMatrixNilGraph indicates a nil *core.Graph.
	ErrMatrixNilGraph = errors.New("matrix: graph is nil")

	// ErrIndexOutOfRange indicates a vertex index outside [0,n).
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
)

// AdjacencyMatrix is a dense snapshot of a graph's adjacency.
// VertexIndex maps VertexID → row/col; vertexByIndex is the reverse lookup.
type AdjacencyMatrix struct {
	VertexIndex   map[core.VertexID]int
	vertexByIndex []core.VertexID

	n          int
	present    []bool    // present[i*n+j]
	black      []float64 // black[i*n+j], valid where present
	degree     []int
	membership []float64
	edges      int
}

// NewAdjacencyMatrix builds the dense view of g.
// Stage 1 (Validate): ensure g is non-nil.
// Stage 2 (Prepare): order vertices by label and assign indices.
// Stage 3 (Execute): fill the n×n buffers from g.Edges().
// Complexity: O(V² + E·log E)
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrMatrixNilGraph
	}

	ids := g.Vertices()
	n := len(ids)
	am := &AdjacencyMatrix{
		VertexIndex:   make(map[core.VertexID]int, n),
		vertexByIndex: ids,
		n:             n,
		present:       make([]bool, n*n),
		black:         make([]float64, n*n),
		degree:        make([]int, n),
		membership:    make([]float64, n),
	}
	for i, id := range ids {
		am.VertexIndex[id] = i
		v, _ := g.Vertex(id)
		am.membership[i] = v.Membership
	}

	for _, e := range g.Edges() {
		i, j := am.VertexIndex[e.U], am.VertexIndex[e.V]
		am.present[i*n+j], am.present[j*n+i] = true, true
		am.black[i*n+j], am.black[j*n+i] = e.Weight.Black, e.Weight.Black
		am.degree[i]++
		am.degree[j]++
		am.edges++
	}

	return am, nil
}

// VertexCount returns n.
func (am *AdjacencyMatrix) VertexCount() int { return am.n }

// EdgeCount returns the number of undirected edges.
func (am *AdjacencyMatrix) EdgeCount() int { return am.edges }

// Has reports whether vertices i and j are adjacent. Out-of-range indices report false.
func (am *AdjacencyMatrix) Has(i, j int) bool {
	if !am.inRange(i) || !am.inRange(j) {
		return false
	}

	return am.present[i*am.n+j]
}

// Black returns the black weight of edge i–j.
func (am *AdjacencyMatrix) Black(i, j int) (float64, bool) {
	if !am.Has(i, j) {
		return 0, false
	}

	return am.black[i*am.n+j], true
}

// Degree returns the number of neighbors of vertex i, or 0 when out of range.
func (am *AdjacencyMatrix) Degree(i int) int {
	if !am.inRange(i) {
		return 0
	}

	return am.degree[i]
}

// Membership returns the membership degree of vertex i, or 0 when out of range.
func (am *AdjacencyMatrix) Membership(i int) float64 {
	if !am.inRange(i) {
		return 0
	}

	return am.membership[i]
}

// Neighbors returns the indices adjacent to i in ascending order.
func (am *AdjacencyMatrix) Neighbors(i int) ([]int, error) {
	if !am.inRange(i) {
		return nil, fmt.Errorf("Neighbors(%d): %w", i, ErrIndexOutOfRange)
	}
	out := make([]int, 0, am.degree[i])
	for j := 0; j < am.n; j++ {
		if am.present[i*am.n+j] {
			out = append(out, j)
		}
	}

	return out, nil
}

// ID returns the VertexID stored at index i.
func (am *AdjacencyMatrix) ID(i int) (core.VertexID, error) {
	if !am.inRange(i) {
		return core.VertexID{}, fmt.Errorf("ID(%d): %w", i, ErrIndexOutOfRange)
	}

	return am.vertexByIndex[i], nil
}

// Label returns the label of the vertex at index i, or "" when out of range.
func (am *AdjacencyMatrix) Label(i int) string {
	if !am.inRange(i) {
		return ""
	}

	return am.vertexByIndex[i].String()
}

// ToGraph rebuilds a core.Graph whose original vertices are named by the
// labels of this view. Composite vertices become originals with the
// composite label as name.
func (am *AdjacencyMatrix) ToGraph() (*core.Graph, error) {
	g := core.NewGraph()
	for i := 0; i < am.n; i++ {
		if err := g.AddVertex(am.Label(i), am.membership[i]); err != nil {
			return nil, fmt.Errorf("ToGraph: %w", err)
		}
	}
	for i := 0; i < am.n; i++ {
		for j := i + 1; j < am.n; j++ {
			if !am.present[i*am.n+j] {
				continue
			}
			w := core.Weight{Black: am.black[i*am.n+j]}
			if err := g.AddEdge(am.Label(i), am.Label(j), w); err != nil {
				return nil, fmt.Errorf("ToGraph: %w", err)
			}
		}
	}

	return g, nil
}

func (am *AdjacencyMatrix) inRange(i int) bool { return i >= 0 && i < am.n }
