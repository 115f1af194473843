// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex name is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrSameVertex indicates a merge of a vertex with itself.
	ErrSameVertex = errors.New("core: cannot merge a vertex with itself")

	// ErrReservedName indicates a vertex name containing '{', '}' or ',',
	// which are reserved for composite labels.
	ErrReservedName = errors.New("core: vertex name uses reserved characters")

	// ErrBadWeight indicates a weight outside [0,1] or with Red > Black.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrBadMembership indicates a membership degree outside [0,1].
	ErrBadMembership = errors.New("core: membership degree outside [0,1]")

	// ErrTooManyVertices indicates the graph would exceed MaxOriginals original vertices.
	ErrTooManyVertices = errors.New("core: too many vertices")

	// ErrVertexSubsumed indicates a name that is already part of a composite vertex.
	ErrVertexSubsumed = errors.New("core: vertex already merged into a composite")
)

// Weight is the graded weight of an undirected edge.
type Weight struct {
	// Black is the structural strength of the edge.
	Black float64

	// Red is the error accumulated by merges; never exceeds Black.
	Red float64
}

// Vertex is a (possibly composite) vertex of a Graph.
//
// Values returned by Graph.Vertex are read-only views: the neighbor map is
// shared with the graph and must not be modified.
type Vertex struct {
	// ID is the set of original vertices this vertex represents.
	ID VertexID

	// Membership is the graded existence of the vertex in [0,1].
	Membership float64

	// adj maps neighbor → edge weight. Never written after publication.
	adj map[VertexID]Weight
}

// Degree returns the number of neighbors.
func (v Vertex) Degree() int { return len(v.adj) }

// ErrorDegree returns the sum of red weights over all incident edges.
func (v Vertex) ErrorDegree() float64 {
	var sum float64
	for _, id := range sortedIDs(v.adj) {
		sum += v.adj[id].Red
	}

	return sum
}

// withAdj returns a copy of v whose neighbor map is a private copy with
// room for extra entries.
func (v *Vertex) withAdj(extra int) *Vertex {
	adj := make(map[VertexID]Weight, len(v.adj)+extra)
	for id, w := range v.adj {
		adj[id] = w
	}

	return &Vertex{ID: v.ID, Membership: v.Membership, adj: adj}
}

// Neighbor is one entry of a vertex's neighbor list.
type Neighbor struct {
	ID     VertexID
	Weight Weight
}

// Edge is an undirected edge reported once, with U ordered before V by label.
type Edge struct {
	U, V   VertexID
	Weight Weight
}

// Graph is an undirected fuzzy graph.
//
// mu guards the vertices map. Vertex values and their neighbor maps are
// immutable once stored, which lets snapshots share them.
type Graph struct {
	mu sync.RWMutex

	universe *Universe
	vertices map[VertexID]*Vertex
}

// NewGraph creates an empty Graph with a fresh Universe.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		universe: NewUniverse(),
		vertices: make(map[VertexID]*Vertex),
	}
}

// Universe returns the name registry shared by this graph and its snapshots.
func (g *Graph) Universe() *Universe {
	return g.universe
}
