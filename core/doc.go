// SPDX-License-Identifier: MIT

// Package core provides the fuzzy Graph used by every algorithm in fuzzytwin:
// vertices with a graded membership, undirected edges with a (black, red)
// weight pair, and the vertex-merge primitive that drives twin-width.
//
// The Graph G = (V, E) has these properties:
//
//   - Undirected and simple: no self-loops, at most one edge per vertex pair.
//   - Symmetric at all times: if A lists B with weight w, B lists A with w.
//   - Vertex identity is a VertexID, the set of original vertices a vertex
//     subsumes. Original vertices are singletons; MergeVertices produces
//     their union. The set is stored as a bitset over a Universe of original
//     names shared by a graph and every snapshot derived from it.
//   - Copy-on-write: published adjacency maps are never written to. AddEdge
//     and MergeVertices replace the affected *Vertex values instead, so a
//     snapshot shares every untouched vertex with its parent.
//   - Deterministic iteration: Vertices, Neighbors and Edges return results
//     ordered by vertex label.
//
// Weights:
//
//	Black - original, structural strength of an edge in [0,1].
//	Red   - accumulated error introduced by merges, 0 <= Red <= Black.
//
// Core Methods:
//
//	// Construction (guarded by the graph's RWMutex)
//	AddVertex(name string, membership float64) error
//	AddEdge(from, to string, w Weight) error
//	SetEdge(u, v VertexID, w Weight) error
//
//	// Query
//	Lookup(label string) (VertexID, bool)
//	Vertices() []VertexID
//	Vertex(id VertexID) (Vertex, bool)
//	Neighbors(id VertexID) ([]Neighbor, error)
//	Weight(u, v VertexID) (Weight, bool)
//	Edges() []Edge
//	VertexCount() int
//	EdgeCount() int
//
//	// Merge algebra
//	MergeVertices(u, v VertexID, k tnorm.Kind) (*Graph, error)
//	MaxErrorDegree() float64
//
// Errors:
//
//	ErrEmptyVertexID     - zero-length vertex name.
//	ErrVertexNotFound    - referenced vertex is not in the graph.
//	ErrLoopNotAllowed    - edge from a vertex to itself.
//	ErrSameVertex        - merge of a vertex with itself.
//	ErrBadWeight         - weight with Red > Black or outside [0,1].
//	ErrTooManyVertices   - more than MaxOriginals original vertices.
//	ErrVertexSubsumed    - name already absorbed by a composite vertex.
package core
