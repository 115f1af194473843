// SPDX-License-Identifier: MIT

// Package matrix provides a dense, index-based, read-only adjacency view of
// a core.Graph.
//
// The isomorphism enumerator and the similarity aggregator test adjacency
// and read black weights in their innermost loops; AdjacencyMatrix turns
// those lookups into O(1) slice accesses over stable indices:
//
//	VertexIndex[id] = i      ids ordered by label, i ∈ [0,n)
//	Has(i,j)                 edge existence (symmetric)
//	Black(i,j)               black weight, ok=false for a missing edge
//
// The view is a snapshot: later changes to the graph are not reflected.
//
// Errors:
//
//	ErrMatrixNilGraph  - nil graph passed to NewAdjacencyMatrix.
//	ErrIndexOutOfRange - index outside [0,n).
package matrix
