// SPDX-License-Identifier: MIT

// Package twinwidth computes the fuzzy twin-width of a core.Graph by
// exhaustive search over merge sequences.
//
// A merge sequence contracts the graph to a single vertex by n-1 pairwise
// merges (core.Graph.MergeVertices). The width of a sequence is the largest
// MaxErrorDegree seen after any of its merges; the fuzzy twin-width is the
// minimum width over all sequences. Compute returns that minimum together
// with every sequence attaining it within a tolerance eps, in the order a
// depth-first search over label-ordered vertex pairs discovers them.
//
// Options:
//
//	WithPruning(bool)    cut branches whose running width already exceeds
//	                     the best width by more than eps (default on)
//	WithParallel(n)      explore top-level branches on n goroutines
//	WithMaxVertices(n)   reject graphs with more than n vertices (ErrTooLarge)
//	WithEpsilon(eps)     tie tolerance (default 1e-9)
//
// Pruned and parallel runs return exactly the result of the sequential
// unpruned search.
//
// Complexity: the number of sequences is Π_{k=2..n} C(k,2), so the search is
// only practical for graphs of up to about eight vertices.
package twinwidth
