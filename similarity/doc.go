// SPDX-License-Identifier: MIT

// Package similarity scores two isomorphic fuzzy graphs by how much their
// black edge weights disagree.
//
// For every isomorphism φ from G1 to G2 the dissimilarity of φ is the
// t-conorm fold, from 0, of |black₁(u,v) − black₂(φu,φv)| over the edges of
// G1. The overall dissimilarity r is the t-norm fold, from 1, of those
// per-mapping values, and the similarity is 1 − r.
//
// Graphs that are not isomorphic have no similarity: Result.Defined is
// false. Graphs without edges have similarity 1.
package similarity
