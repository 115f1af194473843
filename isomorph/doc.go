// SPDX-License-Identifier: MIT

// Package isomorph enumerates every structural isomorphism between two
// fuzzy graphs.
//
// Structure means edge existence only: memberships and weights are
// ignored. A Mapping sends each vertex label of G1 to a vertex label of G2
// such that u–v is an edge of G1 exactly when Mapping[u]–Mapping[v] is an
// edge of G2. Isolated vertices take part in the bijection like any other.
//
// Find backtracks over G1 vertices in label order, trying G2 candidates in
// label order, and accepts a candidate only when its degree matches and its
// adjacency to every already-mapped vertex agrees in both directions. The
// mappings are reported in that order, which makes results deterministic.
//
// Graphs with different vertex counts or edge counts are reported as not
// isomorphic without search. Worst-case cost is O(n!·n).
package isomorph
