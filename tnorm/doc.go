// SPDX-License-Identifier: MIT

// Package tnorm implements the fuzzy dual operators (t-norms and t-conorms)
// and the merge formulas that combine the graded weights of two vertices or
// two edges into one.
//
// Four families are supported, selected by Kind:
//
//	Kind   T(u,v)                     S(u,v)
//	min    min(u,v)                   max(u,v)
//	prod   u·v                        u+v−u·v
//	luk    max(u+v−1, 0)              min(u+v, 1)
//	drast  v if u=1, u if v=1, else 0 v if u=0, u if v=0, else 1
//
// Merge formulas (inputs and outputs are degrees in [0,1]):
//
//	NodeMerge(mu, mv)              = S(mu, mv)
//	BlackEdgeMerge(bu, bv)         = S(bu, bv)
//	RedEdgeMerge(bu, ru, bv, rv)   = S(bu, bv) − T(bu−ru, bv−rv)
//
// RedEdgeMerge is clamped to [0, BlackEdgeMerge(bu, bv)], so a merged edge
// never carries more red than black weight.
//
// All functions are pure and safe for concurrent use. An unknown Kind is a
// programmer error at this level; Parse and Kind.Valid let callers reject it
// before calling into the algebra (T and S return 0 for an invalid Kind).
//
// Errors:
//
//	ErrUnknownKind - selector is not one of min, prod, luk, drast.
package tnorm
