// SPDX-License-Identifier: MIT

package tnorm

// NodeMerge returns the membership of a vertex formed by merging two vertices
// with memberships mu and mv.
func NodeMerge(k Kind, mu, mv float64) float64 {
	return Clamp01(S(k, mu, mv))
}

// BlackEdgeMerge returns the black (structural) weight of the edge that
// replaces two edges with black weights bu and bv. A missing edge counts as 0.
func BlackEdgeMerge(k Kind, bu, bv float64) float64 {
	return Clamp01(S(k, bu, bv))
}

// RedEdgeMerge returns the red (error) weight of the edge that replaces two
// edges with weights (bu,ru) and (bv,rv):
//
//	S(bu,bv) − T(bu−ru, bv−rv)
//
// Structural parts bu−ru and bv−rv are clamped to [0,1] before T is applied,
// and the result is clamped to [0, BlackEdgeMerge(bu,bv)].
func RedEdgeMerge(k Kind, bu, ru, bv, rv float64) float64 {
	black := BlackEdgeMerge(k, bu, bv)
	red := black - T(k, Clamp01(bu-ru), Clamp01(bv-rv))
	if red < 0 {
		return 0
	}
	if red > black {
		return black
	}

	return red
}

// Clamp01 limits x to the closed unit interval.
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}
