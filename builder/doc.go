// SPDX-License-Identifier: MIT

// Package builder constructs deterministic fuzzy graph fixtures.
//
// Constructors (Path, Cycle, Complete, Star) are composed by BuildGraph and
// configured with functional options:
//
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",...), SymbolIDFn
//     ("A".."Z"), ExcelColumnIDFn ("A".."Z","AA",...), PrefixIDFn ("v0","v1",...).
//   - Membership policy: WithMembership, WithMembershipFn (default 1).
//   - Black weight policy: WithWeight, WithWeightFn, WithUniformWeights
//     (default 1). Built edges always carry red weight 0.
//   - Randomness: WithSeed or WithRand; nothing random happens otherwise.
//
// Relabel and RelabelMap return a renamed copy of a graph, which is how
// tests produce isomorphic pairs.
//
// Option constructors panic on meaningless values. Constructors never
// panic; they return errors wrapping ErrTooFewVertices, ErrConstructFailed
// or ErrBadMapping.
package builder
