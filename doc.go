// SPDX-License-Identifier: MIT

// Package fuzzytwin computes a graded ("fuzzy") twin-width of small weighted
// graphs, enumerates every isomorphism between two such graphs, and derives
// a fuzzy similarity score from those isomorphisms.
//
// Vertices carry a membership degree in [0,1]; edges carry a black weight
// (how strongly the edge exists) and a red weight (how much of it is error
// introduced by merging). Merging two vertices combines degrees with a
// t-conorm and red contributions with the t-norm of the same family.
//
// The work is split across subpackages:
//
//	tnorm/      t-norm and t-conorm families (min, prod, luk, drast), merge formulas
//	core/       fuzzy Graph, composite VertexID, copy-on-write vertex merge
//	matrix/     dense index-based adjacency view
//	builder/    deterministic fixtures (Path, Cycle, Complete, Star) and Relabel
//	twinwidth/  exhaustive merge-sequence search, optional pruning and workers
//	isomorph/   exact bijection enumerator
//	similarity/ s-norm/t-norm aggregation over all isomorphisms
//	graphio/    JSON, YAML and text-expression graph descriptions
//	server/     gin HTTP API with Prometheus metrics
//	cmd/        the fuzzytwin CLI
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddVertex("A", 1)
//	_ = g.AddVertex("B", 1)
//	_ = g.AddVertex("C", 1)
//	_ = g.AddEdge("A", "B", core.Weight{Black: 0.5})
//	_ = g.AddEdge("B", "C", core.Weight{Black: 0.5})
//	r, _ := twinwidth.Compute(g, tnorm.Prod)
//	fmt.Println(r.Width, r.Sequences)
//
// Every search is exhaustive and exponential in the vertex count; callers
// bound the input with twinwidth.WithMaxVertices.
package fuzzytwin
