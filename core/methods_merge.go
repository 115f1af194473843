// SPDX-License-Identifier: MIT

package core

import (
	"fmt"

	"github.com/katalvlaran/fuzzytwin/tnorm"
)

// MergeVertices returns a new Graph in which u and v are replaced by one
// composite vertex u∪v. g itself is not modified.
//
// Implementation:
//   - Stage 1: membership of u∪v is NodeMerge(μu, μv).
//   - Stage 2: for every neighbor x of u or v (other than u and v), combine
//     the contributions wu = w(u,x) and wv = w(v,x), a missing edge being
//     (0,0), into Black = BlackEdgeMerge(wu.Black, wv.Black) and
//     Red = RedEdgeMerge(wu.Black, wu.Red, wv.Black, wv.Red).
//   - Stage 3: store the combined weight on u∪v and on a copy of x whose
//     edges to u and v are replaced by a single edge to u∪v.
//   - Stage 4: every other vertex is shared with g unchanged.
//
// Errors:
//   - tnorm.ErrUnknownKind for an invalid k.
//   - ErrSameVertex when u == v.
//   - ErrVertexNotFound when u or v is absent.
//
// Complexity: O(V + deg(u) + deg(v) + Σ deg(x)) over the touched neighbors x.
func (g *Graph) MergeVertices(u, v VertexID, k tnorm.Kind) (*Graph, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("MergeVertices: %w: %q", tnorm.ErrUnknownKind, string(k))
	}
	if u == v {
		return nil, fmt.Errorf("MergeVertices(%s): %w", u, ErrSameVertex)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	vu, ok := g.vertices[u]
	if !ok {
		return nil, fmt.Errorf("MergeVertices(%s,%s): %w: %s", u, v, ErrVertexNotFound, u)
	}
	vv, ok := g.vertices[v]
	if !ok {
		return nil, fmt.Errorf("MergeVertices(%s,%s): %w: %s", u, v, ErrVertexNotFound, v)
	}

	id := u.Union(v)
	merged := &Vertex{
		ID:         id,
		Membership: tnorm.NodeMerge(k, vu.Membership, vv.Membership),
		adj:        make(map[VertexID]Weight, len(vu.adj)+len(vv.adj)),
	}

	out := &Graph{universe: g.universe, vertices: make(map[VertexID]*Vertex, len(g.vertices)-1)}
	for x, vx := range g.vertices {
		if x != u && x != v {
			out.vertices[x] = vx
		}
	}

	combine := func(x VertexID) {
		if x == u || x == v {
			return
		}
		if _, done := merged.adj[x]; done {
			return
		}
		wu, wv := vu.adj[x], vv.adj[x]
		w := Weight{
			Black: tnorm.BlackEdgeMerge(k, wu.Black, wv.Black),
			Red:   tnorm.RedEdgeMerge(k, wu.Black, wu.Red, wv.Black, wv.Red),
		}
		merged.adj[x] = w

		nx := g.vertices[x].withAdj(0)
		delete(nx.adj, u)
		delete(nx.adj, v)
		nx.adj[id] = w
		out.vertices[x] = nx
	}
	for x := range vu.adj {
		combine(x)
	}
	for x := range vv.adj {
		combine(x)
	}
	out.vertices[id] = merged

	return out, nil
}

// MergeByName resolves two vertex labels and merges them.
func (g *Graph) MergeByName(a, b string, k tnorm.Kind) (*Graph, error) {
	u, ok := g.Lookup(a)
	if !ok {
		return nil, fmt.Errorf("MergeByName: %w: %q", ErrVertexNotFound, a)
	}
	v, ok := g.Lookup(b)
	if !ok {
		return nil, fmt.Errorf("MergeByName: %w: %q", ErrVertexNotFound, b)
	}

	return g.MergeVertices(u, v, k)
}

// MaxErrorDegree returns the largest ErrorDegree over all vertices,
// or 0 for a graph without vertices.
// Complexity: O(V + E·log d)
func (g *Graph) MaxErrorDegree() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var best float64
	for _, v := range g.vertices {
		if d := v.ErrorDegree(); d > best {
			best = d
		}
	}

	return best
}
