// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge sets the undirected edge between the vertices labelled from and to.
// An existing edge between the pair is overwritten (last write wins).
// Returns ErrEmptyVertexID, ErrVertexNotFound, ErrLoopNotAllowed, ErrBadWeight.
func (g *Graph) AddEdge(from, to string, w Weight) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	u, ok := g.Lookup(from)
	if !ok {
		return fmt.Errorf("AddEdge(%q,%q): %w: %q", from, to, ErrVertexNotFound, from)
	}
	v, ok := g.Lookup(to)
	if !ok {
		return fmt.Errorf("AddEdge(%q,%q): %w: %q", from, to, ErrVertexNotFound, to)
	}

	return g.SetEdge(u, v, w)
}

// SetEdge sets the undirected edge u–v to w on both endpoints.
// Complexity: O(deg(u)+deg(v)) for the copy-on-write of both endpoints.
func (g *Graph) SetEdge(u, v VertexID, w Weight) error {
	if u == v {
		return ErrLoopNotAllowed
	}
	if !validWeight(w) {
		return fmt.Errorf("SetEdge(%s,%s): %w: %+v", u, v, ErrBadWeight, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	vu, ok := g.vertices[u]
	if !ok {
		return fmt.Errorf("SetEdge: %w: %s", ErrVertexNotFound, u)
	}
	vv, ok := g.vertices[v]
	if !ok {
		return fmt.Errorf("SetEdge: %w: %s", ErrVertexNotFound, v)
	}

	nu, nv := vu.withAdj(1), vv.withAdj(1)
	nu.adj[v] = w
	nv.adj[u] = w
	g.vertices[u], g.vertices[v] = nu, nv

	return nil
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v VertexID) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Weight returns the weight of edge u–v.
func (g *Graph) Weight(u, v VertexID) (Weight, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	vu, ok := g.vertices[u]
	if !ok {
		return Weight{}, false
	}
	w, ok := vu.adj[v]

	return w, ok
}

// Neighbors returns the neighbors of id ordered by label.
// Complexity: O(d·log d)
func (g *Graph) Neighbors(id VertexID) ([]Neighbor, error) {
	g.mu.RLock()
	v, ok := g.vertices[id]
	g.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("Neighbors: %w: %s", ErrVertexNotFound, id)
	}

	out := make([]Neighbor, 0, len(v.adj))
	for nb, w := range v.adj {
		out = append(out, Neighbor{ID: nb, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Less(out[j].ID) })

	return out, nil
}

// Edges returns every undirected edge once, ordered by (U, V) label.
// Complexity: O(E·log E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	var out []Edge
	for id, v := range g.vertices {
		for nb, w := range v.adj {
			if id.Less(nb) {
				out = append(out, Edge{U: id, V: nb, Weight: w})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U.Less(out[j].U)
		}
		return out[i].V.Less(out[j].V)
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	total := 0
	for _, v := range g.vertices {
		total += len(v.adj)
	}

	return total / 2
}

func validWeight(w Weight) bool {
	if math.IsNaN(w.Black) || math.IsNaN(w.Red) {
		return false
	}

	return w.Black >= 0 && w.Black <= 1 && w.Red >= 0 && w.Red <= w.Black
}
