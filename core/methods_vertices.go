// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"strings"
)

// ReservedNameChars may not appear in original vertex names; composite
// labels are built from them, so every label names exactly one vertex.
const ReservedNameChars = "{},"

// AddVertex inserts an original vertex called name with the given membership.
// Re-adding a present vertex replaces its membership and keeps its edges.
// Returns ErrEmptyVertexID, ErrReservedName, ErrBadMembership, ErrTooManyVertices, or
// ErrVertexSubsumed when name is already part of a composite vertex of this graph.
// Complexity: O(deg) when replacing, O(1) amortized otherwise.
func (g *Graph) AddVertex(name string, membership float64) error {
	if name == "" {
		return ErrEmptyVertexID
	}
	if strings.ContainsAny(name, ReservedNameChars) {
		return fmt.Errorf("AddVertex(%q): %w", name, ErrReservedName)
	}
	if !(membership >= 0 && membership <= 1) {
		return fmt.Errorf("AddVertex(%q): %w: %v", name, ErrBadMembership, membership)
	}
	i, err := g.universe.register(name)
	if err != nil {
		return fmt.Errorf("AddVertex(%q): %w", name, err)
	}
	id := VertexID{set: 1 << uint(i), u: g.universe}

	g.mu.Lock()
	defer g.mu.Unlock()

	if old, ok := g.vertices[id]; ok {
		nv := old.withAdj(0)
		nv.Membership = membership
		g.vertices[id] = nv
		return nil
	}
	for other := range g.vertices {
		if other.Overlaps(id) {
			return fmt.Errorf("AddVertex(%q): %w", name, ErrVertexSubsumed)
		}
	}
	g.vertices[id] = &Vertex{ID: id, Membership: membership, adj: make(map[VertexID]Weight)}

	return nil
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Lookup resolves a vertex label (see VertexID.String) to its VertexID.
// Complexity: O(1) for original names, O(V) for composite labels.
func (g *Graph) Lookup(label string) (VertexID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if id, ok := g.universe.Singleton(label); ok {
		if _, present := g.vertices[id]; present {
			return id, true
		}
	}
	for id := range g.vertices {
		if id.Composite() && id.String() == label {
			return id, true
		}
	}

	return VertexID{}, false
}

// Vertex returns a read-only view of vertex id.
func (g *Graph) Vertex(id VertexID) (Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, false
	}

	return *v, true
}

// Vertices returns all vertex IDs ordered by label.
// Complexity: O(V·log V)
func (g *Graph) Vertices() []VertexID {
	g.mu.RLock()
	out := make([]VertexID, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	g.mu.RUnlock()
	sortByLabel(out)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Clone returns an independent Graph with the same vertices and edges.
// Vertex values are shared, which is safe because they are never modified
// in place.
// Complexity: O(V)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := &Graph{universe: g.universe, vertices: make(map[VertexID]*Vertex, len(g.vertices))}
	for id, v := range g.vertices {
		out.vertices[id] = v
	}

	return out
}
