// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/fuzzytwin/core"
)

const methodRelabel = "Relabel"

// Relabel returns a new graph in which every vertex is an original vertex
// named fn(label). Memberships and both edge weights are preserved, so the
// result is isomorphic to g with identical weights.
//
// Errors: ErrBadMapping when fn is nil, yields "" or maps two labels to the
// same name; core.ErrReservedName when a composite label is kept as is.
// Complexity: O(V + E·log E)
func Relabel(g *core.Graph, fn func(label string) string) (*core.Graph, error) {
	if g == nil || fn == nil {
		return nil, fmt.Errorf("%s: nil graph or mapping: %w", methodRelabel, ErrBadMapping)
	}

	out := core.NewGraph()
	names := make(map[core.VertexID]string, g.VertexCount())
	seen := make(map[string]string, g.VertexCount())
	for _, id := range g.Vertices() {
		label := id.String()
		name := fn(label)
		if name == "" {
			return nil, fmt.Errorf("%s: %q maps to empty name: %w", methodRelabel, label, ErrBadMapping)
		}
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("%s: %q and %q both map to %q: %w", methodRelabel, prev, label, name, ErrBadMapping)
		}
		seen[name] = label
		names[id] = name

		v, _ := g.Vertex(id)
		if err := out.AddVertex(name, v.Membership); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRelabel, err)
		}
	}
	for _, e := range g.Edges() {
		if err := out.AddEdge(names[e.U], names[e.V], e.Weight); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRelabel, err)
		}
	}

	return out, nil
}

// RelabelMap is Relabel driven by a lookup table. Labels missing from m
// keep their current text.
func RelabelMap(g *core.Graph, m map[string]string) (*core.Graph, error) {
	return Relabel(g, func(label string) string {
		if name, ok := m[label]; ok {
			return name
		}

		return label
	})
}
