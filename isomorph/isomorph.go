// SPDX-License-Identifier: MIT

package isomorph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fuzzytwin/core"
	"github.com/katalvlaran/fuzzytwin/matrix"
)

// ErrGraphNil is returned when either graph is nil.
var ErrGraphNil = errors.New("isomorph: graph is nil")

// Mapping sends G1 vertex labels to G2 vertex labels.
type Mapping map[string]string

// Find reports whether g1 and g2 are isomorphic and returns every mapping.
// A vertex-count or edge-count mismatch yields (false, nil, nil).
func Find(g1, g2 *core.Graph) (bool, []Mapping, error) {
	var out []Mapping
	err := Walk(g1, g2, func(m Mapping) bool {
		out = append(out, m)
		return true
	})
	if err != nil {
		return false, nil, err
	}

	return len(out) > 0, out, nil
}

// Count returns the number of isomorphisms between g1 and g2.
func Count(g1, g2 *core.Graph) (int, error) {
	n := 0
	err := Walk(g1, g2, func(Mapping) bool {
		n++
		return true
	})

	return n, err
}

// Walk calls visit for every isomorphism in discovery order until visit
// returns false.
func Walk(g1, g2 *core.Graph, visit func(Mapping) bool) error {
	if g1 == nil || g2 == nil {
		return ErrGraphNil
	}
	a, err := matrix.NewAdjacencyMatrix(g1)
	if err != nil {
		return fmt.Errorf("isomorph: %w", err)
	}
	b, err := matrix.NewAdjacencyMatrix(g2)
	if err != nil {
		return fmt.Errorf("isomorph: %w", err)
	}
	if a.VertexCount() != b.VertexCount() || a.EdgeCount() != b.EdgeCount() {
		return nil
	}

	n := a.VertexCount()
	s := &state{
		a:     a,
		b:     b,
		n:     n,
		image: make([]int, n),
		used:  make([]bool, n),
		visit: visit,
	}
	s.extend(0)

	return nil
}

// state is the backtracking frame shared by one Walk call.
type state struct {
	a, b  *matrix.AdjacencyMatrix
	n     int
	image []int  // image[i] = G2 index of G1 vertex i, valid for i < depth
	used  []bool // used[j] = G2 vertex j is taken
	visit func(Mapping) bool
	stop  bool
}

// extend maps G1 vertex i and recurses.
func (s *state) extend(i int) {
	if s.stop {
		return
	}
	if i == s.n {
		if !s.visit(s.mapping()) {
			s.stop = true
		}
		return
	}
	for j := 0; j < s.n && !s.stop; j++ {
		if s.used[j] || !s.feasible(i, j) {
			continue
		}
		s.image[i], s.used[j] = j, true
		s.extend(i + 1)
		s.used[j] = false
	}
}

// feasible reports whether mapping G1 vertex i to G2 vertex j keeps
// adjacency with every vertex mapped so far, in both directions.
func (s *state) feasible(i, j int) bool {
	if s.a.Degree(i) != s.b.Degree(j) {
		return false
	}
	for p := 0; p < i; p++ {
		if s.a.Has(p, i) != s.b.Has(s.image[p], j) {
			return false
		}
	}

	return true
}

func (s *state) mapping() Mapping {
	m := make(Mapping, s.n)
	for i := 0; i < s.n; i++ {
		m[s.a.Label(i)] = s.b.Label(s.image[i])
	}

	return m
}
