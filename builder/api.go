// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/fuzzytwin/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts and applies all constructors in order. Constructor errors are
// wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) plus the sum of constructor costs.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices adds n vertices named cfg.idFn(0..n-1) and returns their names.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = cfg.idFn(i)
		if err := g.AddVertex(names[i], cfg.membershipFn(i)); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, names[i], err)
		}
	}

	return names, nil
}

// addEdge adds u–v with a black weight drawn from cfg.weightFn and red 0.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := core.Weight{Black: cfg.weightFn(cfg.rng)}
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s,%s): %w", method, u, v, err)
	}

	return nil
}
