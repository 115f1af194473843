// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/fuzzytwin/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodStar     = "Star"

	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
)

// CenterID is the fixed name of the hub vertex built by Star.
const CenterID = "Center"

// Path builds P_n (n ≥ 2): vertices idFn(0..n-1), edges i–(i+1).
// Complexity: O(n)
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		names, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, cfg, methodPath, names[i-1], names[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n (n ≥ 3): a path plus the closing edge (n-1)–0.
// Complexity: O(n)
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		names, err := addVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, cfg, methodCycle, names[i], names[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n (n ≥ 1), emitting edges i<j in lexicographic order.
// Complexity: O(n²)
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		names, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, cfg, methodComplete, names[i], names[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Star builds a star on n vertices (n ≥ 2): hub CenterID and leaves
// idFn(0..n-2), each joined to the hub.
// Complexity: O(n)
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterID, cfg.membershipFn(n-1)); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterID, err)
		}
		leaves, err := addVertices(g, cfg, methodStar, n-1)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = addEdge(g, cfg, methodStar, CenterID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
