// SPDX-License-Identifier: MIT

package twinwidth

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/fuzzytwin/core"
	"github.com/katalvlaran/fuzzytwin/tnorm"
)

// ErrIncompleteSequence is returned by Evaluate when seq does not contract
// g to a single vertex.
var ErrIncompleteSequence = errors.New("twinwidth: sequence does not reach one vertex")

// Evaluate replays seq on g and returns its width, the largest
// MaxErrorDegree after any step.
func Evaluate(g *core.Graph, k tnorm.Kind, seq []Step) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	cur, width := g, 0.0
	for i, s := range seq {
		m, err := cur.MergeVertices(s.U, s.V, k)
		if err != nil {
			return 0, fmt.Errorf("Evaluate: step %d %s: %w", i, s, err)
		}
		width = math.Max(width, m.MaxErrorDegree())
		cur = m
	}
	if cur.VertexCount() != 1 {
		return 0, fmt.Errorf("Evaluate: %d vertices left: %w", cur.VertexCount(), ErrIncompleteSequence)
	}

	return width, nil
}
