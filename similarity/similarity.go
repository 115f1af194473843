// SPDX-License-Identifier: MIT

package similarity

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/fuzzytwin/core"
	"github.com/katalvlaran/fuzzytwin/isomorph"
	"github.com/katalvlaran/fuzzytwin/matrix"
	"github.com/katalvlaran/fuzzytwin/tnorm"
)

// ErrGraphNil is returned when either graph is nil.
var ErrGraphNil = errors.New("similarity: graph is nil")

// Result is the similarity of two graphs.
type Result struct {
	// Value is the similarity in [0,1]; meaningful only when Defined.
	Value float64

	// Defined is false when the graphs are not isomorphic.
	Defined bool

	// Mappings is the number of isomorphisms aggregated.
	Mappings int
}

// Compute returns the similarity of g1 and g2 under the t-norm family k.
// Errors: ErrGraphNil, tnorm.ErrUnknownKind.
func Compute(g1, g2 *core.Graph, k tnorm.Kind) (Result, error) {
	if g1 == nil || g2 == nil {
		return Result{}, ErrGraphNil
	}
	if !k.Valid() {
		return Result{}, fmt.Errorf("similarity: %w: %q", tnorm.ErrUnknownKind, string(k))
	}

	a, err := matrix.NewAdjacencyMatrix(g1)
	if err != nil {
		return Result{}, fmt.Errorf("similarity: %w", err)
	}
	b, err := matrix.NewAdjacencyMatrix(g2)
	if err != nil {
		return Result{}, fmt.Errorf("similarity: %w", err)
	}

	index := make(map[string]int, b.VertexCount())
	for i := 0; i < b.VertexCount(); i++ {
		index[b.Label(i)] = i
	}

	r, count := 1.0, 0
	err = isomorph.Walk(g1, g2, func(m isomorph.Mapping) bool {
		r = tnorm.T(k, r, dissimilarity(a, b, index, m, k))
		count++
		return true
	})
	if err != nil {
		return Result{}, fmt.Errorf("similarity: %w", err)
	}
	if count == 0 {
		return Result{}, nil
	}

	return Result{Value: tnorm.Clamp01(1 - r), Defined: true, Mappings: count}, nil
}

// dissimilarity folds the black weight differences of one mapping with S.
// Each unordered G1 edge is visited once (i < j); index maps G2 labels to
// rows of b.
func dissimilarity(a, b *matrix.AdjacencyMatrix, index map[string]int, m isomorph.Mapping, k tnorm.Kind) float64 {
	d := 0.0
	n := a.VertexCount()
	for i := 0; i < n; i++ {
		bi := index[m[a.Label(i)]]
		for j := i + 1; j < n; j++ {
			w1, ok := a.Black(i, j)
			if !ok {
				continue
			}
			w2, _ := b.Black(bi, index[m[a.Label(j)]])
			d = tnorm.S(k, d, math.Abs(w1-w2))
		}
	}

	return d
}
