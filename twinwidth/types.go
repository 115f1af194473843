// SPDX-License-Identifier: MIT

package twinwidth

import (
	"errors"
	"math"

	"github.com/katalvlaran/fuzzytwin/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to Compute.
	ErrGraphNil = errors.New("twinwidth: graph is nil")

	// ErrTooLarge is returned when the graph exceeds the WithMaxVertices limit.
	ErrTooLarge = errors.New("twinwidth: graph too large for exhaustive search")
)

// Step is one merge of a sequence: U and V are replaced by U∪V.
// U precedes V by label.
type Step struct {
	U, V core.VertexID
}

// Labels returns the vertex labels of the step.
func (s Step) Labels() [2]string { return [2]string{s.U.String(), s.V.String()} }

// String renders the step as "(U,V)".
func (s Step) String() string { return "(" + s.U.String() + "," + s.V.String() + ")" }

// Result holds the fuzzy twin-width and every optimal merge sequence.
type Result struct {
	// Width is the minimum width; +Inf when Undefined.
	Width float64

	// Sequences lists the optimal sequences, each of length n-1.
	Sequences [][]Step
}

// Undefined reports whether no merge sequence exists (empty graph).
func (r Result) Undefined() bool { return math.IsInf(r.Width, 1) }

// undefined is the Result of a graph without vertices.
func undefined() Result { return Result{Width: math.Inf(1)} }
