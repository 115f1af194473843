// SPDX-License-Identifier: MIT

package tnorm_test

import (
	"fmt"

	"github.com/katalvlaran/fuzzytwin/tnorm"
)

// ExampleRedEdgeMerge merges an edge of weight 0.5 with a missing edge.
func ExampleRedEdgeMerge() {
	for _, k := range tnorm.Kinds() {
		fmt.Printf("%s: black=%.2f red=%.2f\n", k,
			tnorm.BlackEdgeMerge(k, 0.5, 0),
			tnorm.RedEdgeMerge(k, 0.5, 0, 0, 0))
	}
	// Output:
	// min: black=0.50 red=0.50
	// prod: black=0.50 red=0.50
	// luk: black=0.50 red=0.50
	// drast: black=0.50 red=0.50
}
