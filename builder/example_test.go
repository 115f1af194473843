// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/fuzzytwin/builder"
)

// ExampleBuildGraph builds a fuzzy 4-cycle with half-strength edges.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSymbolIDs(),
		builder.WithMembership(0.8),
		builder.WithWeight(0.5),
	}, builder.Cycle(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s-%s %.1f\n", e.U, e.V, e.Weight.Black)
	}
	// Output:
	// A-B 0.5
	// A-D 0.5
	// B-C 0.5
	// C-D 0.5
}
