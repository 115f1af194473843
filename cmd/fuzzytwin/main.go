// SPDX-License-Identifier: MIT

// Command fuzzytwin computes fuzzy twin-width, graph isomorphisms and fuzzy
// similarity, either once from the command line or as an HTTP service.
//
// Usage:
//
//	fuzzytwin serve --addr :5000
//	fuzzytwin tw graph.yaml --tnorm prod --parallel 4
//	fuzzytwin tw --expr "A B:0.5 C; A-B:0.5 B-C A-C"
//	fuzzytwin iso g1.json g2.json
//	fuzzytwin sim g1.json g2.json --tnorm luk
//
// Settings are read from .env and FUZZYTWIN_* variables; flags override them.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
