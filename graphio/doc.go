// SPDX-License-Identifier: MIT

// Package graphio converts between external graph descriptions and
// core.Graph values, and encodes computation results.
//
// A Description is a list of nodes {name, membershipFunction} and a list
// of edges {source, target, weight}. Descriptions are read from JSON, YAML
// or a compact text expression:
//
//	A:0.5 B:1 C ; A-B:0.5 B-C:0.25 A-C
//
// Nodes come before the ";" and edges after it. An omitted membership or
// weight means 1, and an edge may name a node that was not declared.
//
// Validate checks a Description with go-playground/validator; Build turns a
// valid Description into a graph whose edges all carry red weight 0.
//
// Response types mirror the JSON shapes of the HTTP API. An undefined
// twin-width or similarity is encoded as the string "X".
package graphio
