// SPDX-License-Identifier: MIT

// Package server exposes twin-width, isomorphism and similarity over a
// JSON HTTP API built on gin.
//
// Request bodies use the graphio description shape:
//
//	{"nodes": [{"name": "A", "membershipFunction": 0.5}, ...],
//	 "edges": [{"source": "A", "target": "B", "weight": 0.5}, ...],
//	 "tnorm": "prod"}
//
// Pair endpoints wrap two descriptions as "graph1" and "graph2". Values
// that do not exist (the width of an empty graph, the similarity of
// non-isomorphic graphs) are reported as "X".
//
// Failures reply {"error": "..."} with 400 for bad input and 413 when a
// twin-width request exceeds the configured vertex limit. Every response
// carries an X-Request-ID header, and GET /metrics serves Prometheus
// counters for each endpoint and outcome.
package server
