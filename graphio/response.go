// SPDX-License-Identifier: MIT

package graphio

import (
	"github.com/katalvlaran/fuzzytwin/isomorph"
	"github.com/katalvlaran/fuzzytwin/similarity"
	"github.com/katalvlaran/fuzzytwin/twinwidth"
)

// Undefined is the wire value of a width or similarity that does not exist.
const Undefined = "X"

// TwinWidthRequest is the body of POST /get-tw.
type TwinWidthRequest struct {
	Description `yaml:",inline"`
	TNorm       string `json:"tnorm" yaml:"tnorm"`
}

// PairRequest is the body of POST /check-isomorphism and /get-similarity.
type PairRequest struct {
	Graph1 *Description `json:"graph1" yaml:"graph1"`
	Graph2 *Description `json:"graph2" yaml:"graph2"`
	TNorm  string       `json:"tnorm,omitempty" yaml:"tnorm,omitempty"`
}

// TwinWidthResponse carries the width (a number or Undefined) and the
// optimal sequences as label pairs.
type TwinWidthResponse struct {
	TW       any           `json:"tw"`
	Sequence [][][2]string `json:"sequence"`
}

// IsomorphismResponse carries the isomorphism verdict and all mappings.
type IsomorphismResponse struct {
	Isomorphic bool                `json:"isomorphic"`
	Mappings   []map[string]string `json:"mappings"`
}

// SimilarityResponse carries the similarity (a number or Undefined).
type SimilarityResponse struct {
	Similarity any `json:"similarity"`
}

// NewTwinWidthResponse encodes r.
func NewTwinWidthResponse(r twinwidth.Result) TwinWidthResponse {
	resp := TwinWidthResponse{Sequence: make([][][2]string, 0, len(r.Sequences))}
	if r.Undefined() {
		resp.TW = Undefined
	} else {
		resp.TW = r.Width
	}
	for _, seq := range r.Sequences {
		steps := make([][2]string, len(seq))
		for i, s := range seq {
			steps[i] = s.Labels()
		}
		resp.Sequence = append(resp.Sequence, steps)
	}

	return resp
}

// NewIsomorphismResponse encodes the result of isomorph.Find.
func NewIsomorphismResponse(ok bool, maps []isomorph.Mapping) IsomorphismResponse {
	resp := IsomorphismResponse{Isomorphic: ok, Mappings: make([]map[string]string, 0, len(maps))}
	for _, m := range maps {
		resp.Mappings = append(resp.Mappings, m)
	}

	return resp
}

// NewSimilarityResponse encodes r.
func NewSimilarityResponse(r similarity.Result) SimilarityResponse {
	if !r.Defined {
		return SimilarityResponse{Similarity: Undefined}
	}

	return SimilarityResponse{Similarity: r.Value}
}
