// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/fuzzytwin/core"
	"github.com/katalvlaran/fuzzytwin/graphio"
	"github.com/katalvlaran/fuzzytwin/isomorph"
	"github.com/katalvlaran/fuzzytwin/logger"
	"github.com/katalvlaran/fuzzytwin/similarity"
	"github.com/katalvlaran/fuzzytwin/tnorm"
	"github.com/katalvlaran/fuzzytwin/twinwidth"
)

// Endpoint names used as metric labels.
const (
	endpointTwinWidth   = "get-tw"
	endpointIsomorphism = "check-isomorphism"
	endpointSimilarity  = "get-similarity"
)

var (
	// errInvalidInput is the reply for a pair request missing a graph.
	errInvalidInput = errors.New("Invalid input")

	// errMalformedBody wraps JSON binding failures.
	errMalformedBody = errors.New("malformed request body")

	// errPairTooLarge rejects a pair request over the vertex limit.
	errPairTooLarge = errors.New("graph exceeds the vertex limit")
)

// Handlers serves the computation endpoints.
type Handlers struct {
	maxVertices int
	parallel    int
	metrics     *Metrics
}

// NewHandlers creates the handlers. maxVertices caps every graph of every
// request (0 disables the cap); parallel is the number of search workers.
func NewHandlers(maxVertices, parallel int, metrics *Metrics) *Handlers {
	if parallel < 1 {
		parallel = 1
	}

	return &Handlers{maxVertices: maxVertices, parallel: parallel, metrics: metrics}
}

// HandleIndex answers the plain-text liveness probe.
func (h *Handlers) HandleIndex(c *gin.Context) {
	c.String(http.StatusOK, "App is running!")
}

// HandleHealth reports {"status":"ok"}.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleTwinWidth serves POST /get-tw.
func (h *Handlers) HandleTwinWidth(c *gin.Context) {
	started := time.Now()
	var req graphio.TwinWidthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, endpointTwinWidth, started, fmt.Errorf("%w: %v", errMalformedBody, err))
		return
	}
	k, err := tnorm.Parse(req.TNorm)
	if err != nil {
		h.fail(c, endpointTwinWidth, started, err)
		return
	}
	g, err := req.Description.Build()
	if err != nil {
		h.fail(c, endpointTwinWidth, started, err)
		return
	}

	r, err := twinwidth.Compute(g, k,
		twinwidth.WithMaxVertices(h.maxVertices),
		twinwidth.WithParallel(h.parallel),
	)
	if err != nil {
		h.fail(c, endpointTwinWidth, started, err)
		return
	}
	logger.Debug("Twin-width computed",
		"vertices", g.VertexCount(), "tnorm", k, "width", r.Width, "sequences", len(r.Sequences))
	h.metrics.observe(endpointTwinWidth, outcomeOK, started)
	c.JSON(http.StatusOK, graphio.NewTwinWidthResponse(r))
}

// HandleIsomorphism serves POST /check-isomorphism.
func (h *Handlers) HandleIsomorphism(c *gin.Context) {
	started := time.Now()
	g1, g2, _, err := h.bindPair(c, false)
	if err != nil {
		h.fail(c, endpointIsomorphism, started, err)
		return
	}
	ok, maps, err := isomorph.Find(g1, g2)
	if err != nil {
		h.fail(c, endpointIsomorphism, started, err)
		return
	}
	h.metrics.observe(endpointIsomorphism, outcomeOK, started)
	c.JSON(http.StatusOK, graphio.NewIsomorphismResponse(ok, maps))
}

// HandleSimilarity serves POST /get-similarity.
func (h *Handlers) HandleSimilarity(c *gin.Context) {
	started := time.Now()
	g1, g2, k, err := h.bindPair(c, true)
	if err != nil {
		h.fail(c, endpointSimilarity, started, err)
		return
	}
	r, err := similarity.Compute(g1, g2, k)
	if err != nil {
		h.fail(c, endpointSimilarity, started, err)
		return
	}
	h.metrics.observe(endpointSimilarity, outcomeOK, started)
	c.JSON(http.StatusOK, graphio.NewSimilarityResponse(r))
}

// bindPair decodes a PairRequest and builds both graphs, enforcing the
// vertex limit. The t-norm is parsed only when withKind is set.
func (h *Handlers) bindPair(c *gin.Context, withKind bool) (*core.Graph, *core.Graph, tnorm.Kind, error) {
	var req graphio.PairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, nil, "", fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	if req.Graph1 == nil || req.Graph2 == nil {
		return nil, nil, "", errInvalidInput
	}
	var k tnorm.Kind
	if withKind {
		var err error
		if k, err = tnorm.Parse(req.TNorm); err != nil {
			return nil, nil, "", err
		}
	}
	g1, err := req.Graph1.Build()
	if err != nil {
		return nil, nil, "", err
	}
	g2, err := req.Graph2.Build()
	if err != nil {
		return nil, nil, "", err
	}
	if n := max(g1.VertexCount(), g2.VertexCount()); h.maxVertices > 0 && n > h.maxVertices {
		return nil, nil, "", fmt.Errorf("%w: %d vertices > limit %d", errPairTooLarge, n, h.maxVertices)
	}

	return g1, g2, k, nil
}

// fail maps err to a status code, records the outcome and replies
// {"error": ...}.
func (h *Handlers) fail(c *gin.Context, endpoint string, started time.Time, err error) {
	status, outcome := classify(err)
	h.metrics.observe(endpoint, outcome, started)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", "endpoint", endpoint, "error", err, "request_id", c.GetString(ctxRequestID))
	} else {
		logger.Debug("Request rejected", "endpoint", endpoint, "error", err, "request_id", c.GetString(ctxRequestID))
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, twinwidth.ErrTooLarge), errors.Is(err, errPairTooLarge):
		return http.StatusRequestEntityTooLarge, outcomeTooLarge
	case errors.Is(err, graphio.ErrInvalidDescription),
		errors.Is(err, tnorm.ErrUnknownKind),
		errors.Is(err, errInvalidInput),
		errors.Is(err, errMalformedBody),
		errors.Is(err, core.ErrTooManyVertices),
		errors.Is(err, core.ErrBadMembership),
		errors.Is(err, core.ErrReservedName),
		errors.Is(err, core.ErrBadWeight):
		return http.StatusBadRequest, outcomeBadRequest
	}
	return http.StatusInternalServerError, outcomeError
}
