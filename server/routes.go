// SPDX-License-Identifier: MIT

package server

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the API endpoints on r.
//
//	GET  /                   liveness text
//	GET  /health             {"status":"ok"}
//	POST /get-tw             twin-width of one graph
//	POST /check-isomorphism  all isomorphisms between two graphs
//	POST /get-similarity     fuzzy similarity of two graphs
func RegisterRoutes(r gin.IRouter, h *Handlers) {
	r.GET("/", h.HandleIndex)
	r.GET("/health", h.HandleHealth)
	r.POST("/get-tw", h.HandleTwinWidth)
	r.POST("/check-isomorphism", h.HandleIsomorphism)
	r.POST("/get-similarity", h.HandleSimilarity)
}
