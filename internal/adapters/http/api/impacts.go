// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// ImpactDependencies defines the interface for impact evidence queries.
type ImpactDependencies interface {
	EnrichedImpacts(ctx context.Context) []EnrichedImpact
}

// ImpactsHandler handles impact evidence requests.
type ImpactsHandler struct {
	deps ImpactDependencies
}

// NewImpactsHandler creates a new impacts handler.
func NewImpactsHandler(deps ImpactDependencies) *ImpactsHandler {
	return &ImpactsHandler{deps: deps}
}

// HandleListImpacts handles GET /api/impacts requests. Every impact is
// returned with its referenced service, event and feature resolved; a
// dangling reference leaves the field out of the JSON.
func (h *ImpactsHandler) HandleListImpacts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.EnrichedImpacts(r.Context()))
}
