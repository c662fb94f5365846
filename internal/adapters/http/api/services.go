// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/blastradius/internal/domain/model"
)

// ServiceDependencies defines the interface for service catalog queries.
type ServiceDependencies interface {
	SearchServices(ctx context.Context, query string) []EnrichedService
	EnrichedService(ctx context.Context, id string) (EnrichedService, error)
	ImpactsForService(ctx context.Context, serviceID string) []model.EventImpact
	ImpactsForFeature(ctx context.Context, serviceID, featureID string) []model.EventImpact
}

// ServicesHandler handles service catalog requests.
type ServicesHandler struct {
	deps ServiceDependencies
}

// NewServicesHandler creates a new services handler.
func NewServicesHandler(deps ServiceDependencies) *ServicesHandler {
	return &ServicesHandler{deps: deps}
}

// HandleListServices handles GET /api/services?q= requests.
// Without q it returns every enriched service; with q it returns the
// substring matches. An all-whitespace q behaves like no q at all.
func (h *ServicesHandler) HandleListServices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, h.deps.SearchServices(r.Context(), q))
}

// HandleServiceSubtree handles GET requests under /api/services/:
//
//	GET /api/services/{id}
//	GET /api/services/{id}/impacts
//	GET /api/services/{id}/features/{fid}/impacts
func (h *ServicesHandler) HandleServiceSubtree(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_service"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/api/services/")
	parts := strings.Split(path, "/")

	switch {
	case len(parts) == 1 && parts[0] != "":
		svc, err := h.deps.EnrichedService(r.Context(), parts[0])
		if err != nil {
			if isNotFound(err) {
				writeError(w, http.StatusNotFound, "not_found", err)
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, svc)

	case len(parts) == 2 && parts[1] == "impacts":
		// Always a list, possibly empty; an unknown id is indistinguishable
		// from a service with no impacts, matching the join contract.
		writeJSON(w, http.StatusOK, h.deps.ImpactsForService(r.Context(), parts[0]))

	case len(parts) == 4 && parts[1] == "features" && parts[3] == "impacts":
		writeJSON(w, http.StatusOK, h.deps.ImpactsForFeature(r.Context(), parts[0], parts[2]))

	default:
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
	}
}
