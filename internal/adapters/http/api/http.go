// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/blastradius/internal/domain/model"
	"github.com/okian/blastradius/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
// Every operation is a pure read over the loaded snapshot.
type Dependencies interface {
	EnrichedServices(ctx context.Context) []types.EnrichedService
	SearchServices(ctx context.Context, query string) []types.EnrichedService
	EnrichedService(ctx context.Context, id string) (types.EnrichedService, error)
	EnrichedImpacts(ctx context.Context) []types.EnrichedImpact

	Events(ctx context.Context) []model.Event
	Event(ctx context.Context, id string) (model.Event, error)

	ImpactsForService(ctx context.Context, serviceID string) []model.EventImpact
	ImpactsForEvent(ctx context.Context, eventID string) []model.EventImpact
	ImpactsForFeature(ctx context.Context, serviceID, featureID string) []model.EventImpact
}

// EnrichedService mirrors the read shape returned by service queries.
type EnrichedService = types.EnrichedService

// EnrichedImpact mirrors the read shape returned by impact queries.
type EnrichedImpact = types.EnrichedImpact

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	servicesHandler *ServicesHandler
	eventsHandler   *EventsHandler
	impactsHandler  *ImpactsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		servicesHandler: NewServicesHandler(deps),
		eventsHandler:   NewEventsHandler(deps),
		impactsHandler:  NewImpactsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/services", MetricsMiddleware(s.servicesHandler.HandleListServices, "services"))
	mux.HandleFunc("/api/services/", MetricsMiddleware(s.servicesHandler.HandleServiceSubtree, "service"))
	mux.HandleFunc("/api/events", MetricsMiddleware(s.eventsHandler.HandleListEvents, "events"))
	mux.HandleFunc("/api/events/", MetricsMiddleware(s.eventsHandler.HandleEventSubtree, "event"))
	mux.HandleFunc("/api/impacts", MetricsMiddleware(s.impactsHandler.HandleListImpacts, "impacts"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound allows the API to translate upstream not-found errors to 404.
// This stays generic to avoid tight coupling with specific packages.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	var kinder interface{ NotFound() bool }
	if errors.As(err, &kinder) {
		return kinder.NotFound()
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}
