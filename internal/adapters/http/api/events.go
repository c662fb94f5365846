// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/blastradius/internal/domain/model"
)

// EventDependencies defines the interface for outage event queries.
type EventDependencies interface {
	Events(ctx context.Context) []model.Event
	Event(ctx context.Context, id string) (model.Event, error)
	ImpactsForEvent(ctx context.Context, eventID string) []model.EventImpact
}

// EventsHandler handles outage event requests.
type EventsHandler struct {
	deps EventDependencies
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(deps EventDependencies) *EventsHandler {
	return &EventsHandler{deps: deps}
}

// HandleListEvents handles GET /api/events requests.
func (h *EventsHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Events(r.Context()))
}

// HandleEventSubtree handles GET requests under /api/events/:
//
//	GET /api/events/{id}
//	GET /api/events/{id}/impacts
func (h *EventsHandler) HandleEventSubtree(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_event"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/api/events/")
	parts := strings.Split(path, "/")

	switch {
	case len(parts) == 1 && parts[0] != "":
		ev, err := h.deps.Event(r.Context(), parts[0])
		if err != nil {
			if isNotFound(err) {
				writeError(w, http.StatusNotFound, "not_found", err)
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, ev)

	case len(parts) == 2 && parts[1] == "impacts":
		writeJSON(w, http.StatusOK, h.deps.ImpactsForEvent(r.Context(), parts[0]))

	default:
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
	}
}
