// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/okian/blastradius/internal/adapters/repository"
	"github.com/okian/blastradius/internal/domain/enrich"
	"github.com/okian/blastradius/internal/domain/model"
	"github.com/okian/blastradius/internal/domain/types"
	"github.com/okian/blastradius/pkg/logger"
)

// Service wires the snapshot store and enricher behind the read-only query
// surface the HTTP API consumes. There is no write path: the snapshot is
// loaded once in Start and never touched again.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    repository.Store
	enricher *enrich.Enricher

	// Configuration
	snapshotPath string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSnapshotPath sets the snapshot file to load at startup.
// Empty means the bundled default snapshot.
func WithSnapshotPath(path string) Option {
	return func(s *Service) {
		s.snapshotPath = path
	}
}

// WithStore injects an already-built store, bypassing the loader.
// Used by tests to run against fixture snapshots.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		snapshotPath: "",
		logger:       nil, // Will be replaced when the service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the snapshot and builds the enricher. A malformed snapshot is
// a fatal initialization error; the caller must abort startup on it.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting tracker service...")

	if s.store == nil {
		store, err := repository.Load(ctx, s.snapshotPath)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		s.store = store
	}
	s.enricher = enrich.New(s.store)

	s.started = true
	s.logger.Info(ctx, "tracker service started",
		logger.Int("events", len(s.store.Events(ctx))),
		logger.Int("services", len(s.store.Services(ctx))),
		logger.Int("impacts", len(s.store.Impacts(ctx))),
		logger.Time("lastUpdated", s.store.LastUpdated(ctx)),
	)

	return nil
}

// Stop marks the service stopped. Nothing to tear down: the snapshot is
// plain memory.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "tracker service stopped")
}

// EnrichedServices returns every service with derived aggregates,
// snapshot order.
func (s *Service) EnrichedServices(ctx context.Context) []types.EnrichedService {
	return s.enricher.Services(ctx)
}

// SearchServices filters enriched services by substring query.
func (s *Service) SearchServices(ctx context.Context, query string) []types.EnrichedService {
	return s.enricher.Search(ctx, query)
}

// EnrichedImpacts returns every impact with resolved references.
func (s *Service) EnrichedImpacts(ctx context.Context) []types.EnrichedImpact {
	return s.enricher.Impacts(ctx)
}

// EnrichedService returns one enriched service, or ErrNotFound.
func (s *Service) EnrichedService(ctx context.Context, id string) (types.EnrichedService, error) {
	svc, ok := s.enricher.Service(ctx, id)
	if !ok {
		return types.EnrichedService{}, fmt.Errorf("service %q: %w", id, repository.ErrNotFound)
	}
	return svc, nil
}

// Events returns all raw events in snapshot order.
func (s *Service) Events(ctx context.Context) []model.Event {
	return s.store.Events(ctx)
}

// Event returns one raw event, or ErrNotFound.
func (s *Service) Event(ctx context.Context, id string) (model.Event, error) {
	ev, ok := s.store.EventByID(ctx, id)
	if !ok {
		return model.Event{}, fmt.Errorf("event %q: %w", id, repository.ErrNotFound)
	}
	return ev, nil
}

// ImpactsForService returns the raw impacts referencing a service.
func (s *Service) ImpactsForService(ctx context.Context, serviceID string) []model.EventImpact {
	return s.store.ImpactsForService(ctx, serviceID)
}

// ImpactsForEvent returns the raw impacts referencing an event.
func (s *Service) ImpactsForEvent(ctx context.Context, eventID string) []model.EventImpact {
	return s.store.ImpactsForEvent(ctx, eventID)
}

// ImpactsForFeature returns the raw impacts for one (service, feature) pair.
func (s *Service) ImpactsForFeature(ctx context.Context, serviceID, featureID string) []model.EventImpact {
	return s.store.ImpactsForFeature(ctx, serviceID, featureID)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
	}

	if s.started {
		stats["events"] = len(s.store.Events(ctx))
		stats["services"] = len(s.store.Services(ctx))
		stats["impacts"] = len(s.store.Impacts(ctx))
		stats["lastUpdated"] = s.store.LastUpdated(ctx)
	}

	return stats
}
