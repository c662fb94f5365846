// Package enrich computes the derived read models served to the viewer:
// per-service exposure aggregates, fully joined impact records, and
// substring search over the enriched services.
//
// Everything here is a pure projection of an immutable snapshot and is
// recomputed on every call. With append-only curated data in the hundreds
// of records that is cheaper than keeping an index honest; should the
// collections ever grow large, build a derived index per snapshot swap
// instead of memoizing here.
package enrich

import (
	"context"
	"time"

	"github.com/okian/blastradius/internal/domain/model"
	"github.com/okian/blastradius/internal/domain/types"
	"github.com/okian/blastradius/pkg/metrics"
)

// Source is the slice of the snapshot store the enricher needs.
type Source interface {
	Services(ctx context.Context) []model.Service
	Impacts(ctx context.Context) []model.EventImpact
	ServiceByID(ctx context.Context, id string) (model.Service, bool)
	EventByID(ctx context.Context, id string) (model.Event, bool)
	FeatureByID(ctx context.Context, serviceID, featureID string) (model.Feature, bool)
	ImpactsForService(ctx context.Context, serviceID string) []model.EventImpact
}

// Enricher derives read models from a snapshot source.
type Enricher struct {
	src Source

	recordMetrics bool
}

// Option applies a configuration option to the Enricher.
type Option func(*Enricher)

// WithoutMetrics disables Prometheus recording, for tests.
func WithoutMetrics() Option {
	return func(e *Enricher) {
		e.recordMetrics = false
	}
}

// New constructs an Enricher over src.
func New(src Source, opts ...Option) *Enricher {
	e := &Enricher{
		src:           src,
		recordMetrics: true,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Services returns one enriched record per service, in snapshot order.
func (e *Enricher) Services(ctx context.Context) []types.EnrichedService {
	services := e.src.Services(ctx)
	out := make([]types.EnrichedService, 0, len(services))
	for _, svc := range services {
		out = append(out, e.enrichService(ctx, svc))
	}
	return out
}

func (e *Enricher) enrichService(ctx context.Context, svc model.Service) types.EnrichedService {
	impacts := e.src.ImpactsForService(ctx, svc.ID)

	// Distinct feature ids with an exposure-counting impact, in first-seen
	// order. Multiple records against the same feature count once.
	seen := make(map[string]struct{})
	impacted := []string{}
	var last *time.Time
	for _, imp := range impacts {
		if imp.ImpactType.Impacted() {
			if _, ok := seen[imp.FeatureID]; !ok {
				seen[imp.FeatureID] = struct{}{}
				impacted = append(impacted, imp.FeatureID)
			}
		}
		// lastImpactDate counts every impact regardless of type.
		if last == nil || imp.CreatedAt.After(*last) {
			t := imp.CreatedAt
			last = &t
		}
	}

	return types.EnrichedService{
		Service:            svc,
		HasUsEast1Exposure: len(impacted) > 0,
		ImpactedFeatureIDs: impacted,
		ImpactedFeatures:   len(impacted),
		TotalFeatures:      len(svc.Features),
		LastImpactDate:     last,
	}
}

// Service returns the enriched record for one service id, or false when
// the id is unknown.
func (e *Enricher) Service(ctx context.Context, id string) (types.EnrichedService, bool) {
	svc, ok := e.src.ServiceByID(ctx, id)
	if !ok {
		return types.EnrichedService{}, false
	}
	return e.enrichService(ctx, svc), true
}

// Impacts returns every impact record with its references resolved, in
// snapshot order. A dangling reference leaves the corresponding field nil;
// that is expected data, not an error.
func (e *Enricher) Impacts(ctx context.Context) []types.EnrichedImpact {
	impacts := e.src.Impacts(ctx)
	out := make([]types.EnrichedImpact, 0, len(impacts))
	for _, imp := range impacts {
		enriched := types.EnrichedImpact{EventImpact: imp}
		if svc, ok := e.src.ServiceByID(ctx, imp.ServiceID); ok {
			enriched.Service = &svc
		} else {
			e.dangling("serviceId")
		}
		if ev, ok := e.src.EventByID(ctx, imp.EventID); ok {
			enriched.Event = &ev
		} else {
			e.dangling("eventId")
		}
		if f, ok := e.src.FeatureByID(ctx, imp.ServiceID, imp.FeatureID); ok {
			enriched.Feature = &f
		} else {
			e.dangling("featureId")
		}
		out = append(out, enriched)
	}
	return out
}

func (e *Enricher) dangling(field string) {
	if e.recordMetrics {
		metrics.RecordDanglingReference(field)
	}
}
