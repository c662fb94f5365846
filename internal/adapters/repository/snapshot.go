package repository

import (
	"context"
	"time"

	"github.com/okian/blastradius/internal/domain/model"
	"github.com/okian/blastradius/pkg/metrics"
)

// Snapshot-backed, in-memory Store implementation.
//
// All lookups are linear scans recomputed per call. The collections are
// append-only curated data measured in hundreds of records, so no index is
// built or maintained; if that ever changes the index must be rebuilt with
// the snapshot as a whole, never incrementally, because a snapshot is
// replaced wholesale and never edited in place.

// SnapshotStore holds one decoded TrackingData snapshot.
type SnapshotStore struct {
	data model.TrackingData

	recordMetrics bool
}

var _ Store = (*SnapshotStore)(nil)

// NewSnapshotStore wraps an already-decoded snapshot. The caller hands over
// ownership of data; it must not be mutated afterwards.
func NewSnapshotStore(ctx context.Context, data model.TrackingData, opts ...Option) *SnapshotStore {
	s := &SnapshotStore{
		data:          data,
		recordMetrics: true,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.recordMetrics {
		metrics.UpdateSnapshotEvents(len(data.Events))
		metrics.UpdateSnapshotServices(len(data.Services))
		metrics.UpdateSnapshotImpacts(len(data.EventImpacts))
		metrics.UpdateSnapshotLastUpdated(data.LastUpdated)
	}
	return s
}

// LastUpdated returns the snapshot's maintenance timestamp.
func (s *SnapshotStore) LastUpdated(_ context.Context) time.Time {
	return s.data.LastUpdated
}

// Events returns all events in snapshot order.
func (s *SnapshotStore) Events(_ context.Context) []model.Event {
	out := make([]model.Event, len(s.data.Events))
	copy(out, s.data.Events)
	return out
}

// Services returns all services in snapshot order.
func (s *SnapshotStore) Services(_ context.Context) []model.Service {
	out := make([]model.Service, len(s.data.Services))
	copy(out, s.data.Services)
	return out
}

// Impacts returns all impact records in snapshot order.
func (s *SnapshotStore) Impacts(_ context.Context) []model.EventImpact {
	out := make([]model.EventImpact, len(s.data.EventImpacts))
	copy(out, s.data.EventImpacts)
	return out
}

// ServiceByID returns the first service with the given id, or false.
func (s *SnapshotStore) ServiceByID(_ context.Context, id string) (model.Service, bool) {
	for _, svc := range s.data.Services {
		if svc.ID == id {
			return svc, true
		}
	}
	s.miss("service")
	return model.Service{}, false
}

// EventByID returns the first event with the given id, or false.
func (s *SnapshotStore) EventByID(_ context.Context, id string) (model.Event, bool) {
	for _, ev := range s.data.Events {
		if ev.ID == id {
			return ev, true
		}
	}
	s.miss("event")
	return model.Event{}, false
}

// FeatureByID resolves the owning service first; its absence propagates.
func (s *SnapshotStore) FeatureByID(ctx context.Context, serviceID, featureID string) (model.Feature, bool) {
	svc, ok := s.ServiceByID(ctx, serviceID)
	if !ok {
		return model.Feature{}, false
	}
	for _, f := range svc.Features {
		if f.ID == featureID {
			return f, true
		}
	}
	s.miss("feature")
	return model.Feature{}, false
}

// ImpactsForService returns all impacts referencing serviceID.
func (s *SnapshotStore) ImpactsForService(_ context.Context, serviceID string) []model.EventImpact {
	out := []model.EventImpact{}
	for _, imp := range s.data.EventImpacts {
		if imp.ServiceID == serviceID {
			out = append(out, imp)
		}
	}
	return out
}

// ImpactsForEvent returns all impacts referencing eventID.
func (s *SnapshotStore) ImpactsForEvent(_ context.Context, eventID string) []model.EventImpact {
	out := []model.EventImpact{}
	for _, imp := range s.data.EventImpacts {
		if imp.EventID == eventID {
			out = append(out, imp)
		}
	}
	return out
}

// ImpactsForFeature returns impacts matching both serviceID and featureID.
// An impact for the same feature id under another service never matches.
func (s *SnapshotStore) ImpactsForFeature(_ context.Context, serviceID, featureID string) []model.EventImpact {
	out := []model.EventImpact{}
	for _, imp := range s.data.EventImpacts {
		if imp.ServiceID == serviceID && imp.FeatureID == featureID {
			out = append(out, imp)
		}
	}
	return out
}

func (s *SnapshotStore) miss(kind string) {
	if s.recordMetrics {
		metrics.RecordLookupMiss(kind)
	}
}
