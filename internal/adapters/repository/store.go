// Package repository defines the snapshot store interface and errors.
package repository

import (
	"context"
	"time"

	"github.com/okian/blastradius/internal/domain/model"
)

// Store provides read access to one immutable tracking snapshot.
//
// Every method is a pure function of the snapshot and its arguments.
// Nothing mutates after construction, so a single Store may be shared by
// any number of concurrent callers without synchronization.
type Store interface {
	// LastUpdated returns the snapshot's maintenance timestamp.
	LastUpdated(ctx context.Context) time.Time

	// Events, Services and Impacts return the full collections in
	// snapshot order.
	Events(ctx context.Context) []model.Event
	Services(ctx context.Context) []model.Service
	Impacts(ctx context.Context) []model.EventImpact

	// ServiceByID returns the first service with the given id.
	// The second return is false when no service matches; a miss is a
	// normal outcome, never an error.
	ServiceByID(ctx context.Context, id string) (model.Service, bool)

	// EventByID is the same contract over events.
	EventByID(ctx context.Context, id string) (model.Event, bool)

	// FeatureByID resolves the service first, then scans its embedded
	// features. Feature ids are only unique per service, so both keys
	// are required. Absence of the service propagates.
	FeatureByID(ctx context.Context, serviceID, featureID string) (model.Feature, bool)

	// ImpactsForService returns all impacts referencing serviceID, in
	// snapshot order. Empty slice when nothing matches, never an error.
	ImpactsForService(ctx context.Context, serviceID string) []model.EventImpact

	// ImpactsForEvent is the analogous filter on eventId.
	ImpactsForEvent(ctx context.Context, eventID string) []model.EventImpact

	// ImpactsForFeature filters on serviceID AND featureID together.
	ImpactsForFeature(ctx context.Context, serviceID, featureID string) []model.EventImpact
}
