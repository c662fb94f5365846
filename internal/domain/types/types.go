// Package types contains common types used across the application
package types

import (
	"time"

	"github.com/okian/blastradius/internal/domain/model"
)

// EnrichedService is a service plus the aggregates derived from its
// impact records. Shapes here mirror the JSON served by the API.
type EnrichedService struct {
	model.Service
	HasUsEast1Exposure bool       `json:"hasUsEast1Exposure"`
	ImpactedFeatureIDs []string   `json:"impactedFeatureIds"`
	ImpactedFeatures   int        `json:"impactedFeatures"`
	TotalFeatures      int        `json:"totalFeatures"`
	LastImpactDate     *time.Time `json:"lastImpactDate,omitempty"`
}

// EnrichedImpact is an impact record with its referenced records resolved.
// Any of the three may be nil when the reference dangles.
type EnrichedImpact struct {
	model.EventImpact
	Service *model.Service `json:"service,omitempty"`
	Event   *model.Event   `json:"event,omitempty"`
	Feature *model.Feature `json:"feature,omitempty"`
}
