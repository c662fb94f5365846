// Package model contains domain models passed between layers.
package model

import "time"

// ImpactType classifies what an impact record claims happened to a feature.
type ImpactType string

// Impact types.
const (
	ImpactFullOutage ImpactType = "full_outage"
	ImpactDegraded   ImpactType = "degraded"
	ImpactNoImpact   ImpactType = "no_impact"
	ImpactUnknown    ImpactType = "unknown"
)

// IsValid checks if the impact type is one of the known values.
func (t ImpactType) IsValid() bool {
	switch t {
	case ImpactFullOutage, ImpactDegraded, ImpactNoImpact, ImpactUnknown:
		return true
	}
	return false
}

// Impacted reports whether this impact type counts toward a service's
// exposure. no_impact and unknown records are evidence, not exposure;
// unrecognized values are treated the same way so bad data never
// inflates the numbers.
func (t ImpactType) Impacted() bool {
	switch t {
	case ImpactFullOutage, ImpactDegraded:
		return true
	case ImpactNoImpact, ImpactUnknown:
		return false
	}
	return false
}

// VerificationStatus tracks how trustworthy an impact record is.
type VerificationStatus string

// Verification statuses.
const (
	VerificationVerified     VerificationStatus = "verified"
	VerificationUnverified   VerificationStatus = "unverified"
	VerificationUserReported VerificationStatus = "user_reported"
)

// IsValid checks if the verification status is one of the known values.
func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationVerified, VerificationUnverified, VerificationUserReported:
		return true
	}
	return false
}

// Source is one evidence pointer attached to an event.
type Source struct {
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// Event is one outage occurrence.
//
// date is the real-world incident time; createdAt is when the record was
// appended to the snapshot.
type Event struct {
	ID                  string    `json:"id"`
	Date                time.Time `json:"date"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	AWSServicesAffected []string  `json:"awsServicesAffected"`
	Sources             []Source  `json:"sources"`
	CreatedAt           time.Time `json:"createdAt"`
}

// Feature is one capability of a tracked service. Feature ids are unique
// only within the owning service; a feature never exists on its own.
type Feature struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Service is a tracked product or company offering with its embedded
// feature list.
type Service struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	LogoURL   string    `json:"logoUrl"`
	URL       string    `json:"url"`
	Category  string    `json:"category"`
	Features  []Feature `json:"features"`
	CreatedAt time.Time `json:"createdAt"`
}

// EventImpact is evidence linking one event to one service feature.
// FeatureID is only meaningful together with ServiceID. References are not
// validated at load time; a dangling reference resolves to absent on lookup.
type EventImpact struct {
	ID                 string             `json:"id"`
	EventID            string             `json:"eventId"`
	ServiceID          string             `json:"serviceId"`
	FeatureID          string             `json:"featureId"`
	ImpactType         ImpactType         `json:"impactType"`
	Description        string             `json:"description"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	SourceURL          string             `json:"sourceUrl"`
	SourceType         string             `json:"sourceType"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// TrackingData is one atomic snapshot of all three collections. There is
// no partial-load state: the whole document decodes or nothing does.
type TrackingData struct {
	LastUpdated  time.Time     `json:"lastUpdated"`
	Events       []Event       `json:"events"`
	Services     []Service     `json:"services"`
	EventImpacts []EventImpact `json:"eventImpacts"`
}
