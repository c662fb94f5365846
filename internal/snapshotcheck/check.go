// Package snapshotcheck implements the offline gate for snapshot edits.
//
// The snapshot file is maintained by hand, append-only; nothing at runtime
// ever validates it beyond decoding. This tool is where eager checks live:
// it reads a snapshot document, reports referential-integrity and
// evidence-URL findings, backfills missing impact ids, and writes the
// normalized document back out. Run it as a Unix filter before committing
// a data edit.
package snapshotcheck

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/okian/blastradius/internal/domain/model"
)

// Generic evidence-URL patterns that tend to rot: status homepages and
// support landing pages stop describing the incident once it scrolls off.
var genericPatterns = []string{
	"status.",
	"/status",
	"/health",
	"support.",
}

// Finding is one referential-integrity problem in an impact record.
type Finding struct {
	ImpactID string
	Field    string
	Value    string
}

// URLFinding is one evidence pointer that needs a better source.
type URLFinding struct {
	Where string
	URL   string
}

// Report summarizes everything Check found and changed.
type Report struct {
	Dangling        []Finding
	ProblematicURLs []URLFinding
	AssignedIDs     int
	UnknownEnums    []Finding
}

// Clean reports whether the snapshot had no dangling references.
func (r Report) Clean() bool {
	return len(r.Dangling) == 0
}

// Check validates data in place: it backfills missing impact ids and
// returns a report of everything else. The data itself is otherwise left
// untouched; fixing a finding is the maintainer's job.
func Check(_ context.Context, data *model.TrackingData) Report {
	var rep Report

	events := make(map[string]struct{}, len(data.Events))
	for _, ev := range data.Events {
		events[ev.ID] = struct{}{}
	}
	features := make(map[string]map[string]struct{}, len(data.Services))
	for _, svc := range data.Services {
		fs := make(map[string]struct{}, len(svc.Features))
		for _, f := range svc.Features {
			fs[f.ID] = struct{}{}
		}
		features[svc.ID] = fs
	}

	for i := range data.EventImpacts {
		imp := &data.EventImpacts[i]

		if imp.ID == "" {
			imp.ID = uuid.NewString()
			rep.AssignedIDs++
		}

		if _, ok := events[imp.EventID]; !ok {
			rep.Dangling = append(rep.Dangling, Finding{ImpactID: imp.ID, Field: "eventId", Value: imp.EventID})
		}
		fs, ok := features[imp.ServiceID]
		if !ok {
			rep.Dangling = append(rep.Dangling, Finding{ImpactID: imp.ID, Field: "serviceId", Value: imp.ServiceID})
		} else if _, ok := fs[imp.FeatureID]; !ok {
			rep.Dangling = append(rep.Dangling, Finding{ImpactID: imp.ID, Field: "featureId", Value: imp.FeatureID})
		}

		if !imp.ImpactType.IsValid() {
			rep.UnknownEnums = append(rep.UnknownEnums, Finding{ImpactID: imp.ID, Field: "impactType", Value: string(imp.ImpactType)})
		}
		if !imp.VerificationStatus.IsValid() {
			rep.UnknownEnums = append(rep.UnknownEnums, Finding{ImpactID: imp.ID, Field: "verificationStatus", Value: string(imp.VerificationStatus)})
		}

		if IsProblematicURL(imp.SourceURL) {
			rep.ProblematicURLs = append(rep.ProblematicURLs, URLFinding{Where: "impact " + imp.ID, URL: imp.SourceURL})
		}
	}

	for _, ev := range data.Events {
		for _, src := range ev.Sources {
			if IsProblematicURL(src.URL) {
				rep.ProblematicURLs = append(rep.ProblematicURLs, URLFinding{Where: "event " + ev.ID, URL: src.URL})
			}
		}
	}

	return rep
}

// IsProblematicURL reports whether an evidence URL is empty or a generic
// landing page. A generic host/path is tolerated when the URL carries a
// query or a more specific trailing path, since those tend to identify the
// incident.
func IsProblematicURL(raw string) bool {
	if raw == "" {
		return true
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return true
	}
	if parsed.RawQuery != "" {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	path := strings.ToLower(strings.TrimRight(parsed.Path, "/"))
	for _, pattern := range genericPatterns {
		if strings.HasPrefix(pattern, "/") {
			if strings.HasSuffix(path, pattern) {
				return true
			}
			continue
		}
		// Host patterns flag only the landing page itself; a deeper path
		// usually names the incident.
		if strings.Contains(host, pattern) && path == "" {
			return true
		}
	}
	return false
}
