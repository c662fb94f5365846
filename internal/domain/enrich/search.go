package enrich

import (
	"context"
	"strings"
	"time"

	"github.com/okian/blastradius/internal/domain/types"
	"github.com/okian/blastradius/pkg/metrics"
)

// Search filters the enriched services by case-insensitive substring match
// against service name, company, category, and every embedded feature's
// name and description. An empty or all-whitespace query returns the full
// enriched list unchanged.
//
// Plain substring, no tokenizing, no ranking: results keep snapshot order
// and there is no size cap.
func (e *Enricher) Search(ctx context.Context, query string) []types.EnrichedService {
	start := time.Now()
	services := e.Services(ctx)

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return services
	}

	out := []types.EnrichedService{}
	for _, svc := range services {
		if matches(svc, q) {
			out = append(out, svc)
		}
	}

	if e.recordMetrics {
		metrics.RecordSearchQuery()
		metrics.RecordSearchLatency(float64(time.Since(start).Microseconds()) / 1000.0)
	}
	return out
}

// matches expects q to already be lowercased.
func matches(svc types.EnrichedService, q string) bool {
	if strings.Contains(strings.ToLower(svc.Name), q) ||
		strings.Contains(strings.ToLower(svc.Company), q) ||
		strings.Contains(strings.ToLower(svc.Category), q) {
		return true
	}
	for _, f := range svc.Features {
		if strings.Contains(strings.ToLower(f.Name), q) ||
			strings.Contains(strings.ToLower(f.Description), q) {
			return true
		}
	}
	return false
}
