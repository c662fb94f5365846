package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/okian/blastradius/internal/domain/model"
	"github.com/okian/blastradius/pkg/metrics"
)

// Decode reads one TrackingData document from r. Any syntax or shape error
// (including an unparseable timestamp) wraps ErrMalformedSnapshot: there is
// no partial-load state, the whole document decodes or nothing does.
//
// Unknown enum VALUES in well-typed string fields are not rejected here;
// they are data-quality findings for the snapshot-check tool, and the
// exposure computation treats them as non-impacting.
func Decode(_ context.Context, r io.Reader) (model.TrackingData, error) {
	var data model.TrackingData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return model.TrackingData{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	return data, nil
}

// Load builds a SnapshotStore from the JSON document at path. An empty path
// falls back to the snapshot bundled into the binary.
func Load(ctx context.Context, path string, opts ...Option) (*SnapshotStore, error) {
	start := time.Now()

	var r io.Reader
	if path == "" {
		r = defaultSnapshotReader()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open snapshot: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := Decode(ctx, r)
	if err != nil {
		return nil, err
	}

	store := NewSnapshotStore(ctx, data, opts...)
	metrics.RecordSnapshotLoadDuration(float64(time.Since(start).Milliseconds()))
	return store, nil
}
