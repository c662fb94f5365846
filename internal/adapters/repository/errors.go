package repository

import "errors"

// Sentinel kinds for snapshot errors.
var (
	// ErrMalformedSnapshot marks a snapshot that failed to decode into the
	// expected shape. This is fatal at startup; there is no recovery path.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrNotFound is used at service boundaries to report an accessor miss
	// to callers that need an error value (the HTTP layer maps it to 404).
	// Inside this package misses are plain comma-ok results.
	ErrNotFound = errors.New("record not found")
)
