// Package repository defines the snapshot store interface and errors.
package repository

// Option applies a configuration option to the SnapshotStore.
type Option func(*SnapshotStore)

// WithoutMetrics disables Prometheus recording for this store instance.
// Used by tests that build many throwaway stores.
func WithoutMetrics() Option {
	return func(s *SnapshotStore) {
		s.recordMetrics = false
	}
}
