package snapshotcheck

import (
	"io"
	"os"
)

// Config controls one snapshot-check run.
type Config struct {
	// InputPath and OutputPath name the snapshot files; "-" or empty means
	// stdin/stdout (the tool is usable as a plain Unix filter).
	InputPath  string
	OutputPath string

	// Strict makes any dangling reference fail the run.
	Strict bool

	// Verbose prints each finding instead of just the summary.
	Verbose bool

	// Diag receives diagnostics; defaults to stderr so the normalized
	// document on stdout stays clean.
	Diag io.Writer
}

// NewConfig creates a Config with defaults.
func NewConfig() *Config {
	return &Config{
		InputPath:  "-",
		OutputPath: "-",
		Diag:       os.Stderr,
	}
}
