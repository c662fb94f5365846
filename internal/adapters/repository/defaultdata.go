package repository

import (
	"bytes"
	_ "embed"
	"io"
)

// The repo ships one curated snapshot so the binary serves real data with
// zero configuration. Maintainers edit data/tracking-data.json out of band
// (append-only) and rebuild; runtime never writes it.
//
//go:embed data/tracking-data.json
var defaultSnapshot []byte

func defaultSnapshotReader() io.Reader {
	return bytes.NewReader(defaultSnapshot)
}
