// Package site handles the embedded catalog viewer page.
//
// Everything interactive (search box wiring, expand/collapse, logo
// fallback) lives in the page itself; the Go side only serves files and
// the JSON API the page calls.
package site

import (
	"context"
	"net/http"
)

// Register attaches the embedded viewer routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	// Serve the embedded viewer at root /
	files := http.FileServer(FS())
	mux.Handle("/", files)
}
