package snapshotcheck

import "os"

// ShowHelp prints usage information for the snapshot-check tool.
func ShowHelp() {
	os.Stdout.WriteString(`blastradius snapshot-check
==========================

Offline gate for snapshot edits: validates referential integrity, flags
evidence URLs that will rot, backfills missing impact ids, and emits the
normalized document. The serving path never runs these checks; run this
before committing a data change.

Usage:
  go run cmd/snapshot-check/main.go [options]

Options:
  -in string
        Input snapshot path, "-" for stdin (default "-")
  -out string
        Output snapshot path, "-" for stdout (default "-")
  -strict
        Exit non-zero when any reference dangles
  -verbose
        Print each finding, not just the summary
  -help
        Show this help message

Examples:
  # Validate and normalize in a pipeline
  cat data/tracking-data.json | go run cmd/snapshot-check/main.go > data/normalized.json

  # Gate a data edit
  go run cmd/snapshot-check/main.go -in data/tracking-data.json -out /dev/null -strict -verbose
`)
}
