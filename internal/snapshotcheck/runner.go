package snapshotcheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/okian/blastradius/internal/adapters/repository"
)

// ErrDanglingReferences is returned by Run in strict mode when the
// snapshot has unresolved references.
var ErrDanglingReferences = errors.New("snapshot has dangling references")

// Run reads a snapshot, checks it, and writes the normalized document.
// Diagnostics go to cfg.Diag; the document goes to cfg.OutputPath.
func Run(ctx context.Context, cfg *Config) error {
	diag := cfg.Diag
	if diag == nil {
		diag = os.Stderr
	}

	in, closeIn, err := openInput(cfg.InputPath)
	if err != nil {
		return err
	}
	defer closeIn()

	data, err := repository.Decode(ctx, in)
	if err != nil {
		return err
	}

	rep := Check(ctx, &data)

	fmt.Fprintf(diag, "snapshot-check: %d events, %d services, %d impacts\n",
		len(data.Events), len(data.Services), len(data.EventImpacts))
	fmt.Fprintf(diag, "snapshot-check: %d dangling refs, %d unknown enum values, %d problematic urls, %d ids assigned\n",
		len(rep.Dangling), len(rep.UnknownEnums), len(rep.ProblematicURLs), rep.AssignedIDs)

	if cfg.Verbose {
		for _, f := range rep.Dangling {
			fmt.Fprintf(diag, "  dangling %s=%q on impact %s\n", f.Field, f.Value, f.ImpactID)
		}
		for _, f := range rep.UnknownEnums {
			fmt.Fprintf(diag, "  unknown %s=%q on impact %s\n", f.Field, f.Value, f.ImpactID)
		}
		for _, u := range rep.ProblematicURLs {
			fmt.Fprintf(diag, "  problematic url %q (%s)\n", u.URL, u.Where)
		}
	}

	if cfg.Strict && !rep.Clean() {
		return fmt.Errorf("%w: %d findings", ErrDanglingReferences, len(rep.Dangling))
	}

	out, closeOut, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
