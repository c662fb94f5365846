package main

import (
	"context"
	"flag"
	"os"

	"github.com/okian/blastradius/internal/snapshotcheck"
)

func main() {
	var (
		inPath  = flag.String("in", "-", `Input snapshot path, "-" for stdin`)
		outPath = flag.String("out", "-", `Output snapshot path, "-" for stdout`)
		strict  = flag.Bool("strict", false, "Exit non-zero when any reference dangles")
		verbose = flag.Bool("verbose", false, "Print each finding, not just the summary")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		snapshotcheck.ShowHelp()
		return
	}

	cfg := snapshotcheck.NewConfig()
	cfg.InputPath = *inPath
	cfg.OutputPath = *outPath
	cfg.Strict = *strict
	cfg.Verbose = *verbose

	if err := snapshotcheck.Run(context.Background(), cfg); err != nil {
		os.Stderr.WriteString("snapshot-check failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
