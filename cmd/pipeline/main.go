package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/jusunglee/bvg-go/internal/pipeline"
	"github.com/jusunglee/bvg-go/internal/store"
)

func main() {
	defaults := pipeline.DefaultConfig()
	var (
		stations    = flag.String("stations", defaults.StationsSource, "Stations dataset (path or URL)")
		lines       = flag.String("lines", defaults.LinesSource, "Lines-at dataset (path or URL)")
		outDir      = flag.String("out", defaults.OutputDir, "Output directory")
		dedupeLines = flag.Bool("dedupe-lines", false, "Drop repeated lines when merging stations")
		timeout     = flag.Duration("timeout", defaults.FetchTimeout, "Timeout for fetching URL sources")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// Fallback to environment variables if sources not provided via flags
	if v := os.Getenv("BVG_STATIONS_SOURCE"); v != "" && !isFlagSet("stations") {
		*stations = v
	}
	if v := os.Getenv("BVG_LINES_SOURCE"); v != "" && !isFlagSet("lines") {
		*lines = v
	}

	cfg := pipeline.Config{
		StationsSource: *stations,
		LinesSource:    *lines,
		OutputDir:      *outDir,
		FetchTimeout:   *timeout,
		Merge:          store.MergeOptions{DedupeLines: *dedupeLines},
	}

	start := time.Now()
	if err := pipeline.Run(context.Background(), cfg, logger); err != nil {
		slog.Error("Failed to load sources", "error", err)
		os.Exit(1)
	}
	slog.Info("done", "elapsed", time.Since(start))
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
