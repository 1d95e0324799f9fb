// Package pipeline folds the VBB datasets into the consolidated subway
// stations and lines and writes them out for the game.
//
// Only U-Bahn (subway) lines are supported, since tram and bus station names
// are not consistent enough to play with.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/jusunglee/bvg-go/internal/lines"
	"github.com/jusunglee/bvg-go/internal/models"
	"github.com/jusunglee/bvg-go/internal/source"
	"github.com/jusunglee/bvg-go/internal/store"
)

// Config holds the inputs and outputs of one run
type Config struct {
	StationsSource string
	LinesSource    string
	OutputDir      string
	FetchTimeout   time.Duration
	Merge          store.MergeOptions
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		StationsSource: "data/stations.json",
		LinesSource:    "data/lines-at.json",
		OutputDir:      "output",
		FetchTimeout:   30 * time.Second,
	}
}

// Build folds every station of ds, in dataset order, into a new registry
func Build(ds *models.Dataset, opts store.MergeOptions) *store.Registry {
	reg := store.NewRegistry(opts)
	if ds == nil {
		return reg
	}
	for _, station := range ds.Stations {
		reg.Merge(station, lines.SubwayLinesFor(ds, station.ID))
	}
	return reg
}

// Load reads both source datasets named by cfg
func Load(ctx context.Context, cfg Config) (*models.Dataset, error) {
	return source.NewLoader(cfg.FetchTimeout).Load(ctx, cfg.StationsSource, cfg.LinesSource)
}

// Run loads the sources, builds the registry and writes both outputs.
// Only a load failure is returned; write failures are logged by Write and
// never stop the run.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	ds, err := Load(ctx, cfg)
	if err != nil {
		return err
	}

	reg := Build(ds, cfg.Merge)
	nStations, nLines := reg.Len()
	logger.Info("merged", "sources", len(ds.Stations), "stations", nStations, "lines", nLines)

	if err := Write(ctx, cfg.OutputDir, reg, logger); err != nil {
		logger.Warn("some outputs were not written", "error", err)
	}
	return nil
}
