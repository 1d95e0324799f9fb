package bvg

import (
	"context"
	"log/slog"
	"time"

	"github.com/jusunglee/bvg-go/internal/feed"
	"github.com/jusunglee/bvg-go/internal/models"
	"github.com/jusunglee/bvg-go/internal/pipeline"
	"github.com/jusunglee/bvg-go/internal/store"
)

// LocalClient implements the Client interface for local usage
// Manages in-memory data store and background source reloads
type LocalClient struct {
	store       *store.Store
	feedManager *feed.Manager
}

// NewLocal creates a new local client
// The first load happens before returning so callers never see an empty store
func NewLocal(ctx context.Context, config Config, logger *slog.Logger) (*LocalClient, error) {
	s := store.NewStore()

	cfg := pipeline.Config{
		StationsSource: config.StationsSource,
		LinesSource:    config.LinesSource,
		FetchTimeout:   config.FetchTimeout,
		Merge:          store.MergeOptions{DedupeLines: config.DedupeLines},
	}
	fm := feed.NewManager(cfg, s, config.UpdateInterval, logger)
	if err := fm.Refresh(ctx); err != nil {
		return nil, err
	}
	fm.Start()

	return &LocalClient{
		store:       s,
		feedManager: fm,
	}, nil
}

// Close gracefully shuts down the local client
// Must be called to stop background goroutines and prevent leaks
func (c *LocalClient) Close() {
	c.feedManager.Stop()
}

func (c *LocalClient) GetStations() ([]models.Station, error) {
	return c.store.GetStations(), nil
}

func (c *LocalClient) GetStationsByIDs(ids []string) ([]models.Station, error) {
	return c.store.GetStationsByIDs(ids)
}

func (c *LocalClient) GetStationsByLine(name string) ([]models.Station, error) {
	return c.store.GetStationsByLine(name)
}

func (c *LocalClient) GetLines() ([]models.Line, error) {
	return c.store.GetLines(), nil
}

func (c *LocalClient) GetLastUpdate() time.Time {
	return c.store.GetLastUpdate()
}
