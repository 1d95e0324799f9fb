package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jusunglee/bvg-go/internal/pipeline"
	"github.com/jusunglee/bvg-go/internal/source"
	"github.com/jusunglee/bvg-go/internal/store"
)

// Manager periodically rebuilds the consolidated datasets from the sources
type Manager struct {
	loader         *source.Loader
	stationsSource string
	linesSource    string
	merge          store.MergeOptions
	store          *store.Store
	updateInterval time.Duration
	logger         *slog.Logger
	stopCh         chan struct{}
	wg             sync.WaitGroup
}

// NewManager creates a new feed manager
func NewManager(cfg pipeline.Config, store *store.Store, updateInterval time.Duration, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		loader:         source.NewLoader(cfg.FetchTimeout),
		stationsSource: cfg.StationsSource,
		linesSource:    cfg.LinesSource,
		merge:          cfg.Merge,
		store:          store,
		updateInterval: updateInterval,
		logger:         logger,
		stopCh:         make(chan struct{}),
	}
}

// Start begins the refresh loop
func (m *Manager) Start() {
	m.wg.Add(1)
	go m.updateLoop()
}

// Stop stops the refresh loop
func (m *Manager) Stop() {
	close(m.stopCh)
	m.wg.Wait()
}

func (m *Manager) updateLoop() {
	defer m.wg.Done()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-m.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	// Initial update, unless the caller already loaded the store
	if m.store.GetLastUpdate().IsZero() {
		if err := m.Refresh(ctx); err != nil {
			m.logger.Error("initial refresh failed", "error", err)
		}
	}

	// A non-positive interval loads once
	if m.updateInterval <= 0 {
		<-m.stopCh
		return
	}

	ticker := time.NewTicker(m.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := m.Refresh(ctx); err != nil {
				m.logger.Error("refresh failed", "error", err)
			}
		case <-m.stopCh:
			return
		}
	}
}

// Refresh loads the sources and replaces the store contents.
// On error the store keeps its previous data.
func (m *Manager) Refresh(ctx context.Context) error {
	ds, err := m.loader.Load(ctx, m.stationsSource, m.linesSource)
	if err != nil {
		return err
	}

	reg := pipeline.Build(ds, m.merge)
	stations := reg.Stations()
	lines := reg.Lines()
	m.store.Update(stations, lines)

	m.logger.Info("refreshed", "stations", len(stations), "lines", len(lines))
	return nil
}
