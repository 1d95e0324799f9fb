package feed

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jusunglee/bvg-go/internal/pipeline"
	"github.com/jusunglee/bvg-go/internal/store"
)

func testConfig() pipeline.Config {
	cfg := pipeline.DefaultConfig()
	cfg.StationsSource = "../source/testdata/stations.json"
	cfg.LinesSource = "../source/testdata/lines-at.json"
	cfg.FetchTimeout = time.Second
	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRefresh(t *testing.T) {
	s := store.NewStore()
	m := NewManager(testConfig(), s, time.Minute, discardLogger())

	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(s.GetStations()) != 5 {
		t.Errorf("Expected 5 stations, got %d", len(s.GetStations()))
	}
	if len(s.GetLines()) != 6 {
		t.Errorf("Expected 6 lines, got %d", len(s.GetLines()))
	}

	stations, err := s.GetStationsByLine("U8")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(stations) != 2 {
		t.Errorf("Expected 2 stations on U8, got %d", len(stations))
	}
}

func TestRefreshKeepsDataOnError(t *testing.T) {
	s := store.NewStore()
	m := NewManager(testConfig(), s, time.Minute, discardLogger())
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	before := s.GetLastUpdate()

	m.stationsSource = "../source/testdata/nonexistent.json"
	if err := m.Refresh(context.Background()); err == nil {
		t.Error("Expected error but got none")
	}

	if len(s.GetStations()) != 5 {
		t.Errorf("Expected previous stations to be kept, got %d", len(s.GetStations()))
	}
	if !s.GetLastUpdate().Equal(before) {
		t.Error("Expected last update to be unchanged")
	}
}

func TestStartStop(t *testing.T) {
	for _, interval := range []time.Duration{0, 10 * time.Millisecond} {
		t.Run(interval.String(), func(t *testing.T) {
			s := store.NewStore()
			m := NewManager(testConfig(), s, interval, discardLogger())
			m.Start()

			deadline := time.Now().Add(5 * time.Second)
			for s.GetLastUpdate().IsZero() && time.Now().Before(deadline) {
				time.Sleep(5 * time.Millisecond)
			}
			m.Stop()

			if s.GetLastUpdate().IsZero() {
				t.Error("Expected initial refresh to populate the store")
			}
		})
	}
}
