package bvg

import (
	"time"

	"github.com/jusunglee/bvg-go/internal/models"
)

// Client defines the interface for accessing the consolidated subway data
type Client interface {
	GetStations() ([]models.Station, error)
	GetStationsByIDs(ids []string) ([]models.Station, error)
	GetStationsByLine(name string) ([]models.Station, error)

	GetLines() ([]models.Line, error)

	GetLastUpdate() time.Time
}

// Config holds configuration for the client
// Sources are file paths or http(s) URLs of the VBB datasets
type Config struct {
	StationsSource string
	LinesSource    string
	UpdateInterval time.Duration
	FetchTimeout   time.Duration
	DedupeLines    bool
}

// DefaultConfig returns default configuration
// The VBB datasets change a few times a year; hourly reloads are plenty
func DefaultConfig() Config {
	return Config{
		StationsSource: "data/stations.json",
		LinesSource:    "data/lines-at.json",
		UpdateInterval: time.Hour,
		FetchTimeout:   30 * time.Second,
	}
}
