package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jusunglee/bvg-go/internal/models"
)

// Store manages the consolidated station and line data served to clients
type Store struct {
	mu             sync.RWMutex
	stations       []models.Station
	stationsByID   map[string]int
	stationsByLine map[string][]int
	lines          []models.Line
	lastUpdate     time.Time
}

// NewStore creates a new store instance
func NewStore() *Store {
	return &Store{
		stationsByID:   make(map[string]int),
		stationsByLine: make(map[string][]int),
	}
}

// Update replaces the station and line data
func (s *Store) Update(stations []models.Station, lines []models.Line) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stations = stations
	s.lines = lines
	s.lastUpdate = time.Now()

	// Rebuild indices
	s.stationsByID = make(map[string]int, len(stations))
	s.stationsByLine = make(map[string][]int)

	for i, station := range stations {
		s.stationsByID[station.ID] = i
		seen := make(map[string]bool)
		for _, line := range station.Lines {
			key := strings.ToUpper(line.Name)
			if seen[key] {
				continue
			}
			seen[key] = true
			s.stationsByLine[key] = append(s.stationsByLine[key], i)
		}
	}

	// Sort stations by name for each line
	for key := range s.stationsByLine {
		idx := s.stationsByLine[key]
		sort.Slice(idx, func(i, j int) bool {
			return stations[idx[i]].Name < stations[idx[j]].Name
		})
	}
}

// GetStations returns all stations in output order
func (s *Store) GetStations() []models.Station {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Station, len(s.stations))
	for i, station := range s.stations {
		result[i] = station.Clone()
	}
	return result
}

// GetStationsByLine returns all stations served by a line, sorted by name
func (s *Store) GetStationsByLine(name string) ([]models.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name = strings.ToUpper(name)
	idx, ok := s.stationsByLine[name]
	if !ok {
		return nil, fmt.Errorf("line %s not found", name)
	}

	result := make([]models.Station, len(idx))
	for i, n := range idx {
		result[i] = s.stations[n].Clone()
	}

	return result, nil
}

// GetStationsByIDs returns stations by their IDs
func (s *Store) GetStationsByIDs(ids []string) ([]models.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Station, 0, len(ids))
	for _, id := range ids {
		if n, ok := s.stationsByID[id]; ok {
			result = append(result, s.stations[n].Clone())
		}
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("no stations found for given IDs")
	}

	return result, nil
}

// GetLines returns all lines in output order
func (s *Store) GetLines() []models.Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Line, len(s.lines))
	copy(result, s.lines)
	return result
}

// GetLastUpdate returns the last update time
func (s *Store) GetLastUpdate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdate
}
