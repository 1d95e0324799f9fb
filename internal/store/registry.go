package store

import (
	"github.com/jusunglee/bvg-go/internal/ids"
	"github.com/jusunglee/bvg-go/internal/models"
	"github.com/jusunglee/bvg-go/internal/normalize"
)

// MergeOptions tunes how station line lists are combined
type MergeOptions struct {
	// DedupeLines drops a line from a merged station when an entry with the
	// same id is already listed. Off by default: repeated lines accumulate.
	DedupeLines bool
}

// Registry accumulates stations by canonical name and lines by id while a
// dataset is folded. It keeps first-insertion order and is not safe for
// concurrent use.
type Registry struct {
	opts MergeOptions

	stations     map[string]*models.Station
	stationOrder []string

	lines     map[string]models.Line
	lineOrder []string
}

// NewRegistry creates an empty registry
func NewRegistry(opts MergeOptions) *Registry {
	return &Registry{
		opts:     opts,
		stations: make(map[string]*models.Station),
		lines:    make(map[string]models.Line),
	}
}

// Merge folds one raw station and its subway lines into the registry.
// Stations without subway lines or whose name normalizes to nothing are dropped.
func (r *Registry) Merge(raw models.RawStation, subway []models.Line) {
	if len(subway) == 0 {
		return
	}

	name := normalize.Name(raw.Name)
	if name != "" {
		r.mergeStation(name, subway)
	}
	r.mergeLines(subway)
}

func (r *Registry) mergeStation(name string, subway []models.Line) {
	existing, ok := r.stations[name]
	if !ok {
		lines := make([]models.Line, len(subway))
		copy(lines, subway)
		r.stations[name] = &models.Station{
			ID:    ids.Derive(name),
			Name:  name,
			Lines: lines,
		}
		r.stationOrder = append(r.stationOrder, name)
		return
	}

	merged := make([]models.Line, 0, len(subway)+len(existing.Lines))
	merged = append(merged, subway...)
	merged = append(merged, existing.Lines...)
	if r.opts.DedupeLines {
		merged = dedupeLines(merged)
	}
	existing.Lines = merged
}

// mergeLines keeps the first descriptor seen for each line id
func (r *Registry) mergeLines(subway []models.Line) {
	for _, line := range subway {
		if _, ok := r.lines[line.ID]; ok {
			continue
		}
		r.lines[line.ID] = line
		r.lineOrder = append(r.lineOrder, line.ID)
	}
}

func dedupeLines(lines []models.Line) []models.Line {
	seen := make(map[string]bool, len(lines))
	result := lines[:0]
	for _, l := range lines {
		if seen[l.ID] {
			continue
		}
		seen[l.ID] = true
		result = append(result, l)
	}
	return result
}

// Station returns the merged station for a canonical name
func (r *Registry) Station(name string) (models.Station, bool) {
	s, ok := r.stations[name]
	if !ok {
		return models.Station{}, false
	}
	return s.Clone(), true
}

// Stations returns all merged stations in first-insertion order
func (r *Registry) Stations() []models.Station {
	result := make([]models.Station, 0, len(r.stationOrder))
	for _, name := range r.stationOrder {
		result = append(result, r.stations[name].Clone())
	}
	return result
}

// Lines returns all lines in first-insertion order
func (r *Registry) Lines() []models.Line {
	result := make([]models.Line, 0, len(r.lineOrder))
	for _, id := range r.lineOrder {
		result = append(result, r.lines[id])
	}
	return result
}

// Len returns the number of stations and lines collected so far
func (r *Registry) Len() (stations, lines int) {
	return len(r.stationOrder), len(r.lineOrder)
}
