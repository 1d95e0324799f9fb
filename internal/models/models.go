package models

// RawStation is a station record as found in the stations dataset
type RawStation struct {
	ID   string
	Name string
}

// RawLine is a line serving a station as found in the lines-at dataset
type RawLine struct {
	ID      string
	Name    string
	Product string
	Mode    string
}

// Dataset holds both source datasets in memory.
// Stations keeps the order of the source document.
type Dataset struct {
	Stations []RawStation
	LinesAt  map[string][]RawLine
}

// LinesFor returns the raw lines recorded for a station id.
// Unknown ids yield nil.
func (d *Dataset) LinesFor(stationID string) []RawLine {
	if d == nil || d.LinesAt == nil {
		return nil
	}
	return d.LinesAt[stationID]
}

// Color is the badge color pair of a line
type Color struct {
	Background string `json:"background"`
	Font       string `json:"font"`
}

// Line represents a subway line
type Line struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color *Color `json:"color,omitempty"`
}

// Station represents a consolidated subway station
type Station struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Lines []Line `json:"lines"`
}

// HasLine reports whether the station is served by a line with the given name
func (s *Station) HasLine(name string) bool {
	for _, l := range s.Lines {
		if l.Name == name {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares nothing with s
func (s Station) Clone() Station {
	lines := make([]Line, len(s.Lines))
	copy(lines, s.Lines)
	s.Lines = lines
	return s
}
