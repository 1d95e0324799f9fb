// Package lines selects the subway lines serving a station and maps them to
// output line descriptors.
package lines

import (
	"github.com/jusunglee/bvg-go/internal/ids"
	"github.com/jusunglee/bvg-go/internal/models"
)

// Product is the classification value of subway lines in the lines-at dataset
const Product = "subway"

// IsSubway reports whether a raw line is a subway line
func IsSubway(l models.RawLine) bool {
	return l.Product == Product
}

// FromRaw maps a raw line to its descriptor
func FromRaw(l models.RawLine) models.Line {
	return models.Line{
		ID:    ids.Derive(l.ID),
		Name:  l.Name,
		Color: ColorFor(l.Name),
	}
}

// SubwayLinesFor returns the subway lines serving a station, in dataset order.
// A station missing from the lines-at dataset has no lines.
func SubwayLinesFor(ds *models.Dataset, stationID string) []models.Line {
	var result []models.Line
	for _, l := range ds.LinesFor(stationID) {
		if !IsSubway(l) {
			continue
		}
		result = append(result, FromRaw(l))
	}
	return result
}
