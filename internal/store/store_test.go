package store

import (
	"testing"
	"time"

	"github.com/jusunglee/bvg-go/internal/models"
)

func TestStore(t *testing.T) {
	s := NewStore()

	// Test data
	stations := []models.Station{
		{
			ID:    "1",
			Name:  "Neukölln",
			Lines: []models.Line{{ID: "u7", Name: "U7"}},
		},
		{
			ID:    "2",
			Name:  "Alexanderplatz",
			Lines: []models.Line{{ID: "u2", Name: "U2"}, {ID: "u5", Name: "U5"}, {ID: "u8", Name: "U8"}},
		},
		{
			ID:    "3",
			Name:  "Hermannplatz",
			Lines: []models.Line{{ID: "u7", Name: "U7"}, {ID: "u8", Name: "U8"}, {ID: "u8", Name: "U8"}},
		},
	}
	lines := []models.Line{
		{ID: "u7", Name: "U7"},
		{ID: "u2", Name: "U2"},
		{ID: "u5", Name: "U5"},
		{ID: "u8", Name: "U8"},
	}

	s.Update(stations, lines)

	t.Run("GetStations", func(t *testing.T) {
		results := s.GetStations()
		if len(results) != 3 {
			t.Fatalf("Expected 3 stations, got %d", len(results))
		}
		if results[0].Name != "Neukölln" {
			t.Errorf("Expected output order to be kept, got %s first", results[0].Name)
		}
	})

	t.Run("GetStationsByLine", func(t *testing.T) {
		results, err := s.GetStationsByLine("u8")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("Expected 2 stations on line U8, got %d", len(results))
		}
		if results[0].Name != "Alexanderplatz" || results[1].Name != "Hermannplatz" {
			t.Errorf("Expected stations sorted by name, got %s, %s", results[0].Name, results[1].Name)
		}

		// Test non-existent line
		_, err = s.GetStationsByLine("U12")
		if err == nil {
			t.Error("Expected error for non-existent line")
		}
	})

	t.Run("GetStationsByIDs", func(t *testing.T) {
		results, err := s.GetStationsByIDs([]string{"1", "3"})
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if len(results) != 2 {
			t.Errorf("Expected 2 stations, got %d", len(results))
		}

		// Test non-existent IDs
		_, err = s.GetStationsByIDs([]string{"999"})
		if err == nil {
			t.Error("Expected error for non-existent IDs")
		}
	})

	t.Run("GetLines", func(t *testing.T) {
		results := s.GetLines()
		if len(results) != 4 {
			t.Errorf("Expected 4 lines, got %d", len(results))
		}
		results[0].Name = "changed"
		if s.GetLines()[0].Name != "U7" {
			t.Error("GetLines should return a copy")
		}
	})

	t.Run("GetLastUpdate", func(t *testing.T) {
		lastUpdate := s.GetLastUpdate()
		if time.Since(lastUpdate) > time.Minute {
			t.Error("Last update time is too old")
		}
	})
}

func TestStoreEmpty(t *testing.T) {
	s := NewStore()

	if len(s.GetStations()) != 0 {
		t.Error("Expected no stations")
	}
	if !s.GetLastUpdate().IsZero() {
		t.Error("Expected zero last update")
	}
	if _, err := s.GetStationsByLine("U1"); err == nil {
		t.Error("Expected error for empty store")
	}
}
