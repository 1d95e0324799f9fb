package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

const (
	stationsFile = "testdata/stations.json"
	linesAtFile  = "testdata/lines-at.json"
)

func TestLoad(t *testing.T) {
	l := NewLoader(5 * time.Second)

	ds, err := l.Load(context.Background(), stationsFile, linesAtFile)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(ds.Stations) != 9 {
		t.Fatalf("Expected 9 stations, got %d", len(ds.Stations))
	}

	// Document order, not key order
	expectedIDs := []string{"900000023201", "900000078201", "900000100003"}
	for i, id := range expectedIDs {
		if ds.Stations[i].ID != id {
			t.Errorf("Station %d: expected id %s, got %s", i, id, ds.Stations[i].ID)
		}
	}
	if ds.Stations[1].Name != "S+U Neukölln (Berlin) [U7]" {
		t.Errorf("Unexpected name %q", ds.Stations[1].Name)
	}

	lines := ds.LinesFor("900000023201")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d", len(lines))
	}
	if lines[0].ID != "u2" || lines[0].Name != "U2" || lines[0].Product != "subway" || lines[0].Mode != "train" {
		t.Errorf("Unexpected first line %+v", lines[0])
	}

	if ds.LinesFor("900000000000") != nil {
		t.Error("Expected non-array entry to have no lines")
	}
}

func TestLoadErrors(t *testing.T) {
	l := NewLoader(time.Second)
	dir := t.TempDir()

	broken := dir + "/broken.json"
	if err := os.WriteFile(broken, []byte(`{"1": `), 0644); err != nil {
		t.Fatal(err)
	}
	notObject := dir + "/array.json"
	if err := os.WriteFile(notObject, []byte(`[1, 2]`), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		stations string
		lines    string
	}{
		{"missing stations file", dir + "/nonexistent.json", linesAtFile},
		{"missing lines file", stationsFile, dir + "/nonexistent.json"},
		{"malformed stations", broken, linesAtFile},
		{"malformed lines", stationsFile, broken},
		{"stations not an object", notObject, linesAtFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := l.Load(context.Background(), tt.stations, tt.lines); err == nil {
				t.Error("Expected error but got none")
			}
		})
	}
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/stations.json":
			http.ServeFile(w, r, stationsFile)
		case "/lines-at.json":
			http.ServeFile(w, r, linesAtFile)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l := NewLoader(5 * time.Second)

	ds, err := l.Load(context.Background(), srv.URL+"/stations.json", srv.URL+"/lines-at.json")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(ds.Stations) != 9 {
		t.Errorf("Expected 9 stations, got %d", len(ds.Stations))
	}

	_, err = l.Load(context.Background(), srv.URL+"/missing.json", srv.URL+"/lines-at.json")
	if err == nil {
		t.Error("Expected error for HTTP 404")
	}
}

func TestParseStationsMissingFields(t *testing.T) {
	stations, err := ParseStations([]byte(`{"a": {"name": 5}, "b": "oops"}`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(stations) != 2 {
		t.Fatalf("Expected 2 stations, got %d", len(stations))
	}
	for _, s := range stations {
		if s.ID != "" || s.Name != "" {
			t.Errorf("Expected empty fields, got %+v", s)
		}
	}
}
