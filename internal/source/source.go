// Package source loads the VBB station and lines-at datasets.
//
// Both datasets are JSON objects keyed by station id. A source is either a
// filesystem path or an http(s) URL.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/valyala/fastjson"

	"github.com/jusunglee/bvg-go/internal/models"
)

// Loader reads datasets from files or over HTTP
type Loader struct {
	httpClient *http.Client
}

// NewLoader creates a loader whose HTTP fetches time out after timeout
func NewLoader(timeout time.Duration) *Loader {
	return &Loader{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Load reads both datasets
func (l *Loader) Load(ctx context.Context, stationsSrc, linesSrc string) (*models.Dataset, error) {
	data, err := l.read(ctx, stationsSrc)
	if err != nil {
		return nil, err
	}
	stations, err := ParseStations(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", stationsSrc, err)
	}

	data, err = l.read(ctx, linesSrc)
	if err != nil {
		return nil, err
	}
	linesAt, err := ParseLinesAt(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", linesSrc, err)
	}

	return &models.Dataset{
		Stations: stations,
		LinesAt:  linesAt,
	}, nil
}

func (l *Loader) read(ctx context.Context, src string) ([]byte, error) {
	if isURL(src) {
		data, err := l.fetch(ctx, src)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", src, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src, err)
	}
	return data, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// ParseStations decodes a stations document, keeping the order of its keys.
// Missing or non-string fields decode as empty strings.
func ParseStations(data []byte) ([]models.RawStation, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	o, err := v.Object()
	if err != nil {
		return nil, err
	}

	stations := make([]models.RawStation, 0, o.Len())
	o.Visit(func(_ []byte, v *fastjson.Value) {
		stations = append(stations, models.RawStation{
			ID:   string(v.GetStringBytes("id")),
			Name: string(v.GetStringBytes("name")),
		})
	})
	return stations, nil
}

// ParseLinesAt decodes a lines-at document.
// Entries that are not arrays count as stations without lines.
func ParseLinesAt(data []byte) (map[string][]models.RawLine, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	o, err := v.Object()
	if err != nil {
		return nil, err
	}

	linesAt := make(map[string][]models.RawLine, o.Len())
	o.Visit(func(key []byte, v *fastjson.Value) {
		var lines []models.RawLine
		for _, l := range v.GetArray() {
			lines = append(lines, models.RawLine{
				ID:      string(l.GetStringBytes("id")),
				Name:    string(l.GetStringBytes("name")),
				Product: string(l.GetStringBytes("product")),
				Mode:    string(l.GetStringBytes("mode")),
			})
		}
		linesAt[string(key)] = lines
	})
	return linesAt, nil
}
