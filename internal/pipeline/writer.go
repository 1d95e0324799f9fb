package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/jusunglee/bvg-go/internal/store"
)

// Output file names
const (
	StationsFile = "stations.json"
	LinesFile    = "lines.json"
)

// Encode renders v as JSON indented by two spaces
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write stores the registry's stations and lines in outDir. Both files are
// written concurrently and a failure on one never prevents the other; each
// failure is logged and the first one is returned.
func Write(ctx context.Context, outDir string, reg *store.Registry, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		logger.Error("write failed", "file", outDir, "error", err)
		return fmt.Errorf("create %s: %w", outDir, err)
	}

	stations := reg.Stations()
	lines := reg.Lines()

	var g errgroup.Group
	g.Go(func() error {
		return writeFile(ctx, filepath.Join(outDir, StationsFile), stations, len(stations), logger)
	})
	g.Go(func() error {
		return writeFile(ctx, filepath.Join(outDir, LinesFile), lines, len(lines), logger)
	})
	return g.Wait()
}

func writeFile(ctx context.Context, name string, v any, count int, logger *slog.Logger) error {
	if err := write(ctx, name, v); err != nil {
		logger.Error("write failed", "file", name, "error", err)
		return fmt.Errorf("write %s: %w", name, err)
	}

	logger.Info("generated", "file", name, "count", count)
	return nil
}

func write(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Encode(v)
	if err != nil {
		return err
	}
	return os.WriteFile(name, data, 0644)
}
