// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the batch conversion of station directory
// documents (json/stations/*.json) into M3U playlists (m3u/stations/*.m3u).
// Each file is converted independently; a failure is reported and recorded
// for that file and the batch moves on.
package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/you-radio/internal/playlist"
	"github.com/pdiddy/you-radio/pkg/types"
)

const (
	jsonExt = ".json"
	m3uExt  = ".m3u"
)

// BatchResult holds the outcome of a conversion run.
type BatchResult struct {
	Converted int
	Failed    int

	// Files lists per-file results in processing order.
	Files []types.FileResult

	StartedAt  time.Time
	FinishedAt time.Time
}

// Total returns the number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Entries returns the number of playlist entries written across all files.
func (r BatchResult) Entries() int {
	n := 0
	for _, f := range r.Files {
		n += f.Entries
	}
	return n
}

// Duration returns the wall time of the run.
func (r BatchResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

func (r *BatchResult) add(fr types.FileResult) {
	r.Files = append(r.Files, fr)
	if fr.Failed() {
		r.Failed++
	} else {
		r.Converted++
	}
}

// OutputName maps an input file name to its playlist file name.
func OutputName(jsonFile string) string {
	return strings.TrimSuffix(jsonFile, jsonExt) + m3uExt
}

// ConvertFile converts cfg.InputDir/name into cfg.OutputDir/<stem>.m3u,
// overwriting any previous playlist. The output directory must exist.
func ConvertFile(cfg types.ConversionConfig, name string) types.FileResult {
	stem := strings.TrimSuffix(name, jsonExt)
	res := types.FileResult{
		Source: name,
		Output: OutputName(name),
		Label:  playlist.FormatName(stem),
	}

	n, err := convertFile(cfg, res)
	if err != nil {
		res.Status = types.FileFailed
		res.Error = err.Error()
		return res
	}
	res.Entries = n
	res.Status = types.FileConverted
	return res
}

func convertFile(cfg types.ConversionConfig, res types.FileResult) (int, error) {
	data, err := os.ReadFile(filepath.Join(cfg.InputDir, res.Source))
	if err != nil {
		return 0, err
	}

	categories, err := playlist.Decode(data)
	if err != nil {
		return 0, err
	}

	p := playlist.Build(categories, res.Label, cfg.LogoBaseURL)
	if err := os.WriteFile(filepath.Join(cfg.OutputDir, res.Output), []byte(p.String()), 0o644); err != nil {
		return 0, err
	}
	return len(p.Entries), nil
}

// ConvertDir converts every *.json entry of cfg.InputDir, printing progress
// and per-file status to w. It returns an error only when the output
// directory cannot be created, the input directory cannot be listed, or
// ctx is cancelled; per-file failures are recorded in the result.
func ConvertDir(ctx context.Context, cfg types.ConversionConfig, w io.Writer) (BatchResult, error) {
	result := BatchResult{StartedAt: time.Now()}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		result.FinishedAt = time.Now()
		return result, fmt.Errorf("creating output directory %s: %w", cfg.OutputDir, err)
	}

	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		result.FinishedAt = time.Now()
		return result, fmt.Errorf("reading input directory %s: %w", cfg.InputDir, err)
	}

	var names []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), jsonExt) {
			names = append(names, entry.Name())
		}
	}

	fmt.Fprintf(w, "Found %d JSON files to convert:\n", len(names))

	for _, name := range names {
		select {
		case <-ctx.Done():
			result.FinishedAt = time.Now()
			return result, ctx.Err()
		default:
		}

		fr := ConvertFile(cfg, name)
		result.add(fr)
		if fr.Failed() {
			fmt.Fprintf(w, "✗ Error converting %s: %s\n", fr.Source, fr.Error)
			continue
		}
		fmt.Fprintf(w, "✓ Converted: %s → %s\n", fr.Source, fr.Output)
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	fmt.Fprintln(w, "\nConversion completed!")

	result.FinishedAt = time.Now()
	return result, nil
}
