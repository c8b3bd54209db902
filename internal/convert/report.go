// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/you-radio/pkg/types"
)

// Report is the on-disk record of a conversion run.
type Report struct {
	InputDir  string             `yaml:"input_dir"`
	OutputDir string             `yaml:"output_dir"`
	Files     []types.FileResult `yaml:"files"`
	Summary   ReportSummary      `yaml:"summary"`
}

// ReportSummary stores run statistics and timestamps.
type ReportSummary struct {
	Converted  int       `yaml:"converted"`
	Failed     int       `yaml:"failed"`
	Entries    int       `yaml:"entries"`
	StartedAt  time.Time `yaml:"started_at"`
	FinishedAt time.Time `yaml:"finished_at"`
}

// NewReport builds a Report from a finished run.
func NewReport(cfg types.ConversionConfig, result BatchResult) Report {
	return Report{
		InputDir:  cfg.InputDir,
		OutputDir: cfg.OutputDir,
		Files:     result.Files,
		Summary: ReportSummary{
			Converted:  result.Converted,
			Failed:     result.Failed,
			Entries:    result.Entries(),
			StartedAt:  result.StartedAt,
			FinishedAt: result.FinishedAt,
		},
	}
}

// WriteReport saves a run report to a YAML file.
func WriteReport(path string, r Report) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReport loads a previously written run report.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &r, nil
}
