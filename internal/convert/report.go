// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/body-convert/pkg/types"
)

// Report is the on-disk record of a finished run.
type Report struct {
	RunID       string        `yaml:"run_id"`
	Source      string        `yaml:"source"`
	Sink        string        `yaml:"sink"`
	InputDir    string        `yaml:"input_dir"`
	OutputDir   string        `yaml:"output_dir"`
	Policy      string        `yaml:"on_error"`
	Summary     ReportSummary `yaml:"summary"`
	Batches     []string      `yaml:"batches"`
	CompletedAt time.Time     `yaml:"completed_at"`
}

// ReportSummary stores the record counts of a run.
type ReportSummary struct {
	Files     int `yaml:"files"`
	Records   int `yaml:"records"`
	Converted int `yaml:"converted"`
	Skipped   int `yaml:"skipped"`
}

// NewReport builds a Report for a completed run with a fresh run ID.
func NewReport(opts Options, s Summary) Report {
	r := Report{
		RunID:     uuid.NewString(),
		InputDir:  opts.InputDir,
		OutputDir: opts.OutputDir,
		Policy:    string(opts.Policy),
		Summary: ReportSummary{
			Files:     s.Files,
			Records:   s.Records,
			Converted: s.Converted,
			Skipped:   s.Skipped,
		},
		Batches:     s.Batches,
		CompletedAt: time.Now().UTC(),
	}
	if opts.Source != nil {
		r.Source = opts.Source.Name()
	}
	if opts.Sink != nil {
		r.Sink = opts.Sink.Name()
	}
	if r.Policy == "" {
		r.Policy = string(types.PolicyFail)
	}
	return r
}

// WriteReport saves r as YAML at path, creating the parent directory.
func WriteReport(path string, r Report) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &types.IOError{Op: "creating report directory", Path: dir, Err: err}
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &types.IOError{Op: "writing report", Path: path, Err: err}
	}
	return nil
}

// ReadReport loads a report written by WriteReport.
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
