// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes the optional YAML run report. The report is a
// diagnostic artifact for whoever audits a batch of conversions; the
// output workbook alone carries the data contract.
package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/timeslice/internal/extract"
)

// Outcome labels how a run ended.
type Outcome string

const (
	OutcomeOK        Outcome = "ok"
	OutcomeNoRecords Outcome = "no-records"
	OutcomeFailed    Outcome = "failed"
)

// Report is the YAML document describing one extraction run.
type Report struct {
	Input      string         `yaml:"input"`
	Output     string         `yaml:"output,omitempty"`
	Outcome    Outcome        `yaml:"outcome"`
	Records    int            `yaml:"records"`
	Counts     map[string]int `yaml:"counts,omitempty"`
	Duplicates []string       `yaml:"duplicate_times,omitempty"`
	FinishedAt time.Time      `yaml:"finished_at"`
}

// FromSummary builds a report from a finished run.
func FromSummary(s extract.Summary, outcome Outcome) Report {
	return Report{
		Input:      s.Input,
		Output:     s.Output,
		Outcome:    outcome,
		Records:    s.Records,
		Counts:     s.Counts,
		Duplicates: s.Duplicates,
		FinishedAt: time.Now(),
	}
}

// Write marshals r to path.
func Write(path string, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
