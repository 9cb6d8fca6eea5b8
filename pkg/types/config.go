// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultOutputSuffix is appended to the input file's stem when no explicit
// output path is given.
const DefaultOutputSuffix = "_时间版结果"

// ExtractionConfig holds settings for one extraction run.
type ExtractionConfig struct {
	// OutputSuffix is appended to the input stem to derive the default
	// output path (default "_时间版结果").
	OutputSuffix string `json:"output_suffix" yaml:"output_suffix"`

	// Trace enables the per-row classification trace on stdout.
	Trace bool `json:"trace" yaml:"trace"`

	// ReportPath, when non-empty, is where the YAML run report is written.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}
