// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest reads batch manifests and writes batch reports as YAML.
//
// A manifest saves a batch invocation so it can be rerun without retyping
// specifiers:
//
//	inputs:
//	  - notes/*.txt
//	  - README.txt
//	output_dir: build/docs
//	font:
//	  name: Calibri
//	  size: 11
//
// Relative paths in inputs, outputs, and output_dir are resolved against the
// current working directory of the process, not the directory holding the
// manifest. Run the batch from the directory the paths were written for, or
// use absolute paths.
package manifest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/text-to-word/internal/convert"
	"github.com/pdiddy/text-to-word/pkg/types"
)

// Manifest is the on-disk form of a batch invocation.
type Manifest struct {
	Inputs    []string          `yaml:"inputs"`
	Outputs   []string          `yaml:"outputs,omitempty"`
	OutputDir string            `yaml:"output_dir,omitempty"`
	Font      *types.FontConfig `yaml:"font,omitempty"`
}

// Load reads and validates the manifest at path.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if len(m.Inputs) == 0 {
		return Manifest{}, fmt.Errorf("manifest %s lists no inputs", path)
	}
	if m.Font != nil {
		if err := m.Font.Validate(); err != nil {
			return Manifest{}, fmt.Errorf("manifest %s: invalid font: %w", path, err)
		}
	}
	return m, nil
}

// BatchOptions returns the batch options the manifest describes.
func (m Manifest) BatchOptions() convert.BatchOptions {
	return convert.BatchOptions{OutputDir: m.OutputDir, Outputs: m.Outputs}
}

// Report is the on-disk summary of a finished batch.
type Report struct {
	Files   []ReportEntry `yaml:"files"`
	Summary ReportSummary `yaml:"summary"`
}

// ReportEntry records the outcome for one input file.
type ReportEntry struct {
	Input  string                 `yaml:"input"`
	Output string                 `yaml:"output"`
	Status types.ConversionStatus `yaml:"status"`
	Error  string                 `yaml:"error,omitempty"`
}

// ReportSummary holds batch counts and the time the report was written.
type ReportSummary struct {
	Attempted int       `yaml:"attempted"`
	Succeeded int       `yaml:"succeeded"`
	Failed    int       `yaml:"failed"`
	Timestamp time.Time `yaml:"timestamp"`
}

// NewReport builds the serializable form of report.
func NewReport(report convert.BatchReport) Report {
	r := Report{
		Files: make([]ReportEntry, 0, len(report.Results)),
		Summary: ReportSummary{
			Attempted: report.Attempted(),
			Succeeded: report.Succeeded(),
			Failed:    report.Failed(),
			Timestamp: time.Now().UTC(),
		},
	}
	for _, res := range report.Results {
		e := ReportEntry{
			Input:  res.Request.InputPath,
			Output: res.Request.OutputPath,
			Status: res.Status,
		}
		if res.Err != nil {
			e.Error = res.Err.Error()
		}
		r.Files = append(r.Files, e)
	}
	return r
}

// WriteReport saves report to path as YAML.
func WriteReport(path string, report convert.BatchReport) error {
	data, err := yaml.Marshal(NewReport(report))
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

