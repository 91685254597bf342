// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/text-to-word/pkg/types"
)

// BatchOptions controls where batch outputs are written.
type BatchOptions struct {
	// OutputDir receives every output without an explicit path. It is created,
	// with parents, before the first conversion.
	OutputDir string

	// Outputs, when non-empty, gives an explicit output path for each expanded
	// input file by position. Its length must equal the expanded file count.
	Outputs []string
}

// BatchReport holds the per-file results of a batch in input order.
type BatchReport struct {
	Results []Result
}

// Attempted returns the number of files the batch tried to convert.
func (r BatchReport) Attempted() int {
	return len(r.Results)
}

// Succeeded returns the number of documents written.
func (r BatchReport) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of files that could not be converted.
func (r BatchReport) Failed() int {
	return r.Attempted() - r.Succeeded()
}

// HasFailures reports whether any file failed conversion.
func (r BatchReport) HasFailures() bool {
	return r.Failed() > 0
}

// Outputs returns the paths of the documents written, in input order.
func (r BatchReport) Outputs() []string {
	var out []string
	for _, res := range r.Results {
		if res.OK() {
			out = append(out, res.Request.OutputPath)
		}
	}
	return out
}

// Expand resolves each specifier to file paths, in specifier order. A
// specifier without glob metacharacters is returned as is, whether or not it
// exists, so the converter can report it missing. A pattern matching nothing
// prints a warning to w and contributes no paths. Matches of one pattern come
// back in lexical order.
func Expand(specs []string, w io.Writer) []string {
	var paths []string
	for _, spec := range specs {
		if !hasMeta(spec) {
			paths = append(paths, spec)
			continue
		}
		matches, err := filepath.Glob(spec)
		if err != nil {
			fmt.Fprintf(w, "warning: bad pattern %q: %v\n", spec, err)
			continue
		}
		if len(matches) == 0 {
			fmt.Fprintf(w, "warning: no files match pattern %q\n", spec)
			continue
		}
		paths = append(paths, matches...)
	}
	return paths
}

func hasMeta(spec string) bool {
	return strings.ContainsAny(spec, `*?[`)
}

// ResolveRequests pairs each input with its output path. Precedence: the
// explicit output at the same index, then OutputDir/<base>.docx, then the
// input path with its extension replaced. A non-empty Outputs whose length
// differs from len(inputs) is an ErrConfiguration.
func ResolveRequests(inputs []string, opts BatchOptions) ([]types.ConversionRequest, error) {
	if len(opts.Outputs) > 0 && len(opts.Outputs) != len(inputs) {
		return nil, fmt.Errorf("%w: %d output path(s) given for %d input file(s)",
			ErrConfiguration, len(opts.Outputs), len(inputs))
	}

	reqs := make([]types.ConversionRequest, len(inputs))
	for i, in := range inputs {
		reqs[i] = types.ConversionRequest{
			InputPath:  in,
			OutputPath: outputPath(in, i, opts),
		}
	}
	return reqs, nil
}

func outputPath(input string, i int, opts BatchOptions) string {
	if i < len(opts.Outputs) {
		return opts.Outputs[i]
	}
	if opts.OutputDir != "" {
		return filepath.Join(opts.OutputDir, Stem(input)+types.DocumentExt)
	}
	return DefaultOutputPath(input)
}

// ConvertBatch expands specs, resolves output paths, and converts every file
// in order, printing per-file status and a summary to w. Failures of single
// files are recorded in the report and do not stop the batch. An error is
// returned only when the batch stops before any conversion starts: an output
// count mismatch (ErrConfiguration) or an output directory that cannot be
// created (ErrConversion).
func ConvertBatch(c Converter, specs []string, opts BatchOptions, w io.Writer) (BatchReport, error) {
	inputs := Expand(specs, w)
	if len(inputs) == 0 {
		fmt.Fprintln(w, "No valid input files found.")
		return BatchReport{}, nil
	}

	reqs, err := ResolveRequests(inputs, opts)
	if err != nil {
		return BatchReport{}, err
	}

	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
			return BatchReport{}, fmt.Errorf("%w: creating output directory %s: %w",
				ErrConversion, opts.OutputDir, err)
		}
	}

	return ConvertAll(c, reqs, w), nil
}

// ConvertAll converts reqs one after another and prints the summary line.
func ConvertAll(c Converter, reqs []types.ConversionRequest, w io.Writer) BatchReport {
	report := BatchReport{Results: make([]Result, 0, len(reqs))}
	for _, req := range reqs {
		report.Results = append(report.Results, c.Convert(req, w))
	}
	fmt.Fprintf(w, "\nConversion complete: %d of %d files converted successfully.\n",
		report.Succeeded(), report.Attempted())
	return report
}
