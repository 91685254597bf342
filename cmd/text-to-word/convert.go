// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/text-to-word/internal/convert"
	"github.com/pdiddy/text-to-word/internal/manifest"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files or glob patterns...]",
	Short: "Convert text files to Word documents",
	Long: `Convert reads each input text file and writes a .docx document with one
paragraph per line. Inputs may be file paths or glob patterns ("notes/*.txt").

Output paths default to the input path with a .docx extension. Use
--output-dir to collect documents in one directory, or --output to name each
document; --output must list one path per matched input file.

A batch can also be described in a YAML manifest (--manifest). Files that fail
are reported and skipped; the command exits non-zero if any file failed.`,
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	convertCmd.Flags().StringSliceP("output", "o", nil, "output file name(s), one per matched input")
	convertCmd.Flags().StringP("output-dir", "d", "", "output directory for all files")
	convertCmd.Flags().String("font", "", "default font family (default Calibri)")
	convertCmd.Flags().Float64("font-size", 0, "default font size in points (default 11)")
	convertCmd.Flags().String("manifest", "", "YAML batch manifest listing inputs, outputs, output_dir, and font")
	convertCmd.Flags().String("report", "", "write a YAML report of per-file results to this path")

	_ = viper.BindPFlag("output_dir", convertCmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("font.name", convertCmd.Flags().Lookup("font"))
	_ = viper.BindPFlag("font.size", convertCmd.Flags().Lookup("font-size"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	outputs, _ := cmd.Flags().GetStringSlice("output")
	manifestPath, _ := cmd.Flags().GetString("manifest")
	reportPath, _ := cmd.Flags().GetString("report")

	cfg := conversionConfig()
	specs := args
	opts := convert.BatchOptions{OutputDir: cfg.OutputDir, Outputs: outputs}

	if manifestPath != "" {
		if len(args) > 0 {
			return fmt.Errorf("provide input files or --manifest, not both")
		}
		m, err := manifest.Load(manifestPath)
		if err != nil {
			return err
		}
		specs = m.Inputs
		mopts := m.BatchOptions()
		if len(opts.Outputs) == 0 {
			opts.Outputs = mopts.Outputs
		}
		if !cmd.Flags().Changed("output-dir") && mopts.OutputDir != "" {
			opts.OutputDir = mopts.OutputDir
		}
		if m.Font != nil && !cmd.Flags().Changed("font") && !cmd.Flags().Changed("font-size") {
			cfg.Font = *m.Font
		}
	}

	if len(specs) == 0 {
		return fmt.Errorf("provide one or more input files or glob patterns")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report, err := convert.ConvertBatch(convert.NewTextConverter(cfg.Font), specs, opts, out)
	if err != nil {
		return err
	}

	if reportPath != "" {
		if err := manifest.WriteReport(reportPath, report); err != nil {
			return err
		}
		fmt.Fprintf(out, "Report written to %s\n", reportPath)
	}

	if report.HasFailures() {
		return fmt.Errorf("%d of %d file(s) failed conversion", report.Failed(), report.Attempted())
	}
	return nil
}
