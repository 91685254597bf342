// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/text-to-word/internal/convert"
	"github.com/pdiddy/text-to-word/internal/docx"
	"github.com/pdiddy/text-to-word/pkg/types"
)

// resetFlags restores every subcommand flag to its default. The commands are
// package globals, so flag values would otherwise carry over between runs.
func resetFlags(t *testing.T) {
	t.Helper()
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				require.NoError(t, sv.Replace(nil))
			} else {
				require.NoError(t, f.Value.Set(f.DefValue))
			}
			f.Changed = false
		})
	}
}

// execute runs the root command with args on freshly reset flags and returns
// its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConversionConfig_Defaults(t *testing.T) {
	resetFlags(t)
	cfg := conversionConfig()
	assert.Equal(t, types.FontConfig{Name: types.DefaultFontName, Size: types.DefaultFontSize}, cfg.Font)
	assert.Empty(t, cfg.OutputDir)
	assert.NoError(t, cfg.Validate())
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("Hello\n\nWorld\n"), 0o644))
	outDir := filepath.Join(dir, "out")
	reportPath := filepath.Join(dir, "report.yaml")

	out, err := execute(t, "convert",
		filepath.Join(dir, "a.txt"), filepath.Join(dir, "missing.txt"),
		"--output-dir", outDir, "--font", "Arial", "--font-size", "12", "--report", reportPath)

	require.Error(t, err, "a failed file should make the command fail")
	assert.Contains(t, err.Error(), "1 of 2 file(s) failed")
	assert.Contains(t, out, "Conversion complete: 1 of 2 files converted successfully.")
	assert.Contains(t, out, "Report written to")

	doc, err := docx.Open(filepath.Join(outDir, "a.docx"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", "", "World"}, doc.Paragraphs())
	assert.Equal(t, docx.Font{Name: "Arial", Size: 12}, doc.Font())

	_, err = os.Stat(reportPath)
	assert.NoError(t, err)
}

// writeInputs creates a.txt and b.txt under dir and returns their paths.
func writeInputs(t *testing.T, dir string) (string, string) {
	t.Helper()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("alpha\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("beta\n"), 0o644))
	return a, b
}

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvertCommand_Manifest(t *testing.T) {
	dir := t.TempDir()
	a, b := writeInputs(t, dir)
	x := filepath.Join(dir, "x.docx")
	y := filepath.Join(dir, "y.docx")
	m := writeManifest(t, dir, "inputs: ["+a+", "+b+"]\n"+
		"outputs: ["+x+", "+y+"]\n"+
		"font:\n  name: Arial\n  size: 13\n")

	out, err := execute(t, "convert", "--manifest", m)
	require.NoError(t, err)
	assert.Contains(t, out, "2 of 2 files converted successfully.")

	doc, err := docx.Open(x)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, doc.Paragraphs())
	assert.Equal(t, docx.Font{Name: "Arial", Size: 13}, doc.Font())

	doc, err = docx.Open(y)
	require.NoError(t, err)
	assert.Equal(t, []string{"beta"}, doc.Paragraphs())
}

func TestConvertCommand_FlagsOverrideManifest(t *testing.T) {
	dir := t.TempDir()
	a, _ := writeInputs(t, dir)
	flagDir := filepath.Join(dir, "from-flag")
	m := writeManifest(t, dir, "inputs: ["+a+"]\n"+
		"output_dir: "+filepath.Join(dir, "from-manifest")+"\n"+
		"font:\n  name: Arial\n  size: 13\n")

	_, err := execute(t, "convert", "--manifest", m, "--output-dir", flagDir, "--font", "Georgia")
	require.NoError(t, err)

	doc, err := docx.Open(filepath.Join(flagDir, "a.docx"))
	require.NoError(t, err)
	assert.Equal(t, docx.Font{Name: "Georgia", Size: types.DefaultFontSize}, doc.Font())
	_, statErr := os.Stat(filepath.Join(dir, "from-manifest"))
	assert.True(t, os.IsNotExist(statErr), "manifest output_dir should be ignored")
}

func TestConvertCommand_ManifestWithArgs(t *testing.T) {
	dir := t.TempDir()
	a, _ := writeInputs(t, dir)
	m := writeManifest(t, dir, "inputs: ["+a+"]\n")

	_, err := execute(t, "convert", a, "--manifest", m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")
	_, statErr := os.Stat(filepath.Join(dir, "a.docx"))
	assert.True(t, os.IsNotExist(statErr), "nothing should be converted")
}

func TestConvertCommand_OutputCountMismatch(t *testing.T) {
	dir := t.TempDir()
	a, b := writeInputs(t, dir)

	_, err := execute(t, "convert", a, b, "-o", filepath.Join(dir, "only.docx"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, convert.ErrConfiguration), "err = %v", err)
	_, statErr := os.Stat(filepath.Join(dir, "only.docx"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvertCommand_CommaSeparatedOutputs(t *testing.T) {
	dir := t.TempDir()
	a, b := writeInputs(t, dir)
	x := filepath.Join(dir, "x.docx")
	y := filepath.Join(dir, "y.docx")

	_, err := execute(t, "convert", a, b, "-o", x+","+y)
	require.NoError(t, err)

	doc, err := docx.Open(x)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, doc.Paragraphs())
	doc, err = docx.Open(y)
	require.NoError(t, err)
	assert.Equal(t, []string{"beta"}, doc.Paragraphs())
}

func TestInspectCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")
	doc := docx.New(docx.DefaultFont)
	doc.AddParagraph("first")
	doc.AddParagraph("")
	require.NoError(t, doc.Save(path))

	out, err := execute(t, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Font: Calibri 11pt")
	assert.Contains(t, out, "Paragraphs: 2")
	assert.Contains(t, out, `"first"`)
}

func TestInspectCommand_Count(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")
	doc := docx.New(docx.DefaultFont)
	doc.AddParagraph("one")
	doc.AddParagraph("")
	doc.AddParagraph("three")
	require.NoError(t, doc.Save(path))

	out, err := execute(t, "inspect", "--count", path)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	// A later run without the flag prints the full listing again.
	out, err = execute(t, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Paragraphs: 3")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "text-to-word dev\n", out)
}
