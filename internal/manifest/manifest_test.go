// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/text-to-word/internal/convert"
	"github.com/pdiddy/text-to-word/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Manifest
		errMsg  string
	}{
		{
			name: "full manifest",
			content: `inputs:
  - notes/*.txt
  - README.txt
outputs:
  - a.docx
  - b.docx
output_dir: build
font:
  name: Arial
  size: 12.5
`,
			want: Manifest{
				Inputs:    []string{"notes/*.txt", "README.txt"},
				Outputs:   []string{"a.docx", "b.docx"},
				OutputDir: "build",
				Font:      &types.FontConfig{Name: "Arial", Size: 12.5},
			},
		},
		{
			name:    "inputs only",
			content: "inputs: [a.txt]\n",
			want:    Manifest{Inputs: []string{"a.txt"}},
		},
		{
			name:    "no inputs",
			content: "output_dir: build\n",
			errMsg:  "lists no inputs",
		},
		{
			name:    "invalid font",
			content: "inputs: [a.txt]\nfont:\n  name: Arial\n  size: 0\n",
			errMsg:  "invalid font",
		},
		{
			name:    "malformed YAML",
			content: "inputs: [a.txt\n",
			errMsg:  "parsing manifest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "batch.yaml", tt.content)
			got, err := Load(path)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestManifest_BatchOptions(t *testing.T) {
	m := Manifest{Inputs: []string{"a.txt"}, Outputs: []string{"x.docx"}, OutputDir: "out"}
	assert.Equal(t, convert.BatchOptions{OutputDir: "out", Outputs: []string{"x.docx"}}, m.BatchOptions())
}

func TestWriteReport(t *testing.T) {
	report := convert.BatchReport{Results: []convert.Result{
		{
			Request: types.ConversionRequest{InputPath: "a.txt", OutputPath: "a.docx"},
			Status:  types.ConversionDone,
		},
		{
			Request: types.ConversionRequest{InputPath: "b.txt", OutputPath: "b.docx"},
			Status:  types.ConversionFailed,
			Err:     convert.ErrNotFound,
		},
	}}

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, WriteReport(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Report
	require.NoError(t, yaml.Unmarshal(data, &got))

	require.Len(t, got.Files, 2)
	assert.Equal(t, ReportEntry{Input: "a.txt", Output: "a.docx", Status: types.ConversionDone}, got.Files[0])
	assert.Equal(t, types.ConversionFailed, got.Files[1].Status)
	assert.Equal(t, "input file not found", got.Files[1].Error)
	assert.Equal(t, 2, got.Summary.Attempted)
	assert.Equal(t, 1, got.Summary.Succeeded)
	assert.Equal(t, 1, got.Summary.Failed)
	assert.False(t, got.Summary.Timestamp.IsZero())
}
