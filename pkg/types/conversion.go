// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for text-to-word.
package types

// ConversionStatus indicates the outcome of converting one text file.
type ConversionStatus string

const (
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// ConversionRequest names one input file and where its document goes.
// Requests are built per file and consumed immediately.
type ConversionRequest struct {
	// InputPath is the text file to read.
	InputPath string `json:"input" yaml:"input"`

	// OutputPath is the document to write. Empty means the input path with
	// its extension replaced by DocumentExt.
	OutputPath string `json:"output,omitempty" yaml:"output,omitempty"`
}
