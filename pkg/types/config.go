// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

const (
	// DefaultFontName is the font family applied to every paragraph.
	DefaultFontName = "Calibri"

	// DefaultFontSize is the font size in points.
	DefaultFontSize = 11.0

	// DocumentExt is the extension given to generated documents.
	DocumentExt = ".docx"
)

// FontConfig selects the default run font written into each document.
type FontConfig struct {
	// Name is the font family (e.g. "Calibri").
	Name string `json:"name" yaml:"name"`

	// Size is the font size in points. Word stores sizes in half-points,
	// so fractional values are rounded to the nearest half point.
	Size float64 `json:"size" yaml:"size"`
}

// DefaultFont returns the font used when no configuration overrides it.
func DefaultFont() FontConfig {
	return FontConfig{Name: DefaultFontName, Size: DefaultFontSize}
}

// Validate reports whether the font can be written to a document.
func (f FontConfig) Validate() error {
	if f.Name == "" {
		return errors.New("font name is empty")
	}
	if f.Size <= 0 {
		return fmt.Errorf("font size %g must be positive", f.Size)
	}
	return nil
}

// ConversionConfig holds settings for a conversion run.
type ConversionConfig struct {
	// Font is the default font for generated documents.
	Font FontConfig `json:"font" yaml:"font"`

	// OutputDir, when set, receives every generated document that has no
	// explicit output path.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
}

// Validate checks the config before any file is touched.
func (c ConversionConfig) Validate() error {
	if err := c.Font.Validate(); err != nil {
		return fmt.Errorf("invalid font: %w", err)
	}
	return nil
}
