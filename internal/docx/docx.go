// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx writes and reads WordprocessingML (.docx) packages made of
// plain paragraphs whose runs inherit one default font. Packages are built
// with godocx from its default template.
//
// The font is fixed when the Document is created and is written into the
// package's own docDefaults, so documents built in the same process never
// affect each other.
package docx

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/wml/ctypes"

	"github.com/pdiddy/text-to-word/pkg/types"
)

// Font is the default run font of a document.
type Font = types.FontConfig

// DefaultFont is Calibri 11 pt.
var DefaultFont = types.DefaultFont()

// ErrInvalidChar reports text holding a character XML 1.0 cannot carry.
var ErrInvalidChar = errors.New("character not allowed in XML")

// Document is an in-memory word-processor document.
type Document struct {
	font       Font
	paragraphs []string
}

// New creates an empty document whose paragraphs use font.
func New(font Font) *Document {
	return &Document{font: font}
}

// Font returns the document's default font.
func (d *Document) Font() Font {
	return d.font
}

// AddParagraph appends a paragraph. An empty string adds an empty paragraph.
func (d *Document) AddParagraph(text string) {
	d.paragraphs = append(d.paragraphs, text)
}

// Paragraphs returns the paragraph texts in document order.
func (d *Document) Paragraphs() []string {
	out := make([]string, len(d.paragraphs))
	copy(out, d.paragraphs)
	return out
}

// Bytes renders the complete package. It fails without rendering anything
// when the font is invalid or a paragraph fails CheckText.
func (d *Document) Bytes() ([]byte, error) {
	if err := d.font.Validate(); err != nil {
		return nil, fmt.Errorf("invalid font: %w", err)
	}
	for i, p := range d.paragraphs {
		if err := CheckText(p); err != nil {
			return nil, fmt.Errorf("paragraph %d: %w", i+1, err)
		}
	}

	rd, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("loading document template: %w", err)
	}
	if rd.DocStyles == nil {
		rd.DocStyles = &ctypes.Styles{}
	}
	setDefaultFont(rd.DocStyles, d.font)

	for _, text := range d.paragraphs {
		p := rd.AddEmptyParagraph()
		if text == "" {
			continue
		}
		ct := p.GetCT()
		ct.Children = append(ct.Children, ctypes.ParagraphChild{
			Run: &ctypes.Run{Children: runContent(text)},
		})
	}

	var buf bytes.Buffer
	if err := rd.Write(&buf); err != nil {
		return nil, fmt.Errorf("rendering package: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the package to path in a single write, replacing any existing
// file.
func (d *Document) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// CheckText returns ErrInvalidChar, naming the first offending character, if
// s holds a rune outside the XML 1.0 Char production. Tab is allowed; it is
// written as a tab element.
func CheckText(s string) error {
	for i, r := range s {
		if !isXMLChar(r) {
			return fmt.Errorf("%w: U+%04X at byte %d", ErrInvalidChar, r, i)
		}
	}
	return nil
}

func isXMLChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

// runContent splits text at tabs into text and tab elements.
func runContent(text string) []ctypes.RunChild {
	var children []ctypes.RunChild
	for i, seg := range strings.Split(text, "\t") {
		if i > 0 {
			children = append(children, ctypes.RunChild{Tab: &ctypes.Empty{}})
		}
		if seg == "" {
			continue
		}
		t := ctypes.TextFromString(seg)
		preserve := ctypes.TextSpacePreserve
		t.Space = &preserve
		children = append(children, ctypes.RunChild{Text: t})
	}
	return children
}

// setDefaultFont replaces the template's theme fonts in docDefaults with f.
func setDefaultFont(styles *ctypes.Styles, f Font) {
	if styles.DocDefaults == nil {
		styles.DocDefaults = &ctypes.DocDefault{}
	}
	if styles.DocDefaults.RunProp == nil {
		styles.DocDefaults.RunProp = &ctypes.RunPropDefault{}
	}
	if styles.DocDefaults.RunProp.RunProp == nil {
		styles.DocDefaults.RunProp.RunProp = &ctypes.RunProperty{}
	}
	rp := styles.DocDefaults.RunProp.RunProp
	rp.Fonts = &ctypes.RunFonts{Ascii: f.Name, HAnsi: f.Name, EastAsia: f.Name, CS: f.Name}
	hp := halfPoints(f.Size)
	rp.Size = ctypes.NewFontSize(hp)
	rp.SizeCs = ctypes.NewFontSizeCS(hp)
}

func halfPoints(size float64) uint64 {
	return uint64(math.Round(size * 2))
}
