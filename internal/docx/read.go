// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/wml/ctypes"
)

// Open reads the paragraphs and default font of the .docx package at path.
// Only paragraph text is recovered: runs are concatenated, tab elements
// become '\t' and breaks become '\n'. A package whose styles carry no
// explicit default font reports a zero Font.
func Open(path string) (*Document, error) {
	rd, err := godocx.OpenDocument(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if rd.Document == nil || rd.Document.Body == nil {
		return nil, fmt.Errorf("opening %s: package has no document body", path)
	}

	doc := &Document{font: defaultFont(rd.DocStyles)}
	for _, child := range rd.Document.Body.Children {
		if child.Para == nil {
			continue
		}
		doc.paragraphs = append(doc.paragraphs, paragraphText(child.Para.GetCT()))
	}
	return doc, nil
}

func paragraphText(p *ctypes.Paragraph) string {
	var b strings.Builder
	for _, child := range p.Children {
		if child.Run == nil {
			continue
		}
		for _, rc := range child.Run.Children {
			switch {
			case rc.Text != nil:
				b.WriteString(rc.Text.Text)
			case rc.Tab != nil:
				b.WriteByte('\t')
			case rc.Break != nil:
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

func defaultFont(styles *ctypes.Styles) Font {
	if styles == nil || styles.DocDefaults == nil || styles.DocDefaults.RunProp == nil {
		return Font{}
	}
	rp := styles.DocDefaults.RunProp.RunProp
	if rp == nil {
		return Font{}
	}
	var f Font
	if rp.Fonts != nil {
		f.Name = rp.Fonts.Ascii
	}
	if rp.Size != nil {
		f.Size = float64(rp.Size.Value) / 2
	}
	return f
}
