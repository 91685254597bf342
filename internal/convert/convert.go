// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns UTF-8 text files into .docx documents, one paragraph
// per line, for single files and for batches of glob specifiers.
package convert

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/pdiddy/text-to-word/internal/docx"
	"github.com/pdiddy/text-to-word/pkg/types"
)

// Converter turns one text file into one document. Implementations never
// panic or return errors out of band: every failure is carried in the Result.
type Converter interface {
	// Convert performs req, printing one status line to w.
	Convert(req types.ConversionRequest, w io.Writer) Result
}

// Result is the outcome of a single conversion. Request.OutputPath is always
// the resolved path, even when the caller left it empty.
type Result struct {
	Request types.ConversionRequest
	Status  types.ConversionStatus
	Err     error
}

// OK reports whether the document was written.
func (r Result) OK() bool {
	return r.Status == types.ConversionDone
}

// TextConverter converts plain text with a fixed default font.
type TextConverter struct {
	font docx.Font
}

// NewTextConverter returns a converter whose documents use font.
func NewTextConverter(font docx.Font) *TextConverter {
	return &TextConverter{font: font}
}

// Convert reads req.InputPath and writes a document to req.OutputPath, or to
// DefaultOutputPath when that is empty. The output is overwritten if present.
func (c *TextConverter) Convert(req types.ConversionRequest, w io.Writer) Result {
	if req.OutputPath == "" {
		req.OutputPath = DefaultOutputPath(req.InputPath)
	}

	if err := c.convert(req); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", req.InputPath, err)
		return Result{Request: req, Status: types.ConversionFailed, Err: err}
	}

	fmt.Fprintf(w, "converted: %s -> %s\n", req.InputPath, req.OutputPath)
	return Result{Request: req, Status: types.ConversionDone}
}

func (c *TextConverter) convert(req types.ConversionRequest) error {
	if err := checkInput(req.InputPath); err != nil {
		return err
	}

	data, err := os.ReadFile(req.InputPath)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", ErrConversion, req.InputPath, err)
	}

	text, err := decodeText(data)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConversion, req.InputPath, err)
	}

	doc, err := BuildDocument(text, c.font)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConversion, req.InputPath, err)
	}
	if err := doc.Save(req.OutputPath); err != nil {
		return fmt.Errorf("%w: %w", ErrConversion, err)
	}
	return nil
}

// checkInput maps a missing path or a non-regular file to ErrNotFound. Any
// other stat failure, such as a permission error, is an ErrConversion.
func checkInput(path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case err != nil:
		return fmt.Errorf("%w: %w", ErrConversion, err)
	case !info.Mode().IsRegular():
		return fmt.Errorf("%w: %s is not a regular file", ErrNotFound, path)
	}
	return nil
}

// DefaultOutputPath replaces the extension of input with the document
// extension, keeping the directory.
func DefaultOutputPath(input string) string {
	dir, base := filepath.Split(input)
	return dir + Stem(base) + types.DocumentExt
}

// Stem returns the base name of path without its extension. A leading dot
// does not start an extension, so ".todo" and ".todo.txt" have stems
// ".todo".
func Stem(path string) string {
	base := filepath.Base(path)
	dot := strings.LastIndexByte(base, '.')
	if dot <= 0 || strings.Trim(base[:dot], ".") == "" {
		return base
	}
	return base[:dot]
}

// BuildDocument creates a document with one paragraph per line of text.
// Lines that are empty or whitespace-only become empty paragraphs; other
// lines are kept unmodified. A line holding a character XML cannot carry,
// such as a form feed, fails the whole document and is named by number.
func BuildDocument(text string, font docx.Font) (*docx.Document, error) {
	doc := docx.New(font)
	for i, line := range SplitLines(text) {
		if err := docx.CheckText(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if strings.TrimSpace(line) == "" {
			doc.AddParagraph("")
			continue
		}
		doc.AddParagraph(line)
	}
	return doc, nil
}

// SplitLines splits text into lines. "\r\n" and lone "\r" count as line
// endings, and a final line ending does not start another line, so
// "a\n\nb\n" is three lines and "" is none.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// decodeText validates data as UTF-8 and strips a leading byte order mark.
func decodeText(data []byte) (string, error) {
	if off := invalidUTF8Offset(data); off >= 0 {
		return "", fmt.Errorf("invalid UTF-8 at byte offset %d", off)
	}
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-8: %w", err)
	}
	return string(out), nil
}

func invalidUTF8Offset(data []byte) int {
	for off := 0; off < len(data); {
		r, size := utf8.DecodeRune(data[off:])
		if r == utf8.RuneError && size <= 1 {
			return off
		}
		off += size
	}
	return -1
}
