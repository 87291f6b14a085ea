// Package document loads source documents and exposes their text,
// segmented by page, to the rubric and question pipelines.
package document

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Document is the extracted text of one source file. It is immutable once
// loaded; pages are ordered and non-empty.
type Document struct {
	// Path is the file the document was loaded from.
	Path string

	// Title is a short display name, by default the file's base name.
	Title string

	// Pages holds the extracted plain text of each non-blank page, in order.
	Pages []string
}

// ReadError indicates the source file could not be read or contained no
// extractable text.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("read document %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("read document %s", e.Path)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Extractor loads a document from a file path.
type Extractor interface {
	// Extract reads the file and returns its text segmented by page.
	// Fails with *ReadError on unreadable, corrupt, or text-free input.
	Extract(ctx context.Context, path string) (*Document, error)
}

// FullText returns all pages joined with blank lines.
func (d *Document) FullText() string {
	return strings.Join(d.Pages, "\n\n")
}

// Excerpt returns the first max bytes of the full text, cut at a rune
// boundary. Used to keep prompts within budget.
func (d *Document) Excerpt(max int) string {
	text := d.FullText()
	if max <= 0 || len(text) <= max {
		return text
	}
	cut := max
	// Don't split a multi-byte rune.
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
