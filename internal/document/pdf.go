package document

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor implements Extractor for PDF files.
type PDFExtractor struct {
	// MaxPages limits how many pages are extracted. 0 means all pages.
	MaxPages int
}

// NewPDFExtractor creates a PDF extractor with no page limit.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract reads the PDF at path and returns its plain text page by page.
// Blank pages are skipped. Fails with *ReadError if the file cannot be
// opened or yields no text at all.
func (e *PDFExtractor) Extract(ctx context.Context, path string) (*Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	numPages := reader.NumPage()
	if e.MaxPages > 0 && numPages > e.MaxPages {
		numPages = e.MaxPages
	}

	var pages []string
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, &ReadError{Path: path, Err: fmt.Errorf("page %d: %w", i, err)}
		}

		text = strings.TrimSpace(text)
		if text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return nil, &ReadError{Path: path, Err: fmt.Errorf("no extractable text in %d pages", reader.NumPage())}
	}

	return &Document{
		Path:  path,
		Title: filepath.Base(path),
		Pages: pages,
	}, nil
}
