package document

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestFullText_JoinsPages(t *testing.T) {
	d := &Document{Pages: []string{"first page", "second page"}}
	got := d.FullText()
	if got != "first page\n\nsecond page" {
		t.Errorf("unexpected full text: %q", got)
	}
}

func TestExcerpt_ShortTextUnchanged(t *testing.T) {
	d := &Document{Pages: []string{"short"}}
	if got := d.Excerpt(100); got != "short" {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestExcerpt_Truncates(t *testing.T) {
	d := &Document{Pages: []string{strings.Repeat("a", 50)}}
	if got := d.Excerpt(10); len(got) != 10 {
		t.Errorf("expected 10 bytes, got %d", len(got))
	}
}

func TestExcerpt_DoesNotSplitRunes(t *testing.T) {
	// "é" is 2 bytes; cutting at byte 3 would split the second rune.
	d := &Document{Pages: []string{"éé"}}
	got := d.Excerpt(3)
	if got != "é" {
		t.Errorf("expected single rune, got %q", got)
	}
}

func TestExcerpt_ZeroMaxReturnsAll(t *testing.T) {
	d := &Document{Pages: []string{"abc"}}
	if got := d.Excerpt(0); got != "abc" {
		t.Errorf("expected full text for max=0, got %q", got)
	}
}

func TestPDFExtract_MissingFile(t *testing.T) {
	e := NewPDFExtractor()
	_, err := e.Extract(context.Background(), "testdata/does-not-exist.pdf")
	var re *ReadError
	if !errors.As(err, &re) {
		t.Fatalf("expected ReadError, got %v", err)
	}
	if re.Path != "testdata/does-not-exist.pdf" {
		t.Errorf("unexpected path in error: %q", re.Path)
	}
}

func TestReadError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ReadError{Path: "x.pdf", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("expected ReadError to unwrap to its cause")
	}
}
