package cmd

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	if got := truncate("llama-3.1-8b-instant", 26); got != "llama-3.1-8b-instant" {
		t.Errorf("short string changed: %q", got)
	}
	if got := truncate("llama-3.3-70b-versatile", 8); got != "llama-3." {
		t.Errorf("truncate = %q, want %q", got, "llama-3.")
	}
}

func TestTruncate_RuneBoundary(t *testing.T) {
	// "è" occupies bytes 3-4, so a byte-wise cut at 4 would split it.
	got := truncate("modèle", 4)
	if got != "mod" {
		t.Errorf("truncate = %q, want %q", got, "mod")
	}
	if !utf8.ValidString(got) {
		t.Errorf("truncate produced invalid UTF-8: %q", got)
	}
}
