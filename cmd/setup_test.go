package cmd

import (
	"errors"
	"testing"

	"github.com/abhisek/logiq/internal/rubric"
)

func TestParseSkills(t *testing.T) {
	p, err := parseSkills("memory=0.8, reasoning=0.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil || p.Memory != 0.8 || p.Reasoning != 0.5 {
		t.Errorf("got %+v", p)
	}
}

func TestParseSkillsEmpty(t *testing.T) {
	p, err := parseSkills("  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil override, got %+v", p)
	}
}

func TestParseSkillsMalformed(t *testing.T) {
	for _, spec := range []string{"memory", "memory=x", "=0.5"} {
		if _, err := parseSkills(spec); err == nil {
			t.Errorf("parseSkills(%q): expected error", spec)
		}
	}
}

func TestParseSkillsUnknownName(t *testing.T) {
	_, err := parseSkills("charisma=0.9")
	var perr *rubric.InvalidProfileError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *rubric.InvalidProfileError, got %v", err)
	}
}
