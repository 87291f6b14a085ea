package rubric

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeWeights(t *testing.T) {
	p, err := NormalizeWeights(map[string]float64{
		"memory":    0.8,
		"reasoning": 0.4,
	})
	if err != nil {
		t.Fatalf("NormalizeWeights() error = %v", err)
	}
	if p.Memory != 0.8 || p.Reasoning != 0.4 {
		t.Errorf("got %+v, want memory=0.8 reasoning=0.4", p)
	}
	if p.Numerical != 0 || p.Language != 0 {
		t.Errorf("missing names should default to 0, got %+v", p)
	}
}

func TestNormalizeWeightsClamps(t *testing.T) {
	p, err := NormalizeWeights(map[string]float64{
		"memory":   1.7,
		"language": -0.3,
	})
	if err != nil {
		t.Fatalf("NormalizeWeights() error = %v", err)
	}
	if p.Memory != 1.0 {
		t.Errorf("Memory = %v, want clamped to 1.0", p.Memory)
	}
	if p.Language != 0 {
		t.Errorf("Language = %v, want clamped to 0", p.Language)
	}
}

func TestNormalizeWeightsUnknownName(t *testing.T) {
	_, err := NormalizeWeights(map[string]float64{
		"memory":   0.5,
		"spelling": 0.9,
		"charisma": 0.1,
	})
	var perr *InvalidProfileError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *InvalidProfileError", err)
	}
	// Unknown names are listed sorted so the message is deterministic.
	if !strings.Contains(perr.Reason, "charisma, spelling") {
		t.Errorf("Reason = %q, want sorted unknown names", perr.Reason)
	}
	if !strings.Contains(perr.Reason, "memory, reasoning, numerical, language") {
		t.Errorf("Reason = %q, want recognized names listed", perr.Reason)
	}
}

func TestNormalizeWeightsAllZero(t *testing.T) {
	for _, weights := range []map[string]float64{
		{},
		{"memory": 0, "reasoning": 0},
		{"memory": -1, "language": -0.5},
	} {
		_, err := NormalizeWeights(weights)
		var perr *InvalidProfileError
		if !errors.As(err, &perr) {
			t.Errorf("NormalizeWeights(%v) error = %v, want *InvalidProfileError", weights, err)
		}
	}
}

func TestMerge(t *testing.T) {
	base := SkillProfile{Memory: 0.9, Reasoning: 0.2, Numerical: 0.1, Language: 0.3}

	t.Run("nil override returns base", func(t *testing.T) {
		if got := Merge(base, nil); got != base {
			t.Errorf("Merge(base, nil) = %+v, want base", got)
		}
	})

	t.Run("positive weights replace", func(t *testing.T) {
		got := Merge(base, &SkillProfile{Reasoning: 0.8})
		want := SkillProfile{Memory: 0.9, Reasoning: 0.8, Numerical: 0.1, Language: 0.3}
		if got != want {
			t.Errorf("Merge() = %+v, want %+v", got, want)
		}
	})

	t.Run("zero weights fall through", func(t *testing.T) {
		got := Merge(base, &SkillProfile{})
		if got != base {
			t.Errorf("Merge(base, zero) = %+v, want base", got)
		}
	})
}

func TestParseSubject(t *testing.T) {
	if got := ParseSubject("physics"); got != SubjectPhysics {
		t.Errorf("ParseSubject(physics) = %q", got)
	}
	if got := ParseSubject("underwater basket weaving"); got != SubjectGeneric {
		t.Errorf("ParseSubject(unknown) = %q, want generic", got)
	}
	if got := ParseSubject(""); got != SubjectGeneric {
		t.Errorf("ParseSubject(empty) = %q, want generic", got)
	}
}
