package rubric

import (
	"fmt"
	"sort"
	"strings"
)

// skillNames are the four recognized cognitive skill dimensions.
var skillNames = []string{"memory", "reasoning", "numerical", "language"}

// InvalidProfileError indicates user-supplied skill weights could not be
// turned into a usable profile. Callers typically report it and re-prompt.
type InvalidProfileError struct {
	Reason string
}

func (e *InvalidProfileError) Error() string {
	return "invalid skill profile: " + e.Reason
}

// NormalizeWeights validates a skill-name → weight mapping and returns the
// resulting profile. Unrecognized names are rejected, missing names default
// to 0, and weights are clamped to [0,1]. A profile with all weights zero
// fails: it would give the generator nothing to bias toward.
func NormalizeWeights(weights map[string]float64) (SkillProfile, error) {
	var unknown []string
	for name := range weights {
		if !isSkillName(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return SkillProfile{}, &InvalidProfileError{
			Reason: fmt.Sprintf("unknown skill name(s) %s (recognized: %s)",
				strings.Join(unknown, ", "), strings.Join(skillNames, ", ")),
		}
	}

	p := SkillProfile{
		Memory:    clamp01(weights["memory"]),
		Reasoning: clamp01(weights["reasoning"]),
		Numerical: clamp01(weights["numerical"]),
		Language:  clamp01(weights["language"]),
	}

	if p.IsZero() {
		return SkillProfile{}, &InvalidProfileError{Reason: "all weights are zero"}
	}

	return p, nil
}

// Merge overlays an optional user override on a level's base profile.
// An override weight > 0 replaces the base weight; zero falls through to
// the base. A nil override returns the base unchanged.
func Merge(base SkillProfile, override *SkillProfile) SkillProfile {
	if override == nil {
		return base
	}
	merged := base
	if override.Memory > 0 {
		merged.Memory = override.Memory
	}
	if override.Reasoning > 0 {
		merged.Reasoning = override.Reasoning
	}
	if override.Numerical > 0 {
		merged.Numerical = override.Numerical
	}
	if override.Language > 0 {
		merged.Language = override.Language
	}
	return merged
}

func isSkillName(name string) bool {
	for _, s := range skillNames {
		if s == name {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
