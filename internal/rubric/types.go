// Package rubric derives a document-local difficulty rubric and validates
// the cognitive-skill profiles used to bias question generation.
package rubric

import "fmt"

// LevelCount is the fixed number of difficulty levels in every rubric.
const LevelCount = 5

// SkillProfile is the relative load of each cognitive skill for a question.
// Weights are conceptual, each in [0,1]; they need not sum to 1, but at
// least one must be positive.
type SkillProfile struct {
	Memory    float64 `json:"memory"`
	Reasoning float64 `json:"reasoning"`
	Numerical float64 `json:"numerical"`
	Language  float64 `json:"language"`
}

// IsZero reports whether every weight is zero.
func (p SkillProfile) IsZero() bool {
	return p.Memory == 0 && p.Reasoning == 0 && p.Numerical == 0 && p.Language == 0
}

// String renders the profile as "memory=0.70 reasoning=0.30 ...", the form
// used in prompts and CLI output.
func (p SkillProfile) String() string {
	return fmt.Sprintf("memory=%.2f reasoning=%.2f numerical=%.2f language=%.2f",
		p.Memory, p.Reasoning, p.Numerical, p.Language)
}

// Level is one difficulty level of a rubric. Its meaning is relative to
// the document the rubric was built for, not any absolute standard.
type Level struct {
	// Number is the level's position, 1 (easiest) to 5 (hardest).
	Number int

	// Name is a short title, e.g. "Direct recall".
	Name string

	// Description says what makes a question at this level easy or hard.
	Description string

	// Profile is the typical skill load for questions at this level.
	Profile SkillProfile

	// ExampleInstruction hints at how to phrase a question at this level.
	ExampleInstruction string
}

// Rubric is the full 5-level difficulty scale for one document and subject.
// It is built once per (document, subject) and reused for every question
// generated against that document.
type Rubric struct {
	Subject  Subject
	DocTitle string
	Levels   [LevelCount]Level
}

// Level returns the rubric level with the given number (1-5).
func (r *Rubric) Level(n int) (Level, error) {
	if n < 1 || n > LevelCount {
		return Level{}, fmt.Errorf("level %d out of range 1-%d", n, LevelCount)
	}
	return r.Levels[n-1], nil
}

// GenerationError indicates the rubric could not be built for a document.
// No partial rubric is ever returned alongside it.
type GenerationError struct {
	DocTitle string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate rubric for %q: %v", e.DocTitle, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
