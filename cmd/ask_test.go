package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/abhisek/logiq/internal/questiongen"
	"github.com/abhisek/logiq/internal/rubric"
)

func TestPrintQuestion(t *testing.T) {
	q := &questiongen.Question{
		Text: "What does Newton's second law relate?",
		Options: []questiongen.Option{
			{Text: "Force, mass, and acceleration", Correct: true},
			{Text: "Energy and momentum"},
			{Text: "Mass and volume"},
			{Text: "Velocity and displacement"},
		},
		Explanation: "The document states force equals mass times acceleration.",
		Difficulty:  3,
		Level:       2,
		Profile:     rubric.SkillProfile{Memory: 0.7, Reasoning: 0.3},
	}

	var buf bytes.Buffer
	printQuestion(&buf, 1, q)
	out := buf.String()

	for _, want := range []string{
		"Q1. What does Newton's second law relate?",
		"A) Force, mass, and acceleration",
		"Answer: A) Force, mass, and acceleration",
		"Explanation: The document states",
		"Skills: memory=0.70 reasoning=0.30 numerical=0.00 language=0.00",
		"Difficulty: 3 (requested level 2)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}
