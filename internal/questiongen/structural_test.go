package questiongen

import (
	"strings"
	"testing"
)

func validQuestion() *Question {
	return &Question{
		Text: "According to the passage, what does Newton's second law relate?",
		Options: []Option{
			{Text: "Force, mass, and acceleration", Correct: true},
			{Text: "Energy and momentum"},
			{Text: "Mass and volume"},
			{Text: "Velocity and displacement"},
		},
		Explanation: "The passage states F = ma, relating force to mass and acceleration.",
		Difficulty:  2,
		Level:       2,
	}
}

func TestStructural_ValidQuestion(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validQuestion(), GenerateInput{}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_RevalidationIsIdempotent(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	before := *q
	beforeOpts := append([]Option(nil), q.Options...)

	if err := v.Validate(q, GenerateInput{}); err != nil {
		t.Fatalf("first pass: %v", err)
	}
	if err := v.Validate(q, GenerateInput{}); err != nil {
		t.Fatalf("second pass: %v", err)
	}

	if q.Text != before.Text || q.Explanation != before.Explanation || len(q.Options) != len(beforeOpts) {
		t.Error("validation mutated the question")
	}
	for i := range q.Options {
		if q.Options[i] != beforeOpts[i] {
			t.Errorf("option %d mutated: %+v", i, q.Options[i])
		}
	}
}

func TestStructural_EmptyQuestionText(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Text = "   "
	err := v.Validate(q, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for empty question_text")
	}
	if err.Validator != "structural" {
		t.Errorf("expected validator %q, got %q", "structural", err.Validator)
	}
	if !err.Retryable {
		t.Error("expected retryable")
	}
}

func TestStructural_QuestionTextTooLong(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Text = strings.Repeat("a", 601)
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for over-long question_text")
	}
}

func TestStructural_EmptyExplanation(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Explanation = ""
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for empty explanation")
	}
}

func TestStructural_TooFewOptions(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Options = q.Options[:1]
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for fewer than 2 options")
	}
}

func TestStructural_EmptyOption(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Options[2].Text = "  "
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for empty option")
	}
}

func TestStructural_DuplicateOptions(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Options[3].Text = q.Options[1].Text
	err := v.Validate(q, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for duplicate options")
	}
	if !strings.Contains(err.Message, "duplicate option") {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestStructural_NoCorrectOption(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Options[0].Correct = false
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error when no option is correct")
	}
}

func TestStructural_MultipleCorrectOptions(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	q.Options[1].Correct = true
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error when two options are correct")
	}
}

func TestCorrectIndex(t *testing.T) {
	q := validQuestion()
	if got := q.CorrectIndex(); got != 0 {
		t.Errorf("CorrectIndex() = %d, want 0", got)
	}

	q.Options[0].Correct = false
	if got := q.CorrectIndex(); got != -1 {
		t.Errorf("CorrectIndex() with no correct = %d, want -1", got)
	}

	q.Options[0].Correct = true
	q.Options[2].Correct = true
	if got := q.CorrectIndex(); got != -1 {
		t.Errorf("CorrectIndex() with two correct = %d, want -1", got)
	}
}
