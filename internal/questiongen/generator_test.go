package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/logiq/internal/llm"
	"github.com/abhisek/logiq/internal/rubric"
)

func testInput() GenerateInput {
	return GenerateInput{
		DocExcerpt: "Newton's second law states that force equals mass times acceleration.",
		DocTitle:   "motion.pdf",
		Level: rubric.Level{
			Number:             2,
			Name:               "Basic application",
			Description:        "Apply a single stated fact to a direct question",
			Profile:            rubric.SkillProfile{Memory: 0.7, Reasoning: 0.3},
			ExampleInstruction: "Ask what quantity the law relates",
		},
		Profile: rubric.SkillProfile{Memory: 0.7, Reasoning: 0.3},
	}
}

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "What does Newton's second law relate?",
		"options": ["Force, mass, and acceleration", "Energy and momentum", "Mass and volume", "Velocity and displacement"],
		"correct_option_index": 0,
		"explanation": "The document states force equals mass times acceleration.",
		"difficulty": 2
	}`)
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "What does Newton's second law relate?" {
		t.Errorf("unexpected text: %q", q.Text)
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(q.Options))
	}
	if q.CorrectIndex() != 0 {
		t.Errorf("CorrectIndex() = %d, want 0", q.CorrectIndex())
	}
	if q.Level != 2 {
		t.Errorf("Level = %d, want 2", q.Level)
	}
	if q.Difficulty != 2 {
		t.Errorf("Difficulty = %d, want 2", q.Difficulty)
	}
	if q.Profile != (rubric.SkillProfile{Memory: 0.7, Reasoning: 0.3}) {
		t.Errorf("Profile = %+v, want the effective input profile", q.Profile)
	}
}

func TestGenerate_PromptContents(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.Extra = "focus on definitions"
	input.PriorQuestions = []string{"What is inertia?"}

	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.LastCall()
	if req.Schema == nil || req.Schema.Name != "mcq-question" {
		t.Fatalf("Schema = %+v, want mcq-question", req.Schema)
	}
	msg := req.Messages[0].Content
	for _, want := range []string{
		"Newton's second law states",
		"Target difficulty level: 2 (Basic application)",
		"Apply a single stated fact",
		"memory=0.70",
		"focus on definitions",
		"What is inertia?",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q", want)
		}
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Errorf("expected wrapped ErrRateLimit, got %v", err)
	}
}

func TestGenerate_ValidationFailure(t *testing.T) {
	// Out-of-range correct_option_index yields no correct flag.
	bad := json.RawMessage(`{
		"question_text": "What does Newton's second law relate?",
		"options": ["A", "B", "C", "D"],
		"correct_option_index": 7,
		"explanation": "x",
		"difficulty": 2
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Validator != "structural" {
		t.Errorf("Validator = %q, want structural", verr.Validator)
	}
	if !verr.Retryable {
		t.Error("expected retryable")
	}
}

func TestGenerate_InconsistentDifficulty(t *testing.T) {
	off := json.RawMessage(`{
		"question_text": "What does Newton's second law relate?",
		"options": ["Force, mass, and acceleration", "Energy and momentum", "Mass and volume", "Velocity and displacement"],
		"correct_option_index": 0,
		"explanation": "The document states force equals mass times acceleration.",
		"difficulty": 5
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: off})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Validator != "consistency" {
		t.Errorf("Validator = %q, want consistency", verr.Validator)
	}
}

func TestBuildDedup(t *testing.T) {
	if got := buildDedup(nil, 10); got != "None" {
		t.Errorf("buildDedup(nil) = %q, want None", got)
	}

	got := buildDedup([]string{"q1", "q2", "q3"}, 2)
	if strings.Contains(got, "q1") {
		t.Errorf("oldest stem should be dropped: %q", got)
	}
	if !strings.Contains(got, "q2") || !strings.Contains(got, "q3") {
		t.Errorf("recent stems missing: %q", got)
	}
}
