package rubric

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/logiq/internal/document"
	"github.com/abhisek/logiq/internal/llm"
)

func testDoc() *document.Document {
	return &document.Document{
		Path:  "/tmp/motion.pdf",
		Title: "motion.pdf",
		Pages: []string{"Newton's laws of motion.", "Force equals mass times acceleration."},
	}
}

// validRubricJSON builds a well-formed rubric payload, optionally mutated.
func validRubricJSON(mutate func(map[string]any)) json.RawMessage {
	levels := make([]any, 0, LevelCount)
	for i := 1; i <= LevelCount; i++ {
		levels = append(levels, map[string]any{
			"level":       i,
			"name":        fmt.Sprintf("Level %d", i),
			"description": fmt.Sprintf("Requires %d steps of reasoning", i),
			"skill_profile": map[string]any{
				"memory":    1.0 - float64(i)*0.15,
				"reasoning": float64(i) * 0.2,
				"numerical": 0.1,
				"language":  0.2,
			},
			"example_instruction": fmt.Sprintf("Ask a level-%d question", i),
		})
	}
	payload := map[string]any{
		"subject":   "physics",
		"doc_title": "motion.pdf",
		"levels":    levels,
	}
	if mutate != nil {
		mutate(payload)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return raw
}

func TestBuilderBuild(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validRubricJSON(nil)})
	b := NewBuilder(mock, DefaultBuilderConfig())

	r, err := b.Build(context.Background(), testDoc(), SubjectPhysics)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if r.Subject != SubjectPhysics {
		t.Errorf("Subject = %q, want physics", r.Subject)
	}
	if r.DocTitle != "motion.pdf" {
		t.Errorf("DocTitle = %q", r.DocTitle)
	}
	for i, lv := range r.Levels {
		if lv.Number != i+1 {
			t.Errorf("Levels[%d].Number = %d, want %d", i, lv.Number, i+1)
		}
		if lv.Description == "" {
			t.Errorf("Levels[%d] has empty description", i)
		}
		if lv.Profile.IsZero() {
			t.Errorf("Levels[%d] has zero profile", i)
		}
	}

	lv3, err := r.Level(3)
	if err != nil {
		t.Fatalf("Level(3) error = %v", err)
	}
	if lv3.Number != 3 {
		t.Errorf("Level(3).Number = %d", lv3.Number)
	}
}

func TestBuilderPromptContents(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validRubricJSON(nil)})
	b := NewBuilder(mock, DefaultBuilderConfig())

	if _, err := b.Build(context.Background(), testDoc(), SubjectPhysics); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	req := mock.LastCall()
	if req.Schema == nil || req.Schema.Name != "difficulty-rubric" {
		t.Fatalf("Schema = %+v, want difficulty-rubric", req.Schema)
	}
	if !strings.Contains(req.System, "RELATIVE") {
		t.Error("system prompt should stress relative difficulty")
	}
	if !strings.Contains(req.System, "symbolic/numerical manipulation") {
		t.Error("system prompt should carry the physics hint")
	}
	if len(req.Messages) != 1 {
		t.Fatalf("len(Messages) = %d, want 1", len(req.Messages))
	}
	if !strings.Contains(req.Messages[0].Content, "Newton's laws") {
		t.Error("user message should carry the document excerpt")
	}
	if !strings.Contains(req.Messages[0].Content, "motion.pdf") {
		t.Error("user message should carry the document title")
	}
}

func TestBuilderExcerptCapped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validRubricJSON(nil)})
	cfg := DefaultBuilderConfig()
	cfg.MaxDocChars = 50
	b := NewBuilder(mock, cfg)

	doc := &document.Document{
		Title: "big.pdf",
		Pages: []string{strings.Repeat("physics ", 500)},
	}
	if _, err := b.Build(context.Background(), doc, SubjectPhysics); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	msg := mock.LastCall().Messages[0].Content
	// Prompt framing plus at most 50 bytes of document text.
	if len(msg) > 600 {
		t.Errorf("user message is %d bytes, excerpt cap not applied", len(msg))
	}
}

func TestBuilderProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	b := NewBuilder(mock, DefaultBuilderConfig())

	r, err := b.Build(context.Background(), testDoc(), SubjectPhysics)
	if r != nil {
		t.Errorf("Build() rubric = %+v, want nil on failure", r)
	}
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("error = %v, want *GenerationError", err)
	}
	var perr *llm.ErrProviderUnavailable
	if !errors.As(err, &perr) {
		t.Errorf("GenerationError should wrap the provider error, got %v", err)
	}
}

func TestBuilderRejectsMalformedRubrics(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{
			name: "too few levels",
			mutate: func(p map[string]any) {
				p["levels"] = p["levels"].([]any)[:3]
			},
		},
		{
			name: "duplicate level number",
			mutate: func(p map[string]any) {
				levels := p["levels"].([]any)
				levels[4].(map[string]any)["level"] = 2
			},
		},
		{
			name: "level number out of range",
			mutate: func(p map[string]any) {
				levels := p["levels"].([]any)
				levels[0].(map[string]any)["level"] = 9
			},
		},
		{
			name: "empty description",
			mutate: func(p map[string]any) {
				levels := p["levels"].([]any)
				levels[2].(map[string]any)["description"] = "   "
			},
		},
		{
			name: "duplicate descriptions",
			mutate: func(p map[string]any) {
				levels := p["levels"].([]any)
				levels[1].(map[string]any)["description"] = "same words"
				levels[3].(map[string]any)["description"] = "same words"
			},
		},
		{
			name: "all-zero skill profile",
			mutate: func(p map[string]any) {
				levels := p["levels"].([]any)
				levels[0].(map[string]any)["skill_profile"] = map[string]any{
					"memory": 0, "reasoning": 0, "numerical": 0, "language": 0,
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: validRubricJSON(tt.mutate)})
			b := NewBuilder(mock, DefaultBuilderConfig())

			r, err := b.Build(context.Background(), testDoc(), SubjectPhysics)
			if r != nil {
				t.Errorf("Build() = %+v, want nil rubric", r)
			}
			var gerr *GenerationError
			if !errors.As(err, &gerr) {
				t.Errorf("error = %v, want *GenerationError", err)
			}
		})
	}
}

func TestBuilderClampsProfiles(t *testing.T) {
	raw := validRubricJSON(func(p map[string]any) {
		levels := p["levels"].([]any)
		levels[0].(map[string]any)["skill_profile"] = map[string]any{
			"memory": 2.5, "reasoning": -0.2, "numerical": 0.5, "language": 0.5,
		}
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	b := NewBuilder(mock, DefaultBuilderConfig())

	r, err := b.Build(context.Background(), testDoc(), SubjectPhysics)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := r.Levels[0].Profile.Memory; got != 1.0 {
		t.Errorf("Memory = %v, want clamped to 1.0", got)
	}
	if got := r.Levels[0].Profile.Reasoning; got != 0 {
		t.Errorf("Reasoning = %v, want clamped to 0", got)
	}
}

func TestRubricLevelOutOfRange(t *testing.T) {
	r := &Rubric{}
	for _, n := range []int{0, -1, 6} {
		if _, err := r.Level(n); err == nil {
			t.Errorf("Level(%d) succeeded, want error", n)
		}
	}
}
