package rubric

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/logiq/internal/document"
	"github.com/abhisek/logiq/internal/llm"
)

// BuilderConfig tunes rubric generation.
type BuilderConfig struct {
	// MaxDocChars caps the document excerpt included in the prompt.
	MaxDocChars int

	// MaxTokens caps the rubric response size.
	MaxTokens int

	// Temperature for rubric generation. Low keeps levels stable.
	Temperature float64
}

// DefaultBuilderConfig returns the standard rubric generation settings.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		MaxDocChars: 4000,
		MaxTokens:   2048,
		Temperature: 0.2,
	}
}

// Builder derives a difficulty rubric for one document via an LLM call.
type Builder struct {
	provider llm.Provider
	config   BuilderConfig
}

// NewBuilder creates a rubric builder on the given provider.
func NewBuilder(provider llm.Provider, config BuilderConfig) *Builder {
	return &Builder{provider: provider, config: config}
}

// rubricPayload mirrors RubricSchema for decoding the model response.
type rubricPayload struct {
	Subject  string `json:"subject"`
	DocTitle string `json:"doc_title"`
	Levels   []struct {
		Level              int          `json:"level"`
		Name               string       `json:"name"`
		Description        string       `json:"description"`
		SkillProfile       SkillProfile `json:"skill_profile"`
		ExampleInstruction string       `json:"example_instruction"`
	} `json:"levels"`
}

// Build derives the 5-level rubric for a document and subject. On any
// failure it returns a *GenerationError and no rubric.
func (b *Builder) Build(ctx context.Context, doc *document.Document, subject Subject) (*Rubric, error) {
	ctx = llm.WithPurpose(ctx, "rubric")

	resp, err := b.provider.Generate(ctx, llm.Request{
		System: buildSystemPrompt(subject),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(doc.Excerpt(b.config.MaxDocChars), doc.Title)},
		},
		Schema:      RubricSchema,
		MaxTokens:   b.config.MaxTokens,
		Temperature: b.config.Temperature,
	})
	if err != nil {
		return nil, &GenerationError{DocTitle: doc.Title, Err: err}
	}

	var payload rubricPayload
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return nil, &GenerationError{DocTitle: doc.Title, Err: fmt.Errorf("decode rubric: %w", err)}
	}

	r := &Rubric{Subject: subject, DocTitle: doc.Title}
	if err := fillLevels(r, payload); err != nil {
		return nil, &GenerationError{DocTitle: doc.Title, Err: err}
	}
	return r, nil
}

// fillLevels places the payload levels into their 1-based slots, checking
// that the model produced exactly one usable level per number.
func fillLevels(r *Rubric, payload rubricPayload) error {
	if len(payload.Levels) != LevelCount {
		return fmt.Errorf("expected %d levels, got %d", LevelCount, len(payload.Levels))
	}

	var seen [LevelCount]bool
	for _, lv := range payload.Levels {
		if lv.Level < 1 || lv.Level > LevelCount {
			return fmt.Errorf("level number %d out of range 1-%d", lv.Level, LevelCount)
		}
		if seen[lv.Level-1] {
			return fmt.Errorf("duplicate level number %d", lv.Level)
		}
		seen[lv.Level-1] = true

		if strings.TrimSpace(lv.Description) == "" {
			return fmt.Errorf("level %d has an empty description", lv.Level)
		}
		if lv.SkillProfile.IsZero() {
			return fmt.Errorf("level %d has an all-zero skill profile", lv.Level)
		}

		r.Levels[lv.Level-1] = Level{
			Number:             lv.Level,
			Name:               strings.TrimSpace(lv.Name),
			Description:        strings.TrimSpace(lv.Description),
			Profile:            clampProfile(lv.SkillProfile),
			ExampleInstruction: strings.TrimSpace(lv.ExampleInstruction),
		}
	}

	// Descriptions must be pairwise distinct or the levels are meaningless.
	for i := 0; i < LevelCount; i++ {
		for j := i + 1; j < LevelCount; j++ {
			if r.Levels[i].Description == r.Levels[j].Description {
				return fmt.Errorf("levels %d and %d share the same description", i+1, j+1)
			}
		}
	}

	return nil
}

func clampProfile(p SkillProfile) SkillProfile {
	return SkillProfile{
		Memory:    clamp01(p.Memory),
		Reasoning: clamp01(p.Reasoning),
		Numerical: clamp01(p.Numerical),
		Language:  clamp01(p.Language),
	}
}
