package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/logiq/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	QuestionText       string   `json:"question_text"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
	Explanation        string   `json:"explanation"`
	Difficulty         int      `json:"difficulty"`
}

// Generate produces a single question for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	q := &Question{
		Text:        raw.QuestionText,
		Options:     buildOptions(raw.Options, raw.CorrectOptionIndex),
		Explanation: raw.Explanation,
		Difficulty:  raw.Difficulty,
		Level:       input.Level.Number,
		Profile:     input.Profile,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}

// buildOptions converts the wire format (options + index) to flagged
// options. An out-of-range index produces no correct flag, which the
// structural validator then rejects.
func buildOptions(texts []string, correctIdx int) []Option {
	opts := make([]Option, len(texts))
	for i, text := range texts {
		opts[i] = Option{Text: text, Correct: i == correctIdx}
	}
	return opts
}
