package questiongen

import "context"

// Generator produces multiple-choice questions from document content.
type Generator interface {
	// Generate produces a single question for the given input context.
	// Returns a validated Question or an error. A *ValidationError with
	// Retryable set means regeneration may succeed.
	Generate(ctx context.Context, input GenerateInput) (*Question, error)
}
