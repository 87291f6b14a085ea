package questiongen

import "strings"

// StructuralValidator checks that required fields are present, within
// length limits, and that the options form a well-posed multiple choice.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if strings.TrimSpace(q.Text) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 600 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text exceeds 600 characters",
			Retryable: true,
		}
	}
	if strings.TrimSpace(q.Explanation) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if len(q.Options) < 2 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "fewer than 2 options",
			Retryable: true,
		}
	}

	seen := make(map[string]bool, len(q.Options))
	correct := 0
	for _, opt := range q.Options {
		text := strings.TrimSpace(opt.Text)
		if text == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "an option is empty",
				Retryable: true,
			}
		}
		if seen[text] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "duplicate option: " + text,
				Retryable: true,
			}
		}
		seen[text] = true
		if opt.Correct {
			correct++
		}
	}
	if correct != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "exactly one option must be marked correct",
			Retryable: true,
		}
	}
	return nil
}
