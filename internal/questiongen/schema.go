package questiongen

import "github.com/abhisek/logiq/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation
// responses.
var QuestionSchema = &llm.Schema{
	Name:        "mcq-question",
	Description: "A single multiple-choice question grounded in the given document",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question stem. Self-contained and answerable from the document alone.",
			},
			"options": map[string]any{
				"type":        "array",
				"minItems":    4,
				"maxItems":    4,
				"items":       map[string]any{"type": "string"},
				"description": "Exactly 4 answer choices. Distractors must be plausible, not random.",
			},
			"correct_option_index": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "Zero-based index of the correct option",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Brief justification of the correct answer, citing the document",
			},
			"difficulty": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "Self-assessed difficulty on the document's 1-5 rubric",
			},
		},
		"required":             []any{"question_text", "options", "correct_option_index", "explanation", "difficulty"},
		"additionalProperties": false,
	},
}
