package rubric

import "github.com/abhisek/logiq/internal/llm"

// skillProfileDef is the schema fragment shared by every level.
var skillProfileDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"memory":    map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		"reasoning": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		"numerical": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		"language":  map[string]any{"type": "number", "minimum": 0, "maximum": 1},
	},
	"required":             []any{"memory", "reasoning", "numerical", "language"},
	"additionalProperties": false,
}

// RubricSchema defines the JSON schema for rubric generation responses.
var RubricSchema = &llm.Schema{
	Name:        "difficulty-rubric",
	Description: "A 5-level relative difficulty rubric for one document",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subject": map[string]any{
				"type":        "string",
				"description": "The subject the rubric was built for",
			},
			"doc_title": map[string]any{
				"type":        "string",
				"description": "Title of the source document",
			},
			"levels": map[string]any{
				"type":        "array",
				"minItems":    5,
				"maxItems":    5,
				"description": "Exactly 5 levels, ordered easiest to hardest",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"level": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     5,
							"description": "Level number, 1 = easiest, 5 = hardest",
						},
						"name": map[string]any{
							"type":        "string",
							"description": "Short title for this level",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "What makes questions at this level easy or hard",
						},
						"skill_profile": skillProfileDef,
						"example_instruction": map[string]any{
							"type":        "string",
							"description": "Natural-language hint for generating a question at this level",
						},
					},
					"required":             []any{"level", "name", "description", "skill_profile", "example_instruction"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"subject", "doc_title", "levels"},
		"additionalProperties": false,
	},
}
