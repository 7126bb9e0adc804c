package explain

import "github.com/abhisek/mathdrill/internal/llm"

// ExplanationSchema is the structured output requested from the LLM.
var ExplanationSchema = &llm.Schema{
	Name:        "missed-question-explanation",
	Description: "A short explanation of why an answer to a practice question was wrong",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "One or two sentences a child can follow, plain ASCII",
			},
			"steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    4,
				"description": "Short worked steps leading to the correct answer",
			},
			"tip": map[string]any{
				"type":        "string",
				"description": "A memory trick or hint for next time; may be empty",
			},
		},
		"required":             []any{"summary", "steps", "tip"},
		"additionalProperties": false,
	},
}
