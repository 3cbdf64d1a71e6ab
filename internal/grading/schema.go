package grading

import "github.com/rlemos/provinha/internal/llm"

// resultSchema is the JSON Schema the grading response must conform to.
// Providers with native structured output enforce it at generation time;
// the llm layer validates it again on receipt.
var resultSchema = &llm.Schema{
	Name:        "discursive-grading",
	Description: "Qualitative grading of a student's free-text answer against the author's guideline.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"adherence": map[string]any{
				"type": "string",
				"enum": []any{"correct", "partial", "incorrect"},
				"description": "How well the answer matches the guideline. " +
					"Use partial when the core idea is present but incomplete.",
			},
			"positives": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "What the student got right, in the student's language.",
			},
			"improvements": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concrete, encouraging suggestions for a better answer.",
			},
			"model_answer": map[string]any{
				"type":        "string",
				"description": "A short example of a complete answer, in the student's language.",
			},
		},
		"required":             []any{"adherence", "positives", "improvements"},
		"additionalProperties": false,
	},
}
