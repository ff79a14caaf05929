package quizgen

import "github.com/ritwika/edurag/internal/llm"

// QuizQuestionSchema defines the JSON schema for LLM quiz question responses.
var QuizQuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single multiple-choice quiz question with exactly four options",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the learner, in plain text",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 answer options where exactly one is correct",
			},
			"answer_index": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "Zero-based index of the correct option",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "One or two sentences explaining why the correct option is right",
			},
		},
		"required":             []any{"question", "options", "answer_index", "rationale"},
		"additionalProperties": false,
	},
}
