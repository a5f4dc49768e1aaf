package coach

import "github.com/finlingo/finlingo/internal/llm"

// NoteSchema defines the JSON schema for study-note generation.
var NoteSchema = &llm.Schema{
	Name:        "study-note",
	Description: "A personalized coaching note with a focus area and encouragement",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title for the note (3-8 words)",
			},
			"body": map[string]any{
				"type":        "string",
				"description": "Concrete study advice tailored to the learner (3-5 sentences)",
			},
			"focus_area": map[string]any{
				"type":        "string",
				"description": "The single category or habit to prioritize next",
			},
			"encouragement": map[string]any{
				"type":        "string",
				"description": "One sentence of specific, non-generic encouragement",
			},
		},
		"required":             []any{"title", "body", "focus_area", "encouragement"},
		"additionalProperties": false,
	},
}
