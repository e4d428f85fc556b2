package gateway

import "github.com/cogniquest/cogniquest/internal/llm"

// QuizSchema defines the JSON schema for quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "quiz-payload",
	Description: "A generated quiz with a title and a list of questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short descriptive title for the quiz, derived from the material",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"MCQ", "True/False", "Fill-in-the-Blank"},
							"description": "How the learner answers this question",
						},
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question text shown to the learner",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for MCQ, [\"True\", \"False\"] for True/False, empty for Fill-in-the-Blank",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The correct answer. For MCQ and True/False it must equal one of the options verbatim.",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct answer is correct, referencing the material",
						},
						"category": map[string]any{
							"type":        "string",
							"description": "A short topic label grouping related questions",
						},
					},
					"required":             []any{"type", "prompt", "options", "correct_answer", "explanation", "category"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "questions"},
		"additionalProperties": false,
	},
}

// FlashcardsSchema defines the JSON schema for flashcard generation responses.
var FlashcardsSchema = &llm.Schema{
	Name:        "flashcards",
	Description: "Study flashcards for missed questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"front": map[string]any{
							"type":        "string",
							"description": "The cue side: a concept, term, or question",
						},
						"back": map[string]any{
							"type":        "string",
							"description": "The answer side: a concise explanation",
						},
					},
					"required":             []any{"front", "back"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"cards"},
		"additionalProperties": false,
	},
}
