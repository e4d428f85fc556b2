// Package gateway translates application intents (quiz, hint, summary,
// flashcards, chat) into LLM requests and parses the responses into
// domain types. All provider output crosses a strict schema-validation
// boundary before reaching the state machine.
package gateway

import (
	"github.com/cogniquest/cogniquest/internal/llm"
)

// Config controls token budgets and sampling for each operation.
type Config struct {
	// QuizMaxTokens is the per-request budget for quiz generation.
	// Chunked inputs spend this budget once per chunk.
	QuizMaxTokens int

	HintMaxTokens      int
	SummaryMaxTokens   int
	FlashcardMaxTokens int
	ChatMaxTokens      int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns recommended budgets.
func DefaultConfig() Config {
	return Config{
		QuizMaxTokens:      8192,
		HintMaxTokens:      256,
		SummaryMaxTokens:   1024,
		FlashcardMaxTokens: 2048,
		ChatMaxTokens:      1024,
		Temperature:        0.7,
	}
}

// Gateway is the single entry point for all AI operations.
type Gateway struct {
	provider llm.Provider
	config   Config
}

// New creates a Gateway over the given provider.
func New(provider llm.Provider, cfg Config) *Gateway {
	return &Gateway{provider: provider, config: cfg}
}
