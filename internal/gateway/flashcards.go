package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cogniquest/cogniquest/internal/llm"
	"github.com/cogniquest/cogniquest/internal/quiz"
)

// GenerateFlashcards creates study cards for the missed questions. An
// empty input yields empty output without calling the provider.
func (g *Gateway) GenerateFlashcards(ctx context.Context, incorrect []quiz.Question, materials []quiz.SourceMaterial) ([]quiz.Flashcard, error) {
	if len(incorrect) == 0 {
		return nil, nil
	}

	ctx = llm.WithPurpose(ctx, "flashcards")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: flashcardSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFlashcardUserMessage(incorrect, combineText(materials))},
		},
		Schema:      FlashcardsSchema,
		MaxTokens:   g.config.FlashcardMaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("flashcard generation failed: %w", err)
	}

	var payload struct {
		Cards []quiz.Flashcard `json:"cards"`
	}
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return nil, fmt.Errorf("parse flashcard response: %w", err)
	}

	return payload.Cards, nil
}
