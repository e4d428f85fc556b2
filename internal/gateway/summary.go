package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/cogniquest/cogniquest/internal/llm"
	"github.com/cogniquest/cogniquest/internal/quiz"
)

// GenerateSummary produces a markdown performance summary of the
// completed attempt.
func (g *Gateway) GenerateSummary(ctx context.Context, questions []quiz.Question, answers map[string]*string, confidence map[string]quiz.Confidence, cfg quiz.QuizConfig) (string, error) {
	ctx = llm.WithPurpose(ctx, "summary")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: summarySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSummaryUserMessage(questions, answers, confidence, cfg)},
		},
		MaxTokens:   g.config.SummaryMaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("summary generation failed: %w", err)
	}

	return strings.TrimSpace(string(resp.Content)), nil
}
