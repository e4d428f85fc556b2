package gateway

import (
	"context"
	"strings"

	"github.com/cogniquest/cogniquest/internal/llm"
	"github.com/cogniquest/cogniquest/internal/quiz"
)

// HintApology is shown when hint generation fails. Hints are a nicety,
// so failures degrade to this fixed string instead of an error.
const HintApology = "Sorry, I couldn't come up with a hint for this one. Trust your reading of the material!"

// GenerateHint produces a short nudge toward the answer. Never errors.
func (g *Gateway) GenerateHint(ctx context.Context, materials []quiz.SourceMaterial, q quiz.Question) string {
	ctx = llm.WithPurpose(ctx, "hint")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: hintSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildHintUserMessage(combineText(materials), q)},
		},
		MaxTokens:   g.config.HintMaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return HintApology
	}

	hint := strings.TrimSpace(string(resp.Content))
	if hint == "" {
		return HintApology
	}
	return hint
}
