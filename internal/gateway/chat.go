package gateway

import (
	"context"

	"github.com/cogniquest/cogniquest/internal/llm"
	"github.com/cogniquest/cogniquest/internal/quiz"
)

// ChatApology replaces the assistant turn when the provider fails
// mid-conversation.
const ChatApology = "Sorry, I ran into a problem answering that. Could you try asking again?"

// Chat streams the next assistant turn for the tutoring dialogue. The
// returned channel always terminates with a Done chunk. A provider
// failure at any point, including mid-stream, yields a chunk carrying
// ChatApology with Err set: the caller replaces the partial assistant
// turn with that text instead of appending. Forwarding stops when ctx
// is canceled, so an abandoned reader does not strand the goroutine.
func (g *Gateway) Chat(ctx context.Context, chatCtx quiz.ChatContext, materials []quiz.SourceMaterial) <-chan llm.StreamChunk {
	ctx = llm.WithPurpose(ctx, "chat")

	messages := make([]llm.Message, 0, len(chatCtx.Messages))
	for _, m := range chatCtx.Messages {
		role := llm.RoleUser
		if m.Role == quiz.ChatRoleAssistant {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Text})
	}

	req := llm.Request{
		System:      buildChatSystem(chatCtx, combineText(materials)),
		Messages:    messages,
		MaxTokens:   g.config.ChatMaxTokens,
		Temperature: g.config.Temperature,
	}

	inner, err := llm.OpenStream(ctx, g.provider, req)
	if err != nil {
		return apologyStream(err)
	}

	out := make(chan llm.StreamChunk, 4)
	go func() {
		defer close(out)
		for chunk := range inner {
			if chunk.Err != nil {
				forward(ctx, out, llm.StreamChunk{Text: ChatApology, Err: chunk.Err})
				forward(ctx, out, llm.StreamChunk{Done: true})
				return
			}
			if !forward(ctx, out, chunk) {
				return
			}
		}
	}()
	return out
}

// forward delivers a chunk unless the reader has gone away.
func forward(ctx context.Context, out chan<- llm.StreamChunk, c llm.StreamChunk) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}
	select {
	case out <- c:
		return true
	case <-ctx.Done():
		return false
	}
}

func apologyStream(err error) <-chan llm.StreamChunk {
	ch := make(chan llm.StreamChunk, 2)
	ch <- llm.StreamChunk{Text: ChatApology, Err: err}
	ch <- llm.StreamChunk{Done: true}
	close(ch)
	return ch
}
