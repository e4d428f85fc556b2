package chat

import (
	"encoding/json"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/cogniquest/cogniquest/internal/gateway"
	"github.com/cogniquest/cogniquest/internal/llm"
	"github.com/cogniquest/cogniquest/internal/quiz"
	"github.com/cogniquest/cogniquest/internal/screens"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// chattingState builds a completed attempt with a chat bound to q1.
func chattingState(t *testing.T) *quiz.AppState {
	t.Helper()
	st := quiz.NewAppState()
	st.SourceMaterials = []quiz.SourceMaterial{{Kind: quiz.MaterialText, FileName: "prompt", Content: "cells"}}
	st.Config = quiz.DefaultQuizConfig()
	st.Questions = []quiz.Question{{
		ID:            "q1",
		Type:          quiz.TypeMCQ,
		Prompt:        "Powerhouse?",
		Options:       []string{"Nucleus", "Mitochondrion"},
		CorrectAnswer: "Mitochondrion",
	}}
	answer := "Nucleus"
	st.Answers = map[string]*string{"q1": &answer}
	st.Status = quiz.StatusCompleted
	if err := quiz.StartChat(st, "q1", quiz.ChatStandard); err != nil {
		t.Fatalf("StartChat: %v", err)
	}
	return st
}

func testDeps(st *quiz.AppState, provider *llm.MockProvider) screens.Deps {
	return screens.Deps{
		State:   st,
		Gateway: gateway.New(provider, gateway.DefaultConfig()),
	}
}

// drainStream runs the command chain until the turn completes.
func drainStream(t *testing.T, scr *ChatScreen, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil && i < 100; i++ {
		msg := cmd()
		chunk, ok := msg.(chunkMsg)
		if !ok {
			return
		}
		var next tea.Cmd
		_, next = scr.Update(chunk)
		cmd = next
	}
}

func TestChatScreen_SendStreamsFullResponse(t *testing.T) {
	const reply = "The mitochondrion runs cellular respiration and produces ATP."
	st := chattingState(t)
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(reply)})
	s := New(testDeps(st, provider))

	s.input.SetValue("Why was my answer wrong?")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command opening the stream")
	}

	c := st.Chat
	if len(c.Messages) != 2 {
		t.Fatalf("messages = %d, want user turn plus assistant placeholder", len(c.Messages))
	}
	if !c.Streaming {
		t.Fatal("expected streaming to be in flight")
	}

	drainStream(t, s, cmd)

	if c.Streaming {
		t.Error("streaming flag should be cleared after the final chunk")
	}
	if got := c.Messages[1].Text; got != reply {
		t.Errorf("assistant text = %q, want the full reply", got)
	}
	if c.Messages[0].Role != quiz.ChatRoleUser || c.Messages[0].Text != "Why was my answer wrong?" {
		t.Errorf("user turn = %+v", c.Messages[0])
	}
}

func TestChatScreen_EmptyInputIgnored(t *testing.T) {
	st := chattingState(t)
	s := New(testDeps(st, llm.NewMockProvider()))

	s.input.SetValue("   ")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("blank input must not open a stream")
	}
	if len(st.Chat.Messages) != 0 {
		t.Error("blank input must not append a turn")
	}
}

func TestChatScreen_ProviderFailureApologizes(t *testing.T) {
	st := chattingState(t)
	provider := llm.NewMockProvider(llm.MockResponse{Err: errProvider{}})
	s := New(testDeps(st, provider))

	s.input.SetValue("Help?")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	drainStream(t, s, cmd)

	c := st.Chat
	if c.Streaming {
		t.Error("failed turn should stop streaming")
	}
	if c.Messages[1].Text != gateway.ChatApology {
		t.Errorf("assistant text = %q, want the apology", c.Messages[1].Text)
	}
}

func TestChatScreen_MidStreamFailureReplacesPartialText(t *testing.T) {
	st := chattingState(t)
	s := New(testDeps(st, llm.NewMockProvider()))
	st.Chat.Messages = append(st.Chat.Messages,
		quiz.ChatMessage{Role: quiz.ChatRoleUser, Text: "Explain the Krebs cycle?"},
		quiz.ChatMessage{Role: quiz.ChatRoleAssistant, Text: ""},
	)
	st.Chat.Streaming = true
	genID := st.StampGeneration(quiz.SlotChat)

	s.Update(chunkMsg{GenID: genID, Chunk: llm.StreamChunk{Text: "The Krebs cycle is"}})
	s.Update(chunkMsg{GenID: genID, Chunk: llm.StreamChunk{Text: gateway.ChatApology, Err: errors.New("connection reset")}})
	s.Update(chunkMsg{GenID: genID, Chunk: llm.StreamChunk{Done: true}})

	if got := st.Chat.Messages[1].Text; got != gateway.ChatApology {
		t.Errorf("assistant text = %q, want the partial turn replaced by the apology", got)
	}
	if st.Chat.Streaming {
		t.Error("streaming flag should clear after the turn fails")
	}
}

func TestChatScreen_StaleChunksDropped(t *testing.T) {
	st := chattingState(t)
	s := New(testDeps(st, llm.NewMockProvider()))
	st.Chat.Messages = append(st.Chat.Messages,
		quiz.ChatMessage{Role: quiz.ChatRoleUser, Text: "Hi"},
		quiz.ChatMessage{Role: quiz.ChatRoleAssistant, Text: ""},
	)
	st.StampGeneration(quiz.SlotChat)

	s.Update(chunkMsg{GenID: "stale", Chunk: llm.StreamChunk{Text: "leftover"}})

	if st.Chat.Messages[1].Text != "" {
		t.Error("stale chunk must not land in the transcript")
	}
}

func TestChatScreen_EscReturnsToResults(t *testing.T) {
	st := chattingState(t)
	s := New(testDeps(st, llm.NewMockProvider()))

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if st.Status != quiz.StatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", st.Status)
	}
	if st.Chat != nil {
		t.Error("chat context should be discarded")
	}
	if cmd == nil {
		t.Error("expected a command popping back to results")
	}
}

func TestNextModeCycles(t *testing.T) {
	order := []quiz.ChatMode{quiz.ChatStandard, quiz.ChatSocratic, quiz.ChatELI5, quiz.ChatStandard}
	for i := 0; i < len(order)-1; i++ {
		if got := nextMode(order[i]); got != order[i+1] {
			t.Errorf("nextMode(%s) = %s, want %s", order[i], got, order[i+1])
		}
	}
}

type errProvider struct{}

func (errProvider) Error() string { return "provider down" }
