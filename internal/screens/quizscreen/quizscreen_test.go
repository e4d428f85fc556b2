package quizscreen

import (
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/cogniquest/cogniquest/internal/gateway"
	"github.com/cogniquest/cogniquest/internal/llm"
	"github.com/cogniquest/cogniquest/internal/quiz"
	"github.com/cogniquest/cogniquest/internal/screens"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func mcq(id, prompt string) quiz.Question {
	return quiz.Question{
		ID:            id,
		Type:          quiz.TypeMCQ,
		Prompt:        prompt,
		Options:       []string{"Nucleus", "Mitochondrion", "Ribosome", "Golgi"},
		CorrectAnswer: "Mitochondrion",
		Explanation:   "It produces ATP.",
		Category:      "Cells",
	}
}

// inProgressState builds a running two-question quiz.
func inProgressState(feedback quiz.FeedbackMode) *quiz.AppState {
	st := quiz.NewAppState()
	st.SourceMaterials = []quiz.SourceMaterial{{Kind: quiz.MaterialText, FileName: "prompt", Content: "cells"}}
	st.Config = quiz.DefaultQuizConfig()
	st.Config.Feedback = feedback
	st.Questions = []quiz.Question{mcq("q1", "First?"), mcq("q2", "Second?")}
	st.Status = quiz.StatusInProgress
	now := time.Now()
	st.StartedAt = &now
	return st
}

func testDeps(st *quiz.AppState) screens.Deps {
	return screens.Deps{
		State:   st,
		Gateway: gateway.New(llm.NewMockProvider(), gateway.DefaultConfig()),
	}
}

func TestQuizScreen_AnswerThenConfidenceAdvances(t *testing.T) {
	st := inProgressState(quiz.FeedbackEnd)
	s := New(testDeps(st), "")

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	ss := scr.(*QuizScreen)
	if !ss.awaitingConfidence {
		t.Fatal("expected confidence prompt after answering")
	}
	if st.Answers["q1"] == nil || *st.Answers["q1"] != "Nucleus" {
		t.Fatalf("recorded answer = %v, want Nucleus", st.Answers["q1"])
	}

	scr, _ = ss.Update(keyPress('3'))
	ss = scr.(*QuizScreen)
	if st.Confidence["q1"] != quiz.ConfidenceConfident {
		t.Errorf("confidence = %q, want Confident", st.Confidence["q1"])
	}
	if st.CurrentIndex != 1 {
		t.Errorf("index = %d, want 1 after advancing", st.CurrentIndex)
	}
	if ss.awaitingConfidence {
		t.Error("confidence prompt should be cleared after advancing")
	}
}

func TestQuizScreen_InstantFeedbackRevealsBeforeAdvancing(t *testing.T) {
	st := inProgressState(quiz.FeedbackInstant)
	s := New(testDeps(st), "")

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress('2'))
	ss := scr.(*QuizScreen)

	if !ss.showFeedback {
		t.Fatal("expected feedback in instant mode")
	}
	if st.CurrentIndex != 0 {
		t.Fatal("should not advance until feedback is dismissed")
	}

	scr, _ = ss.Update(keyPress(' '))
	if st.CurrentIndex != 1 {
		t.Errorf("index = %d, want 1 after dismissing feedback", st.CurrentIndex)
	}
	if scr.(*QuizScreen).showFeedback {
		t.Error("feedback should be cleared on the next question")
	}
}

func TestQuizScreen_NumberKeySelectsOption(t *testing.T) {
	st := inProgressState(quiz.FeedbackEnd)
	s := New(testDeps(st), "")

	scr, _ := s.Update(keyPress('2'))
	if !scr.(*QuizScreen).awaitingConfidence {
		t.Fatal("expected confidence prompt after quick select")
	}
	if st.Answers["q1"] == nil || *st.Answers["q1"] != "Mitochondrion" {
		t.Fatalf("recorded answer = %v, want Mitochondrion", st.Answers["q1"])
	}
}

func TestQuizScreen_SkipRecordsExplicitSkip(t *testing.T) {
	st := inProgressState(quiz.FeedbackEnd)
	s := New(testDeps(st), "")

	s.Update(keyPress('s'))

	a, ok := st.Answers["q1"]
	if !ok || a != nil {
		t.Fatalf("skip should record a present nil answer, got ok=%v a=%v", ok, a)
	}
	if st.CurrentIndex != 1 {
		t.Errorf("index = %d, want 1 after skip", st.CurrentIndex)
	}
}

func TestQuizScreen_LastQuestionFinishes(t *testing.T) {
	st := inProgressState(quiz.FeedbackEnd)
	st.CurrentIndex = 1
	s := New(testDeps(st), "")

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	_, cmd := scr.Update(specialKey(tea.KeyEnter)) // skip confidence

	if st.Status != quiz.StatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", st.Status)
	}
	if st.FinishedAt == nil {
		t.Error("expected the finish timestamp to be recorded")
	}
	if cmd == nil {
		t.Error("expected a navigation command after finishing")
	}
}

func TestQuizScreen_QuitConfirm(t *testing.T) {
	st := inProgressState(quiz.FeedbackEnd)
	s := New(testDeps(st), "")

	scr, _ := s.Update(specialKey(tea.KeyEscape))
	ss := scr.(*QuizScreen)
	if !ss.showQuitConfirm {
		t.Fatal("expected quit confirmation")
	}

	scr, _ = ss.Update(keyPress('n'))
	if scr.(*QuizScreen).showQuitConfirm {
		t.Error("expected quit confirmation dismissed")
	}

	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a command leaving the quiz")
	}
}

func TestQuizScreen_GenerationFailureReturnsToConfigure(t *testing.T) {
	st := inProgressState(quiz.FeedbackEnd)
	st.Status = quiz.StatusConfiguring
	st.Questions = nil
	genID, err := quiz.BeginGeneration(st, st.Config)
	if err != nil {
		t.Fatalf("BeginGeneration: %v", err)
	}

	s := New(testDeps(st), genID)
	_, cmd := s.Update(quizReadyMsg{GenID: genID, Err: errors.New("provider down")})

	if st.Status != quiz.StatusConfiguring {
		t.Fatalf("status = %s, want CONFIGURING", st.Status)
	}
	if st.Err == "" {
		t.Error("expected the failure message on the state")
	}
	if cmd == nil {
		t.Error("expected a navigation command back to configuration")
	}
}

func TestQuizScreen_StaleGenerationDropped(t *testing.T) {
	st := inProgressState(quiz.FeedbackEnd)
	st.Status = quiz.StatusConfiguring
	st.Questions = nil
	genID, err := quiz.BeginGeneration(st, st.Config)
	if err != nil {
		t.Fatalf("BeginGeneration: %v", err)
	}

	s := New(testDeps(st), genID)
	s.Update(quizReadyMsg{GenID: "stale", Title: "Old", Questions: []quiz.Question{mcq("x", "X?")}})

	if st.Status != quiz.StatusGenerating {
		t.Fatalf("status = %s, want GENERATING after stale result", st.Status)
	}
	if len(st.Questions) != 0 {
		t.Error("stale questions must not be applied")
	}
}

func TestQuizScreen_SuccessfulGenerationStartsQuiz(t *testing.T) {
	st := inProgressState(quiz.FeedbackEnd)
	st.Status = quiz.StatusConfiguring
	st.Questions = nil
	genID, err := quiz.BeginGeneration(st, st.Config)
	if err != nil {
		t.Fatalf("BeginGeneration: %v", err)
	}

	s := New(testDeps(st), genID)
	s.Update(quizReadyMsg{GenID: genID, Title: "Cells", Questions: []quiz.Question{mcq("q1", "Q?")}})

	if st.Status != quiz.StatusInProgress {
		t.Fatalf("status = %s, want IN_PROGRESS", st.Status)
	}
	if st.QuizTitle != "Cells" {
		t.Errorf("title = %q, want Cells", st.QuizTitle)
	}
}

func TestQuizScreen_HintApplied(t *testing.T) {
	st := inProgressState(quiz.FeedbackEnd)
	s := New(testDeps(st), "")

	genID := quiz.SetHintLoading(st, "q1")
	s.Update(hintReadyMsg{GenID: genID, QuestionID: "q1", Hint: "Think about energy."})

	if st.Hints["q1"] != "Think about energy." {
		t.Errorf("hint = %q, want it applied", st.Hints["q1"])
	}
	if st.LoadingHints["q1"] {
		t.Error("loading flag should be cleared")
	}
}

func TestQuizScreen_PerQuestionTimerExpirySkips(t *testing.T) {
	st := inProgressState(quiz.FeedbackEnd)
	st.Config.TimerMode = quiz.TimerPerQuestion
	st.Config.TimerValue = 30
	s := New(testDeps(st), "")
	s.questionStart = time.Now().Add(-time.Minute)

	s.Update(timerTickMsg(time.Now()))

	a, ok := st.Answers["q1"]
	if !ok || a != nil {
		t.Fatal("expired question should be recorded as skipped")
	}
	if st.CurrentIndex != 1 {
		t.Errorf("index = %d, want 1 after expiry", st.CurrentIndex)
	}
}

func TestQuizScreen_OverallTimerExpiryFinishes(t *testing.T) {
	st := inProgressState(quiz.FeedbackEnd)
	st.Config.TimerMode = quiz.TimerOverall
	st.Config.TimerValue = 5
	past := time.Now().Add(-10 * time.Minute)
	st.StartedAt = &past
	s := New(testDeps(st), "")

	s.Update(timerTickMsg(time.Now()))

	if st.Status != quiz.StatusCompleted {
		t.Fatalf("status = %s, want COMPLETED after overall expiry", st.Status)
	}
}

func TestQuizScreen_StatusShowsProgress(t *testing.T) {
	st := inProgressState(quiz.FeedbackEnd)
	s := New(testDeps(st), "")
	if got := s.Status(); got != "Q 1/2" {
		t.Errorf("Status() = %q, want %q", got, "Q 1/2")
	}
}
