package app

import (
	"testing"
	"time"

	"github.com/cogniquest/cogniquest/internal/quiz"
	"github.com/cogniquest/cogniquest/internal/screens"
	"github.com/cogniquest/cogniquest/internal/screens/configure"
	"github.com/cogniquest/cogniquest/internal/screens/dashboard"
	"github.com/cogniquest/cogniquest/internal/screens/quizscreen"
	"github.com/cogniquest/cogniquest/internal/screens/results"
	"github.com/cogniquest/cogniquest/internal/screens/upload"
)

func restoredState(status quiz.Status) *quiz.AppState {
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
	started := time.Now()
	st.StartedAt = &started
	st.Status = status
	return st
}

func TestInitialScreen_ResumesInProgressQuiz(t *testing.T) {
	st := restoredState(quiz.StatusInProgress)
	scr := initialScreen(screens.Deps{State: st})

	if _, ok := scr.(*quizscreen.QuizScreen); !ok {
		t.Fatalf("initial screen = %T, want the quiz screen", scr)
	}
	if st.Status != quiz.StatusInProgress {
		t.Errorf("status = %s, want IN_PROGRESS preserved", st.Status)
	}
}

func TestInitialScreen_InterruptedGenerationReturnsToConfigure(t *testing.T) {
	st := restoredState(quiz.StatusGenerating)
	st.Questions = nil
	scr := initialScreen(screens.Deps{State: st})

	if _, ok := scr.(*configure.ConfigureScreen); !ok {
		t.Fatalf("initial screen = %T, want the configuration screen", scr)
	}
	if st.Status != quiz.StatusConfiguring {
		t.Errorf("status = %s, want CONFIGURING", st.Status)
	}
	if st.Err == "" {
		t.Error("expected an interruption message on the state")
	}
}

func TestInitialScreen_ChattingResumesAtResults(t *testing.T) {
	st := restoredState(quiz.StatusChatting)
	st.Chat = &quiz.ChatContext{Question: st.Questions[0]}
	scr := initialScreen(screens.Deps{State: st})

	if _, ok := scr.(*results.ResultsScreen); !ok {
		t.Fatalf("initial screen = %T, want the results screen", scr)
	}
	if st.Status != quiz.StatusCompleted {
		t.Errorf("status = %s, want COMPLETED", st.Status)
	}
	if st.Chat != nil {
		t.Error("chat context should be discarded on resume")
	}
}

func TestInitialScreen_FreshStateStartsAtUpload(t *testing.T) {
	st := quiz.NewAppState()
	scr := initialScreen(screens.Deps{State: st})

	if _, ok := scr.(*upload.UploadScreen); !ok {
		t.Fatalf("initial screen = %T, want the upload screen", scr)
	}
}

func TestInitialScreen_DashboardFallback(t *testing.T) {
	st := quiz.NewAppState()
	st.Status = quiz.StatusDashboard
	scr := initialScreen(screens.Deps{State: st})

	if _, ok := scr.(*dashboard.DashboardScreen); !ok {
		t.Fatalf("initial screen = %T, want the dashboard", scr)
	}
}
