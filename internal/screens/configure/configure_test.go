package configure

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/cogniquest/cogniquest/internal/quiz"
	"github.com/cogniquest/cogniquest/internal/screens"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func configuringState() *quiz.AppState {
	st := quiz.NewAppState()
	st.SourceMaterials = []quiz.SourceMaterial{{Kind: quiz.MaterialText, FileName: "prompt", Content: "cells"}}
	st.Config = quiz.DefaultQuizConfig()
	st.Status = quiz.StatusConfiguring
	return st
}

func TestConfigure_BuildConfigDefaults(t *testing.T) {
	st := configuringState()
	s := New(screens.Deps{State: st})

	cfg, err := s.buildConfig()
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg != quiz.DefaultQuizConfig() {
		t.Errorf("cfg = %+v, want the defaults unchanged", cfg)
	}
}

func TestConfigure_BuildConfigReadsFields(t *testing.T) {
	st := configuringState()
	s := New(screens.Deps{State: st})

	s.count.SetValue("25")
	s.negative.Next() // On
	s.timerMode.Next() // overall
	s.timerValue.SetValue("30")

	cfg, err := s.buildConfig()
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg.NumQuestions != 25 {
		t.Errorf("questions = %d, want 25", cfg.NumQuestions)
	}
	if !cfg.NegativeMarking || cfg.Penalty != 0.25 {
		t.Errorf("negative marking = %v penalty = %v", cfg.NegativeMarking, cfg.Penalty)
	}
	if cfg.TimerMode != quiz.TimerOverall || cfg.TimerValue != 30 {
		t.Errorf("timer = %s/%d, want overall/30", cfg.TimerMode, cfg.TimerValue)
	}
}

func TestConfigure_TimerValueRequiredWhenTimed(t *testing.T) {
	st := configuringState()
	s := New(screens.Deps{State: st})

	s.timerMode.Next() // overall, but no value entered
	if _, err := s.buildConfig(); err == nil {
		t.Error("expected an error for the missing timer value")
	}
}

func TestConfigure_StartRejectsOutOfRangeCount(t *testing.T) {
	st := configuringState()
	s := New(screens.Deps{State: st})
	s.count.SetValue("3")
	s.focus = rowStart

	_, cmd := s.Update(specialKey(tea.KeyEnter))

	if st.Status != quiz.StatusConfiguring {
		t.Fatalf("status = %s, want still CONFIGURING", st.Status)
	}
	if s.errMsg == "" {
		t.Error("expected a validation message")
	}
	if cmd != nil {
		t.Error("an invalid config must not start generation")
	}
}

func TestConfigure_StartBeginsGeneration(t *testing.T) {
	st := configuringState()
	s := New(screens.Deps{State: st})
	s.focus = rowStart

	_, cmd := s.Update(specialKey(tea.KeyEnter))

	if st.Status != quiz.StatusGenerating {
		t.Fatalf("status = %s, want GENERATING", st.Status)
	}
	if cmd == nil {
		t.Error("expected a command replacing the screen")
	}
}

func TestConfigure_FocusSkipsHiddenRows(t *testing.T) {
	st := configuringState()
	s := New(screens.Deps{State: st})
	s.focus = rowNegative

	// Negative marking off and timer off: penalty and timer value rows
	// are hidden, so the next stops are timer mode then start.
	s.moveFocus(1)
	if s.focus != rowTimerMode {
		t.Fatalf("focus = %d, want timer mode", s.focus)
	}
	s.moveFocus(1)
	if s.focus != rowStart {
		t.Fatalf("focus = %d, want start", s.focus)
	}
}
