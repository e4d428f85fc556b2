package upload

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cogniquest/cogniquest/internal/quiz"
	"github.com/cogniquest/cogniquest/internal/screens"
)

func TestSplitPaths(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"notes.md", []string{"notes.md"}},
		{"notes.md, diagram.png", []string{"notes.md", "diagram.png"}},
		{" a ,, b , ", []string{"a", "b"}},
	}
	for _, tt := range tests {
		if got := splitPaths(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitPaths(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestUpload_SubmitRequiresMaterial(t *testing.T) {
	st := quiz.NewAppState()
	s := New(screens.Deps{State: st})

	_, cmd := s.submit()
	if cmd != nil {
		t.Error("empty form must not start ingestion")
	}
	if s.errMsg == "" {
		t.Error("expected a message asking for material")
	}
}

func TestUpload_PromptOnlySubmissionIngests(t *testing.T) {
	st := quiz.NewAppState()
	s := New(screens.Deps{State: st})
	s.prompt.Model.SetValue("The Krebs cycle turns acetyl-CoA into energy carriers.")

	_, cmd := s.submit()
	if cmd == nil {
		t.Fatal("a typed prompt alone is a valid submission")
	}

	raw := cmd()
	msg, ok := raw.(materialsReadyMsg)
	if !ok {
		t.Fatalf("submit produced %T", raw)
	}
	if msg.Err != nil {
		t.Fatalf("prompt-only ingestion failed: %v", msg.Err)
	}
	if len(msg.Materials) != 1 || msg.Materials[0].Kind != quiz.MaterialText {
		t.Fatalf("materials = %+v, want one text material", msg.Materials)
	}

	s.Update(msg)
	if st.Status != quiz.StatusConfiguring {
		t.Errorf("status = %s, want CONFIGURING", st.Status)
	}
}

func TestUpload_MaterialsReadyAdvances(t *testing.T) {
	st := quiz.NewAppState()
	s := New(screens.Deps{State: st})
	s.ingesting = true

	materials := []quiz.SourceMaterial{{Kind: quiz.MaterialText, FileName: "prompt", Content: "cells"}}
	_, cmd := s.Update(materialsReadyMsg{Materials: materials})

	if st.Status != quiz.StatusConfiguring {
		t.Fatalf("status = %s, want CONFIGURING", st.Status)
	}
	if len(st.SourceMaterials) != 1 {
		t.Errorf("materials = %d, want 1", len(st.SourceMaterials))
	}
	if cmd == nil {
		t.Error("expected a command replacing the screen")
	}
	if s.ingesting {
		t.Error("ingesting flag should clear")
	}
}

func TestUpload_IngestFailureStaysPut(t *testing.T) {
	st := quiz.NewAppState()
	s := New(screens.Deps{State: st})
	s.ingesting = true

	_, cmd := s.Update(materialsReadyMsg{Err: errors.New("no such file: notes.md")})

	if st.Status != quiz.StatusInitial {
		t.Fatalf("status = %s, want still INITIAL", st.Status)
	}
	if s.errMsg == "" {
		t.Error("expected the ingestion error to surface")
	}
	if cmd != nil {
		t.Error("a failed ingest must not navigate away")
	}
}
