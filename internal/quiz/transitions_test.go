package quiz

import (
	"errors"
	"testing"
	"time"
)

func textMaterial() []SourceMaterial {
	return []SourceMaterial{{Kind: MaterialText, FileName: "notes.txt", Content: "Photosynthesis converts light into energy."}}
}

// advanceToGenerating walks a fresh state to GENERATING and returns the
// stamped generation ID.
func advanceToGenerating(t *testing.T, s *AppState) string {
	t.Helper()
	if err := SubmitMaterials(s, textMaterial()); err != nil {
		t.Fatalf("SubmitMaterials: %v", err)
	}
	genID, err := BeginGeneration(s, DefaultQuizConfig())
	if err != nil {
		t.Fatalf("BeginGeneration: %v", err)
	}
	return genID
}

func TestSubmitMaterials_RejectsEmpty(t *testing.T) {
	s := NewAppState()
	if err := SubmitMaterials(s, nil); !errors.Is(err, ErrNoMaterials) {
		t.Fatalf("err = %v, want ErrNoMaterials", err)
	}
	if s.Status != StatusInitial {
		t.Errorf("status = %s, want INITIAL (no transition on validation failure)", s.Status)
	}
}

func TestBeginGeneration_RejectsInvalidConfig(t *testing.T) {
	s := NewAppState()
	if err := SubmitMaterials(s, textMaterial()); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultQuizConfig()
	cfg.NumQuestions = 2 // below minimum
	if _, err := BeginGeneration(s, cfg); err == nil {
		t.Fatal("expected validation error")
	}
	if s.Status != StatusConfiguring {
		t.Errorf("status = %s, want CONFIGURING", s.Status)
	}
}

func TestApplyQuizResult_MovesToInProgress(t *testing.T) {
	s := NewAppState()
	genID := advanceToGenerating(t, s)

	now := time.Now()
	if !ApplyQuizResult(s, genID, "Photosynthesis Basics", sampleQuestions(), now) {
		t.Fatal("result with current genID must apply")
	}
	if s.Status != StatusInProgress {
		t.Fatalf("status = %s, want IN_PROGRESS", s.Status)
	}
	if s.QuizTitle != "Photosynthesis Basics" {
		t.Errorf("title = %q", s.QuizTitle)
	}
	if s.CurrentIndex != 0 || len(s.Answers) != 0 || len(s.Confidence) != 0 || len(s.Hints) != 0 {
		t.Error("attempt state not reset")
	}
	if s.StartedAt == nil || !s.StartedAt.Equal(now) {
		t.Error("start timestamp not recorded")
	}
}

func TestApplyQuizResult_DropsStaleResult(t *testing.T) {
	s := NewAppState()
	_ = advanceToGenerating(t, s)
	stale := "not-the-current-id"
	if ApplyQuizResult(s, stale, "T", sampleQuestions(), time.Now()) {
		t.Fatal("stale result must be dropped")
	}
	if s.Status != StatusGenerating {
		t.Errorf("status = %s, want GENERATING", s.Status)
	}
}

func TestFailGeneration_ReturnsToConfiguringWithError(t *testing.T) {
	s := NewAppState()
	genID := advanceToGenerating(t, s)

	if !FailGeneration(s, genID, errors.New("provider unavailable")) {
		t.Fatal("failure with current genID must apply")
	}
	if s.Status != StatusConfiguring {
		t.Errorf("status = %s, want CONFIGURING", s.Status)
	}
	if s.Err == "" {
		t.Error("expected non-empty error message")
	}
	if s.Questions != nil {
		t.Error("quiz data must remain nil after a failed generation")
	}
}

func TestApplyQuizResult_EmptyQuizRejected(t *testing.T) {
	s := NewAppState()
	genID := advanceToGenerating(t, s)

	if !ApplyQuizResult(s, genID, "Empty", nil, time.Now()) {
		t.Fatal("expected result to be consumed")
	}
	if s.Status != StatusConfiguring {
		t.Errorf("status = %s, want CONFIGURING", s.Status)
	}
	if s.Err == "" {
		t.Error("expected validation message for empty quiz")
	}
}

func startedQuiz(t *testing.T) *AppState {
	t.Helper()
	s := NewAppState()
	genID := advanceToGenerating(t, s)
	if !ApplyQuizResult(s, genID, "Sample", sampleQuestions(), time.Now()) {
		t.Fatal("ApplyQuizResult failed")
	}
	return s
}

func TestAnswerNormalizesEmptyToSkip(t *testing.T) {
	s := startedQuiz(t)
	Answer(s, "q1", "   ")
	a, present := s.Answers["q1"]
	if !present || a != nil {
		t.Errorf("empty answer should be stored as explicit skip, got present=%t value=%v", present, a)
	}
}

func TestNavigationStaysInRange(t *testing.T) {
	s := startedQuiz(t)
	Prev(s)
	if s.CurrentIndex != 0 {
		t.Errorf("index = %d, want 0", s.CurrentIndex)
	}
	for range 10 {
		Next(s)
	}
	if s.CurrentIndex != len(s.Questions)-1 {
		t.Errorf("index = %d, want %d", s.CurrentIndex, len(s.Questions)-1)
	}
}

func TestFinishRecordsEndTimestamp(t *testing.T) {
	s := startedQuiz(t)
	now := time.Now()
	if !Finish(s, now) {
		t.Fatal("Finish failed")
	}
	if s.Status != StatusCompleted {
		t.Errorf("status = %s, want COMPLETED", s.Status)
	}
	if s.FinishedAt == nil || !s.FinishedAt.Equal(now) {
		t.Error("end timestamp not recorded")
	}
}

func TestRetakeReusesHistoryID(t *testing.T) {
	s := startedQuiz(t)
	Finish(s, time.Now())
	s.CurrentHistoryID = 7
	Answer(s, "q1", "A")

	if err := Retake(s, time.Now()); err != nil {
		t.Fatalf("Retake: %v", err)
	}
	if s.Status != StatusInProgress {
		t.Errorf("status = %s, want IN_PROGRESS", s.Status)
	}
	if s.CurrentHistoryID != 7 {
		t.Errorf("history id = %d, want 7 (reused)", s.CurrentHistoryID)
	}
	if len(s.Answers) != 0 {
		t.Error("answers must be reset on retake")
	}
}

func TestFreshQuizHasNoHistoryID(t *testing.T) {
	s := startedQuiz(t)
	if s.CurrentHistoryID != 0 {
		t.Errorf("history id = %d, want 0 before first submission", s.CurrentHistoryID)
	}
}

func TestStartChatBindsContext(t *testing.T) {
	s := startedQuiz(t)
	Answer(s, "q2", "False")
	Finish(s, time.Now())

	if err := StartChat(s, "q2", ChatSocratic); err != nil {
		t.Fatalf("StartChat: %v", err)
	}
	if s.Status != StatusChatting {
		t.Fatalf("status = %s, want CHATTING", s.Status)
	}
	if s.Chat == nil || s.Chat.Question.ID != "q2" {
		t.Fatal("chat context not bound to question")
	}
	if s.Chat.UserAnswer == nil || *s.Chat.UserAnswer != "False" {
		t.Error("recorded answer not captured in chat context")
	}

	ExitChat(s)
	if s.Status != StatusCompleted || s.Chat != nil {
		t.Error("exit chat must discard the context and return to COMPLETED")
	}
}

func TestFlashcardsEmptyStaysCompleted(t *testing.T) {
	s := startedQuiz(t)
	Finish(s, time.Now())

	genID, err := BeginFlashcards(s)
	if err != nil {
		t.Fatal(err)
	}
	if !ApplyFlashcards(s, genID, nil) {
		t.Fatal("expected result to be consumed")
	}
	if s.Status != StatusCompleted {
		t.Errorf("status = %s, want COMPLETED for empty card set", s.Status)
	}
}

func TestFlashcardsNonEmptyTransitions(t *testing.T) {
	s := startedQuiz(t)
	Finish(s, time.Now())

	genID, _ := BeginFlashcards(s)
	cards := []Flashcard{{Front: "Capital of France?", Back: "Paris"}}
	if !ApplyFlashcards(s, genID, cards) {
		t.Fatal("expected result to be consumed")
	}
	if s.Status != StatusFlashcards {
		t.Errorf("status = %s, want FLASHCARDS", s.Status)
	}

	ExitFlashcards(s)
	if s.Status != StatusCompleted {
		t.Errorf("status = %s, want COMPLETED", s.Status)
	}
}

func TestSummaryFailureKeepsCompleted(t *testing.T) {
	s := startedQuiz(t)
	Finish(s, time.Now())

	genID, _ := BeginSummary(s)
	if !FailSummary(s, genID, errors.New("rate limited")) {
		t.Fatal("expected failure to be consumed")
	}
	if s.Status != StatusCompleted {
		t.Errorf("status = %s, want COMPLETED", s.Status)
	}
	if s.GeneratingSummary {
		t.Error("generating flag must clear")
	}
	if s.Err == "" {
		t.Error("expected user-facing message")
	}
}

func TestHintFailureOnlyClearsLoadingFlag(t *testing.T) {
	s := startedQuiz(t)
	genID := SetHintLoading(s, "q1")
	if !s.LoadingHints["q1"] {
		t.Fatal("loading flag not set")
	}
	if !ApplyHint(s, genID, "q1", "") {
		t.Fatal("expected hint result to be consumed")
	}
	if s.LoadingHints["q1"] {
		t.Error("loading flag must clear")
	}
	if _, present := s.Hints["q1"]; present {
		t.Error("failed hint must leave the hint absent")
	}
}

func TestReviewHistoryIsReadOnly(t *testing.T) {
	s := NewAppState()
	GoToDashboard(s)

	snap := HistorySnapshot{
		Title:     "Old Quiz",
		Questions: sampleQuestions(),
		Answers:   map[string]*string{"q1": ptr("A")},
		Config:    DefaultQuizConfig(),
	}
	if err := ReviewHistory(s, 3, snap); err != nil {
		t.Fatalf("ReviewHistory: %v", err)
	}
	if s.Status != StatusCompleted {
		t.Errorf("status = %s, want COMPLETED", s.Status)
	}
	if !s.ReviewingHistory {
		t.Error("ReviewingHistory must be set")
	}
	if s.CurrentHistoryID != 3 {
		t.Errorf("history id = %d, want 3", s.CurrentHistoryID)
	}

	// A review still permits retaking the same record.
	if err := Retake(s, time.Now()); err != nil {
		t.Fatalf("Retake after review: %v", err)
	}
	if s.ReviewingHistory {
		t.Error("retake must clear the review flag")
	}
	if s.CurrentHistoryID != 3 {
		t.Error("retake must keep the history id")
	}
}

func TestGoToDashboardFromAnyState(t *testing.T) {
	s := startedQuiz(t)
	GoToDashboard(s)
	if s.Status != StatusDashboard {
		t.Errorf("status = %s, want DASHBOARD", s.Status)
	}
	if s.Questions != nil {
		t.Error("quiz data must be cleared")
	}
}

func TestRestartKeepsMaterials(t *testing.T) {
	s := startedQuiz(t)
	Finish(s, time.Now())
	Restart(s)
	if s.Status != StatusConfiguring {
		t.Errorf("status = %s, want CONFIGURING", s.Status)
	}
	if len(s.SourceMaterials) == 0 {
		t.Error("restart must keep source materials")
	}
	if s.Questions != nil {
		t.Error("restart must drop the old quiz")
	}
}

func TestQuizDataNonNilInQuizStates(t *testing.T) {
	s := startedQuiz(t)
	for _, step := range []func(){
		func() { Finish(s, time.Now()) },
		func() { _ = StartChat(s, "q1", ChatStandard) },
		func() { ExitChat(s) },
	} {
		step()
		switch s.Status {
		case StatusInProgress, StatusCompleted, StatusChatting, StatusFlashcards:
			if s.Questions == nil {
				t.Fatalf("quiz data nil while %s", s.Status)
			}
		}
	}
}
