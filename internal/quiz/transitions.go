package quiz

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation failures rejected before any state transition.
var (
	ErrNoMaterials = errors.New("add at least one source before continuing")
	ErrEmptyQuiz   = errors.New("the generated quiz contained no questions")
)

// SubmitMaterials moves INITIAL or DASHBOARD to CONFIGURING once at least
// one source material has been provided.
func SubmitMaterials(s *AppState, materials []SourceMaterial) error {
	if s.Status != StatusInitial && s.Status != StatusDashboard {
		return fmt.Errorf("cannot submit materials while %s", s.Status)
	}
	if len(materials) == 0 {
		return ErrNoMaterials
	}
	s.SourceMaterials = materials
	s.Status = StatusConfiguring
	s.Err = ""
	return nil
}

// BeginGeneration validates the config and moves CONFIGURING to
// GENERATING, returning the request ID guarding the pending result.
func BeginGeneration(s *AppState, cfg QuizConfig) (string, error) {
	if s.Status != StatusConfiguring {
		return "", fmt.Errorf("cannot start generation while %s", s.Status)
	}
	if err := cfg.Validate(); err != nil {
		s.Err = err.Error()
		return "", err
	}
	s.Config = cfg
	s.Status = StatusGenerating
	s.Err = ""
	return s.StampGeneration(SlotQuiz), nil
}

// ApplyQuizResult resolves a successful generation: GENERATING moves to
// IN_PROGRESS with answers, confidence, hints, and index reset and the
// start timestamp recorded. Stale results are dropped.
func ApplyQuizResult(s *AppState, genID, title string, questions []Question, now time.Time) bool {
	if s.Status != StatusGenerating || !s.GenerationCurrent(SlotQuiz, genID) {
		return false
	}
	s.clearGeneration(SlotQuiz)
	if len(questions) == 0 {
		s.Status = StatusConfiguring
		s.Err = ErrEmptyQuiz.Error()
		return true
	}
	s.QuizTitle = title
	s.Questions = questions
	resetAttempt(s, now)
	s.Status = StatusInProgress
	return true
}

// FailGeneration resolves a failed generation: back to CONFIGURING with
// the message attached and no quiz data.
func FailGeneration(s *AppState, genID string, genErr error) bool {
	if s.Status != StatusGenerating || !s.GenerationCurrent(SlotQuiz, genID) {
		return false
	}
	s.clearGeneration(SlotQuiz)
	s.Status = StatusConfiguring
	s.Questions = nil
	s.Err = genErr.Error()
	return true
}

// resetAttempt clears all per-attempt state ahead of a (re)take.
func resetAttempt(s *AppState, now time.Time) {
	s.Answers = make(map[string]*string)
	s.Confidence = make(map[string]Confidence)
	s.Hints = make(map[string]string)
	s.LoadingHints = make(map[string]bool)
	s.CurrentIndex = 0
	started := now
	s.StartedAt = &started
	s.FinishedAt = nil
	s.Summary = ""
	s.Flashcards = nil
	s.Chat = nil
	s.Err = ""
	s.ReviewingHistory = false
}

// Answer records the user's answer for a question. An answer that trims
// to empty is normalized to an explicit skip.
func Answer(s *AppState, questionID, answer string) {
	if s.Status != StatusInProgress {
		return
	}
	s.ensureMaps()
	if strings.TrimSpace(answer) == "" {
		s.Answers[questionID] = nil
		return
	}
	a := answer
	s.Answers[questionID] = &a
}

// Skip records an explicit skip, distinct from never-answered only by key
// presence. Both are treated as not attempted by scoring.
func Skip(s *AppState, questionID string) {
	if s.Status != StatusInProgress {
		return
	}
	s.ensureMaps()
	s.Answers[questionID] = nil
}

// SetConfidence records the self-reported confidence for a question.
func SetConfidence(s *AppState, questionID string, c Confidence) {
	if s.Status != StatusInProgress {
		return
	}
	s.ensureMaps()
	s.Confidence[questionID] = c
}

// Next advances to the following question. The index stays in range.
func Next(s *AppState) {
	if s.Status != StatusInProgress {
		return
	}
	if s.CurrentIndex < len(s.Questions)-1 {
		s.CurrentIndex++
	}
}

// Prev moves back one question.
func Prev(s *AppState) {
	if s.Status != StatusInProgress {
		return
	}
	if s.CurrentIndex > 0 {
		s.CurrentIndex--
	}
}

// Finish ends the attempt: manual submit, timer expiry, and skipping the
// last question all arrive here. Records the end timestamp.
func Finish(s *AppState, now time.Time) bool {
	if s.Status != StatusInProgress {
		return false
	}
	finished := now
	s.FinishedAt = &finished
	s.CurrentIndex = 0
	s.Status = StatusCompleted
	return true
}

// SetHintLoading marks hint generation in flight for a question and
// returns the guarding request ID.
func SetHintLoading(s *AppState, questionID string) string {
	s.ensureMaps()
	s.LoadingHints[questionID] = true
	return s.StampGeneration(HintSlot(questionID))
}

// ApplyHint resolves hint generation. A failed hint leaves the hint
// absent and only clears the loading flag.
func ApplyHint(s *AppState, genID, questionID, hint string) bool {
	if !s.GenerationCurrent(HintSlot(questionID), genID) {
		return false
	}
	s.clearGeneration(HintSlot(questionID))
	delete(s.LoadingHints, questionID)
	if hint != "" {
		s.Hints[questionID] = hint
	}
	return true
}

// BeginSummary starts async performance-summary generation on the
// results screen. COMPLETED is retained throughout.
func BeginSummary(s *AppState) (string, error) {
	if s.Status != StatusCompleted {
		return "", fmt.Errorf("cannot generate a summary while %s", s.Status)
	}
	s.GeneratingSummary = true
	s.Err = ""
	return s.StampGeneration(SlotSummary), nil
}

// ApplySummary resolves summary generation with the markdown text.
func ApplySummary(s *AppState, genID, text string) bool {
	if !s.GenerationCurrent(SlotSummary, genID) {
		return false
	}
	s.clearGeneration(SlotSummary)
	s.GeneratingSummary = false
	s.Summary = text
	return true
}

// FailSummary resolves summary generation with a user-facing message.
func FailSummary(s *AppState, genID string, sumErr error) bool {
	if !s.GenerationCurrent(SlotSummary, genID) {
		return false
	}
	s.clearGeneration(SlotSummary)
	s.GeneratingSummary = false
	s.Err = sumErr.Error()
	return true
}

// BeginFlashcards starts async flashcard generation for the questions
// answered incorrectly.
func BeginFlashcards(s *AppState) (string, error) {
	if s.Status != StatusCompleted {
		return "", fmt.Errorf("cannot generate flashcards while %s", s.Status)
	}
	s.GeneratingFlashcards = true
	s.Err = ""
	return s.StampGeneration(SlotFlashcards), nil
}

// ApplyFlashcards resolves flashcard generation. A non-empty result moves
// to FLASHCARDS; an empty incorrect-set stays on COMPLETED.
func ApplyFlashcards(s *AppState, genID string, cards []Flashcard) bool {
	if !s.GenerationCurrent(SlotFlashcards, genID) {
		return false
	}
	s.clearGeneration(SlotFlashcards)
	s.GeneratingFlashcards = false
	if len(cards) == 0 {
		return true
	}
	s.Flashcards = cards
	s.Status = StatusFlashcards
	return true
}

// FailFlashcards resolves flashcard generation failure, staying COMPLETED.
func FailFlashcards(s *AppState, genID string, fcErr error) bool {
	if !s.GenerationCurrent(SlotFlashcards, genID) {
		return false
	}
	s.clearGeneration(SlotFlashcards)
	s.GeneratingFlashcards = false
	s.Err = fcErr.Error()
	return true
}

// ExitFlashcards returns to the results screen.
func ExitFlashcards(s *AppState) {
	if s.Status != StatusFlashcards {
		return
	}
	s.Status = StatusCompleted
}

// StartChat binds a ChatContext for the given question and moves
// COMPLETED to CHATTING.
func StartChat(s *AppState, questionID string, mode ChatMode) error {
	if s.Status != StatusCompleted {
		return fmt.Errorf("cannot start chat while %s", s.Status)
	}
	var q *Question
	for i := range s.Questions {
		if s.Questions[i].ID == questionID {
			q = &s.Questions[i]
			break
		}
	}
	if q == nil {
		return fmt.Errorf("unknown question: %s", questionID)
	}
	s.ensureMaps()
	s.Chat = &ChatContext{
		Question:   *q,
		UserAnswer: s.Answers[q.ID],
		Mode:       mode,
	}
	s.Status = StatusChatting
	return nil
}

// ExitChat discards the ChatContext and returns to the results screen.
func ExitChat(s *AppState) {
	if s.Status != StatusChatting {
		return
	}
	s.Chat = nil
	s.clearGeneration(SlotChat)
	s.Status = StatusCompleted
}

// Retake restarts the same quiz: answers reset, history ID reused so the
// existing record is overwritten on the next submission.
func Retake(s *AppState, now time.Time) error {
	if s.Status != StatusCompleted {
		return fmt.Errorf("cannot retake while %s", s.Status)
	}
	if len(s.Questions) == 0 {
		return errors.New("no quiz to retake")
	}
	resetAttempt(s, now)
	s.Status = StatusInProgress
	return nil
}

// Restart keeps the source materials and returns to configuration for a
// fresh quiz over the same sources.
func Restart(s *AppState) {
	materials := s.SourceMaterials
	cfg := s.Config
	*s = *NewAppState()
	s.SourceMaterials = materials
	s.Config = cfg
	s.Status = StatusConfiguring
}

// ResetToInitial discards everything and returns to the upload screen.
func ResetToInitial(s *AppState) {
	*s = *NewAppState()
}

// GoToDashboard abandons the current flow from any state. Callers are
// responsible for the confirmation gate when leaving IN_PROGRESS.
func GoToDashboard(s *AppState) {
	*s = *NewAppState()
	s.Status = StatusDashboard
}

// HistorySnapshot is the full per-attempt payload persisted with a
// history record and restored on review or retake.
type HistorySnapshot struct {
	Title           string                `json:"title"`
	Questions       []Question            `json:"questions"`
	Answers         map[string]*string    `json:"answers"`
	Confidence      map[string]Confidence `json:"confidence"`
	Config          QuizConfig            `json:"config"`
	SourceMaterials []SourceMaterial      `json:"source_materials,omitempty"`
	Summary         string                `json:"summary,omitempty"`
}

// Snapshot captures the completed attempt for history persistence.
func (s *AppState) Snapshot() HistorySnapshot {
	return HistorySnapshot{
		Title:           s.QuizTitle,
		Questions:       s.Questions,
		Answers:         s.Answers,
		Confidence:      s.Confidence,
		Config:          s.Config,
		SourceMaterials: s.SourceMaterials,
		Summary:         s.Summary,
	}
}

// ReviewHistory loads a past attempt read-only: DASHBOARD moves to
// COMPLETED with mutation side effects disabled. Retake stays available.
func ReviewHistory(s *AppState, historyID int, snap HistorySnapshot) error {
	if s.Status != StatusDashboard {
		return fmt.Errorf("cannot review history while %s", s.Status)
	}
	if len(snap.Questions) == 0 {
		return errors.New("history record has no quiz data")
	}
	*s = *NewAppState()
	s.CurrentHistoryID = historyID
	s.QuizTitle = snap.Title
	s.Questions = snap.Questions
	s.Config = snap.Config
	s.SourceMaterials = snap.SourceMaterials
	s.Summary = snap.Summary
	if snap.Answers != nil {
		s.Answers = snap.Answers
	}
	if snap.Confidence != nil {
		s.Confidence = snap.Confidence
	}
	s.ReviewingHistory = true
	s.Status = StatusCompleted
	return nil
}
