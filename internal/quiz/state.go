package quiz

import (
	"time"

	"github.com/google/uuid"
)

// Status is the single active screen-flow state.
type Status string

const (
	StatusInitial     Status = "INITIAL"
	StatusDashboard   Status = "DASHBOARD"
	StatusConfiguring Status = "CONFIGURING"
	StatusGenerating  Status = "GENERATING"
	StatusInProgress  Status = "IN_PROGRESS"
	StatusCompleted   Status = "COMPLETED"
	StatusChatting    Status = "CHATTING"
	StatusFlashcards  Status = "FLASHCARDS"
)

// Async generation slots. Each slot carries at most one outstanding
// request ID; results arriving with any other ID are stale and dropped.
const (
	SlotQuiz       = "quiz"
	SlotSummary    = "summary"
	SlotFlashcards = "flashcards"
	SlotChat       = "chat"
)

// HintSlot returns the generation slot name for a single question's hint.
func HintSlot(questionID string) string {
	return "hint:" + questionID
}

// AppState is the singleton state container, one per session. It is owned
// by the update loop; screens receive it read-only and apply mutations
// through the transition functions in this package.
type AppState struct {
	Status Status `json:"status"`

	SourceMaterials []SourceMaterial `json:"source_materials,omitempty"`
	Config          QuizConfig       `json:"config"`
	QuizTitle       string           `json:"quiz_title,omitempty"`

	// CurrentHistoryID references the history record for this attempt.
	// Zero until the first submission of a fresh quiz.
	CurrentHistoryID int `json:"current_history_id,omitempty"`

	Questions []Question `json:"questions,omitempty"`

	// Answers maps question ID to the recorded answer. A key present with
	// a nil value is an explicit skip; an absent key means never answered.
	// Both count as not attempted.
	Answers    map[string]*string    `json:"answers,omitempty"`
	Confidence map[string]Confidence `json:"confidence,omitempty"`

	CurrentIndex int        `json:"current_index"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`

	Chat *ChatContext `json:"chat,omitempty"`

	Hints        map[string]string `json:"hints,omitempty"`
	LoadingHints map[string]bool   `json:"-"`

	Summary              string      `json:"summary,omitempty"`
	GeneratingSummary    bool        `json:"-"`
	GeneratingFlashcards bool        `json:"-"`
	Flashcards           []Flashcard `json:"flashcards,omitempty"`

	// Err is a user-facing message from the most recent failure.
	Err string `json:"-"`

	// ReviewingHistory disables mutation side effects while browsing a
	// past attempt from the dashboard.
	ReviewingHistory bool `json:"reviewing_history,omitempty"`

	// genIDs tracks the latest outstanding request per slot. Not
	// persisted: any in-flight generation is abandoned across restarts.
	genIDs map[string]string
}

// NewAppState returns a fresh state at the upload screen.
func NewAppState() *AppState {
	return &AppState{
		Status:       StatusInitial,
		Config:       DefaultQuizConfig(),
		Answers:      make(map[string]*string),
		Confidence:   make(map[string]Confidence),
		Hints:        make(map[string]string),
		LoadingHints: make(map[string]bool),
		genIDs:       make(map[string]string),
	}
}

// ensureMaps re-initializes map fields after a JSON round trip.
func (s *AppState) ensureMaps() {
	if s.Answers == nil {
		s.Answers = make(map[string]*string)
	}
	if s.Confidence == nil {
		s.Confidence = make(map[string]Confidence)
	}
	if s.Hints == nil {
		s.Hints = make(map[string]string)
	}
	if s.LoadingHints == nil {
		s.LoadingHints = make(map[string]bool)
	}
	if s.genIDs == nil {
		s.genIDs = make(map[string]string)
	}
}

// StampGeneration records a fresh request ID for the slot and returns it.
func (s *AppState) StampGeneration(slot string) string {
	s.ensureMaps()
	id := uuid.New().String()
	s.genIDs[slot] = id
	return id
}

// GenerationCurrent reports whether id is still the latest outstanding
// request for the slot.
func (s *AppState) GenerationCurrent(slot, id string) bool {
	s.ensureMaps()
	return id != "" && s.genIDs[slot] == id
}

// clearGeneration forgets the outstanding request for the slot.
func (s *AppState) clearGeneration(slot string) {
	s.ensureMaps()
	delete(s.genIDs, slot)
}

// QuestionAt returns the question at index, or nil if out of range.
func (s *AppState) QuestionAt(i int) *Question {
	if i < 0 || i >= len(s.Questions) {
		return nil
	}
	return &s.Questions[i]
}

// CurrentQuestion returns the question at the current index.
func (s *AppState) CurrentQuestion() *Question {
	return s.QuestionAt(s.CurrentIndex)
}
