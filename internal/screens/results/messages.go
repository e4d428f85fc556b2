package results

import "github.com/cogniquest/cogniquest/internal/quiz"

// historySavedMsg is sent when the attempt has been written to history.
type historySavedMsg struct {
	ID  int
	Err error
}

// summaryReadyMsg is sent when performance-summary generation resolves.
type summaryReadyMsg struct {
	GenID string
	Text  string
	Err   error
}

// flashcardsReadyMsg is sent when flashcard generation resolves.
type flashcardsReadyMsg struct {
	GenID string
	Cards []quiz.Flashcard
	Err   error
}
