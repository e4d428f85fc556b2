package quizscreen

import (
	"time"

	"github.com/cogniquest/cogniquest/internal/quiz"
)

// quizReadyMsg is sent when quiz generation resolves, success or not.
// GenID guards against stale results from an abandoned generation.
type quizReadyMsg struct {
	GenID     string
	Title     string
	Questions []quiz.Question
	Err       error
}

// hintReadyMsg is sent when a hint request resolves. Hints never fail
// outward; a failed request carries the apology text.
type hintReadyMsg struct {
	GenID      string
	QuestionID string
	Hint       string
}

// timerTickMsg is sent every second while a timer mode is active.
type timerTickMsg time.Time
