package quiz

import "fmt"

// Question count bounds accepted by the configuration screen.
const (
	MinQuestions = 5
	MaxQuestions = 150
)

// TimerMode selects how the quiz is timed.
type TimerMode string

const (
	TimerOff         TimerMode = "off"
	TimerOverall     TimerMode = "overall"      // TimerValue is total minutes
	TimerPerQuestion TimerMode = "per-question" // TimerValue is seconds per question
)

// FeedbackMode selects when correctness is revealed.
type FeedbackMode string

const (
	FeedbackInstant FeedbackMode = "instant"
	FeedbackEnd     FeedbackMode = "end"
)

// Variety constrains which question types the gateway may produce.
type Variety string

const (
	VarietyMixed     Variety = "Mixed"
	VarietyMCQOnly   Variety = "MCQ Only"
	VarietyTrueFalse Variety = "True/False Only"
	VarietyFillBlank Variety = "Fill-in-the-Blank Only"
)

// Complexity is the difficulty tier requested from the gateway.
type Complexity string

const (
	ComplexityEasy   Complexity = "easy"
	ComplexityMedium Complexity = "medium"
	ComplexityHard   Complexity = "hard"
)

// QuizConfig is pure configuration with no identity.
type QuizConfig struct {
	NumQuestions    int          `json:"num_questions"`
	NegativeMarking bool         `json:"negative_marking"`
	Penalty         float64      `json:"penalty"`
	TimerMode       TimerMode    `json:"timer_mode"`
	TimerValue      int          `json:"timer_value"`
	Complexity      Complexity   `json:"complexity"`
	Tone            string       `json:"tone"`
	Feedback        FeedbackMode `json:"feedback"`
	Variety         Variety      `json:"variety"`
}

// DefaultQuizConfig returns the configuration preselected on the
// configuration screen.
func DefaultQuizConfig() QuizConfig {
	return QuizConfig{
		NumQuestions: 10,
		Penalty:      0.25,
		TimerMode:    TimerOff,
		Complexity:   ComplexityMedium,
		Tone:         "neutral",
		Feedback:     FeedbackEnd,
		Variety:      VarietyMixed,
	}
}

// Validate rejects out-of-range configurations before any transition.
func (c QuizConfig) Validate() error {
	if c.NumQuestions < MinQuestions || c.NumQuestions > MaxQuestions {
		return fmt.Errorf("question count must be between %d and %d, got %d", MinQuestions, MaxQuestions, c.NumQuestions)
	}
	if c.NegativeMarking && c.Penalty <= 0 {
		return fmt.Errorf("negative marking requires a positive penalty, got %g", c.Penalty)
	}
	switch c.TimerMode {
	case TimerOff:
	case TimerOverall, TimerPerQuestion:
		if c.TimerValue <= 0 {
			return fmt.Errorf("timer mode %q requires a positive value, got %d", c.TimerMode, c.TimerValue)
		}
	default:
		return fmt.Errorf("unknown timer mode: %q", c.TimerMode)
	}
	switch c.Variety {
	case VarietyMixed, VarietyMCQOnly, VarietyTrueFalse, VarietyFillBlank:
	default:
		return fmt.Errorf("unknown question variety: %q", c.Variety)
	}
	return nil
}
