package quiz

import (
	"math"
	"testing"
)

func ptr(s string) *string { return &s }

func sampleQuestions() []Question {
	return []Question{
		{ID: "q1", Type: TypeMCQ, Prompt: "Pick A", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "A", Category: "Basics"},
		{ID: "q2", Type: TypeTrueFalse, Prompt: "Sky is blue", Options: []string{"True", "False"}, CorrectAnswer: "True", Category: "Basics"},
		{ID: "q3", Type: TypeFillBlank, Prompt: "Capital of France?", CorrectAnswer: "Paris", Category: "Geo"},
	}
}

func TestIsCorrect_ExactMatchForMCQAndTrueFalse(t *testing.T) {
	mcq := Question{Type: TypeMCQ, CorrectAnswer: "A"}
	if !IsCorrect(mcq, "A") {
		t.Error("exact MCQ match should be correct")
	}
	if IsCorrect(mcq, "a") {
		t.Error("MCQ match must be case-sensitive")
	}
	if IsCorrect(mcq, " A") {
		t.Error("MCQ match must not trim")
	}

	tf := Question{Type: TypeTrueFalse, CorrectAnswer: "True"}
	if IsCorrect(tf, "true") {
		t.Error("True/False match must be case-sensitive")
	}
}

func TestIsCorrect_FillBlankTrimsAndIgnoresCase(t *testing.T) {
	q := Question{Type: TypeFillBlank, CorrectAnswer: "Paris"}
	for _, answer := range []string{"Paris", "paris", "  PARIS  ", "pArIs"} {
		if !IsCorrect(q, answer) {
			t.Errorf("expected %q to be accepted", answer)
		}
	}
	if IsCorrect(q, "Pari") {
		t.Error("wrong answer accepted")
	}
}

func TestEvaluate_ScoreNeverNegative(t *testing.T) {
	questions := sampleQuestions()
	answers := map[string]*string{
		"q1": ptr("B"),
		"q2": ptr("False"),
		"q3": ptr("London"),
	}
	cfg := QuizConfig{NegativeMarking: true, Penalty: 100}

	r := Evaluate(questions, answers, nil, cfg)
	if r.Score != 0 {
		t.Errorf("score = %g, want 0 (clamped)", r.Score)
	}
	if r.Incorrect != 3 {
		t.Errorf("incorrect = %d, want 3", r.Incorrect)
	}
}

func TestEvaluate_SkippedAndAbsentBothNotAttempted(t *testing.T) {
	questions := sampleQuestions()
	answers := map[string]*string{
		"q1": nil,      // explicit skip
		"q2": ptr(" "), // answered with whitespace only
		// q3 absent entirely
	}

	r := Evaluate(questions, answers, nil, QuizConfig{})
	if r.Attempted != 0 {
		t.Errorf("attempted = %d, want 0", r.Attempted)
	}
	if r.Skipped != 3 {
		t.Errorf("skipped = %d, want 3", r.Skipped)
	}
	if r.Correct != 0 || r.Incorrect != 0 {
		t.Errorf("correct/incorrect = %d/%d, want 0/0", r.Correct, r.Incorrect)
	}
	if r.Accuracy != 0 {
		t.Errorf("accuracy = %g, want 0", r.Accuracy)
	}
	if r.Score != 0 {
		t.Errorf("score = %g, want 0", r.Score)
	}
}

func TestEvaluate_AllCorrectNoNegativeMarking(t *testing.T) {
	questions := sampleQuestions()
	answers := map[string]*string{
		"q1": ptr("A"),
		"q2": ptr("True"),
		"q3": ptr("paris"),
	}

	r := Evaluate(questions, answers, nil, QuizConfig{NegativeMarking: false})
	if r.Score != float64(len(questions)) {
		t.Errorf("score = %g, want %d", r.Score, len(questions))
	}
	if math.Abs(r.Accuracy-100) > 1e-9 {
		t.Errorf("accuracy = %g, want 100", r.Accuracy)
	}
}

func TestEvaluate_BlindSpots(t *testing.T) {
	questions := sampleQuestions()
	answers := map[string]*string{
		"q1": ptr("B"),     // wrong, confident
		"q2": ptr("False"), // wrong, unsure
		"q3": ptr("Paris"), // right, confident
	}
	confidence := map[string]Confidence{
		"q1": ConfidenceConfident,
		"q2": ConfidenceUnsure,
		"q3": ConfidenceConfident,
	}

	r := Evaluate(questions, answers, confidence, QuizConfig{})
	if r.BlindSpots != 1 {
		t.Errorf("blind spots = %d, want 1", r.BlindSpots)
	}
}

func TestEvaluate_NegativeMarkingPenalty(t *testing.T) {
	questions := sampleQuestions()
	answers := map[string]*string{
		"q1": ptr("A"),
		"q2": ptr("True"),
		"q3": ptr("London"),
	}
	cfg := QuizConfig{NegativeMarking: true, Penalty: 0.5}

	r := Evaluate(questions, answers, nil, cfg)
	if math.Abs(r.Score-1.5) > 1e-9 {
		t.Errorf("score = %g, want 1.5", r.Score)
	}
}

func TestEvaluate_CategoryTallies(t *testing.T) {
	questions := sampleQuestions()
	answers := map[string]*string{
		"q1": ptr("A"),
		"q2": ptr("False"),
		"q3": ptr("Paris"),
	}

	r := Evaluate(questions, answers, nil, QuizConfig{})
	basics := r.ByCategory["Basics"]
	if basics != [2]int{1, 2} {
		t.Errorf("Basics tally = %v, want [1 2]", basics)
	}
	geo := r.ByCategory["Geo"]
	if geo != [2]int{1, 1} {
		t.Errorf("Geo tally = %v, want [1 1]", geo)
	}
	if len(r.IncorrectQuestions) != 1 || r.IncorrectQuestions[0].ID != "q2" {
		t.Errorf("incorrect questions = %v, want [q2]", r.IncorrectQuestions)
	}
}
