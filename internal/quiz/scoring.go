package quiz

import "strings"

// Result aggregates scoring for one completed attempt.
type Result struct {
	Total     int
	Attempted int
	Correct   int
	Incorrect int
	Skipped   int

	// Score is max(0, correct - penalty*incorrect) under negative
	// marking, otherwise the raw correct count.
	Score float64

	// Accuracy is correct/attempted as a percentage, 0 when nothing
	// was attempted.
	Accuracy float64

	// BlindSpots counts questions answered incorrectly while confidence
	// was "Confident".
	BlindSpots int

	// ByCategory maps category label to [correct, total] tallies.
	ByCategory map[string][2]int

	// IncorrectQuestions feed flashcard generation.
	IncorrectQuestions []Question
}

// IsCorrect checks an answer against a question. MCQ and True/False use
// exact string match; Fill-in-the-Blank is trimmed and case-insensitive.
func IsCorrect(q Question, answer string) bool {
	if q.Type == TypeFillBlank {
		return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.CorrectAnswer))
	}
	return answer == q.CorrectAnswer
}

// attempted reports whether a recorded answer counts as an attempt.
// A nil value (explicit skip), an absent key, and a value that trims to
// empty are all "not attempted".
func attempted(answers map[string]*string, questionID string) (string, bool) {
	a, ok := answers[questionID]
	if !ok || a == nil {
		return "", false
	}
	if strings.TrimSpace(*a) == "" {
		return "", false
	}
	return *a, true
}

// Evaluate scores an attempt. Used on the results screen and when saving
// history.
func Evaluate(questions []Question, answers map[string]*string, confidence map[string]Confidence, cfg QuizConfig) Result {
	r := Result{
		Total:      len(questions),
		ByCategory: make(map[string][2]int),
	}

	for _, q := range questions {
		cat := q.Category
		if cat == "" {
			cat = "General"
		}
		tally := r.ByCategory[cat]
		tally[1]++

		answer, ok := attempted(answers, q.ID)
		if !ok {
			r.Skipped++
			r.ByCategory[cat] = tally
			continue
		}
		r.Attempted++
		if IsCorrect(q, answer) {
			r.Correct++
			tally[0]++
		} else {
			r.Incorrect++
			r.IncorrectQuestions = append(r.IncorrectQuestions, q)
			if confidence[q.ID] == ConfidenceConfident {
				r.BlindSpots++
			}
		}
		r.ByCategory[cat] = tally
	}

	r.Score = float64(r.Correct)
	if cfg.NegativeMarking {
		r.Score -= float64(r.Incorrect) * cfg.Penalty
	}
	if r.Score < 0 {
		r.Score = 0
	}

	if r.Attempted > 0 {
		r.Accuracy = float64(r.Correct) / float64(r.Attempted) * 100
	}

	return r
}
