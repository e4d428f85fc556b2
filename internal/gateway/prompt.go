package gateway

import (
	"fmt"
	"strings"

	"github.com/cogniquest/cogniquest/internal/quiz"
)

const quizSystemPrompt = `You are an expert quiz author turning study material into assessment questions.

Rules:
- Generate questions strictly grounded in the provided material. Never invent facts the material does not support.
- Each question must be self-contained: answerable without seeing the other questions.
- For MCQ, provide exactly 4 options where exactly one is correct. Distractors should reflect plausible misconceptions, not random values.
- For True/False, the options array must be exactly ["True", "False"].
- For Fill-in-the-Blank, leave options empty and keep the expected answer short (one word or a short phrase).
- correct_answer must match one option verbatim for MCQ and True/False.
- Every question gets a short category label so related questions group together in the results breakdown.
- The explanation should teach: state why the correct answer is right and, where useful, why the tempting wrong answer is wrong.
- Match the requested difficulty and tone.`

const hintSystemPrompt = `You are a helpful tutor. Give a single short hint that nudges the learner toward the answer without revealing it. One or two sentences, no preamble.`

const summarySystemPrompt = `You are a supportive learning coach reviewing a completed quiz. Write a concise markdown performance summary with:
- An overall assessment in an encouraging tone.
- Strengths: categories the learner did well in.
- Focus areas: categories with mistakes, especially questions missed while the learner felt confident (blind spots).
- Two or three concrete study suggestions.
Keep it under 300 words. Address the learner directly.`

const flashcardSystemPrompt = `You are creating study flashcards from quiz questions the learner got wrong. For each missed concept produce one card: the front is a cue (term or question), the back is a concise explanation of the correct idea. Do not copy the quiz question verbatim; extract the underlying concept.`

// chatSystemPrompts maps each tutoring mode to its system framing. The
// mode changes only this framing, never the interface shape.
var chatSystemPrompts = map[quiz.ChatMode]string{
	quiz.ChatStandard: `You are a knowledgeable, friendly tutor discussing one quiz question with a learner. Ground every answer in the source material and the question's explanation. Be direct and concise.`,
	quiz.ChatSocratic: `You are a Socratic tutor discussing one quiz question with a learner. Never state the answer or explanation outright. Respond with guiding questions that lead the learner to discover the reasoning themselves. Keep each turn short.`,
	quiz.ChatELI5: `You are a patient tutor discussing one quiz question with a learner. Explain everything as you would to a young child: simple words, everyday analogies, no jargon. Stay grounded in the source material.`,
}

// buildQuizUserMessage assembles the generation request for one chunk of
// material.
func buildQuizUserMessage(material string, count int, cfg quiz.QuizConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Number of questions: %d\n", count)
	fmt.Fprintf(&b, "Difficulty: %s\n", cfg.Complexity)
	fmt.Fprintf(&b, "Tone: %s\n", cfg.Tone)
	fmt.Fprintf(&b, "Question variety: %s\n", varietyInstruction(cfg.Variety))

	b.WriteString("\nMaterial:\n")
	b.WriteString(material)

	return b.String()
}

func varietyInstruction(v quiz.Variety) string {
	switch v {
	case quiz.VarietyMCQOnly:
		return "MCQ only"
	case quiz.VarietyTrueFalse:
		return "True/False only"
	case quiz.VarietyFillBlank:
		return "Fill-in-the-Blank only"
	default:
		return "a mix of MCQ, True/False, and Fill-in-the-Blank"
	}
}

// buildHintUserMessage frames a single question for hint generation.
func buildHintUserMessage(material string, q quiz.Question) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", q.Prompt)
	if len(q.Options) > 0 {
		fmt.Fprintf(&b, "Options: %s\n", strings.Join(q.Options, " | "))
	}

	b.WriteString("\nMaterial:\n")
	b.WriteString(material)

	return b.String()
}

// buildSummaryUserMessage lays out the full attempt for the coach.
func buildSummaryUserMessage(questions []quiz.Question, answers map[string]*string, confidence map[string]quiz.Confidence, cfg quiz.QuizConfig) string {
	result := quiz.Evaluate(questions, answers, confidence, cfg)

	var b strings.Builder

	fmt.Fprintf(&b, "Score: %.2f of %d\n", result.Score, result.Total)
	fmt.Fprintf(&b, "Attempted: %d, Correct: %d, Incorrect: %d, Skipped: %d\n",
		result.Attempted, result.Correct, result.Incorrect, result.Skipped)
	fmt.Fprintf(&b, "Accuracy: %.1f%%\n", result.Accuracy)
	fmt.Fprintf(&b, "Blind spots (wrong while confident): %d\n", result.BlindSpots)

	b.WriteString("\nBy category (correct/total):\n")
	for cat, tally := range result.ByCategory {
		fmt.Fprintf(&b, "- %s: %d/%d\n", cat, tally[0], tally[1])
	}

	b.WriteString("\nPer-question detail:\n")
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, q.Category, q.Prompt)
		fmt.Fprintf(&b, "   Correct answer: %s\n", q.CorrectAnswer)
		fmt.Fprintf(&b, "   Learner answer: %s\n", describeAnswer(answers, q.ID))
		if c, ok := confidence[q.ID]; ok {
			fmt.Fprintf(&b, "   Confidence: %s\n", c)
		}
	}

	return b.String()
}

func describeAnswer(answers map[string]*string, id string) string {
	answer, ok := answers[id]
	if !ok {
		return "(not answered)"
	}
	if answer == nil {
		return "(skipped)"
	}
	return *answer
}

// buildFlashcardUserMessage lists the missed questions for card creation.
func buildFlashcardUserMessage(incorrect []quiz.Question, material string) string {
	var b strings.Builder

	b.WriteString("Questions the learner got wrong:\n")
	for i, q := range incorrect {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Prompt)
		fmt.Fprintf(&b, "   Correct answer: %s\n", q.CorrectAnswer)
		fmt.Fprintf(&b, "   Explanation: %s\n", q.Explanation)
	}

	if material != "" {
		b.WriteString("\nSource material:\n")
		b.WriteString(material)
	}

	return b.String()
}

// buildChatSystem combines the mode framing with the question context so
// every turn stays anchored to the question under discussion.
func buildChatSystem(chatCtx quiz.ChatContext, material string) string {
	var b strings.Builder

	b.WriteString(chatSystemPrompts[chatCtx.Mode])

	b.WriteString("\n\nQuestion under discussion: ")
	b.WriteString(chatCtx.Question.Prompt)
	if len(chatCtx.Question.Options) > 0 {
		fmt.Fprintf(&b, "\nOptions: %s", strings.Join(chatCtx.Question.Options, " | "))
	}
	fmt.Fprintf(&b, "\nCorrect answer: %s", chatCtx.Question.CorrectAnswer)
	fmt.Fprintf(&b, "\nExplanation: %s", chatCtx.Question.Explanation)

	if chatCtx.UserAnswer == nil {
		b.WriteString("\nThe learner skipped this question.")
	} else {
		fmt.Fprintf(&b, "\nThe learner answered: %s", *chatCtx.UserAnswer)
	}

	if material != "" {
		b.WriteString("\n\nSource material:\n")
		b.WriteString(material)
	}

	return b.String()
}
