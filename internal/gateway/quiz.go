package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/cogniquest/cogniquest/internal/llm"
	"github.com/cogniquest/cogniquest/internal/quiz"
)

// quizPayload is the raw LLM response before validation and ID assignment.
type quizPayload struct {
	Title     string `json:"title"`
	Questions []struct {
		Type          string   `json:"type"`
		Prompt        string   `json:"prompt"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
		Explanation   string   `json:"explanation"`
		Category      string   `json:"category"`
	} `json:"questions"`
}

// GenerateQuiz turns the source materials into a titled question list.
// Text above the chunk threshold is split into overlapping chunks with
// the question count apportioned across them; the first chunk's title
// wins. An empty question list is an error.
func (g *Gateway) GenerateQuiz(ctx context.Context, materials []quiz.SourceMaterial, cfg quiz.QuizConfig) (string, []quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	text := combineText(materials)
	images := imageAttachments(materials)

	chunks := []string{text}
	if len([]rune(text)) > quiz.ChunkThreshold {
		chunks = quiz.SplitText(text, quiz.ChunkSize, quiz.ChunkOverlap)
	}
	counts := quiz.Apportion(cfg.NumQuestions, len(chunks))

	var title string
	var questions []quiz.Question

	for i, chunk := range chunks {
		if counts[i] == 0 {
			continue
		}

		msg := llm.Message{
			Role:    llm.RoleUser,
			Content: buildQuizUserMessage(chunk, counts[i], cfg),
		}
		// Images ride along with the first chunk only; they are not
		// split and re-sending them would duplicate questions.
		if i == 0 {
			msg.Images = images
			msg.Content += describeImages(images)
		}

		resp, err := g.provider.Generate(ctx, llm.Request{
			System:      quizSystemPrompt,
			Messages:    []llm.Message{msg},
			Schema:      QuizSchema,
			MaxTokens:   g.config.QuizMaxTokens,
			Temperature: g.config.Temperature,
		})
		if err != nil {
			return "", nil, fmt.Errorf("quiz generation failed: %w", err)
		}

		var payload quizPayload
		if err := json.Unmarshal(resp.Content, &payload); err != nil {
			return "", nil, fmt.Errorf("parse quiz response: %w", err)
		}

		if i == 0 {
			title = payload.Title
		}

		for _, raw := range payload.Questions {
			questions = append(questions, quiz.Question{
				ID:            uuid.New().String(),
				Type:          quiz.QuestionType(raw.Type),
				Prompt:        raw.Prompt,
				Options:       raw.Options,
				CorrectAnswer: raw.CorrectAnswer,
				Explanation:   raw.Explanation,
				Category:      raw.Category,
			})
		}
	}

	if len(questions) == 0 {
		return "", nil, fmt.Errorf("provider returned no questions")
	}

	return title, questions, nil
}
