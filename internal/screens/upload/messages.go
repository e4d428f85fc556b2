package upload

import "github.com/cogniquest/cogniquest/internal/quiz"

// materialsReadyMsg is sent when ingestion of the entered sources finishes.
type materialsReadyMsg struct {
	Materials []quiz.SourceMaterial
	Err       error
}
