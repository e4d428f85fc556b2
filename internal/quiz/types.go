package quiz

// MaterialKind distinguishes the two kinds of source material.
type MaterialKind string

const (
	MaterialText  MaterialKind = "text"
	MaterialImage MaterialKind = "image"
)

// SourceMaterial is one uploaded or typed unit of input content feeding
// quiz generation. Immutable once created.
type SourceMaterial struct {
	Kind     MaterialKind `json:"kind"`
	FileName string       `json:"file_name"`

	// Content holds the text for MaterialText.
	Content string `json:"content,omitempty"`

	// Data holds base64-encoded bytes for MaterialImage.
	Data string `json:"data,omitempty"`
	MIME string `json:"mime,omitempty"`
}

// QuestionType identifies how a question is asked and answered.
type QuestionType string

const (
	TypeMCQ       QuestionType = "MCQ"
	TypeTrueFalse QuestionType = "True/False"
	TypeFillBlank QuestionType = "Fill-in-the-Blank"
)

// Question is produced once by the generation gateway per quiz and is
// immutable thereafter. Answers, confidence, and hints are keyed by ID
// rather than by position so reordering can never misattribute them.
type Question struct {
	// ID is a UUID assigned when the gateway parses the provider response.
	ID string `json:"id"`

	Type   QuestionType `json:"type"`
	Prompt string       `json:"prompt"`

	// Options holds exactly 4 entries for MCQ and ["True", "False"] for
	// True/False. Empty for Fill-in-the-Blank.
	Options []string `json:"options,omitempty"`

	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	Category      string `json:"category,omitempty"`
}

// Confidence is the user's self-reported certainty for an answer, used
// for blind-spot analytics.
type Confidence string

const (
	ConfidenceGuessing  Confidence = "Guessing"
	ConfidenceUnsure    Confidence = "Unsure"
	ConfidenceConfident Confidence = "Confident"
)

// Flashcard is one AI-generated study card for a missed question.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// ChatMode alters the system framing of the tutoring dialogue, not the
// interface shape.
type ChatMode string

const (
	ChatStandard ChatMode = "standard"
	ChatSocratic ChatMode = "socratic"
	ChatELI5     ChatMode = "eli5"
)

// ChatRole is the sender of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of the tutoring dialogue.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// ChatContext binds the question under discussion, the user's recorded
// answer, and the running dialogue. Created when entering chat and
// discarded on exit.
type ChatContext struct {
	Question   Question      `json:"question"`
	UserAnswer *string       `json:"user_answer"`
	Mode       ChatMode      `json:"mode"`
	Messages   []ChatMessage `json:"messages"`

	// Streaming is true while an assistant turn is being received.
	Streaming bool `json:"-"`
}
