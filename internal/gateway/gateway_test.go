package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/cogniquest/cogniquest/internal/llm"
	"github.com/cogniquest/cogniquest/internal/quiz"
)

func textMaterial(content string) []quiz.SourceMaterial {
	return []quiz.SourceMaterial{
		{Kind: quiz.MaterialText, FileName: "notes.txt", Content: content},
	}
}

func quizResponse(title string, questions ...map[string]any) llm.MockResponse {
	payload := map[string]any{"title": title, "questions": questions}
	raw, _ := json.Marshal(payload)
	return llm.MockResponse{Content: json.RawMessage(raw)}
}

func mcqQuestion(prompt string) map[string]any {
	return map[string]any{
		"type":           "MCQ",
		"prompt":         prompt,
		"options":        []string{"Mitochondria", "Nucleus", "Ribosome", "Golgi"},
		"correct_answer": "Mitochondria",
		"explanation":    "The mitochondria produces ATP.",
		"category":       "Cell Biology",
	}
}

func TestGenerateQuiz_SingleMCQ(t *testing.T) {
	mock := llm.NewMockProvider(quizResponse("Cell Biology Basics", mcqQuestion("Which organelle produces ATP?")))
	g := New(mock, DefaultConfig())

	cfg := quiz.DefaultQuizConfig()
	cfg.NumQuestions = 1
	cfg.Variety = quiz.VarietyMCQOnly

	title, questions, err := g.GenerateQuiz(context.Background(), textMaterial("The mitochondria produces ATP."), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call (no chunking), got %d", mock.CallCount())
	}
	if title != "Cell Biology Basics" {
		t.Errorf("title = %q, want 'Cell Biology Basics'", title)
	}
	if len(questions) != 1 {
		t.Fatalf("len(questions) = %d, want 1", len(questions))
	}

	q := questions[0]
	if q.Type != quiz.TypeMCQ {
		t.Errorf("type = %q, want MCQ", q.Type)
	}
	if len(q.Options) != 4 {
		t.Errorf("len(options) = %d, want 4", len(q.Options))
	}
	found := false
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			found = true
		}
	}
	if !found {
		t.Errorf("correct answer %q not among options %v", q.CorrectAnswer, q.Options)
	}
	if q.ID == "" {
		t.Error("expected a generated question ID")
	}
}

func TestGenerateQuiz_AssignsUniqueIDs(t *testing.T) {
	mock := llm.NewMockProvider(quizResponse("T", mcqQuestion("Q1"), mcqQuestion("Q2"), mcqQuestion("Q3")))
	g := New(mock, DefaultConfig())

	_, questions, err := g.GenerateQuiz(context.Background(), textMaterial("material"), quiz.DefaultQuizConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]bool)
	for _, q := range questions {
		if seen[q.ID] {
			t.Fatalf("duplicate question ID %q", q.ID)
		}
		seen[q.ID] = true
	}
}

var countLine = regexp.MustCompile(`Number of questions: (\d+)`)

func TestGenerateQuiz_ChunkedCountsSumToTotal(t *testing.T) {
	// Large enough to split into multiple chunks.
	large := strings.Repeat("Photosynthesis converts light into chemical energy. ", 800)

	mock := llm.NewMockProvider()
	expectChunks := len(quiz.SplitText(large, quiz.ChunkSize, quiz.ChunkOverlap))
	if expectChunks < 2 {
		t.Fatalf("test input did not chunk: %d", expectChunks)
	}
	for i := 0; i < expectChunks; i++ {
		mock.AddResponse(quizResponse(fmt.Sprintf("Title %d", i), mcqQuestion(fmt.Sprintf("Q%d", i))))
	}

	g := New(mock, DefaultConfig())
	cfg := quiz.DefaultQuizConfig()
	cfg.NumQuestions = 10

	title, questions, err := g.GenerateQuiz(context.Background(), textMaterial(large), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != expectChunks {
		t.Fatalf("provider calls = %d, want %d", mock.CallCount(), expectChunks)
	}
	// First chunk's title wins.
	if title != "Title 0" {
		t.Errorf("title = %q, want 'Title 0'", title)
	}
	if len(questions) != expectChunks {
		t.Errorf("len(questions) = %d, want %d", len(questions), expectChunks)
	}

	sum := 0
	for _, call := range mock.Calls {
		m := countLine.FindStringSubmatch(call.Messages[0].Content)
		if m == nil {
			t.Fatal("request missing question count line")
		}
		n, _ := strconv.Atoi(m[1])
		sum += n
	}
	if sum != cfg.NumQuestions {
		t.Errorf("sum of per-chunk counts = %d, want %d", sum, cfg.NumQuestions)
	}
}

func TestGenerateQuiz_EmptyResultIsError(t *testing.T) {
	mock := llm.NewMockProvider(quizResponse("Empty"))
	g := New(mock, DefaultConfig())

	_, _, err := g.GenerateQuiz(context.Background(), textMaterial("material"), quiz.DefaultQuizConfig())
	if err == nil {
		t.Fatal("expected error for empty question list")
	}
}

func TestGenerateQuiz_ProviderFailurePropagates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := New(mock, DefaultConfig())

	_, _, err := g.GenerateQuiz(context.Background(), textMaterial("material"), quiz.DefaultQuizConfig())
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got: %v", err)
	}
}

func TestGenerateQuiz_AttachesImagesToFirstChunk(t *testing.T) {
	mock := llm.NewMockProvider(quizResponse("T", mcqQuestion("Q")))
	g := New(mock, DefaultConfig())

	materials := []quiz.SourceMaterial{
		{Kind: quiz.MaterialText, FileName: "notes.txt", Content: "The cell."},
		{Kind: quiz.MaterialImage, FileName: "diagram.png", MIME: "image/png", Data: "aGVsbG8="},
	}

	_, _, err := g.GenerateQuiz(context.Background(), materials, quiz.DefaultQuizConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	images := mock.Calls[0].Messages[0].Images
	if len(images) != 1 {
		t.Fatalf("len(images) = %d, want 1", len(images))
	}
	if images[0].Name != "diagram.png" || images[0].MIME != "image/png" {
		t.Errorf("unexpected attachment: %+v", images[0])
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "[image: diagram.png]") {
		t.Error("request body missing image description")
	}
}

func TestGenerateHint_ReturnsText(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("  Think about where energy is produced.  ")},
	)
	g := New(mock, DefaultConfig())

	hint := g.GenerateHint(context.Background(), textMaterial("material"), quiz.Question{Prompt: "Q"})
	if hint != "Think about where energy is produced." {
		t.Errorf("hint = %q", hint)
	}
}

func TestGenerateHint_FailureDegradesToApology(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := New(mock, DefaultConfig())

	hint := g.GenerateHint(context.Background(), textMaterial("material"), quiz.Question{Prompt: "Q"})
	if hint != HintApology {
		t.Errorf("hint = %q, want apology", hint)
	}
}

func TestGenerateHint_EmptyResponseDegradesToApology(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("   ")},
	)
	g := New(mock, DefaultConfig())

	hint := g.GenerateHint(context.Background(), textMaterial("material"), quiz.Question{Prompt: "Q"})
	if hint != HintApology {
		t.Errorf("hint = %q, want apology", hint)
	}
}

func TestGenerateSummary_IncludesAttemptDetail(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("## Great work\nYou nailed cell biology.")},
	)
	g := New(mock, DefaultConfig())

	questions := []quiz.Question{
		{ID: "q1", Type: quiz.TypeMCQ, Prompt: "Q1", CorrectAnswer: "A", Category: "Cells"},
		{ID: "q2", Type: quiz.TypeFillBlank, Prompt: "Q2", CorrectAnswer: "osmosis", Category: "Transport"},
	}
	a := "A"
	answers := map[string]*string{"q1": &a, "q2": nil}
	confidence := map[string]quiz.Confidence{"q1": quiz.ConfidenceConfident}

	summary, err := g.GenerateSummary(context.Background(), questions, answers, confidence, quiz.DefaultQuizConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(summary, "## Great work") {
		t.Errorf("summary = %q", summary)
	}

	body := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Correct: 1", "Skipped: 1", "(skipped)", "Confidence: Confident", "Cells"} {
		if !strings.Contains(body, want) {
			t.Errorf("summary request missing %q", want)
		}
	}
}

func TestGenerateSummary_FailurePropagates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := New(mock, DefaultConfig())

	_, err := g.GenerateSummary(context.Background(), nil, nil, nil, quiz.DefaultQuizConfig())
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateFlashcards_EmptyInputShortCircuits(t *testing.T) {
	mock := llm.NewMockProvider()
	g := New(mock, DefaultConfig())

	cards, err := g.GenerateFlashcards(context.Background(), nil, textMaterial("material"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("len(cards) = %d, want 0", len(cards))
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider calls = %d, want 0", mock.CallCount())
	}
}

func TestGenerateFlashcards_ParsesCards(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"cards":[{"front":"ATP","back":"Energy currency of the cell"}]}`)},
	)
	g := New(mock, DefaultConfig())

	incorrect := []quiz.Question{
		{ID: "q1", Prompt: "What is ATP?", CorrectAnswer: "Energy currency", Explanation: "..."},
	}
	cards, err := g.GenerateFlashcards(context.Background(), incorrect, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 1 || cards[0].Front != "ATP" {
		t.Fatalf("cards = %+v", cards)
	}
}

func TestChat_StreamsAssistantTurn(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Let's look at that question together.")},
	)
	g := New(mock, DefaultConfig())

	answer := "Nucleus"
	chatCtx := quiz.ChatContext{
		Question:   quiz.Question{Prompt: "Which organelle produces ATP?", CorrectAnswer: "Mitochondria"},
		UserAnswer: &answer,
		Mode:       quiz.ChatSocratic,
		Messages: []quiz.ChatMessage{
			{Role: quiz.ChatRoleUser, Text: "Why was I wrong?"},
		},
	}

	var b strings.Builder
	for chunk := range g.Chat(context.Background(), chatCtx, textMaterial("material")) {
		b.WriteString(chunk.Text)
	}
	if b.String() != "Let's look at that question together." {
		t.Errorf("accumulated = %q", b.String())
	}

	req := mock.Calls[0]
	if !strings.Contains(req.System, "Socratic") {
		t.Error("system prompt missing mode framing")
	}
	if !strings.Contains(req.System, "The learner answered: Nucleus") {
		t.Error("system prompt missing recorded answer")
	}
	if len(req.Messages) != 1 || req.Messages[0].Content != "Why was I wrong?" {
		t.Errorf("history not forwarded: %+v", req.Messages)
	}
}

func TestChat_FailureYieldsApology(t *testing.T) {
	mock := llm.NewMockProvider()
	g := New(mock, DefaultConfig())

	var b strings.Builder
	var done bool
	for chunk := range g.Chat(context.Background(), quiz.ChatContext{Mode: quiz.ChatStandard}, nil) {
		b.WriteString(chunk.Text)
		done = done || chunk.Done
	}
	if b.String() != ChatApology {
		t.Errorf("accumulated = %q, want apology", b.String())
	}
	if !done {
		t.Error("stream never terminated with Done")
	}
}

// brokenStreamer delivers some text and then fails mid-stream.
type brokenStreamer struct {
	prefix string
}

func (p *brokenStreamer) Generate(context.Context, llm.Request) (*llm.Response, error) {
	return nil, errors.New("not used")
}

func (p *brokenStreamer) ModelID() string { return "broken" }

func (p *brokenStreamer) GenerateStream(context.Context, llm.Request) (<-chan llm.StreamChunk, error) {
	ch := make(chan llm.StreamChunk, 2)
	ch <- llm.StreamChunk{Text: p.prefix}
	ch <- llm.StreamChunk{Err: errors.New("connection reset")}
	close(ch)
	return ch, nil
}

func TestChat_MidStreamFailureReplacesPartialTurn(t *testing.T) {
	g := New(&brokenStreamer{prefix: "The Krebs cycle is"}, DefaultConfig())

	var chunks []llm.StreamChunk
	for chunk := range g.Chat(context.Background(), quiz.ChatContext{Mode: quiz.ChatStandard}, nil) {
		chunks = append(chunks, chunk)
	}

	if len(chunks) != 3 {
		t.Fatalf("chunks = %d, want text, apology, done", len(chunks))
	}
	apology := chunks[1]
	if apology.Text != ChatApology {
		t.Errorf("replacement text = %q, want apology", apology.Text)
	}
	if apology.Err == nil {
		t.Error("replacement chunk must carry the error so callers replace, not append")
	}
	if !chunks[2].Done {
		t.Error("stream never terminated with Done")
	}
}

// slowStreamer keeps producing until its context is canceled.
type slowStreamer struct{}

func (slowStreamer) Generate(context.Context, llm.Request) (*llm.Response, error) {
	return nil, errors.New("not used")
}

func (slowStreamer) ModelID() string { return "slow" }

func (slowStreamer) GenerateStream(ctx context.Context, _ llm.Request) (<-chan llm.StreamChunk, error) {
	ch := make(chan llm.StreamChunk)
	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			select {
			case ch <- llm.StreamChunk{Text: "word "}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

func TestChat_CanceledReaderClosesStream(t *testing.T) {
	g := New(slowStreamer{}, DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())

	out := g.Chat(ctx, quiz.ChatContext{Mode: quiz.ChatStandard}, nil)
	<-out
	cancel()

	for range out {
		// Drain whatever was buffered before the cancel landed.
	}
}
