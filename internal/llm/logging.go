package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cogniquest/cogniquest/internal/store"
)

// LoggingProvider is a decorator that records every LLM request in the
// request log.
type LoggingProvider struct {
	inner   Provider
	logRepo store.RequestLogRepo
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, repo store.RequestLogRepo) Provider {
	return &LoggingProvider{inner: p, logRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	entry := store.RequestLogEntry{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		entry.InputTokens = resp.Usage.InputTokens
		entry.OutputTokens = resp.Usage.OutputTokens
		entry.Model = resp.Model
		entry.ResponseBody = string(resp.Content)
	}

	if err != nil {
		entry.ErrorMessage = err.Error()
	}

	// Log the request but don't fail the call if logging fails.
	if logErr := l.logRepo.AppendRequest(ctx, entry); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
	}

	return resp, err
}

// GenerateStream delegates to the inner provider and logs once the
// stream finishes, with the accumulated text as the response body.
func (l *LoggingProvider) GenerateStream(ctx context.Context, req Request) (<-chan StreamChunk, error) {
	start := time.Now()

	inner, err := OpenStream(ctx, l.inner, req)
	if err != nil {
		entry := store.RequestLogEntry{
			Provider:     l.inner.ModelID(),
			Model:        l.inner.ModelID(),
			Purpose:      PurposeFrom(ctx),
			LatencyMs:    time.Since(start).Milliseconds(),
			Success:      false,
			ErrorMessage: err.Error(),
			RequestBody:  serializeRequest(req),
		}
		if logErr := l.logRepo.AppendRequest(ctx, entry); logErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
		}
		return nil, err
	}

	out := make(chan StreamChunk)
	go func() {
		defer close(out)

		var text strings.Builder
		var streamErr error
		for chunk := range inner {
			text.WriteString(chunk.Text)
			if chunk.Err != nil {
				streamErr = chunk.Err
			}
			out <- chunk
		}

		entry := store.RequestLogEntry{
			Provider:     l.inner.ModelID(),
			Model:        l.inner.ModelID(),
			Purpose:      PurposeFrom(ctx),
			LatencyMs:    time.Since(start).Milliseconds(),
			Success:      streamErr == nil,
			RequestBody:  serializeRequest(req),
			ResponseBody: text.String(),
		}
		if streamErr != nil {
			entry.ErrorMessage = streamErr.Error()
		}
		if logErr := l.logRepo.AppendRequest(context.WithoutCancel(ctx), entry); logErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
		}
	}()

	return out, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		for _, img := range m.Images {
			b.WriteString(fmt.Sprintf("\n[image: %s (%s, %d bytes base64)]", img.Name, img.MIME, len(img.Data)))
		}
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.WriteString(string(schemaDef))
			b.WriteString("\n")
		}
	}

	return b.String()
}
