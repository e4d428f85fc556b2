package llm

import "context"

// StreamChunk is one increment of a streamed response. A chunk with Done
// set terminates the stream; Err, when non-nil, reports why the stream
// stopped early.
type StreamChunk struct {
	Text string
	Done bool
	Err  error
}

// Streamer is implemented by providers that support incremental text
// delivery. Each call produces an independent stream; streams are not
// shared or restartable.
type Streamer interface {
	// GenerateStream sends the request and returns a channel of text
	// increments. The channel is closed after the Done chunk.
	GenerateStream(ctx context.Context, req Request) (<-chan StreamChunk, error)
}

// OpenStream streams from p when it implements Streamer, otherwise falls
// back to a single Generate call delivered as one chunk.
func OpenStream(ctx context.Context, p Provider, req Request) (<-chan StreamChunk, error) {
	if s, ok := p.(Streamer); ok {
		return s.GenerateStream(ctx, req)
	}

	resp, err := p.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	ch := make(chan StreamChunk, 2)
	ch <- StreamChunk{Text: string(resp.Content)}
	ch <- StreamChunk{Done: true}
	close(ch)
	return ch, nil
}
