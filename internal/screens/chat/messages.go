package chat

import "github.com/cogniquest/cogniquest/internal/llm"

// chunkMsg carries one streamed increment of the assistant's turn. The
// channel rides along so the next read can be scheduled.
type chunkMsg struct {
	GenID string
	Chunk llm.StreamChunk
	ch    <-chan llm.StreamChunk
}
