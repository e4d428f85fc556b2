package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// Typed errors for the provider boundary. Retry middleware inspects
// these to decide what is worth retrying; the gateway inspects them to
// decide what degrades gracefully (hints, chat) versus what surfaces to
// the user (quiz generation).

// ErrProviderUnavailable wraps transport-level failures: the provider
// is down, unreachable, or refused the connection.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "llm provider unavailable"
	}
	return fmt.Sprintf("llm provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrRateLimit reports a 429. RetryAfter is zero when the provider gave
// no hint; the retry middleware falls back to its own backoff then.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("llm rate limited, retry after %s: %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports a response cut off at the MaxTokens
// limit. Content holds the truncated payload for the request log.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "llm response truncated at the max-token limit"
}

// ErrInvalidResponse reports content that failed schema validation or
// JSON parsing. Content holds the offending payload for the request log.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("llm response failed validation: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
