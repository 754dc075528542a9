// Package llm provides the text-generation backends.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the backend call succeeds but yields no
// usable text.
var ErrEmptyResponse = errors.New("empty response from model")

// Client is implemented by generation backends.
type Client interface {
	// Generate sends the prompt and returns the generated text. One
	// synchronous call; no retries, no streaming.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name identifies the backend for logging.
	Name() string
}
