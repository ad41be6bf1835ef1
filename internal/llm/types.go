package llm

import (
	"context"
	"errors"
)

// ErrUnavailable marks transport failures and empty completions from the
// model backend. The handler maps it to 503; no retries are attempted.
var ErrUnavailable = errors.New("model service unavailable")

// Provider is a generative text backend. Generate sends a single prompt and
// returns the raw completion text. The text is opaque at this layer; parsing
// happens in the analyzer.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
