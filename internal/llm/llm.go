package llm

import (
	"context"
	"errors"
)

// Request describes one chat-completion call.
type Request struct {
	System   string
	User     string
	JSONOnly bool
}

// Client abstracts the chat-completion provider.
type Client interface {
	// Complete returns the top completion choice's content, or an empty
	// string when the provider returns no content.
	Complete(ctx context.Context, req Request) (string, error)
}

// ErrCompletion is returned when the upstream completion call fails after
// exhausting retries.
var ErrCompletion = errors.New("completion failed")

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("LLM not configured")

// PlaceholderClient stands in when no provider key is configured. Every
// completion fails, which the intake pipeline treats as a degraded parse
// rather than a fatal error.
type PlaceholderClient struct{}

func (PlaceholderClient) Complete(ctx context.Context, req Request) (string, error) {
	_ = ctx
	_ = req
	return "", ErrNotConfigured
}
