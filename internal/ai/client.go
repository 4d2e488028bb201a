package ai

import (
	"context"
	"errors"
)

// Typed failures so callers can tell "provider is down" from "provider
// answered garbage" instead of branching on error strings.
var (
	ErrUnavailable = errors.New("ai provider unavailable")
	ErrInvalidJSON = errors.New("ai returned invalid JSON")
)

// Client is the low-level chat-completion contract. Services depend ONLY on
// this interface; the Kolosal implementation lives in kolosal.go.
type Client interface {
	// Complete sends a single user prompt and returns the raw text reply.
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)

	// CompleteVision sends a prompt plus a JPEG image (vision mode).
	CompleteVision(ctx context.Context, prompt string, image []byte, maxTokens int, temperature float64) (string, error)

	// Chat sends a system prompt and a user message (chatbot mode).
	Chat(ctx context.Context, system, user string, maxTokens int) (string, error)
}
