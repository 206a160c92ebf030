package llm

import (
	"context"
	"errors"
)

// MaxSuggestions caps the number of enhancement suggestions returned.
const MaxSuggestions = 3

var (
	// ErrUpstream wraps every failure reported by a language-model provider.
	ErrUpstream = errors.New("language model request failed")
	// ErrNotConfigured is returned by NewAssistant when no provider is usable.
	ErrNotConfigured = errors.New("language model provider is not configured")
)

// GenerateRequest describes the prompt to draft.
type GenerateRequest struct {
	Topic       string
	Description string
	Category    string
}

// Assistant drafts and improves prompts through a language model. Calls are
// not retried or cached; the caller's context bounds them.
type Assistant interface {
	// Generate returns a new prompt text for the request.
	Generate(ctx context.Context, req GenerateRequest) (string, error)

	// Enhance returns up to MaxSuggestions improved versions of the prompt.
	Enhance(ctx context.Context, prompt string) ([]string, error)

	// Name identifies the provider in logs.
	Name() string
}
