package deps

import (
	"context"
)

// Completer abstracts the chat-completion collaborator.
// It returns the text of the first choice, untouched.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	// Name identifies the provider for logging and health checks
	Name() string
}
