package llm

import (
	"context"
)

// Provider is a text-generation backend that answers with JSON constrained
// to a response schema.
type Provider interface {
	// GenerateJSON sends prompt and returns the raw text of the answer.
	// Errors raised by the underlying call are *ProviderError; an answer
	// without text is ErrEmptyResponse.
	GenerateJSON(ctx context.Context, prompt string, schema *ResponseSchema) (string, error)
}
