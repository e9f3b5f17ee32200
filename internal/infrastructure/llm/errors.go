package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyResponse means the provider answered without any text.
	ErrEmptyResponse = errors.New("empty response from provider")
	// ErrMalformedResponse means the answer is not a JSON object.
	ErrMalformedResponse = errors.New("malformed response from provider")
	// ErrSchemaViolation means the answer does not match the response schema.
	ErrSchemaViolation = errors.New("response does not match schema")
)

// ProviderError wraps a failure of the generation call itself
// (transport, auth, quota, server side).
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s api error: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsProviderError reports whether err carries a *ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
