package service

import (
	"context"
	"time"

	"github.com/leon37/NetoLedger/internal/infrastructure/llm"
)

// generator runs one schema-constrained call and decodes the answer.
type generator struct {
	provider llm.Provider // nil means offline
	timeout  time.Duration
}

func (g generator) offline() bool { return g.provider == nil }

func (g generator) generate(ctx context.Context, prompt string, schema *llm.ResponseSchema) (map[string]any, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	text, err := g.provider.GenerateJSON(ctx, prompt, schema)
	if err != nil {
		return nil, err
	}
	return schema.Decode(text)
}
