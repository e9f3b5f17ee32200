package llm

import (
	"context"
	"fmt"

	"github.com/leon37/NetoLedger/internal/config"
)

// NewProvider builds the provider named by cfg.LLM.Provider. It returns
// (nil, nil) when no API key is configured: callers treat a nil provider as
// offline mode.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	if cfg.Offline() {
		return nil, nil
	}

	m := cfg.Active()
	switch cfg.LLM.Provider {
	case "gemini":
		client, err := NewGeminiClient(ctx, m.APIKey, m.BaseURL, m.Model)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "deepseek":
		return NewDeepSeekClient(m.APIKey, m.BaseURL, m.Model, WithStructuredOutput(m.StructuredOutput)), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}
