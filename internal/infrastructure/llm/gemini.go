package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiClient calls Google's Gemini API through the genai SDK.
type GeminiClient struct {
	modelName string
	client    *genai.Client
}

// NewGeminiClient builds a client for the Gemini API backend. baseURL is
// only needed to point the SDK somewhere other than Google.
func NewGeminiClient(ctx context.Context, apiKey, baseURL, modelName string) (*GeminiClient, error) {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		modelName: modelName,
		client:    client,
	}, nil
}

func (g *GeminiClient) GenerateJSON(ctx context.Context, prompt string, schema *ResponseSchema) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema.Genai(),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", &ProviderError{Provider: "gemini", Err: err}
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
