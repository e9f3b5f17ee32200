package llm

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// Structured output modes for OpenAI-compatible endpoints.
const (
	// OutputTool forces a single function call whose arguments are the
	// answer. DeepSeek only supports this one.
	OutputTool = "tool"
	// OutputJSONSchema uses response_format json_schema (OpenAI proper).
	OutputJSONSchema = "json_schema"
)

// DeepSeekClient talks to DeepSeek or any other OpenAI-compatible endpoint.
type DeepSeekClient struct {
	modelName string
	output    string
	client    *openai.Client
}

type DeepSeekOption func(*DeepSeekClient)

// WithStructuredOutput picks how the answer schema is enforced. Unknown
// values keep the tool call.
func WithStructuredOutput(mode string) DeepSeekOption {
	return func(d *DeepSeekClient) {
		if mode == OutputJSONSchema {
			d.output = mode
		}
	}
}

func NewDeepSeekClient(apiKey, baseUrl, modelName string, opts ...DeepSeekOption) *DeepSeekClient {
	config := openai.DefaultConfig(apiKey)
	if baseUrl != "" {
		config.BaseURL = baseUrl
	}

	d := &DeepSeekClient{
		modelName: modelName,
		output:    OutputTool,
		client:    openai.NewClientWithConfig(config),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *DeepSeekClient) GenerateJSON(ctx context.Context, prompt string, schema *ResponseSchema) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: d.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.1, // low temperature keeps the JSON stable
	}

	if d.output == OutputJSONSchema {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   schema.Name,
				Schema: schema.OpenAI(),
				Strict: true,
			},
		}
	} else {
		req.Tools = []openai.Tool{answerTool(schema)}
		// Naming the function makes the call mandatory.
		req.ToolChoice = openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: schema.Name},
		}
	}

	resp, err := d.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", &ProviderError{Provider: "deepseek", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	msg := resp.Choices[0].Message
	for _, call := range msg.ToolCalls {
		if call.Function.Name == schema.Name && call.Function.Arguments != "" {
			return call.Function.Arguments, nil
		}
	}
	// Some compatible servers ignore tool_choice and answer in plain content.
	if msg.Content == "" {
		return "", ErrEmptyResponse
	}
	return msg.Content, nil
}

// answerTool exposes the response schema as the single function the model
// must call.
func answerTool(schema *ResponseSchema) openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        schema.Name,
			Description: "Return the answer. Every argument is required.",
			Parameters:  schema.OpenAI(),
		},
	}
}
