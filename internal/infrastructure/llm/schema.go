package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonschemago "github.com/google/jsonschema-go/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v5"
	openaischema "github.com/sashabaranov/go-openai/jsonschema"
	"google.golang.org/genai"
)

// ResponseSchema describes the JSON object the model must answer with.
// All properties are strings; this is all the two endpoints need.
type ResponseSchema struct {
	Name       string
	Properties []string
	Required   []string

	validator *jsonschema.Schema
}

// NewResponseSchema builds and compiles a schema for an object of string fields.
func NewResponseSchema(name string, properties, required []string) (*ResponseSchema, error) {
	doc := &jsonschemago.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschemago.Schema, len(properties)),
		Required:   required,
	}
	for _, p := range properties {
		doc.Properties[p] = &jsonschemago.Schema{Type: "string"}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", name, err)
	}
	validator, err := jsonschema.CompileString(name+".json", string(raw))
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}

	return &ResponseSchema{
		Name:       name,
		Properties: properties,
		Required:   required,
		validator:  validator,
	}, nil
}

// MustResponseSchema is NewResponseSchema for package-level schemas.
func MustResponseSchema(name string, properties, required []string) *ResponseSchema {
	s, err := NewResponseSchema(name, properties, required)
	if err != nil {
		panic(err)
	}
	return s
}

// Decode parses text as a JSON object and validates it against the schema.
// Markdown code fences around the object are tolerated.
func (s *ResponseSchema) Decode(text string) (map[string]any, error) {
	text = stripFences(text)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected an object, got %T", ErrMalformedResponse, v)
	}
	if err := s.validator.Validate(obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return obj, nil
}

// Genai converts the schema for Gemini's ResponseSchema.
func (s *ResponseSchema) Genai() *genai.Schema {
	out := &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       make(map[string]*genai.Schema, len(s.Properties)),
		Required:         s.Required,
		PropertyOrdering: s.Properties,
	}
	for _, p := range s.Properties {
		out.Properties[p] = &genai.Schema{Type: genai.TypeString}
	}
	return out
}

// OpenAI converts the schema for an OpenAI-compatible json_schema response format.
func (s *ResponseSchema) OpenAI() *openaischema.Definition {
	out := &openaischema.Definition{
		Type:                 openaischema.Object,
		Properties:           make(map[string]openaischema.Definition, len(s.Properties)),
		Required:             s.Required,
		AdditionalProperties: false,
	}
	for _, p := range s.Properties {
		out.Properties[p] = openaischema.Definition{Type: openaischema.String}
	}
	return out
}

func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
