package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func testSchema(t *testing.T) *ResponseSchema {
	t.Helper()
	s, err := NewResponseSchema("category",
		[]string{"idcategoria", "categoria", "subcategoria"},
		[]string{"idcategoria", "categoria", "subcategoria"})
	require.NoError(t, err)
	return s
}

func TestResponseSchemaDecode(t *testing.T) {
	s := testSchema(t)

	tests := []struct {
		name    string
		text    string
		want    map[string]any
		wantErr error
	}{
		{
			name: "valid object",
			text: `{"idcategoria":"TRANSPORTE","categoria":"Transporte","subcategoria":"Combustible/Gasolina"}`,
			want: map[string]any{"idcategoria": "TRANSPORTE", "categoria": "Transporte", "subcategoria": "Combustible/Gasolina"},
		},
		{
			name: "fenced and with extra field",
			text: "```json\n{\"idcategoria\":\"OCIO\",\"categoria\":\"Ocio\",\"subcategoria\":\"Hobbies\",\"emoji\":\"🎬\"}\n```",
			want: map[string]any{"idcategoria": "OCIO", "categoria": "Ocio", "subcategoria": "Hobbies", "emoji": "🎬"},
		},
		{name: "empty", text: "  ", wantErr: ErrEmptyResponse},
		{name: "not json", text: "Transporte", wantErr: ErrMalformedResponse},
		{name: "array", text: `["TRANSPORTE"]`, wantErr: ErrMalformedResponse},
		{name: "missing field", text: `{"categoria":"Transporte","subcategoria":"Taxi/VTC"}`, wantErr: ErrSchemaViolation},
		{name: "wrong type", text: `{"idcategoria":1,"categoria":"Transporte","subcategoria":"Taxi/VTC"}`, wantErr: ErrSchemaViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Decode(tt.text)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResponseSchemaGenai(t *testing.T) {
	g := testSchema(t).Genai()

	assert.Equal(t, genai.TypeObject, g.Type)
	assert.Equal(t, []string{"idcategoria", "categoria", "subcategoria"}, g.Required)
	require.Contains(t, g.Properties, "categoria")
	assert.Equal(t, genai.TypeString, g.Properties["categoria"].Type)
}

func TestResponseSchemaOpenAI(t *testing.T) {
	raw, err := json.Marshal(testSchema(t).OpenAI())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "object", got["type"])
	assert.Equal(t, false, got["additionalProperties"])
	assert.Len(t, got["properties"], 3)
	assert.ElementsMatch(t, []any{"idcategoria", "categoria", "subcategoria"}, got["required"])
}

func TestProviderError(t *testing.T) {
	inner := errors.New("quota exceeded")
	err := error(&ProviderError{Provider: "gemini", Err: inner})

	assert.True(t, IsProviderError(err))
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "gemini api error: quota exceeded", err.Error())
	assert.False(t, IsProviderError(ErrEmptyResponse))
}
