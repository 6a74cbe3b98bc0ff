package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_PlainObject(t *testing.T) {
	got, err := ExtractJSON(`{"intent": "recommendation"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"intent": "recommendation"}`, got)
}

func TestExtractJSON_MarkdownFence(t *testing.T) {
	response := "```json\n{\"intent\": \"unknown\"}\n```"

	got, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.Equal(t, `{"intent": "unknown"}`, got)
}

func TestExtractJSON_FenceWithoutLanguage(t *testing.T) {
	response := "```\n{\"a\": 1}\n```"

	got, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, got)
}

func TestExtractJSON_ReasoningTags(t *testing.T) {
	response := "<think>the user wants comedy</think>\n{\"intent\": \"recommendation\"}"

	got, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.Equal(t, `{"intent": "recommendation"}`, got)
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	response := `Here are my suggestions: {"recommendations": []} Hope that helps!`

	got, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.Equal(t, `{"recommendations": []}`, got)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	response := `{"reason": "a film about {weird} brackets \" and quotes"}`

	got, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.Equal(t, response, got)
}

func TestExtractJSON_Array(t *testing.T) {
	got, err := ExtractJSON(`[{"title": "Alien"}]`)
	require.NoError(t, err)
	assert.Equal(t, `[{"title": "Alien"}]`, got)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON("I'm sorry, I can't help with that.")
	assert.Error(t, err)
}

func TestParseJSONResponse_AbsentKeyYieldsEmpty(t *testing.T) {
	type reply struct {
		Recommendations []string `json:"recommendations"`
	}

	got, err := ParseJSONResponse[reply](`{"something_else": true}`)
	require.NoError(t, err)
	assert.Empty(t, got.Recommendations)
}

func TestParseJSONResponse_DecodeErrorClassified(t *testing.T) {
	type reply struct {
		Recommendations []string `json:"recommendations"`
	}

	_, err := ParseJSONResponse[reply]("not json at all")
	require.Error(t, err)
	assert.Equal(t, ErrorTypeDecode, GetErrorType(err))
}
