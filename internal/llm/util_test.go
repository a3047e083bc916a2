package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json fence",
			input:    "```json\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "plain fence",
			input:    "```\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "fence with language tag",
			input:    "```javascript\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "no fence",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n```json\n{\"key\": \"value\"}\n```\n  ",
			expected: `{"key": "value"}`,
		},
		{
			name:     "brace on first line of plain fence",
			input:    "```\n{\"a\": 1,\n\"b\": 2}\n```",
			expected: "{\"a\": 1,\n\"b\": 2}",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestNewClientProviders(t *testing.T) {
	ctx := context.Background()

	client, err := NewClient(ctx, &Config{Provider: ProviderOllama, OllamaURL: "http://localhost:11434", OllamaModel: "llama3.1:8b"})
	require.NoError(t, err)
	assert.Equal(t, "ollama", client.Name())

	client, err = NewClient(ctx, &Config{Provider: ProviderDemo})
	require.NoError(t, err)
	assert.Nil(t, client)

	_, err = NewClient(ctx, &Config{Provider: ProviderGemini})
	assert.Error(t, err, "gemini without an API key must fail")

	_, err = NewClient(ctx, &Config{Provider: Provider("bogus")})
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, ProviderOllama, config.Provider)
	assert.Equal(t, "http://localhost:11434", config.OllamaURL)
	assert.Equal(t, "llama3.1:8b", config.OllamaModel)
}
