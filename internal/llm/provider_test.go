package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credlens/fakenews-detector/internal/config"
)

func TestNewProviderOpenAI(t *testing.T) {
	cfg := &config.Config{
		LLM: config.LLMConfig{Provider: "openai"},
		OpenAI: config.OpenAIConfig{
			APIKey:      "sk-test",
			APIEndpoint: "https://api.openai.com/v1",
			Model:       "gpt-4o-mini",
		},
	}

	provider, err := NewProvider(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &OpenAI{}, provider)
}

func TestNewProviderUnknown(t *testing.T) {
	cfg := &config.Config{LLM: config.LLMConfig{Provider: "fax-machine"}}

	_, err := NewProvider(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown LLM provider")
}
