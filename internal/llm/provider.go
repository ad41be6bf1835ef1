package llm

import (
	"context"
	"fmt"

	"github.com/credlens/fakenews-detector/internal/config"
)

// NewProvider builds the model backend selected by LLM_PROVIDER.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	switch cfg.LLM.Provider {
	case "gemini":
		return NewGemini(ctx, &cfg.Gemini)
	case "openai":
		return NewOpenAI(&cfg.OpenAI)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
}
