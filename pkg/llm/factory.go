package llm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/reeltaste/reeltaste-engine/pkg/config"
)

// NewFromConfig creates the completion client selected by configuration.
// Returns the Client interface to enable dependency injection of mocks.
func NewFromConfig(cfg *config.LLMConfig, logger *zap.Logger) (Client, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIClient(&OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		}, logger)
	case "anthropic":
		return NewAnthropicClient(&AnthropicConfig{
			APIKey: cfg.AnthropicAPIKey,
			Model:  cfg.Model,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", cfg.Provider)
	}
}
