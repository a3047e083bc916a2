package llm

import (
	"context"
	"fmt"
)

// Client is an abstraction over LLM providers.
type Client interface {
	// Generate sends one prompt to the backend and returns the raw text
	// response. Errors are backend errors; the caller decides how to degrade.
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	// Available reports whether the backend is reachable and serving the
	// configured model. Used for startup diagnostics, not gating.
	Available(ctx context.Context) bool
	// Name identifies the provider for logging.
	Name() string
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a client for the configured provider. ProviderDemo
// returns (nil, nil): the gateway treats a nil client as demo mode.
func NewClient(ctx context.Context, config *Config) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderOllama:
		return NewOllamaClient(config.OllamaURL, config.OllamaModel), nil
	case ProviderGemini:
		return NewGeminiClient(ctx, config.GeminiAPIKey, config.GeminiModel)
	case ProviderDemo:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", config.Provider)
	}
}
