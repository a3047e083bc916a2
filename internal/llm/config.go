// Package llm provides client abstractions over language-model backends.
// One provider is selected at startup; callers above this package never talk
// to a backend directly.
package llm

// Provider represents an LLM backend provider.
type Provider string

// Supported providers. ProviderDemo performs no network calls at all; the
// gateway serves canned responses instead.
const (
	ProviderOllama Provider = "ollama"
	ProviderGemini Provider = "gemini"
	ProviderDemo   Provider = "demo"
)

// GenerateRequest carries one generation call to a backend.
type GenerateRequest struct {
	Prompt      string
	System      string
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// Generation defaults, applied when a request leaves a knob at zero.
const (
	DefaultTemperature = 0.7
	DefaultTopP        = 0.9
	DefaultMaxTokens   = 2000
)

// withDefaults fills unset generation parameters.
func (r GenerateRequest) withDefaults() GenerateRequest {
	if r.Temperature == 0 {
		r.Temperature = DefaultTemperature
	}
	if r.TopP == 0 {
		r.TopP = DefaultTopP
	}
	if r.MaxTokens == 0 {
		r.MaxTokens = DefaultMaxTokens
	}
	return r
}

// Config holds backend connection settings.
type Config struct {
	Provider Provider

	// Ollama settings
	OllamaURL   string
	OllamaModel string

	// Gemini settings
	GeminiAPIKey string
	GeminiModel  string
}

// DefaultConfig returns the default backend configuration: a local Ollama
// server with a small general model.
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderOllama,
		OllamaURL:   "http://localhost:11434",
		OllamaModel: "llama3.1:8b",
		GeminiModel: "gemini-2.5-flash",
	}
}
