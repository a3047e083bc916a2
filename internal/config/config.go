// Package config provides configuration loading for the career coach. Values
// come from the environment first, optionally overlaid on a JSON config file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jonathan/career-coach/internal/llm"
)

// Config holds every runtime setting.
type Config struct {
	// Model backend
	Provider     string `json:"provider,omitempty"`       // ollama, gemini, or demo
	OllamaURL    string `json:"ollama_url,omitempty"`     // Ollama server base URL
	OllamaModel  string `json:"ollama_model,omitempty"`   // model name served by Ollama
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Gemini API key
	GeminiModel  string `json:"gemini_model,omitempty"`   // Gemini model name

	// Timeouts
	RequestTimeoutSeconds int `json:"request_timeout_seconds,omitempty"` // per model call

	// Interview
	MaxInterviewQuestions int `json:"max_interview_questions,omitempty"`

	// Persistence
	DataDir     string `json:"data_dir,omitempty"`     // JSON file store directory
	DatabaseURL string `json:"database_url,omitempty"` // Postgres store, overrides DataDir when set

	// Server
	HTTPAddr string `json:"http_addr,omitempty"`

	// Logging
	LogLevel string `json:"log_level,omitempty"` // debug, info, warn, error
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Provider:              string(llm.ProviderOllama),
		OllamaURL:             "http://localhost:11434",
		OllamaModel:           "llama3.1:8b",
		GeminiModel:           "gemini-2.5-flash",
		RequestTimeoutSeconds: 120,
		MaxInterviewQuestions: 10,
		DataDir:               "data",
		HTTPAddr:              ":8080",
		LogLevel:              "info",
	}
}

// FromEnv reads configuration from environment variables, falling back to
// defaults for anything unset.
func FromEnv() Config {
	return EnvOverlay(Defaults())
}

// EnvOverlay applies environment variables on top of base. Unset variables
// leave the base value alone.
func EnvOverlay(base Config) Config {
	cfg := base

	setString(&cfg.Provider, "LLM_PROVIDER")
	setString(&cfg.OllamaURL, "OLLAMA_URL")
	setString(&cfg.OllamaModel, "OLLAMA_MODEL")
	setString(&cfg.GeminiAPIKey, "GEMINI_API_KEY")
	setString(&cfg.GeminiModel, "GEMINI_MODEL")
	setString(&cfg.DataDir, "DATA_DIR")
	setString(&cfg.DatabaseURL, "DATABASE_URL")
	setString(&cfg.HTTPAddr, "HTTP_ADDR")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setInt(&cfg.RequestTimeoutSeconds, "REQUEST_TIMEOUT_SECONDS")
	setInt(&cfg.MaxInterviewQuestions, "MAX_INTERVIEW_QUESTIONS")

	return cfg
}

// LoadFile reads a JSON config file and overlays it on defaults. Environment
// variables still win: callers apply FromEnv on top via Merge.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return cfg, nil
}

// Merge returns the config with empty fields filled from defaults.
func (c Config) Merge(defaults Config) Config {
	result := c

	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.OllamaURL == "" {
		result.OllamaURL = defaults.OllamaURL
	}
	if result.OllamaModel == "" {
		result.OllamaModel = defaults.OllamaModel
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}
	if result.RequestTimeoutSeconds == 0 {
		result.RequestTimeoutSeconds = defaults.RequestTimeoutSeconds
	}
	if result.MaxInterviewQuestions == 0 {
		result.MaxInterviewQuestions = defaults.MaxInterviewQuestions
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.HTTPAddr == "" {
		result.HTTPAddr = defaults.HTTPAddr
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	return result
}

// Validate checks the configuration at startup. Invalid settings are fatal
// here and nowhere else; past startup every failure degrades gracefully.
func (c Config) Validate() error {
	switch llm.Provider(c.Provider) {
	case llm.ProviderOllama, llm.ProviderGemini, llm.ProviderDemo:
	default:
		return fmt.Errorf("config error: unsupported provider %q (want ollama, gemini, or demo)", c.Provider)
	}

	if llm.Provider(c.Provider) == llm.ProviderGemini && c.GeminiAPIKey == "" {
		return fmt.Errorf("config error: GEMINI_API_KEY is required for the gemini provider")
	}
	if c.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("config error: request timeout must be positive")
	}
	if c.MaxInterviewQuestions <= 0 {
		return fmt.Errorf("config error: max interview questions must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown log level %q", c.LogLevel)
	}

	return nil
}

// RequestTimeout returns the per-call model timeout as a duration.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// LLMConfig converts to the backend client configuration.
func (c Config) LLMConfig() *llm.Config {
	return &llm.Config{
		Provider:     llm.Provider(c.Provider),
		OllamaURL:    c.OllamaURL,
		OllamaModel:  c.OllamaModel,
		GeminiAPIKey: c.GeminiAPIKey,
		GeminiModel:  c.GeminiModel,
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
