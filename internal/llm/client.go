package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sashabaranov/go-openai"
)

// systemInstruction fixes the translator role for the managed-API backends.
const systemInstruction = "You are a translator from Moroccan dialect -Darija- to English. Only give the translation of the sentence. No extra information."

// Backend selects the translation transport.
type Backend string

const (
	// BackendHosted targets a self-hosted HTTP JSON endpoint.
	BackendHosted Backend = "hosted"
	// BackendOpenAI targets the OpenAI chat-completion API.
	BackendOpenAI Backend = "openai"
	// BackendGemini targets the Gemini API.
	BackendGemini Backend = "gemini"
)

// Translator is the single entry point the assistant calls. Implementations
// propagate all failures; any fallback behavior lives in the caller.
type Translator interface {
	// Translate sends the prompt to the backend and returns the translation.
	Translate(ctx context.Context, prompt string) (string, error)

	// Name returns the backend name.
	Name() string
}

// HostedConfig configures the self-hosted HTTP backend.
type HostedConfig struct {
	URL     string        // Endpoint URL
	APIKey  string        // Optional bearer token
	Timeout time.Duration // HTTP client timeout
}

// OpenAIConfig configures the OpenAI backend.
type OpenAIConfig struct {
	APIKey      string
	Model       string
	BaseURL     string  // Optional OpenAI-compatible endpoint override
	Temperature float32 // 0 leaves the API default in place
	MaxTokens   int     // 0 leaves the API default in place
}

// GeminiConfig configures the Gemini backend.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// Config holds the construction-time configuration for a Translator. One
// backend is active; the others are ignored.
type Config struct {
	Backend Backend
	Hosted  HostedConfig
	OpenAI  OpenAIConfig
	Gemini  GeminiConfig
	Logger  *slog.Logger
}

// DefaultConfig returns the default client configuration: hosted backend on
// localhost with sensible model defaults for the managed APIs.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendHosted,
		Hosted: HostedConfig{
			URL:     "http://localhost:8000",
			Timeout: 30 * time.Second,
		},
		OpenAI: OpenAIConfig{
			Model: openai.GPT4oMini,
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.0-flash",
		},
	}
}

// New creates the Translator for the configured backend. A managed-API
// backend without an API key still constructs successfully; its Translate
// fails with ErrNotInitialized on use.
func New(config *Config) (Translator, error) {
	if config == nil {
		config = DefaultConfig()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	switch config.Backend {
	case BackendHosted, "":
		hosted := config.Hosted
		if hosted.URL == "" {
			hosted.URL = DefaultConfig().Hosted.URL
		}
		if hosted.Timeout == 0 {
			hosted.Timeout = DefaultConfig().Hosted.Timeout
		}
		return NewHostedClient(hosted, logger), nil

	case BackendOpenAI:
		cfg := config.OpenAI
		if cfg.Model == "" {
			cfg.Model = openai.GPT4oMini
		}
		return NewOpenAIClient(cfg, logger), nil

	case BackendGemini:
		cfg := config.Gemini
		if cfg.Model == "" {
			cfg.Model = DefaultConfig().Gemini.Model
		}
		return NewGeminiClient(cfg, logger), nil

	default:
		return nil, fmt.Errorf("unknown LLM backend: %s", config.Backend)
	}
}
