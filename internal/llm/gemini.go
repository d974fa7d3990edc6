package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

// GeminiClient translates prompts through the Gemini API.
type GeminiClient struct {
	config GeminiConfig
	client *genai.Client
	logger *slog.Logger
}

// NewGeminiClient creates a Gemini-backed translator. The underlying API
// client is created lazily on the first call, so construction never fails;
// without an API key Translate fails with ErrNotInitialized.
func NewGeminiClient(config GeminiConfig, logger *slog.Logger) *GeminiClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &GeminiClient{
		config: config,
		logger: logger,
	}
}

// Name returns the backend name.
func (c *GeminiClient) Name() string {
	return string(BackendGemini)
}

// Translate sends the prompt to the configured Gemini model with the fixed
// translator system instruction and extracts the response text. Fails with
// *ResponseFormatError when the response carries no text.
func (c *GeminiClient) Translate(ctx context.Context, prompt string) (string, error) {
	if c.config.APIKey == "" {
		return "", fmt.Errorf("Gemini %w", ErrNotInitialized)
	}

	if c.client == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  c.config.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			c.logger.Error("Gemini client creation failed", "error", err)
			return "", fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		c.client = client
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.config.Model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	})
	if err != nil {
		c.logger.Error("Gemini call failed", "model", c.config.Model, "error", err)
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		c.logger.Error("unexpected Gemini response", "model", c.config.Model)
		return "", &ResponseFormatError{Backend: string(BackendGemini)}
	}
	return text, nil
}
