package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient translates prompts through the OpenAI chat-completion API.
type OpenAIClient struct {
	config OpenAIConfig
	client *openai.Client
	logger *slog.Logger
}

// NewOpenAIClient creates an OpenAI-backed translator. Without an API key
// the client constructs fine but fails with ErrNotInitialized on use.
func NewOpenAIClient(config OpenAIConfig, logger *slog.Logger) *OpenAIClient {
	if logger == nil {
		logger = slog.Default()
	}
	c := &OpenAIClient{
		config: config,
		logger: logger,
	}
	if config.APIKey != "" {
		cfg := openai.DefaultConfig(config.APIKey)
		if config.BaseURL != "" {
			cfg.BaseURL = config.BaseURL
		}
		c.client = openai.NewClientWithConfig(cfg)
	}
	return c
}

// Name returns the backend name.
func (c *OpenAIClient) Name() string {
	return string(BackendOpenAI)
}

// Translate sends a fixed system instruction plus the prompt to the
// configured model and extracts the first choice's message content. Fails
// with *ResponseFormatError when the response carries no choices; an empty
// content string is passed through as a success.
func (c *OpenAIClient) Translate(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("OpenAI %w", ErrNotInitialized)
	}

	req := openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemInstruction,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		c.logger.Error("OpenAI call failed", "model", c.config.Model, "error", err)
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		c.logger.Error("unexpected OpenAI response", "model", c.config.Model)
		return "", &ResponseFormatError{Backend: string(BackendOpenAI)}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
