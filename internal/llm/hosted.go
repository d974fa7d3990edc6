package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sony/gobreaker"
)

// FallbackTranslation is returned as a success value when the hosted
// endpoint answers 2xx but without a usable "translation" field, whether
// the field is absent or explicitly null.
const FallbackTranslation = "Translation failed."

// HostedClient talks to a self-hosted LLM over plain HTTP: POST with a JSON
// body {"prompt": ...}, JSON response with a "translation" field. A circuit
// breaker fails calls fast while the endpoint is down; no retries are ever
// performed.
type HostedClient struct {
	url        string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// hostedResponse is the expected response body. Translation stays nil when
// the field is absent or null; both collapse to FallbackTranslation.
type hostedResponse struct {
	Translation *string `json:"translation"`
}

// NewHostedClient creates a client for the hosted endpoint.
func NewHostedClient(config HostedConfig, logger *slog.Logger) *HostedClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &HostedClient{
		url:    config.URL,
		apiKey: config.APIKey,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: "hosted-llm",
		}),
		logger: logger,
	}
}

// Name returns the backend name.
func (c *HostedClient) Name() string {
	return string(BackendHosted)
}

// Translate posts the prompt to the endpoint and extracts the translation.
// Failures are logged and propagated: *HTTPError for non-2xx statuses,
// *NetworkError for transport failures (including an open breaker) and
// *DecodeError for unparsable bodies. A 2xx response with a missing or
// null "translation" field yields FallbackTranslation as a success value.
func (c *HostedClient) Translate(ctx context.Context, prompt string) (string, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		return c.post(ctx, prompt)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = &NetworkError{Err: err}
		}
		c.logger.Error("hosted LLM call failed", "url", c.url, "error", err)
		return "", err
	}
	return result.(string), nil
}

func (c *HostedClient) post(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	} else {
		req.Header.Set("Authorization", "")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var parsed hostedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &DecodeError{Err: err}
	}

	if parsed.Translation == nil {
		// The endpoint answered successfully but without a translation.
		// Mirror the lenient contract: a literal fallback, not an error.
		return FallbackTranslation, nil
	}
	return *parsed.Translation, nil
}
