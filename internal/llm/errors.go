package llm

import (
	"errors"
	"fmt"
)

// ErrNotInitialized indicates that a managed-API backend was used without an
// API key being configured.
var ErrNotInitialized = errors.New("client is not initialized")

// HTTPError indicates that the hosted endpoint answered with a non-2xx
// status.
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("failed to retrieve translation from LLM: %s", e.Status)
}

// NetworkError indicates a transport-level failure talking to the hosted
// endpoint, including a tripped circuit breaker.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error when calling LLM: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError indicates that the hosted endpoint's response body was not
// valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "failed to decode JSON response from LLM: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ResponseFormatError indicates that a managed API answered with a shape
// that does not contain the expected first-choice message content.
type ResponseFormatError struct {
	Backend string
}

func (e *ResponseFormatError) Error() string {
	return "unexpected response format from " + e.Backend
}
