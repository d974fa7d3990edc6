// Package models lists the OpenAI models available to the configured API
// key, so users can pick a chat model for the commercial backend.
package models
