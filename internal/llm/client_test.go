package llm

import (
	"context"
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Backend != BackendHosted {
		t.Errorf("Backend = %s, want hosted", config.Backend)
	}
	if config.Hosted.URL != "http://localhost:8000" {
		t.Errorf("Hosted.URL = %s, want http://localhost:8000", config.Hosted.URL)
	}
	if config.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("OpenAI.Model = %s, want gpt-4o-mini", config.OpenAI.Model)
	}
	if config.Gemini.Model == "" {
		t.Error("Gemini.Model not set")
	}
}

func TestNew_Hosted(t *testing.T) {
	client, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if client.Name() != "hosted" {
		t.Errorf("Name() = %s, want hosted", client.Name())
	}
}

func TestNew_EmptyBackendDefaultsToHosted(t *testing.T) {
	client, err := New(&Config{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if client.Name() != "hosted" {
		t.Errorf("Name() = %s, want hosted", client.Name())
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(&Config{Backend: "carrier-pigeon"})
	if err == nil {
		t.Error("Expected error for unknown backend")
	}
}

func TestOpenAIClient_NotInitialized(t *testing.T) {
	// Constructing without an API key is fine; using the client is not
	client, err := New(&Config{Backend: BackendOpenAI, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	_, err = client.Translate(context.Background(), "x")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Translate() error = %v, want ErrNotInitialized", err)
	}
}

func TestGeminiClient_NotInitialized(t *testing.T) {
	client, err := New(&Config{Backend: BackendGemini, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	_, err = client.Translate(context.Background(), "x")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Translate() error = %v, want ErrNotInitialized", err)
	}
}

func TestClientNames(t *testing.T) {
	tests := []struct {
		backend Backend
		name    string
	}{
		{BackendHosted, "hosted"},
		{BackendOpenAI, "openai"},
		{BackendGemini, "gemini"},
	}

	for _, tt := range tests {
		config := DefaultConfig()
		config.Backend = tt.backend
		config.Logger = quietLogger()

		client, err := New(config)
		if err != nil {
			t.Fatalf("New(%s) failed: %v", tt.backend, err)
		}
		if client.Name() != tt.name {
			t.Errorf("Name() = %s, want %s", client.Name(), tt.name)
		}
	}
}
