package normalize

import (
	"errors"
	"testing"
)

// identityRemover returns the text unchanged
type identityRemover struct{}

func (identityRemover) RemovePunctuation(text string) (string, error) {
	return text, nil
}

// failingRemover always fails
type failingRemover struct {
	err error
}

func (r failingRemover) RemovePunctuation(text string) (string, error) {
	return "", r.err
}

func TestReplace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ou rak labas", "o rak labas"},
		{"chch", "ch"},
		{"khkh", "kh"},
		{"ghgh", "gh"},
		{"x", "ch"},
		// "x" is replaced after the "chch" collapse, so two x's stay "chch"
		{"xx", "chch"},
		{"oukha", "okha"},
		{"salam", "salam"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Replace(tt.input)
			if got != tt.expected {
				t.Errorf("Replace(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestReplace_Idempotent(t *testing.T) {
	// Inputs without any trigger substring are fixed points
	inputs := []string{"salam", "rak labas", "daba mzyan", "kbir"}

	for _, input := range inputs {
		once := Replace(input)
		twice := Replace(once)
		if once != twice {
			t.Errorf("Replace not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestSentence(t *testing.T) {
	got, err := Sentence("ou rak labas", identityRemover{})
	if err != nil {
		t.Fatalf("Sentence() failed: %v", err)
	}
	if got != "o rak labas" {
		t.Errorf("Sentence() = %q, want %q", got, "o rak labas")
	}
}

func TestSentence_RemoverFailure(t *testing.T) {
	cause := errors.New("collaborator down")

	_, err := Sentence("salam", failingRemover{err: cause})
	if err == nil {
		t.Fatal("Expected error from failing remover")
	}

	var normErr *Error
	if !errors.As(err, &normErr) {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if !errors.Is(err, cause) {
		t.Error("Expected error to wrap the underlying cause")
	}
}
