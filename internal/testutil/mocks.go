// Package testutil provides shared test doubles for the assistant and its
// collaborators.
package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/aissam-out/darija-assistant/internal/worddist"
)

// MockMatcher implements worddist.Matcher with canned responses.
type MockMatcher struct {
	Translations map[string]worddist.Translation // Approximate lookups
	Exact        map[string]worddist.Translation // Exact lookups
	PunctErr     error                           // Error returned by RemovePunctuation
	LookupErr    error                           // Error returned by both lookups
	Calls        []string
}

// RemovePunctuation records the call and returns the text unchanged unless
// PunctErr is set.
func (m *MockMatcher) RemovePunctuation(text string) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("RemovePunctuation(%s)", text))
	if m.PunctErr != nil {
		return "", m.PunctErr
	}
	return text, nil
}

// LookupTranslationWord returns the canned approximate translation for word.
func (m *MockMatcher) LookupTranslationWord(word string) (worddist.Translation, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("LookupTranslationWord(%s)", word))
	if m.LookupErr != nil {
		return nil, m.LookupErr
	}
	return m.Translations[word], nil
}

// GetAllExactTranslations returns the canned exact translation for word.
func (m *MockMatcher) GetAllExactTranslations(word string) (worddist.Translation, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("GetAllExactTranslations(%s)", word))
	if m.LookupErr != nil {
		return nil, m.LookupErr
	}
	return m.Exact[word], nil
}

// CallCount returns how many recorded calls start with prefix.
func (m *MockMatcher) CallCount(prefix string) int {
	count := 0
	for _, call := range m.Calls {
		if strings.HasPrefix(call, prefix) {
			count++
		}
	}
	return count
}

// MockTranslator implements the assistant's Translator interface.
type MockTranslator struct {
	Response string
	Err      error
	Prompts  []string
}

// Translate records the prompt and returns the canned response or error.
func (m *MockTranslator) Translate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return "mock translation", nil
}
