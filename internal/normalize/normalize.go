// Package normalize rewrites Latin-script Darija sentences into the
// normalized orthography the dictionary lookups expect.
package normalize

import (
	"strings"
)

// replacements are applied in this exact order. The order is load-bearing:
// "x" is rewritten to "ch" only after the "chch" collapse has run, so an "x"
// never feeds the "chch" rule.
var replacements = []struct {
	old string
	new string
}{
	{"ou", "o"},
	{"chch", "ch"},
	{"khkh", "kh"},
	{"ghgh", "gh"},
	{"x", "ch"},
}

// PunctuationRemover is the slice of the word-distance collaborator the
// normalizer needs.
type PunctuationRemover interface {
	RemovePunctuation(text string) (string, error)
}

// Error indicates that the punctuation removal step failed.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return "normalization failed: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Replace applies only the ordered substring replacements, without
// punctuation removal.
func Replace(sentence string) string {
	for _, r := range replacements {
		sentence = strings.ReplaceAll(sentence, r.old, r.new)
	}
	return sentence
}

// Sentence normalizes a sentence: ordered substring replacements followed by
// punctuation removal delegated to the collaborator. Returns an *Error when
// the collaborator fails.
func Sentence(sentence string, remover PunctuationRemover) (string, error) {
	sentence = Replace(sentence)

	cleaned, err := remover.RemovePunctuation(sentence)
	if err != nil {
		return "", &Error{Err: err}
	}
	return cleaned, nil
}
