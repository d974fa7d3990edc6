package worddist

import "reflect"

// Translation is the payload returned for a single word lookup. The concrete
// shape is up to the Matcher implementation: a plain string, a list of
// candidate strings, or richer structured data. It must be JSON-serializable.
type Translation = any

// Params holds the numeric tuning parameters for a Matcher. Their exact
// semantics are internal to the implementation.
type Params struct {
	SumThreshold        int // Cumulative distance budget across candidates
	DistanceThreshold   int // Maximum edit distance for a candidate match
	AcceptanceThreshold int // Maximum edit distance to accept a lone candidate
	MaxWords            int // Maximum number of candidates returned per word
}

// DefaultParams returns the standard tuning parameters.
func DefaultParams() Params {
	return Params{
		SumThreshold:        100,
		DistanceThreshold:   10,
		AcceptanceThreshold: 20,
		MaxWords:            3,
	}
}

// Matcher is the word-distance collaborator the assistant orchestrates.
type Matcher interface {
	// RemovePunctuation strips punctuation from text.
	RemovePunctuation(text string) (string, error)

	// LookupTranslationWord returns approximate translation candidates for a
	// single word, or an empty Translation when nothing matches.
	LookupTranslationWord(word string) (Translation, error)

	// GetAllExactTranslations returns all exact dictionary matches for a
	// single word, or an empty Translation when nothing matches.
	GetAllExactTranslations(word string) (Translation, error)
}

// Empty reports whether a Translation carries no usable content: nil, an
// empty string, or an empty slice/map.
func Empty(t Translation) bool {
	if t == nil {
		return true
	}
	switch v := t.(type) {
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	}
	rv := reflect.ValueOf(t)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
