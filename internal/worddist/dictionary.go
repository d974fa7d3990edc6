package worddist

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

//go:embed dictionary.csv
var defaultDictionary []byte

// Dictionary is a Matcher backed by a flat word list. Exact lookups are map
// hits; approximate lookups collect nearby entries by edit distance, bounded
// by the tuning parameters. Dictionary entries are expected in normalized
// orthography (e.g. "o" rather than "ou").
type Dictionary struct {
	params  Params
	entries map[string][]string
}

// NewDictionary creates a Dictionary from the embedded default word list.
func NewDictionary(params Params) *Dictionary {
	d, err := parseDictionary(bytes.NewReader(defaultDictionary), params)
	if err != nil {
		// The embedded list is fixed at build time, so this cannot happen
		// for released binaries.
		panic(fmt.Sprintf("embedded dictionary is invalid: %v", err))
	}
	return d
}

// LoadDictionary creates a Dictionary from a CSV file with one
// "word,translation" pair per line. Repeated words accumulate translations.
func LoadDictionary(path string, params Params) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	d, err := parseDictionary(f, params)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dictionary %s: %w", path, err)
	}
	return d, nil
}

func parseDictionary(r io.Reader, params Params) (*Dictionary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Translations may contain commas in later fields

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	entries := make(map[string][]string, len(records))
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		word := strings.ToLower(strings.TrimSpace(record[0]))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		translation := strings.TrimSpace(strings.Join(record[1:], ","))
		if translation == "" {
			continue
		}
		entries[word] = append(entries[word], translation)
	}

	return &Dictionary{params: params, entries: entries}, nil
}

// Params returns the tuning parameters the dictionary was built with.
func (d *Dictionary) Params() Params {
	return d.params
}

// Len returns the number of distinct words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// RemovePunctuation replaces punctuation and symbol runes with spaces.
func (d *Dictionary) RemovePunctuation(text string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return ' '
		}
		return r
	}, text)
	return strings.Join(strings.Fields(cleaned), " "), nil
}

// GetAllExactTranslations returns every translation recorded for the word,
// or nil when the word is unknown.
func (d *Dictionary) GetAllExactTranslations(word string) (Translation, error) {
	translations, ok := d.entries[strings.ToLower(word)]
	if !ok {
		return nil, nil
	}
	// Copy to prevent external modification
	result := make([]string, len(translations))
	copy(result, translations)
	return result, nil
}

// LookupTranslationWord returns approximate translation candidates for the
// word. An exact hit wins outright; otherwise nearby dictionary words are
// collected by edit distance, closest first, capped by MaxWords and the
// distance budgets.
func (d *Dictionary) LookupTranslationWord(word string) (Translation, error) {
	word = strings.ToLower(word)
	if translations, ok := d.entries[word]; ok {
		result := make([]string, len(translations))
		copy(result, translations)
		return result, nil
	}

	type candidate struct {
		entry    string
		distance int
	}
	var candidates []candidate
	for entry := range d.entries {
		distance := levenshtein.ComputeDistance(word, entry)
		if distance > d.params.DistanceThreshold || distance > d.params.AcceptanceThreshold {
			continue
		}
		candidates = append(candidates, candidate{entry: entry, distance: distance})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].entry < candidates[j].entry
	})

	var result []string
	sum := 0
	for _, c := range candidates {
		if len(result) >= d.params.MaxWords {
			break
		}
		sum += c.distance
		if sum > d.params.SumThreshold {
			break
		}
		result = append(result, d.entries[c.entry]...)
	}
	if len(result) == 0 {
		return nil, nil
	}
	return result, nil
}
