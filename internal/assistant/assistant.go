package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aissam-out/darija-assistant/internal/normalize"
	"github.com/aissam-out/darija-assistant/internal/worddist"
)

// FallbackTranslation is what AssistAndTranslate returns when the lookup or
// the LLM call fails. Details survive only in the log.
const FallbackTranslation = "Translation failed."

// ErrEmptyInput indicates an empty input sentence.
var ErrEmptyInput = errors.New("input sentence cannot be empty")

// ErrNoClient indicates that no LLM client was configured.
var ErrNoClient = errors.New("no LLM client configured")

// Translator is the LLM entry point the assistant calls. Satisfied by the
// llm package's clients.
type Translator interface {
	Translate(ctx context.Context, prompt string) (string, error)
}

// Assistance maps each word of the normalized sentence to its translation
// payload. Only words with a non-empty translation are included.
type Assistance map[string]worddist.Translation

// JSON serializes the assistance mapping as a JSON object.
func (a Assistance) JSON() (string, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("failed to serialize assistance: %w", err)
	}
	return string(data), nil
}

// Config holds the construction-time configuration for an Assistant.
type Config struct {
	Matcher worddist.Matcher // Required word-distance collaborator
	Client  Translator       // Optional LLM client
	UseJSON bool             // Embed assistance as JSON in prompts
	Logger  *slog.Logger
}

// Options control a single translation call.
type Options struct {
	Exact        bool   // Use exact dictionary lookups instead of approximate ones
	CustomPrompt string // Overrides the default prompt template verbatim
}

// Assistant orchestrates normalization, cached per-word lookup, prompt
// construction and the LLM call.
type Assistant struct {
	matcher    worddist.Matcher
	client     Translator
	useJSON    bool
	logger     *slog.Logger
	cache      *Cache // Approximate lookup results
	exactCache *Cache // Exact lookup results, independently keyed
}

// New creates an Assistant. The matcher is required; the LLM client may be
// nil, in which case only the lookup operations are available.
func New(config *Config) (*Assistant, error) {
	if config == nil || config.Matcher == nil {
		return nil, errors.New("assistant requires a word-distance matcher")
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Assistant{
		matcher:    config.Matcher,
		client:     config.Client,
		useJSON:    config.UseJSON,
		logger:     logger,
		cache:      NewCache(),
		exactCache: NewCache(),
	}, nil
}

// LookupTranslation returns approximate translation assistance for each word
// of the sentence. Results are memoized per normalized word, including empty
// ones; only non-empty translations appear in the returned mapping.
func (a *Assistant) LookupTranslation(sentence string) (Assistance, error) {
	return a.lookup(sentence, a.cache, a.matcher.LookupTranslationWord)
}

// LookupExactTranslation returns exact translation assistance for each word
// of the sentence, using a cache separate from the approximate one.
func (a *Assistant) LookupExactTranslation(sentence string) (Assistance, error) {
	return a.lookup(sentence, a.exactCache, a.matcher.GetAllExactTranslations)
}

func (a *Assistant) lookup(sentence string, cache *Cache, lookupWord func(string) (worddist.Translation, error)) (Assistance, error) {
	if sentence == "" {
		return nil, ErrEmptyInput
	}

	normalized, err := normalize.Sentence(sentence, a.matcher)
	if err != nil {
		a.logger.Error("sentence normalization failed", "error", err)
		return nil, err
	}

	response := make(Assistance)
	for _, word := range strings.Fields(normalized) {
		translation, ok := cache.Get(word)
		if !ok {
			translation, err = lookupWord(word)
			if err != nil {
				return nil, fmt.Errorf("failed to look up %q: %w", word, err)
			}
			cache.Add(word, translation)
		}

		if !worddist.Empty(translation) {
			response[word] = translation
		}
	}
	return response, nil
}

// AssistanceString renders an assistance mapping the way it is embedded into
// prompts: JSON when the assistant is in JSON mode, Go map formatting
// otherwise.
func (a *Assistant) AssistanceString(assistance Assistance) (string, error) {
	if a.useJSON {
		return assistance.JSON()
	}
	return fmt.Sprintf("%v", map[string]worddist.Translation(assistance)), nil
}

// Translate computes assistance and asks the LLM for the translation,
// propagating every failure as a typed error. Callers wanting the historical
// swallow-and-stringify contract use AssistAndTranslate instead.
func (a *Assistant) Translate(ctx context.Context, sentence string, opts Options) (string, error) {
	if sentence == "" {
		return "", ErrEmptyInput
	}

	assistanceStr, err := a.assist(sentence, opts.Exact)
	if err != nil {
		return "", err
	}

	if a.client == nil {
		return "", ErrNoClient
	}
	prompt := BuildPrompt(sentence, assistanceStr, opts.CustomPrompt)
	return a.client.Translate(ctx, prompt)
}

// AssistAndTranslate translates a Darija sentence to English using the LLM
// plus per-word assistance. Failures of the lookup step or the LLM call are
// logged and collapsed into FallbackTranslation; the only returned error is
// ErrEmptyInput for an empty sentence.
func (a *Assistant) AssistAndTranslate(ctx context.Context, sentence string, opts Options) (string, error) {
	if sentence == "" {
		return "", ErrEmptyInput
	}

	assistanceStr, err := a.assist(sentence, opts.Exact)
	if err != nil {
		a.logger.Error("failed to look up translation", "error", err)
		return FallbackTranslation, nil
	}

	if a.client == nil {
		a.logger.Error("failed to translate using LLM", "error", ErrNoClient)
		return FallbackTranslation, nil
	}

	prompt := BuildPrompt(sentence, assistanceStr, opts.CustomPrompt)
	translation, err := a.client.Translate(ctx, prompt)
	if err != nil {
		a.logger.Error("failed to translate using LLM", "error", err)
		return FallbackTranslation, nil
	}
	return translation, nil
}

func (a *Assistant) assist(sentence string, exact bool) (string, error) {
	var (
		assistance Assistance
		err        error
	)
	if exact {
		assistance, err = a.LookupExactTranslation(sentence)
	} else {
		assistance, err = a.LookupTranslation(sentence)
	}
	if err != nil {
		return "", err
	}
	return a.AssistanceString(assistance)
}

// The collaborator's own operations are re-exposed as named wrappers rather
// than through any catch-all forwarding.

// RemovePunctuation strips punctuation via the word-distance collaborator.
func (a *Assistant) RemovePunctuation(text string) (string, error) {
	return a.matcher.RemovePunctuation(text)
}

// LookupTranslationWord looks up a single word via the collaborator,
// bypassing the caches.
func (a *Assistant) LookupTranslationWord(word string) (worddist.Translation, error) {
	return a.matcher.LookupTranslationWord(word)
}

// GetAllExactTranslations looks up a single word's exact matches via the
// collaborator, bypassing the caches.
func (a *Assistant) GetAllExactTranslations(word string) (worddist.Translation, error) {
	return a.matcher.GetAllExactTranslations(word)
}
