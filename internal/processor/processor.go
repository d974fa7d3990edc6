package processor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aissam-out/darija-assistant/internal/assistant"
	"github.com/aissam-out/darija-assistant/internal/batch"
	"github.com/aissam-out/darija-assistant/internal/cli"
	"github.com/aissam-out/darija-assistant/internal/llm"
	"github.com/aissam-out/darija-assistant/internal/worddist"
)

// Processor handles the main translation logic
type Processor struct {
	flags     *cli.Flags
	assistant *assistant.Assistant
}

// NewProcessor creates a processor from the parsed flags: dictionary
// matcher, LLM client for the selected backend, and the assistant on top.
// Config-file values fill in flags the user left at their defaults.
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	flags.ApplyConfig()

	matcher, err := newMatcher(flags)
	if err != nil {
		return nil, err
	}

	client, err := newClient(flags)
	if err != nil {
		return nil, err
	}

	asst, err := assistant.New(&assistant.Config{
		Matcher: matcher,
		Client:  client,
		UseJSON: flags.UseJSON,
	})
	if err != nil {
		return nil, err
	}

	return &Processor{
		flags:     flags,
		assistant: asst,
	}, nil
}

func newMatcher(flags *cli.Flags) (worddist.Matcher, error) {
	params := worddist.Params{
		SumThreshold:        flags.SumThreshold,
		DistanceThreshold:   flags.DistanceThreshold,
		AcceptanceThreshold: flags.AcceptanceThreshold,
		MaxWords:            flags.MaxWords,
	}

	if flags.Dictionary != "" {
		return worddist.LoadDictionary(flags.Dictionary, params)
	}
	return worddist.NewDictionary(params), nil
}

func newClient(flags *cli.Flags) (llm.Translator, error) {
	config := llm.DefaultConfig()
	config.Backend = llm.Backend(flags.Backend)
	config.Hosted.URL = flags.LLMURL
	config.Hosted.APIKey = flags.LLMAPIKey
	config.OpenAI.APIKey = cli.GetOpenAIKey()
	config.OpenAI.Model = flags.OpenAIModel
	config.OpenAI.Temperature = float32(flags.Temperature)
	config.OpenAI.MaxTokens = flags.MaxTokens
	config.Gemini.APIKey = cli.GetGeminiKey()
	config.Gemini.Model = flags.GeminiModel

	return llm.New(config)
}

// ProcessSentence translates a single sentence and prints the result. In
// lookup-only mode it prints the assistance mapping instead.
func (p *Processor) ProcessSentence(ctx context.Context, sentence string) error {
	opts := assistant.Options{
		Exact:        p.flags.Exact,
		CustomPrompt: p.flags.CustomPrompt,
	}

	if p.flags.LookupOnly {
		assistance, err := p.lookup(sentence)
		if err != nil {
			return err
		}
		out, err := p.assistant.AssistanceString(assistance)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	translation, err := p.assistant.AssistAndTranslate(ctx, sentence, opts)
	if err != nil {
		return err
	}
	fmt.Println(translation)
	return nil
}

func (p *Processor) lookup(sentence string) (assistant.Assistance, error) {
	if p.flags.Exact {
		return p.assistant.LookupExactTranslation(sentence)
	}
	return p.assistant.LookupTranslation(sentence)
}

// ProcessBatch translates every sentence from the batch file, continuing
// past per-sentence failures.
func (p *Processor) ProcessBatch(ctx context.Context) error {
	sentences, err := batch.ReadSentences(p.flags.BatchFile)
	if err != nil {
		return err
	}
	if len(sentences) == 0 {
		return fmt.Errorf("no sentences found in %s", p.flags.BatchFile)
	}

	errorCount := 0
	start := time.Now()
	for i, sentence := range sentences {
		fmt.Printf("Processing %d/%d: %s\n", i+1, len(sentences), sentence)

		if err := p.ProcessSentence(ctx, sentence); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", sentence, err)
			errorCount++
			// Continue with next sentence
		}
	}

	fmt.Printf("\nTranslated %d/%d sentences in %s\n",
		len(sentences)-errorCount, len(sentences), time.Since(start).Round(time.Millisecond))
	if errorCount > 0 {
		return fmt.Errorf("%d of %d sentences failed", errorCount, len(sentences))
	}
	return nil
}
