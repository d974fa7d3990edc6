package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aissam-out/darija-assistant/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "darija-assistant [sentence]",
		Short: "Darija to English translation assistant",
		Long: `darija-assistant translates Latin-script Darija (Moroccan Arabic)
sentences to English.

It normalizes the sentence, looks up per-word translation hints in a
dictionary, and feeds both to an LLM: either a self-hosted HTTP endpoint,
the OpenAI API, or the Gemini API.

Examples:
  darija-assistant "salam, labas?"                 # Translate via the hosted backend
  darija-assistant --backend openai "wakha ghda"   # Translate via OpenAI
  darija-assistant --lookup-only "fin nta"         # Print only the assistance mapping
  darija-assistant --batch sentences.txt           # Translate a file, one sentence per line`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.darija-assistant.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Translate sentences from file (one per line)")
	cmd.Flags().StringVar(&flags.Dictionary, "dictionary", "", "CSV dictionary file (word,translation); built-in word list by default")
	cmd.Flags().BoolVar(&flags.Exact, "exact", false, "Use exact dictionary lookups instead of approximate ones")
	cmd.Flags().BoolVar(&flags.LookupOnly, "lookup-only", false, "Print the assistance mapping without calling the LLM")
	cmd.Flags().BoolVar(&flags.UseJSON, "json", flags.UseJSON, "Embed the assistance mapping as JSON in the prompt")
	cmd.Flags().StringVar(&flags.CustomPrompt, "prompt", "", "Custom prompt sent verbatim instead of the default template")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models for the current API key")

	// LLM flags
	cmd.Flags().StringVar(&flags.Backend, "backend", flags.Backend, "LLM backend: hosted, openai or gemini")
	cmd.Flags().StringVar(&flags.LLMURL, "llm-url", flags.LLMURL, "URL of the hosted LLM endpoint")
	cmd.Flags().StringVar(&flags.LLMAPIKey, "llm-api-key", "", "Bearer token for the hosted LLM endpoint")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model")
	cmd.Flags().Float64Var(&flags.Temperature, "temperature", flags.Temperature, "Sampling temperature passed to the commercial API (0 = API default)")
	cmd.Flags().IntVar(&flags.MaxTokens, "max-tokens", flags.MaxTokens, "Completion token limit passed to the commercial API (0 = API default)")

	// Matcher tuning flags
	cmd.Flags().IntVar(&flags.SumThreshold, "sum-threshold", flags.SumThreshold, "Cumulative distance budget for approximate matches")
	cmd.Flags().IntVar(&flags.DistanceThreshold, "distance-threshold", flags.DistanceThreshold, "Maximum edit distance for an approximate match")
	cmd.Flags().IntVar(&flags.AcceptanceThreshold, "acceptance-threshold", flags.AcceptanceThreshold, "Maximum edit distance to accept a candidate")
	cmd.Flags().IntVar(&flags.MaxWords, "max-words", flags.MaxWords, "Maximum number of candidates per word")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("llm.backend", cmd.Flags().Lookup("backend"))
	viper.BindPFlag("llm.url", cmd.Flags().Lookup("llm-url"))
	viper.BindPFlag("llm.api_key", cmd.Flags().Lookup("llm-api-key"))
	viper.BindPFlag("llm.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("llm.gemini_model", cmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag("llm.temperature", cmd.Flags().Lookup("temperature"))
	viper.BindPFlag("llm.max_tokens", cmd.Flags().Lookup("max-tokens"))
	viper.BindPFlag("assistance.json", cmd.Flags().Lookup("json"))
	viper.BindPFlag("assistance.dictionary", cmd.Flags().Lookup("dictionary"))
	viper.BindPFlag("matcher.sum_threshold", cmd.Flags().Lookup("sum-threshold"))
	viper.BindPFlag("matcher.distance_threshold", cmd.Flags().Lookup("distance-threshold"))
	viper.BindPFlag("matcher.acceptance_threshold", cmd.Flags().Lookup("acceptance-threshold"))
	viper.BindPFlag("matcher.max_words", cmd.Flags().Lookup("max-words"))
}

// ApplyConfig overlays config-file and environment values onto flags the
// user did not set on the command line. Bound flags resolve first in viper,
// so an explicit flag always wins over the config file.
func (f *Flags) ApplyConfig() {
	if viper.IsSet("llm.backend") {
		f.Backend = viper.GetString("llm.backend")
	}
	if viper.IsSet("llm.url") {
		f.LLMURL = viper.GetString("llm.url")
	}
	if viper.IsSet("llm.api_key") {
		f.LLMAPIKey = viper.GetString("llm.api_key")
	}
	if viper.IsSet("llm.openai_model") {
		f.OpenAIModel = viper.GetString("llm.openai_model")
	}
	if viper.IsSet("llm.gemini_model") {
		f.GeminiModel = viper.GetString("llm.gemini_model")
	}
	if viper.IsSet("llm.temperature") {
		f.Temperature = viper.GetFloat64("llm.temperature")
	}
	if viper.IsSet("llm.max_tokens") {
		f.MaxTokens = viper.GetInt("llm.max_tokens")
	}
	if viper.IsSet("assistance.json") {
		f.UseJSON = viper.GetBool("assistance.json")
	}
	if viper.IsSet("assistance.dictionary") {
		f.Dictionary = viper.GetString("assistance.dictionary")
	}
	if viper.IsSet("matcher.sum_threshold") {
		f.SumThreshold = viper.GetInt("matcher.sum_threshold")
	}
	if viper.IsSet("matcher.distance_threshold") {
		f.DistanceThreshold = viper.GetInt("matcher.distance_threshold")
	}
	if viper.IsSet("matcher.acceptance_threshold") {
		f.AcceptanceThreshold = viper.GetInt("matcher.acceptance_threshold")
	}
	if viper.IsSet("matcher.max_words") {
		f.MaxWords = viper.GetInt("matcher.max_words")
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".darija-assistant" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".darija-assistant")
	}

	// Environment variables
	viper.SetEnvPrefix("DARIJA")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("llm.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("llm.gemini_key")
}
