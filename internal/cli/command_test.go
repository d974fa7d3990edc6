package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "darija-assistant [sentence]" {
		t.Errorf("Expected Use to be 'darija-assistant [sentence]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Darija to English") {
		t.Error("Expected Short description to mention Darija to English")
	}

	// Test that flags are set up
	flagNames := []string{
		"config",
		"batch",
		"dictionary",
		"exact",
		"lookup-only",
		"json",
		"prompt",
		"list-models",
		"backend",
		"llm-url",
		"llm-api-key",
		"openai-model",
		"gemini-model",
		"temperature",
		"max-tokens",
		"sum-threshold",
		"distance-threshold",
		"acceptance-threshold",
		"max-words",
	}

	for _, name := range flagNames {
		t.Run("flag_"+name, func(t *testing.T) {
			var flag *pflag.Flag
			if name == "config" {
				flag = cmd.PersistentFlags().Lookup(name)
			} else {
				flag = cmd.Flags().Lookup(name)
			}
			if flag == nil {
				t.Errorf("Flag %s not registered", name)
			}
		})
	}
}

func TestCreateRootCommand_FlagParsing(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	err := cmd.ParseFlags([]string{
		"--backend", "openai",
		"--exact",
		"--json=false",
		"--openai-model", "gpt-4o",
		"--max-words", "5",
	})
	if err != nil {
		t.Fatalf("ParseFlags() failed: %v", err)
	}

	if flags.Backend != "openai" {
		t.Errorf("Backend = %s, want openai", flags.Backend)
	}
	if !flags.Exact {
		t.Error("Expected Exact to be true")
	}
	if flags.UseJSON {
		t.Error("Expected UseJSON to be false")
	}
	if flags.OpenAIModel != "gpt-4o" {
		t.Errorf("OpenAIModel = %s, want gpt-4o", flags.OpenAIModel)
	}
	if flags.MaxWords != 5 {
		t.Errorf("MaxWords = %d, want 5", flags.MaxWords)
	}
}

func TestApplyConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	flags := NewFlags()
	CreateRootCommand(flags)

	viper.SetConfigType("yaml")
	config := `
llm:
  backend: openai
  url: http://config-host:9000
  openai_model: gpt-4o
assistance:
  json: false
matcher:
  max_words: 7
`
	if err := viper.ReadConfig(strings.NewReader(config)); err != nil {
		t.Fatalf("ReadConfig() failed: %v", err)
	}

	flags.ApplyConfig()

	if flags.Backend != "openai" {
		t.Errorf("Backend = %s, want openai", flags.Backend)
	}
	if flags.LLMURL != "http://config-host:9000" {
		t.Errorf("LLMURL = %s, want http://config-host:9000", flags.LLMURL)
	}
	if flags.OpenAIModel != "gpt-4o" {
		t.Errorf("OpenAIModel = %s, want gpt-4o", flags.OpenAIModel)
	}
	if flags.UseJSON {
		t.Error("Expected UseJSON to be false from the config file")
	}
	if flags.MaxWords != 7 {
		t.Errorf("MaxWords = %d, want 7", flags.MaxWords)
	}
	// Keys the config file does not mention keep their flag defaults
	if flags.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("GeminiModel = %s, want default", flags.GeminiModel)
	}
}

func TestApplyConfig_FlagWins(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if err := cmd.ParseFlags([]string{"--llm-url", "http://flag-host:1234"}); err != nil {
		t.Fatalf("ParseFlags() failed: %v", err)
	}

	viper.SetConfigType("yaml")
	if err := viper.ReadConfig(strings.NewReader("llm:\n  url: http://config-host:9000\n")); err != nil {
		t.Fatalf("ReadConfig() failed: %v", err)
	}

	flags.ApplyConfig()

	if flags.LLMURL != "http://flag-host:1234" {
		t.Errorf("LLMURL = %s, want the command-line value", flags.LLMURL)
	}
}

func TestApplyConfig_NoConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	flags := NewFlags()
	flags.ApplyConfig()

	if *flags != *NewFlags() {
		t.Errorf("ApplyConfig() changed flags without any config: %+v", flags)
	}
}
