package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aissam-out/darija-assistant/internal/cli"
	"github.com/aissam-out/darija-assistant/internal/models"
	"github.com/aissam-out/darija-assistant/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListChatModels()
	}

	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}

	ctx := context.Background()

	// Handle batch processing
	if flags.BatchFile != "" {
		return proc.ProcessBatch(ctx)
	}

	if len(args) == 0 {
		return cmd.Help()
	}

	// The sentence may be given as multiple shell words
	return proc.ProcessSentence(ctx, strings.Join(args, " "))
}
