package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/projiaq/Catime/internal/archive"
	"github.com/projiaq/Catime/internal/cli"
	"github.com/projiaq/Catime/internal/models"
	"github.com/projiaq/Catime/internal/processor"
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
	// Handle --archive-history flag
	if flags.ArchiveHistory {
		return archive.ArchiveHistory(flags.HistoryDB)
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListChatModels()
	}

	// Create processor
	proc := processor.NewProcessor(flags)

	switch {
	case flags.Validate:
		return proc.Validate()
	case flags.Enrich:
		return proc.Enrich(context.Background())
	case flags.History:
		return proc.ShowHistory()
	case flags.PrintCount > 0:
		return proc.PrintWords(flags.PrintCount)
	default:
		// No mode requested - launch the clock window by default
		return proc.RunGUIMode()
	}
}
