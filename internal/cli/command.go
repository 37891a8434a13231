package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/projiaq/Catime/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catime-words",
		Short: "Vocabulary word display for the Catime clock",
		Long: `catime-words cycles through a CET-4 vocabulary list and renders a
formatted word suffix (word, phonetic, translation) next to the clock time.

Examples:
  catime-words                          # Launch the clock window (default)
  catime-words --print 5                # Print 5 word suffixes to stdout
  catime-words --vocab my.tsv --validate
  catime-words --vocab my.tsv --enrich  # Fill missing phonetics/translations
  catime-words --history                # Show recently displayed words`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.catime-words.yaml)")

	// Vocabulary source
	cmd.Flags().StringVar(&flags.VocabFile, "vocab", "", "Vocabulary TSV file (default: embedded CET-4 list)")
	cmd.Flags().StringVar(&flags.HistoryDB, "history-db", "", "SQLite database for the review history (empty disables recording)")

	// Display flags
	cmd.Flags().BoolVar(&flags.Enabled, "enabled", flags.Enabled, "Enable the word display")
	cmd.Flags().IntVarP(&flags.SwitchInterval, "interval", "i", flags.SwitchInterval, "Auto-switch interval in seconds (0 disables)")
	cmd.Flags().BoolVar(&flags.ShowPhonetic, "phonetic", flags.ShowPhonetic, "Show phonetic transcription")
	cmd.Flags().StringVar(&flags.PhoneticMode, "phonetic-mode", flags.PhoneticMode, "Phonetic mode: uk, us or both")
	cmd.Flags().BoolVar(&flags.ShowTranslation, "translation", flags.ShowTranslation, "Show translation")
	cmd.Flags().IntVar(&flags.MaxTranslationLen, "max-translation-len", flags.MaxTranslationLen, "Max translation characters before truncation (0 = unlimited)")

	// Modes
	cmd.Flags().IntVarP(&flags.PrintCount, "print", "p", 0, "Print N word suffixes to stdout instead of launching the GUI")
	cmd.Flags().BoolVar(&flags.Validate, "validate", false, "Parse the vocabulary source and report statistics")
	cmd.Flags().BoolVar(&flags.Enrich, "enrich", false, "Fill missing phonetics/translations in --vocab via an LLM and write the file back")
	cmd.Flags().BoolVar(&flags.History, "history", false, "Show recently displayed words from the history database")
	cmd.Flags().IntVar(&flags.HistoryLimit, "history-limit", flags.HistoryLimit, "Number of history rows to show")
	cmd.Flags().BoolVar(&flags.ArchiveHistory, "archive-history", false, "Move the history database to a timestamped archive")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List OpenAI chat models usable for enrichment")

	// LLM flags
	cmd.Flags().StringVar(&flags.LLMProvider, "llm", flags.LLMProvider, "Enrichment backend: openai or gemini")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for enrichment")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for enrichment")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("words.vocab_file", cmd.Flags().Lookup("vocab"))
	viper.BindPFlag("words.enabled", cmd.Flags().Lookup("enabled"))
	viper.BindPFlag("words.switch_interval", cmd.Flags().Lookup("interval"))
	viper.BindPFlag("words.show_phonetic", cmd.Flags().Lookup("phonetic"))
	viper.BindPFlag("words.phonetic_mode", cmd.Flags().Lookup("phonetic-mode"))
	viper.BindPFlag("words.show_translation", cmd.Flags().Lookup("translation"))
	viper.BindPFlag("words.max_translation_len", cmd.Flags().Lookup("max-translation-len"))
	viper.BindPFlag("history.database", cmd.Flags().Lookup("history-db"))
	viper.BindPFlag("llm.provider", cmd.Flags().Lookup("llm"))
	viper.BindPFlag("llm.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("llm.gemini_model", cmd.Flags().Lookup("gemini-model"))
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

		// Search config in home directory with name ".catime-words" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".catime-words")
	}

	// Environment variables
	viper.SetEnvPrefix("CATIME_WORDS")
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
