// Package cli contains the command-line surface of catime-words: flag
// definitions, the cobra root command, and viper configuration handling.
package cli
