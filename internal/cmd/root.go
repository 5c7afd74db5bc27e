// Package cmd provides CLI commands for the recq application.
package cmd

import (
	"fmt"
	"os"

	"github.com/d-kuro/recq/internal/config"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Persistent flags shared by every command.
var (
	rootVerbose bool
	rootFormat  string
	rootRoot    string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "recq",
	Short: "Query JSON and YAML records",
	Long: `recq is a CLI tool for querying collections of JSON and YAML records.

It finds, filters, deduplicates and sorts records by field value, including
dotted paths into nested records and lists, and renders the result as a
table, JSON, YAML or CSV. Sources are files, directories or "-" for stdin.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print query diagnostics to stderr")
	rootCmd.PersistentFlags().StringVarP(&rootFormat, "format", "o", "", "Output format (table, json, yaml, csv)")
	rootCmd.PersistentFlags().StringVar(&rootRoot, "root", "", "Dotted path to the record list inside each document")

	_ = rootCmd.RegisterFlagCompletionFunc("format", getFormatCompletions)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
