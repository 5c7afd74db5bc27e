package cmd

import (
	"fmt"
	"strings"

	"github.com/d-kuro/recq/pkg/models"
	"github.com/spf13/cobra"
)

// configKeys lists the settable configuration keys with a short description.
var configKeys = []struct {
	name string
	desc string
}{
	{"output.format", "Default output format (table, json, yaml, csv)"},
	{"output.columns", "Table columns as field paths"},
	{"output.max_width", "Maximum table cell width"},
	{"query.ascending", "Default sort direction"},
	{"query.default_field", "Default tie-break field for sorting"},
	{"finder.preview", "Enable preview window"},
	{"ui.color", "Enable colored output"},
}

// getConfigKeyCompletions returns configuration keys for shell completion
func getConfigKeyCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, key := range configKeys {
		if strings.HasPrefix(key.name, toComplete) {
			completions = append(completions, fmt.Sprintf("%s\t%s", key.name, key.desc))
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

// getFormatCompletions returns output formats for the --format flag
func getFormatCompletions(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, f := range []models.OutputFormat{models.FormatTable, models.FormatJSON, models.FormatYAML, models.FormatCSV} {
		if strings.HasPrefix(string(f), toComplete) {
			completions = append(completions, string(f))
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
