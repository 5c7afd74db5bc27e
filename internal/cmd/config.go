package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/d-kuro/recq/internal/config"
	"github.com/d-kuro/recq/internal/ui"
	"github.com/d-kuro/recq/pkg/models"
	"github.com/spf13/cobra"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long: `Manage recq configuration settings.

Settings live in ~/.config/recq/config.toml. Every key can also be set
through the environment: RECQ_OUTPUT_FORMAT overrides output.format.`,
}

// configListCmd represents the config list command.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show configuration",
	Long:  `Display all current configuration settings.`,
	Example: `  # Show all configuration
  recq config list`,
	RunE: runConfigList,
}

// configSetCmd represents the config set command.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set configuration value",
	Long: `Set a configuration value.

Configuration keys follow a dot notation format (e.g., output.format).
List values such as output.columns take a comma separated list.`,
	Example: `  # Render results as YAML by default
  recq config set output.format yaml

  # Always show these table columns
  recq config set output.columns id,symbol,gene.chrom

  # Sort descending by default, breaking ties by id
  recq config set query.ascending false
  recq config set query.default_field id`,
	Args:              cobra.ExactArgs(2),
	RunE:              runConfigSet,
	ValidArgsFunction: getConfigKeyCompletions,
}

// configGetCmd represents the config get command.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get configuration value",
	Long:  `Get a specific configuration value.`,
	Example: `  # Get the default output format
  recq config get output.format`,
	Args:              cobra.ExactArgs(1),
	RunE:              runConfigGet,
	ValidArgsFunction: getConfigKeyCompletions,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
}

func runConfigList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	printer := ui.New(cfg).SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	settings := config.AllSettings()
	printer.PrintConfig(settings)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	typedValue, err := parseConfigValue(key, value)
	if err != nil {
		return err
	}

	if err := config.Set(key, typedValue); err != nil {
		return fmt.Errorf("failed to set config: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := config.GetValue(key)

	if value == nil {
		return fmt.Errorf("configuration key not found: %s", key)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// parseConfigValue converts a command line value to the type stored under key.
func parseConfigValue(key, value string) (any, error) {
	switch key {
	case "output.format":
		if _, err := models.ParseOutputFormat(value); err != nil {
			return nil, err
		}
		return value, nil
	case "output.columns":
		if value == "" {
			return []string{}, nil
		}
		return strings.Split(value, ","), nil
	}

	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n, nil
	}
	return value, nil
}
