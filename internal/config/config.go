// Package config provides configuration management for the recq application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/d-kuro/recq/pkg/models"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "RECQ"
)

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home is not available
		return filepath.Join(".", ".config", "recq")
	}
	return filepath.Join(home, ".config", "recq")
}

// Init initializes the configuration system, creating default config if needed.
func Init() error {
	return initAt(getConfigDir())
}

func initAt(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigName(configName)
	viper.SetConfigType(configType)
	viper.AddConfigPath(configDir)

	// RECQ_OUTPUT_FORMAT overrides output.format, and so on.
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			configPath := filepath.Join(configDir, configName+"."+configType)
			if err := viper.SafeWriteConfig(); err != nil {
				if err := viper.WriteConfigAs(configPath); err != nil {
					return fmt.Errorf("failed to create config file: %w", err)
				}
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("output.format", string(models.FormatTable))
	viper.SetDefault("output.columns", []string{})
	viper.SetDefault("output.max_width", 40)
	viper.SetDefault("query.ascending", true)
	viper.SetDefault("query.default_field", "")
	viper.SetDefault("finder.preview", true)
	viper.SetDefault("ui.color", true)
}

// Load loads and returns the current configuration.
func Load() (*models.Config, error) {
	var cfg models.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = string(models.FormatTable)
	}
	if _, err := models.ParseOutputFormat(cfg.Output.Format); err != nil {
		return nil, fmt.Errorf("invalid output.format: %w", err)
	}

	return &cfg, nil
}

// Set sets a configuration value by key.
func Set(key string, value any) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// GetValue retrieves a configuration value by key.
func GetValue(key string) any {
	return viper.Get(key)
}

// AllSettings returns all configuration settings.
func AllSettings() map[string]any {
	return viper.AllSettings()
}
