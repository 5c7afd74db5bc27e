// Package models defines the configuration structures used throughout the recq application.
package models

import "fmt"

// OutputFormat selects how query results are rendered.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
	FormatCSV   OutputFormat = "csv"
)

// ParseOutputFormat validates a format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case FormatTable, FormatJSON, FormatYAML, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json, yaml or csv)", s)
	}
}

// Config represents the application configuration.
type Config struct {
	Output OutputConfig `mapstructure:"output"` // Result rendering configuration
	Query  QueryConfig  `mapstructure:"query"`  // Query defaults
	Finder FinderConfig `mapstructure:"finder"` // Fuzzy finder configuration
	UI     UIConfig     `mapstructure:"ui"`     // UI-related configuration
}

// OutputConfig contains result rendering options.
type OutputConfig struct {
	Format   string   `mapstructure:"format"`    // table, json, yaml or csv
	Columns  []string `mapstructure:"columns"`   // Table columns as field paths; empty means all top-level fields
	MaxWidth int      `mapstructure:"max_width"` // Maximum table cell width in display columns
}

// QueryConfig contains defaults applied to every query.
type QueryConfig struct {
	Ascending    bool   `mapstructure:"ascending"`     // Default sort direction
	DefaultField string `mapstructure:"default_field"` // Default tie-break field for sorting
}

// FinderConfig contains fuzzy finder configuration options.
type FinderConfig struct {
	Preview bool `mapstructure:"preview"` // Enable preview window
}

// UIConfig contains UI-related configuration options.
type UIConfig struct {
	Color bool `mapstructure:"color"` // Enable styled table headers
}
