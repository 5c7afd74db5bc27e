// Package ui provides user interface utilities for the recq application.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"

	"github.com/d-kuro/recq/internal/table"
	"github.com/d-kuro/recq/pkg/models"
	"github.com/d-kuro/recq/pkg/option"
	"github.com/d-kuro/recq/pkg/record"
	"gopkg.in/yaml.v3"
)

// Printer handles output formatting.
type Printer struct {
	out      io.Writer
	errOut   io.Writer
	format   models.OutputFormat
	columns  []string
	maxWidth int
	useColor bool
	verbose  bool
}

// New creates a new Printer instance.
func New(config *models.Config) *Printer {
	format, err := models.ParseOutputFormat(config.Output.Format)
	if err != nil {
		format = models.FormatTable
	}
	return &Printer{
		out:      os.Stdout,
		errOut:   os.Stderr,
		format:   format,
		columns:  config.Output.Columns,
		maxWidth: config.Output.MaxWidth,
		useColor: config.UI.Color,
	}
}

// SetOutput redirects regular and diagnostic output.
func (p *Printer) SetOutput(out, errOut io.Writer) *Printer {
	p.out = out
	p.errOut = errOut
	return p
}

// SetFormat overrides the configured output format.
func (p *Printer) SetFormat(format models.OutputFormat) *Printer {
	p.format = format
	return p
}

// SetVerbose enables Debugf output.
func (p *Printer) SetVerbose(verbose bool) *Printer {
	p.verbose = verbose
	return p
}

// PrintRecords displays records in the configured format.
func (p *Printer) PrintRecords(records []record.Record) error {
	switch p.format {
	case models.FormatJSON:
		return p.encodeJSON(records)
	case models.FormatYAML:
		return p.encodeYAML(records)
	case models.FormatCSV:
		return p.tableOf(records, 0).WriteCSV()
	default:
		if len(records) == 0 {
			_, err := fmt.Fprintln(p.out, "No records found")
			return err
		}
		return p.tableOf(records, p.maxWidth).Println()
	}
}

// PrintRecord displays a single lookup result. None renders as null in
// JSON and YAML.
func (p *Printer) PrintRecord(found option.Option[record.Record]) error {
	switch p.format {
	case models.FormatJSON:
		return p.encodeJSON(found)
	case models.FormatYAML:
		return p.encodeYAML(option.Match(found,
			func(r record.Record) any { return r },
			func() any { return nil },
		))
	}

	r, ok := found.Get()
	if !ok {
		_, err := fmt.Fprintln(p.out, "No matching record")
		return err
	}
	return p.PrintRecords([]record.Record{r})
}

// PrintIndex displays the position of a match, or -1 when there is none.
func (p *Printer) PrintIndex(idx option.Option[int]) {
	_, _ = fmt.Fprintln(p.out, idx.UnwrapOr(-1))
}

// PrintConfig displays configuration in a formatted manner.
func (p *Printer) PrintConfig(settings map[string]any) {
	p.printConfigRecursive("", settings)
}

// PrintError displays an error message.
func (p *Printer) PrintError(err error) {
	_, _ = fmt.Fprintf(p.errOut, "Error: %v\n", err)
}

// PrintInfo displays an informational message.
func (p *Printer) PrintInfo(message string) {
	_, _ = fmt.Fprintln(p.out, message)
}

// Debugf writes a diagnostic line to the error output in verbose mode.
func (p *Printer) Debugf(format string, args ...any) {
	if !p.verbose {
		return
	}
	_, _ = fmt.Fprintf(p.errOut, "debug: "+format+"\n", args...)
}

func (p *Printer) encodeJSON(v any) error {
	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (p *Printer) encodeYAML(v any) error {
	encoder := yaml.NewEncoder(p.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

func (p *Printer) tableOf(records []record.Record, maxWidth int) *table.Builder {
	style := table.DefaultStyle()
	if !p.useColor {
		style = table.PlainStyle()
	}
	style.MaxCellWidth = maxWidth

	columns := p.columns
	if len(columns) == 0 {
		columns = Columns(records)
	}

	t := table.NewWithStyle(style).SetOutput(p.out).Headers(columns...)
	for _, r := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			if v, ok := record.Resolve(r, record.ParsePath(col)); ok {
				row[i] = FormatCell(v)
			}
		}
		t.Row(row...)
	}
	return t
}

// Columns returns the sorted union of the records' top-level fields.
func Columns(records []record.Record) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		for key := range r {
			seen[key] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// FormatCell renders a field value for a table cell. Scalars print as-is,
// nil as an empty cell and nested records or sequences as compact JSON.
func FormatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int, int64, uint64, float64:
		return fmt.Sprint(x)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

// printConfigRecursive recursively prints configuration values.
func (p *Printer) printConfigRecursive(prefix string, data any) {
	switch v := data.(type) {
	case map[string]any:
		for _, key := range slices.Sorted(maps.Keys(v)) {
			newPrefix := key
			if prefix != "" {
				newPrefix = prefix + "." + key
			}
			p.printConfigRecursive(newPrefix, v[key])
		}
	default:
		_, _ = fmt.Fprintf(p.out, "%s = %v\n", prefix, v)
	}
}
