package table

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
)

// Builder provides a convenient interface for creating styled tables using lipgloss/table
type Builder struct {
	headers []string
	rows    [][]string
	style   Style
	output  io.Writer
}

// Style defines the visual styling options for tables
type Style struct {
	Border lipgloss.Border
	// HeaderStyle applies styling to header row
	HeaderStyle lipgloss.Style
	// MaxCellWidth truncates cells wider than this many display columns (0 for no limit)
	MaxCellWidth int
	// MarginLeft sets left margin (default: 1)
	MarginLeft int
	// PaddingLeft sets left padding inside cells (default: 1)
	PaddingLeft int
	// PaddingRight sets right padding inside cells (default: 1)
	PaddingRight int
}

// DefaultStyle returns a clean default style for tables
func DefaultStyle() Style {
	return Style{
		Border: lipgloss.NormalBorder(),
		HeaderStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("8")),
		MarginLeft:   1,
		PaddingLeft:  1,
		PaddingRight: 1,
	}
}

// PlainStyle returns an unstyled variant for terminals without color
func PlainStyle() Style {
	s := DefaultStyle()
	s.HeaderStyle = lipgloss.NewStyle()
	return s
}

// New creates a new table builder with default styling
func New() *Builder {
	return NewWithStyle(DefaultStyle())
}

// NewWithStyle creates a new table builder with custom styling
func NewWithStyle(style Style) *Builder {
	return &Builder{
		style:  style,
		output: os.Stdout,
	}
}

// SetOutput sets the output writer for the table
func (b *Builder) SetOutput(w io.Writer) *Builder {
	b.output = w
	return b
}

// Headers sets the table headers
func (b *Builder) Headers(headers ...string) *Builder {
	b.headers = make([]string, len(headers))
	copy(b.headers, headers)
	return b
}

// Row adds a data row to the table
func (b *Builder) Row(columns ...string) *Builder {
	row := make([]string, len(columns))
	for i, col := range columns {
		row[i] = Truncate(col, b.style.MaxCellWidth)
	}
	b.rows = append(b.rows, row)
	return b
}

// Build creates and returns the formatted table as a string
func (b *Builder) Build() string {
	t := table.New().
		Border(b.style.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle()
			if row == table.HeaderRow {
				base = b.style.HeaderStyle
			}
			return base.
				PaddingLeft(b.style.PaddingLeft).
				PaddingRight(b.style.PaddingRight)
		})

	if len(b.headers) > 0 {
		t.Headers(b.headers...)
	}
	for _, row := range b.rows {
		t.Row(row...)
	}

	return lipgloss.NewStyle().
		MarginLeft(b.style.MarginLeft).
		Render(t.Render())
}

// Println writes the table followed by a newline to the configured output writer
func (b *Builder) Println() error {
	_, err := fmt.Fprintln(b.output, b.Build())
	return err
}

// WriteCSV writes the table data in CSV format to the output writer
func (b *Builder) WriteCSV() error {
	if len(b.headers) > 0 {
		if _, err := fmt.Fprintln(b.output, csvLine(b.headers)); err != nil {
			return err
		}
	}
	for _, row := range b.rows {
		if _, err := fmt.Fprintln(b.output, csvLine(row)); err != nil {
			return err
		}
	}
	return nil
}

func csvLine(fields []string) string {
	escaped := make([]string, len(fields))
	for i, field := range fields {
		if strings.ContainsAny(field, ",\"\n") {
			escaped[i] = "\"" + strings.ReplaceAll(field, "\"", "\"\"") + "\""
		} else {
			escaped[i] = field
		}
	}
	return strings.Join(escaped, ",")
}

// RowCount returns the number of data rows in the table
func (b *Builder) RowCount() int {
	return len(b.rows)
}

// Truncate shortens s to at most width display columns, marking the cut with "…".
// Wide characters count as two columns. A width of 0 or less disables truncation.
func Truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
