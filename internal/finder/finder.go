// Package finder provides fuzzy finder integration for the recq application.
package finder

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/d-kuro/recq/internal/ui"
	"github.com/d-kuro/recq/pkg/models"
	"github.com/d-kuro/recq/pkg/option"
	"github.com/d-kuro/recq/pkg/record"
	"github.com/ktr0731/go-fuzzyfinder"
	"gopkg.in/yaml.v3"
)

// ErrNoRecords is returned when there is nothing to select from.
var ErrNoRecords = errors.New("no records available")

// Finder provides fuzzy finder functionality.
type Finder struct {
	config *models.FinderConfig
	labels []string
}

// New creates a new Finder instance. Each candidate line shows the values
// of the labels field paths, or every top-level field when none are given.
func New(config *models.FinderConfig, labels []string) *Finder {
	return &Finder{
		config: config,
		labels: labels,
	}
}

// SelectRecord displays a fuzzy finder for record selection. Aborting the
// finder yields None.
func (f *Finder) SelectRecord(records []record.Record) (option.Option[record.Record], error) {
	if len(records) == 0 {
		return option.None[record.Record](), ErrNoRecords
	}

	opts := []fuzzyfinder.Option{
		fuzzyfinder.WithPromptString("Select record> "),
	}

	if f.config.Preview {
		opts = append(opts, fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return f.generatePreview(records[i], h)
		}))
	}

	idx, err := fuzzyfinder.Find(
		records,
		func(i int) string {
			return f.label(records[i])
		},
		opts...,
	)
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		return option.None[record.Record](), nil
	}
	if err != nil {
		return option.None[record.Record](), err
	}

	return option.Some(records[idx]), nil
}

func (f *Finder) label(r record.Record) string {
	if len(f.labels) == 0 {
		parts := make([]string, 0, len(r))
		for _, key := range slices.Sorted(maps.Keys(r)) {
			parts = append(parts, fmt.Sprintf("%s=%s", key, ui.FormatCell(r[key])))
		}
		return strings.Join(parts, " ")
	}

	parts := make([]string, len(f.labels))
	for i, field := range f.labels {
		if v, ok := record.Resolve(r, record.ParsePath(field)); ok {
			parts[i] = ui.FormatCell(v)
		}
	}
	return strings.Join(parts, " ")
}

// generatePreview renders the record as YAML, cut to maxLines.
func (f *Finder) generatePreview(r record.Record, maxLines int) string {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err.Error()
	}

	preview := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if maxLines > 0 && len(preview) > maxLines {
		preview = preview[:maxLines]
	}
	return strings.Join(preview, "\n")
}
