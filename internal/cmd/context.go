package cmd

import (
	"fmt"
	"io"

	"github.com/d-kuro/recq/internal/config"
	"github.com/d-kuro/recq/internal/finder"
	"github.com/d-kuro/recq/internal/loader"
	"github.com/d-kuro/recq/internal/ui"
	"github.com/d-kuro/recq/pkg/models"
	"github.com/d-kuro/recq/pkg/record"
	"github.com/spf13/cobra"
)

// CommandContext encapsulates common dependencies used across commands.
type CommandContext struct {
	Config  *models.Config
	Printer *ui.Printer
	Loader  *loader.Loader
	Verbose bool
	finder  *finder.Finder // Lazy-loaded
}

// NewCommandContext loads the configuration and applies the persistent flags.
func NewCommandContext(stdin io.Reader, stdout, stderr io.Writer) (*CommandContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return newContext(cfg, stdin, stdout, stderr, loader.WithRoot(rootRoot))
}

func newContext(cfg *models.Config, stdin io.Reader, stdout, stderr io.Writer, opts ...loader.Option) (*CommandContext, error) {
	printer := ui.New(cfg).SetOutput(stdout, stderr).SetVerbose(rootVerbose)
	if rootFormat != "" {
		format, err := models.ParseOutputFormat(rootFormat)
		if err != nil {
			return nil, err
		}
		printer.SetFormat(format)
	}

	return &CommandContext{
		Config:  cfg,
		Printer: printer,
		Loader:  loader.New(append([]loader.Option{loader.WithStdin(stdin)}, opts...)...),
		Verbose: rootVerbose,
	}, nil
}

// GetFinder returns a finder instance, creating it if needed.
func (ctx *CommandContext) GetFinder(labels []string) *finder.Finder {
	if ctx.finder == nil {
		ctx.finder = finder.New(&ctx.Config.Finder, labels)
	}
	return ctx.finder
}

// LoadRecords reads the named sources, or stdin when there are none.
func (ctx *CommandContext) LoadRecords(sources []string) ([]record.Record, error) {
	if len(sources) == 0 {
		sources = []string{loader.Stdin}
	}
	records, err := ctx.Loader.Load(sources)
	if err != nil {
		return nil, err
	}
	ctx.Printer.Debugf("loaded %d records from %d sources", len(records), len(sources))
	return records, nil
}

// ExecuteWithArgs creates a command context and executes the provided function.
func ExecuteWithArgs(fn func(*CommandContext, *cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, err := NewCommandContext(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		return fn(ctx, cmd, args)
	}
}
