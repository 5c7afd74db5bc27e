package cmd

import (
	"github.com/d-kuro/recq/pkg/collection"
	"github.com/d-kuro/recq/pkg/option"
	"github.com/d-kuro/recq/pkg/record"
	"github.com/spf13/cobra"
)

var firstFlags queryFlags

var firstCmd = &cobra.Command{
	Use:   "first [source...]",
	Short: "Show the first record",
	Long: `Show the first record after filtering and sorting.

Prints "No matching record" (or null for JSON and YAML) when nothing is left.`,
	Example: `  # First record of a file
  recq first genes.yaml

  # Lowest scoring record on chromosome 17
  recq first genes.yaml --where chrom=17 --sort score`,
	RunE: ExecuteWithArgs(func(ctx *CommandContext, _ *cobra.Command, args []string) error {
		return runEnd(ctx, &firstFlags, args, collection.First[record.Record])
	}),
}

var lastFlags queryFlags

var lastCmd = &cobra.Command{
	Use:   "last [source...]",
	Short: "Show the last record",
	Long: `Show the last record after filtering and sorting.

Prints "No matching record" (or null for JSON and YAML) when nothing is left.`,
	Example: `  # Last record of a file
  recq last genes.yaml

  # Highest scoring record
  recq last genes.yaml --sort score`,
	RunE: ExecuteWithArgs(func(ctx *CommandContext, _ *cobra.Command, args []string) error {
		return runEnd(ctx, &lastFlags, args, collection.Last[record.Record])
	}),
}

func init() {
	rootCmd.AddCommand(firstCmd)
	rootCmd.AddCommand(lastCmd)

	for _, c := range []struct {
		cmd   *cobra.Command
		flags *queryFlags
	}{{firstCmd, &firstFlags}, {lastCmd, &lastFlags}} {
		c.flags.addMatchFlags(c.cmd)
		c.cmd.Flags().StringVar(&c.flags.sort, "sort", "", "Sort records by this field first")
		c.flags.addOrderFlags(c.cmd)
	}
}

func runEnd(ctx *CommandContext, flags *queryFlags, args []string, pick func([]record.Record) option.Option[record.Record]) error {
	plan, err := ctx.buildPlan(flags)
	if err != nil {
		return err
	}

	records, err := ctx.LoadRecords(args)
	if err != nil {
		return err
	}

	result, err := plan.Run(records)
	if err != nil {
		return err
	}
	return ctx.Printer.PrintRecord(pick(result))
}
