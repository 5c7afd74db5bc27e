package cmd

import (
	"github.com/spf13/cobra"
)

var (
	pickFlags  queryFlags
	pickLabels []string
)

var pickCmd = &cobra.Command{
	Use:   "pick [source...]",
	Short: "Select a record interactively",
	Long: `Select a record with a fuzzy finder and print it.

The candidates are the records matching the criteria flags. Each line shows
the --label fields, or all top-level fields. Aborting prints nothing.
Interactive selection needs a terminal, so sources must be named.`,
	Example: `  # Pick a gene by symbol and print it as YAML
  recq pick genes.yaml --label symbol,chrom -o yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: ExecuteWithArgs(runPick),
}

func init() {
	rootCmd.AddCommand(pickCmd)

	pickFlags.addMatchFlags(pickCmd)
	pickFlags.addShapeFlags(pickCmd)
	pickCmd.Flags().StringSliceVarP(&pickLabels, "label", "l", nil, "Fields shown for each candidate")
}

func runPick(ctx *CommandContext, _ *cobra.Command, args []string) error {
	plan, err := ctx.buildPlan(&pickFlags)
	if err != nil {
		return err
	}

	records, err := ctx.LoadRecords(args)
	if err != nil {
		return err
	}

	candidates, err := plan.Run(records)
	if err != nil {
		return err
	}

	selected, err := ctx.GetFinder(pickLabels).SelectRecord(candidates)
	if err != nil {
		return err
	}
	if selected.IsNone() {
		ctx.Printer.Debugf("selection aborted")
		return nil
	}
	return ctx.Printer.PrintRecord(selected)
}
