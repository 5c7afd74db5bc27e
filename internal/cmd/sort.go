package cmd

import (
	"github.com/spf13/cobra"
)

var sortFlags queryFlags

var sortCmd = &cobra.Command{
	Use:   "sort <field> [source...]",
	Short: "Sort records by a field",
	Long: `Sort records by a field. The sort is stable.

Records with a missing or empty value (null, false, 0, "") come first in
ascending order and last in descending order. Ties are broken by --then-by,
or by query.default_field from the configuration.`,
	Example: `  # Ascending by score
  recq sort score genes.yaml

  # Descending by score, ties by id
  recq sort score genes.yaml --order desc --then-by id

  # The three newest records
  recq sort created_at records/ --order desc --limit 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: ExecuteWithArgs(runSort),
}

func init() {
	rootCmd.AddCommand(sortCmd)

	sortFlags.addMatchFlags(sortCmd)
	sortFlags.addOrderFlags(sortCmd)
	sortCmd.Flags().IntVarP(&sortFlags.limit, "limit", "n", 0, "Output at most this many records")
}

func runSort(ctx *CommandContext, _ *cobra.Command, args []string) error {
	sortFlags.sort = args[0]
	plan, err := ctx.buildPlan(&sortFlags)
	if err != nil {
		return err
	}

	records, err := ctx.LoadRecords(args[1:])
	if err != nil {
		return err
	}

	result, err := plan.Run(records)
	if err != nil {
		return err
	}
	return ctx.Printer.PrintRecords(result)
}
