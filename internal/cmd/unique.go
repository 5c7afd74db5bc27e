package cmd

import (
	"github.com/spf13/cobra"
)

var uniqueFlags queryFlags

var uniqueCmd = &cobra.Command{
	Use:   "unique <field> [source...]",
	Short: "Keep the first record for each value of a field",
	Long: `Keep the first record for each distinct value of a field, in input order.

Values are distinct when they differ in type or value: 1 and "1" are two
values. Records lacking the field are kept once, as a group of their own.`,
	Example: `  # One record per symbol
  recq unique symbol genes.yaml

  # One record per nested gene id among chromosome 17 records
  recq unique gene.id genes.yaml --where chrom=17`,
	Args: cobra.MinimumNArgs(1),
	RunE: ExecuteWithArgs(runUnique),
}

func init() {
	rootCmd.AddCommand(uniqueCmd)

	uniqueFlags.addMatchFlags(uniqueCmd)
}

func runUnique(ctx *CommandContext, _ *cobra.Command, args []string) error {
	uniqueFlags.unique = args[0]
	plan, err := ctx.buildPlan(&uniqueFlags)
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
