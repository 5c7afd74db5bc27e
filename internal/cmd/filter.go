package cmd

import (
	"github.com/spf13/cobra"
)

var filterFlags queryFlags

var filterCmd = &cobra.Command{
	Use:   "filter [source...]",
	Short: "List records matching criteria",
	Long: `List every record matching all --where and --has criteria, in input order.

The result can be deduplicated by a field, sorted by a field and cut to a
number of records. Sources are JSON or YAML files, directories of them, or
"-" for stdin (the default).`,
	Example: `  # Records on chromosome 17
  recq filter genes.yaml --where chrom=17

  # Match on a nested path, including through lists
  recq filter genes.yaml --where mutants.id=m2

  # Quote a value to match it as a string
  recq filter genes.yaml --where 'chrom="17"'

  # Highest scores first, one per symbol, top 5
  recq filter genes.yaml --unique symbol --sort score --order desc --limit 5`,
	RunE: ExecuteWithArgs(runFilter),
}

func init() {
	rootCmd.AddCommand(filterCmd)

	filterFlags.addMatchFlags(filterCmd)
	filterFlags.addShapeFlags(filterCmd)
}

func runFilter(ctx *CommandContext, _ *cobra.Command, args []string) error {
	plan, err := ctx.buildPlan(&filterFlags)
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
	return ctx.Printer.PrintRecords(result)
}
