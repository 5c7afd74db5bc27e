package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var findFlags queryFlags

var findCmd = &cobra.Command{
	Use:   "find [source...]",
	Short: "Show the first record matching criteria",
	Long: `Show the first record matching all --where and --has criteria.

With --reverse the search starts from the end and returns the last match.
With --index only the position of the match is printed, or -1 when no
record matches.`,
	Example: `  # First record with id 2
  recq find genes.yaml --where id=2

  # Last TP53 record, as JSON
  recq find genes.yaml --where symbol=TP53 --reverse -o json

  # Position of the record owning mutant m3
  recq find genes.yaml --where mutants.id=m3 --index`,
	RunE: ExecuteWithArgs(runFind),
}

var findIndex bool

func init() {
	rootCmd.AddCommand(findCmd)

	findFlags.addMatchFlags(findCmd)
	findCmd.Flags().BoolVarP(&findFlags.reverse, "reverse", "r", false, "Search from the last record")
	findCmd.Flags().BoolVar(&findIndex, "index", false, "Print the position of the match instead of the record")
}

func runFind(ctx *CommandContext, _ *cobra.Command, args []string) error {
	plan, err := ctx.buildPlan(&findFlags)
	if err != nil {
		return err
	}
	if len(plan.Where) == 0 && len(plan.Has) == 0 {
		return errors.New("find needs at least one --where or --has")
	}

	records, err := ctx.LoadRecords(args)
	if err != nil {
		return err
	}

	if findIndex {
		ctx.Printer.PrintIndex(plan.FindIndex(records, findFlags.reverse))
		return nil
	}
	return ctx.Printer.PrintRecord(plan.Find(records, findFlags.reverse))
}
