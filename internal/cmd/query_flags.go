package cmd

import (
	"errors"
	"fmt"

	"github.com/d-kuro/recq/internal/query"
	"github.com/d-kuro/recq/pkg/models"
	"github.com/spf13/cobra"
)

// ErrOrder is returned for an --order value other than asc or desc.
var ErrOrder = errors.New("invalid sort order")

// queryFlags holds the criteria flags shared by the query commands.
type queryFlags struct {
	where   []string
	has     []string
	unique  string
	sort    string
	order   string
	thenBy  string
	fields  []string
	limit   int
	reverse bool
}

func (f *queryFlags) addMatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.where, "where", "w", nil, "Match records where field=value (repeatable, all must match)")
	cmd.Flags().StringArrayVar(&f.has, "has", nil, "Match records where the field path exists (repeatable)")
	cmd.Flags().StringSliceVarP(&f.fields, "select", "s", nil, "Output only these field paths")
}

func (f *queryFlags) addOrderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.order, "order", "", "Sort order: asc or desc (default from query.ascending)")
	cmd.Flags().StringVar(&f.thenBy, "then-by", "", "Tie-break field for sorting (default from query.default_field)")
	_ = cmd.RegisterFlagCompletionFunc("order", cobra.FixedCompletions([]string{"asc", "desc"}, cobra.ShellCompDirectiveNoFileComp))
}

func (f *queryFlags) addShapeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.unique, "unique", "u", "", "Keep the first record for each value of this field")
	cmd.Flags().StringVar(&f.sort, "sort", "", "Sort records by this field")
	cmd.Flags().IntVarP(&f.limit, "limit", "n", 0, "Output at most this many records")
	f.addOrderFlags(cmd)
}

// plan builds a query plan, filling unset options from the configuration.
func (f *queryFlags) plan(cfg *models.Config) (query.Plan, error) {
	plan := query.Plan{
		Has:       f.has,
		Unique:    f.unique,
		SortField: f.sort,
		ThenBy:    f.thenBy,
		Select:    f.fields,
		Limit:     f.limit,
		Ascending: cfg.Query.Ascending,
	}

	for _, w := range f.where {
		clause, err := query.ParseClause(w)
		if err != nil {
			return query.Plan{}, err
		}
		plan.Where = append(plan.Where, clause)
	}

	switch f.order {
	case "":
	case "asc":
		plan.Ascending = true
	case "desc":
		plan.Ascending = false
	default:
		return query.Plan{}, fmt.Errorf("%w %q: want asc or desc", ErrOrder, f.order)
	}

	if plan.ThenBy == "" {
		plan.ThenBy = cfg.Query.DefaultField
	}
	if f.limit < 0 {
		return query.Plan{}, fmt.Errorf("--limit must not be negative")
	}

	return plan, nil
}

// buildPlan builds the plan for ctx and traces its stages in verbose mode.
func (ctx *CommandContext) buildPlan(f *queryFlags) (query.Plan, error) {
	plan, err := f.plan(ctx.Config)
	if err != nil {
		return query.Plan{}, err
	}
	if ctx.Verbose {
		plan.Trace = func(stage string, count int) {
			ctx.Printer.Debugf("%s: %d records", stage, count)
		}
	}
	return plan, nil
}
