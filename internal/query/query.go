// Package query turns command line criteria into runs of the collection
// operations over loaded records.
package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d-kuro/recq/pkg/collection"
	"github.com/d-kuro/recq/pkg/option"
	"github.com/d-kuro/recq/pkg/pipeline"
	"github.com/d-kuro/recq/pkg/record"
	"gopkg.in/yaml.v3"
)

// ErrClause is returned for a malformed field=value clause.
var ErrClause = errors.New("invalid clause")

// Clause matches records whose Field equals Value.
type Clause struct {
	Field string
	Value any
}

// String returns the clause in field=value form.
func (c Clause) String() string {
	return fmt.Sprintf("%s=%v", c.Field, c.Value)
}

// ParseClause parses "field=value". The value is decoded as a YAML scalar,
// so 2 is an int, 2.5 a float, true a bool and null nil; quote it ("2")
// to match a string.
func ParseClause(s string) (Clause, error) {
	field, raw, ok := strings.Cut(s, "=")
	if !ok || field == "" {
		return Clause{}, fmt.Errorf("%w %q: want field=value", ErrClause, s)
	}
	value, err := ParseValue(raw)
	if err != nil {
		return Clause{}, fmt.Errorf("%w %q: %w", ErrClause, s, err)
	}
	return Clause{Field: field, Value: value}, nil
}

// ParseValue decodes a single scalar value. An empty string stays a string.
func ParseValue(raw string) (any, error) {
	if raw == "" {
		return "", nil
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}
	switch v.(type) {
	case map[string]any, map[any]any, []any:
		return nil, fmt.Errorf("value must be a scalar")
	}
	return v, nil
}

// Plan describes a query over records.
type Plan struct {
	Where     []Clause // all must match
	Has       []string // field paths that must resolve
	Unique    string   // keep the first record per value of this field
	SortField string
	Ascending bool
	ThenBy    string   // tie-break field for SortField
	Select    []string // project records onto these field paths
	Limit     int      // 0 means no limit

	// Trace, when set, is called after each stage with the record count.
	Trace func(stage string, count int)
}

func (p *Plan) trace(stage string, count int) {
	if p.Trace != nil {
		p.Trace(stage, count)
	}
}

func (p *Plan) predicate() collection.Predicate[record.Record] {
	preds := make([]collection.Predicate[record.Record], 0, len(p.Where)+len(p.Has))
	for _, c := range p.Where {
		preds = append(preds, collection.ByField[record.Record](c.Field, c.Value))
	}
	for _, field := range p.Has {
		path := record.ParsePath(field)
		preds = append(preds, collection.Where(func(r record.Record) bool {
			_, ok := record.Resolve(r, path)
			return ok
		}))
	}
	return collection.All(preds...)
}

// Pipeline builds the stages of the plan. The sort stage reorders its
// input in place.
func (p *Plan) Pipeline() *pipeline.Pipeline[[]record.Record] {
	pl := pipeline.New("where", pipeline.Apply(func(recs []record.Record) []record.Record {
		if len(p.Where) == 1 && len(p.Has) == 0 {
			return collection.FilterByField(recs, p.Where[0].Field, p.Where[0].Value)
		}
		return collection.Filter(recs, p.predicate())
	}))

	if p.Unique != "" {
		pl = pipeline.Then(pl, "unique", pipeline.Apply(func(recs []record.Record) []record.Record {
			return collection.UniqueByField(recs, p.Unique)
		}))
	}
	if p.SortField != "" {
		pl = pipeline.Then(pl, "sort", pipeline.Apply(func(recs []record.Record) []record.Record {
			return collection.SortByField(recs, p.SortField, p.Ascending, p.ThenBy)
		}))
	}
	if p.Limit > 0 {
		pl = pipeline.Then(pl, "limit", pipeline.Apply(func(recs []record.Record) []record.Record {
			return recs[:min(p.Limit, len(recs))]
		}))
	}
	if len(p.Select) > 0 {
		pl = pipeline.Then(pl, "select", pipeline.Map(p.project))
	}
	return pl
}

// Run executes the plan.
func (p *Plan) Run(records []record.Record) ([]record.Record, error) {
	return pipeline.Execute(p.Pipeline(), records, p.observe)
}

func (p *Plan) observe(stage string, output any) {
	if recs, ok := output.([]record.Record); ok {
		p.trace(stage, len(recs))
	}
}

// Find returns the first record matching the plan's criteria, or the last
// one when reverse is set. Unique, sort and limit do not apply.
func (p *Plan) Find(records []record.Record, reverse bool) option.Option[record.Record] {
	var found option.Option[record.Record]
	if len(p.Where) == 1 && len(p.Has) == 0 {
		found = collection.FindByField(records, p.Where[0].Field, p.Where[0].Value, reverse)
	} else {
		found = collection.Find(records, p.predicate(), reverse)
	}
	p.trace("find", option.Match(found,
		func(record.Record) int { return 1 },
		func() int { return 0 },
	))

	if len(p.Select) == 0 {
		return found
	}
	return found.Map(p.project)
}

// FindIndex returns the position of the record Find would return.
func (p *Plan) FindIndex(records []record.Record, reverse bool) option.Option[int] {
	if len(p.Where) == 1 && len(p.Has) == 0 {
		return collection.FindIndexByField(records, p.Where[0].Field, p.Where[0].Value, reverse)
	}
	return collection.FindIndex(records, p.predicate(), reverse)
}

func (p *Plan) project(r record.Record) record.Record {
	out := make(record.Record, len(p.Select))
	for _, field := range p.Select {
		if v, ok := record.Resolve(r, record.ParsePath(field)); ok {
			out[field] = v
		}
	}
	return out
}
