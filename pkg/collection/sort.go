package collection

import (
	"slices"

	"github.com/d-kuro/recq/pkg/record"
)

// SortByField sorts list in place by field and returns the same slice.
//
// Elements without a truthy value for field sort before those with one.
// When two values are equal, defaultField (if not empty) breaks the tie.
// Descending order reverses the comparison; the sort is stable either way.
func SortByField[T any](list []T, field string, ascending bool, defaultField string) []T {
	c := newFieldComparator(field, defaultField)
	ord := 1
	if !ascending {
		ord = -1
	}
	slices.SortStableFunc(list, func(left, right T) int {
		return c.compare(left, right) * ord
	})
	return list
}

// CompareByField compares two records by field, falling back to
// defaultField when the field values are equal.
func CompareByField(left, right any, field, defaultField string) int {
	return newFieldComparator(field, defaultField).compare(left, right)
}

type fieldComparator struct {
	path     record.Path
	fallback *fieldComparator
}

func newFieldComparator(field, defaultField string) *fieldComparator {
	c := &fieldComparator{path: record.ParsePath(field)}
	if defaultField != "" {
		c.fallback = &fieldComparator{path: record.ParsePath(defaultField)}
	}
	return c
}

func (c *fieldComparator) compare(left, right any) int {
	lv, _ := fieldValue(left, c.path)
	rv, _ := fieldValue(right, c.path)
	leftSet, rightSet := record.Truthy(lv), record.Truthy(rv)

	switch {
	case !leftSet && !rightSet:
		return 0
	case !rightSet:
		return 1
	case !leftSet:
		return -1
	case record.Equal(lv, rv):
		if c.fallback != nil {
			return c.fallback.compare(left, right)
		}
		return 0
	}

	switch r := record.Compare(lv, rv); {
	case r > 0:
		return 1
	case r < 0:
		return -1
	default:
		return 0
	}
}
