// Package collection provides query operations over slices of records:
// searching, filtering, de-duplication and field based sorting.
//
// Operations that can come up empty return an option.Option. Nil and empty
// slices are valid input everywhere and behave the same way.
package collection

import (
	"github.com/d-kuro/recq/pkg/option"
	"github.com/d-kuro/recq/pkg/record"
)

// Match is the outcome of a Predicate: no match, a match on the element
// itself, or a match that substitutes another value for the element.
type Match[T any] struct {
	matched  bool
	override bool
	value    T
}

// NoMatch reports that the element does not match.
func NoMatch[T any]() Match[T] {
	return Match[T]{}
}

// Matched reports that the element matches and is selected as is.
func Matched[T any]() Match[T] {
	return Match[T]{matched: true}
}

// MatchWith reports a match that yields value instead of the element.
func MatchWith[T any](value T) Match[T] {
	return Match[T]{matched: true, override: true, value: value}
}

// IsMatch reports whether the element matched.
func (m Match[T]) IsMatch() bool {
	return m.matched
}

func (m Match[T]) resolve(item T) (T, bool) {
	if !m.matched {
		var zero T
		return zero, false
	}
	if m.override {
		return m.value, true
	}
	return item, true
}

// Predicate decides whether the element at index matches.
type Predicate[T any] func(item T, index int) Match[T]

// Where adapts a boolean test into a Predicate.
func Where[T any](test func(T) bool) Predicate[T] {
	return func(item T, _ int) Match[T] {
		if test(item) {
			return Matched[T]()
		}
		return NoMatch[T]()
	}
}

// WhereIndexed adapts a boolean test that also receives the index.
func WhereIndexed[T any](test func(T, int) bool) Predicate[T] {
	return func(item T, index int) Match[T] {
		if test(item, index) {
			return Matched[T]()
		}
		return NoMatch[T]()
	}
}

// Find returns the first element that matches the predicate, scanning
// from the end when reverse is set. Scanning stops at the first match.
func Find[T any](list []T, predicate Predicate[T], reverse bool) option.Option[T] {
	if v, _, ok := scan(list, predicate, reverse); ok {
		return option.Some(v)
	}
	return option.None[T]()
}

// FindIndex returns the index of the first element that matches the predicate.
func FindIndex[T any](list []T, predicate Predicate[T], reverse bool) option.Option[int] {
	if _, i, ok := scan(list, predicate, reverse); ok {
		return option.Some(i)
	}
	return option.None[int]()
}

func scan[T any](list []T, predicate Predicate[T], reverse bool) (T, int, bool) {
	n := len(list)
	for k := range n {
		i := k
		if reverse {
			i = n - 1 - k
		}
		if v, ok := predicate(list[i], i).resolve(list[i]); ok {
			return v, i, true
		}
	}
	var zero T
	return zero, -1, false
}

// Filter returns a new slice containing every match in input order.
func Filter[T any](list []T, predicate Predicate[T]) []T {
	result := make([]T, 0, len(list))
	for i, item := range list {
		if v, ok := predicate(item, i).resolve(item); ok {
			result = append(result, v)
		}
	}
	return result
}

// UniqueBy returns a new slice keeping only the first element for each key.
func UniqueBy[T any, K comparable](list []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(list))
	result := make([]T, 0, len(list))
	for _, item := range list {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, item)
	}
	return result
}

// UniqueByField is UniqueBy keyed on the value of field.
// Elements lacking the field all share a single key.
func UniqueByField[T any](list []T, field string) []T {
	path := record.ParsePath(field)
	var seen keySet
	result := make([]T, 0, len(list))
	for _, item := range list {
		v, ok := fieldValue(item, path)
		if seen.add(v, ok) {
			result = append(result, item)
		}
	}
	return result
}

// FilterByField returns the elements whose field equals value.
// A dotted field is matched with record.Lookup.
func FilterByField[T any](list []T, field string, value any) []T {
	return Filter(list, ByField[T](field, value))
}

// FindByField returns the first element whose field equals value.
// A dotted field is matched with record.Lookup.
func FindByField[T any](list []T, field string, value any, reverse bool) option.Option[T] {
	return Find(list, ByField[T](field, value), reverse)
}

// FindIndexByField returns the index of the first element whose field equals value.
func FindIndexByField[T any](list []T, field string, value any, reverse bool) option.Option[int] {
	return FindIndex(list, ByField[T](field, value), reverse)
}

// ByField returns a Predicate matching elements whose field equals value.
// A single segment field must be owned by the element; a dotted field is
// matched with record.Lookup and selects the element itself.
func ByField[T any](field string, value any) Predicate[T] {
	path := record.ParsePath(field)
	if !path.IsNested() {
		return func(item T, _ int) Match[T] {
			if v, ok := record.Field(item, field); ok && record.Equal(v, value) {
				return Matched[T]()
			}
			return NoMatch[T]()
		}
	}
	return func(item T, _ int) Match[T] {
		if record.Lookup(item, path, value).IsSome() {
			return Matched[T]()
		}
		return NoMatch[T]()
	}
}

// All returns a Predicate matching elements that every predicate matches.
// Override values from the inner predicates are discarded.
func All[T any](predicates ...Predicate[T]) Predicate[T] {
	return func(item T, index int) Match[T] {
		for _, p := range predicates {
			if !p(item, index).IsMatch() {
				return NoMatch[T]()
			}
		}
		return Matched[T]()
	}
}

// First returns the first element.
func First[T any](list []T) option.Option[T] {
	if len(list) == 0 {
		return option.None[T]()
	}
	return option.Some(list[0])
}

// Last returns the last element.
func Last[T any](list []T) option.Option[T] {
	if len(list) == 0 {
		return option.None[T]()
	}
	return option.Some(list[len(list)-1])
}

func fieldValue(item any, path record.Path) (any, bool) {
	if path.IsNested() {
		return record.Resolve(item, path)
	}
	return record.Field(item, path[0])
}
