// Package option provides a generic Option type for values that may be absent.
package option

import (
	"encoding/json"
	"fmt"
)

// Option represents an optional value.
// The zero value is None. Presence is tracked separately from the value,
// so Some of a nil pointer or nil interface is still a present value.
type Option[T any] struct {
	present bool
	value   T
}

// Some creates an Option with a value.
func Some[T any](value T) Option[T] {
	return Option[T]{present: true, value: value}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the value or panics if empty.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("attempted to unwrap None option")
	}
	return o.value
}

// UnwrapOr returns the value or a default if empty.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if !o.present {
		return defaultValue
	}
	return o.value
}

// UnwrapOrElse returns the value or calls a function to get a default.
// f is only called when the Option is empty.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if !o.present {
		return f()
	}
	return o.value
}

// Map transforms the value if present, keeping its type.
func (o Option[T]) Map(f func(T) T) Option[T] {
	return Map(o, f)
}

// Map transforms the value if present.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(f(o.value))
}

// FlatMap transforms the value to another Option if present.
// The result of f is returned as is.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.present {
		return None[U]()
	}
	return f(o.value)
}

// Match calls onSome with the value if present, otherwise onNone.
// Exactly one of the two functions runs.
func Match[T, K any](o Option[T], onSome func(T) K, onNone func() K) K {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// Filter returns the Option if the predicate is satisfied, otherwise None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Or returns this Option if it has a value, otherwise returns the other Option.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.present {
		return o
	}
	return other
}

// OrElse returns this Option if it has a value, otherwise calls the function.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.present {
		return o
	}
	return f()
}

// String returns "None" or "Some(<value>)".
func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// MarshalJSON encodes None as null and Some(v) as v.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
