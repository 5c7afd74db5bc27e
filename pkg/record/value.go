package record

import (
	"cmp"
	"math"
	"reflect"
	"time"
)

// Equal reports whether a and b are strictly equal: same dynamic type and
// equal by ==. Maps and slices are equal only when they share storage.
// Empty slices have no storage of their own, so two of them never match
// unless both are nil.
// No conversion between types is attempted, so int(1) and float64(1) differ.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ta.Kind() {
	case reflect.Map:
		return va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Slice:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		return va.Cap() > 0 && va.UnsafePointer() == vb.UnsafePointer() && va.Len() == vb.Len()
	case reflect.Func:
		return false
	}

	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// Truthy reports whether v counts as a present value for sorting.
// nil, false, zero numbers, NaN, empty strings and nil references are falsy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

// Compare orders two scalar values.
// Numbers compare numerically across kinds, strings lexically, false before
// true and times chronologically. Pairs without a natural order compare equal.
func Compare(a, b any) int {
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
		return 0
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return 0
	}

	switch {
	case isSigned(va) && isSigned(vb):
		return cmp.Compare(va.Int(), vb.Int())
	case isUnsigned(va) && isUnsigned(vb):
		return cmp.Compare(va.Uint(), vb.Uint())
	case isNumber(va) && isNumber(vb):
		return cmp.Compare(toFloat(va), toFloat(vb))
	case va.Kind() == reflect.String && vb.Kind() == reflect.String:
		return cmp.Compare(va.String(), vb.String())
	case va.Kind() == reflect.Bool && vb.Kind() == reflect.Bool:
		return cmp.Compare(boolRank(va.Bool()), boolRank(vb.Bool()))
	default:
		return 0
	}
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumber(v reflect.Value) bool {
	return isSigned(v) || isUnsigned(v) || v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isSigned(v):
		return float64(v.Int())
	case isUnsigned(v):
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
