// Package record provides field access and path resolution over loosely
// structured records such as decoded JSON or YAML documents.
package record

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/d-kuro/recq/pkg/option"
)

// Record is a decoded key/value document.
type Record = map[string]any

// Path is a route of field names through nested records.
type Path []string

// ParsePath splits a dotted field name into its segments.
// The result always has at least one segment.
func ParsePath(field string) Path {
	return strings.Split(field, ".")
}

// String joins the path back into its dotted form.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// IsNested reports whether the path has more than one segment.
func (p Path) IsNested() bool {
	return len(p) > 1
}

// Field returns the value stored under name when item owns that field.
// Maps with string keys and structs (by field name or json tag) are records;
// anything else has no fields.
func Field(item any, name string) (any, bool) {
	switch v := item.(type) {
	case nil:
		return nil, false
	case map[string]any:
		val, ok := v[name]
		return val, ok
	}

	rv := indirect(reflect.ValueOf(item))
	switch rv.Kind() {
	case reflect.Map:
		keyType := rv.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil, false
		}
		val := rv.MapIndex(reflect.ValueOf(name).Convert(keyType))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Struct:
		return structField(rv, name)
	default:
		return nil, false
	}
}

func structField(rv reflect.Value, name string) (any, bool) {
	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if tag, ok := sf.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName == name {
				return rv.Field(i).Interface(), true
			}
		}
		if sf.Name == name {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

// Seq returns the elements of v when v is a sequence.
// Byte slices are treated as scalars.
func Seq(v any) ([]any, bool) {
	switch s := v.(type) {
	case nil:
		return nil, false
	case []any:
		return s, true
	case []Record:
		out := make([]any, len(s))
		for i, r := range s {
			out[i] = r
		}
		return out, true
	}

	rv := indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	default:
		return nil, false
	}
}

// Lookup matches value at the end of path inside item and returns the record
// that holds the matching field, not the field value itself.
//
// An intermediate field holding a sequence is searched element by element;
// the first element that matches wins.
func Lookup(item any, path Path, value any) option.Option[any] {
	if item == nil || len(path) == 0 {
		return option.None[any]()
	}

	if len(path) == 1 {
		if v, ok := Field(item, path[0]); ok && Equal(v, value) {
			return option.Some(item)
		}
		return option.None[any]()
	}

	inner, _ := Field(item, path[0])
	if elems, ok := Seq(inner); ok {
		for _, elem := range elems {
			if found := Lookup(elem, path[1:], value); found.IsSome() {
				return found
			}
		}
		return option.None[any]()
	}
	return Lookup(inner, path[1:], value)
}

// Resolve returns the value found at the end of path.
// A numeric segment indexes into a sequence.
func Resolve(item any, path Path) (any, bool) {
	cur := item
	for _, seg := range path {
		if v, ok := Field(cur, seg); ok {
			cur = v
			continue
		}
		elems, ok := Seq(cur)
		if !ok {
			return nil, false
		}
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 || idx >= len(elems) {
			return nil, false
		}
		cur = elems[idx]
	}
	return cur, true
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}
