package collection

import (
	"reflect"

	"github.com/d-kuro/recq/pkg/record"
)

// keySet tracks keys seen by UniqueByField. Hashable keys go in a map,
// anything else is compared with record.Equal.
type keySet struct {
	hashed map[any]struct{}
	other  []any
	absent bool
}

// add records the key and reports whether it was new.
func (s *keySet) add(key any, present bool) bool {
	if !present {
		if s.absent {
			return false
		}
		s.absent = true
		return true
	}

	if key == nil || reflect.ValueOf(key).Comparable() {
		if s.hashed == nil {
			s.hashed = make(map[any]struct{})
		}
		if _, ok := s.hashed[key]; ok {
			return false
		}
		s.hashed[key] = struct{}{}
		return true
	}

	for _, k := range s.other {
		if record.Equal(k, key) {
			return false
		}
	}
	s.other = append(s.other, key)
	return true
}
