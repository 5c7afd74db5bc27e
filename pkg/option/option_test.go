package option

import (
	"encoding/json"
	"strconv"
	"testing"
)

func TestSomeAndNone(t *testing.T) {
	tests := []struct {
		name     string
		opt      Option[int]
		wantSome bool
	}{
		{name: "some", opt: Some(1), wantSome: true},
		{name: "some zero", opt: Some(0), wantSome: true},
		{name: "none", opt: None[int](), wantSome: false},
		{name: "zero value", opt: Option[int]{}, wantSome: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opt.IsSome(); got != tt.wantSome {
				t.Errorf("IsSome() = %v, want %v", got, tt.wantSome)
			}
			if got := tt.opt.IsNone(); got == tt.wantSome {
				t.Errorf("IsNone() = %v, want %v", got, !tt.wantSome)
			}
		})
	}
}

func TestSomeNilIsPresent(t *testing.T) {
	var p *int
	if !Some(p).IsSome() {
		t.Error("Some(nil pointer) should be present")
	}
	if !Some[any](nil).IsSome() {
		t.Error("Some[any](nil) should be present")
	}
}

func TestGet(t *testing.T) {
	v, ok := Some("x").Get()
	if !ok || v != "x" {
		t.Errorf("Get() = %q, %v, want \"x\", true", v, ok)
	}

	v, ok = None[string]().Get()
	if ok || v != "" {
		t.Errorf("Get() on None = %q, %v, want \"\", false", v, ok)
	}
}

func TestUnwrapPanicsOnNone(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Unwrap() on None should panic")
		}
	}()
	None[int]().Unwrap()
}

func TestUnwrapOr(t *testing.T) {
	if got := Some(1).UnwrapOr(42); got != 1 {
		t.Errorf("UnwrapOr() = %d, want 1", got)
	}
	if got := None[int]().UnwrapOr(42); got != 42 {
		t.Errorf("UnwrapOr() = %d, want 42", got)
	}
}

func TestUnwrapOrElse(t *testing.T) {
	if got := None[int]().UnwrapOrElse(func() int { return 42 }); got != 42 {
		t.Errorf("UnwrapOrElse() = %d, want 42", got)
	}

	got := Some(1).UnwrapOrElse(func() int {
		panic("must not run")
	})
	if got != 1 {
		t.Errorf("UnwrapOrElse() = %d, want 1", got)
	}
}

func TestMap(t *testing.T) {
	double := func(x int) int { return x * 2 }

	if got := Some(3).Map(double); got.Unwrap() != 6 {
		t.Errorf("Map() = %v, want Some(6)", got)
	}

	called := false
	got := None[int]().Map(func(x int) int {
		called = true
		return x
	})
	if got.IsSome() || called {
		t.Errorf("Map() on None = %v, called = %v", got, called)
	}

	s := Map(Some(7), strconv.Itoa)
	if s.Unwrap() != "7" {
		t.Errorf("Map() = %v, want Some(7)", s)
	}
}

func TestFlatMap(t *testing.T) {
	half := func(x int) Option[int] {
		if x%2 != 0 {
			return None[int]()
		}
		return Some(x / 2)
	}

	tests := []struct {
		name string
		in   Option[int]
		want Option[int]
	}{
		{name: "even", in: Some(4), want: Some(2)},
		{name: "odd", in: Some(3), want: None[int]()},
		{name: "none", in: None[int](), want: None[int]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlatMap(tt.in, half); got != tt.want {
				t.Errorf("FlatMap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	onSome := func(v int) string { return "some " + strconv.Itoa(v) }
	onNone := func() string { return "none" }

	if got := Match(Some(5), onSome, onNone); got != "some 5" {
		t.Errorf("Match() = %q, want %q", got, "some 5")
	}
	if got := Match(None[int](), onSome, onNone); got != "none" {
		t.Errorf("Match() = %q, want %q", got, "none")
	}
}

func TestFilterOrOrElse(t *testing.T) {
	positive := func(x int) bool { return x > 0 }

	if Some(-1).Filter(positive).IsSome() {
		t.Error("Filter() should drop values failing the predicate")
	}
	if Some(1).Filter(positive).Unwrap() != 1 {
		t.Error("Filter() should keep values passing the predicate")
	}
	if got := None[int]().Or(Some(2)); got.Unwrap() != 2 {
		t.Errorf("Or() = %v, want Some(2)", got)
	}
	if got := Some(1).OrElse(func() Option[int] { panic("must not run") }); got.Unwrap() != 1 {
		t.Errorf("OrElse() = %v, want Some(1)", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		opt  fmtStringer
		want string
	}{
		{name: "none", opt: None[int](), want: "None"},
		{name: "int", opt: Some(1), want: "Some(1)"},
		{name: "string", opt: Some("a"), want: "Some(a)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opt.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

type fmtStringer interface{ String() string }

func TestMarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A Option[int] `json:"a"`
		B Option[int] `json:"b"`
	}{A: Some(1), B: None[int]()})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `{"a":1,"b":null}` {
		t.Errorf("Marshal() = %s", out)
	}
}
