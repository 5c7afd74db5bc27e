package loader

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/d-kuro/recq/pkg/filesystem"
	"github.com/d-kuro/recq/pkg/record"
)

func testFS() filesystem.FileSystem {
	return filesystem.FromFS(fstest.MapFS{
		"data/a.json":      {Data: []byte(`[{"id": 1, "name": "a"}, {"id": 2, "name": "b"}]`)},
		"data/b.yaml":      {Data: []byte("id: 3\nname: c\n")},
		"data/notes.txt":   {Data: []byte("ignored")},
		"data/sub/c.json":  {Data: []byte(`[{"id": 99}]`)},
		"nested.json":      {Data: []byte(`{"result": {"items": [{"id": 7}]}}`)},
		"scalar.yaml":      {Data: []byte("42\n")},
		"mixed.json":       {Data: []byte(`[{"id": 1}, 2]`)},
		"stream.yaml":      {Data: []byte("- id: 1\n---\nid: 2\n---\n")},
		"numeric_key.yaml": {Data: []byte("1: one\ntrue: 2\n")},
		"broken.json":      {Data: []byte(`[{"id": 1,}`)},
	})
}

func ids(t *testing.T, recs []record.Record) []int {
	t.Helper()
	out := make([]int, len(recs))
	for i, r := range recs {
		id, ok := r["id"].(int)
		if !ok {
			t.Fatalf("record %d id = %#v, want int", i, r["id"])
		}
		out[i] = id
	}
	return out
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		sources []string
		root    string
		want    []int
	}{
		{name: "json file", sources: []string{"data/a.json"}, want: []int{1, 2}},
		{name: "yaml mapping", sources: []string{"data/b.yaml"}, want: []int{3}},
		{name: "directory", sources: []string{"data"}, want: []int{1, 2, 3}},
		{name: "source order", sources: []string{"data/b.yaml", "data/a.json"}, want: []int{3, 1, 2}},
		{name: "root path", sources: []string{"nested.json"}, root: "result.items", want: []int{7}},
		{name: "multi document stream", sources: []string{"stream.yaml"}, want: []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(WithFileSystem(testFS()), WithRoot(tt.root))
			recs, err := l.Load(tt.sources)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			got := ids(t, recs)
			if len(got) != len(tt.want) {
				t.Fatalf("Load() ids = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Load() ids = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		sources []string
		root    string
		wantErr error
		wantMsg string
	}{
		{name: "no sources", wantErr: ErrNoSources},
		{name: "missing", sources: []string{"missing.json"}, wantMsg: "source not found"},
		{name: "scalar", sources: []string{"scalar.yaml"}, wantErr: ErrNotRecord},
		{name: "non record element", sources: []string{"mixed.json"}, wantErr: ErrNotRecord},
		{name: "bad root", sources: []string{"nested.json"}, root: "result.none", wantErr: ErrRootPath},
		{name: "syntax error", sources: []string{"broken.json"}, wantMsg: "broken.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(WithFileSystem(testFS()), WithRoot(tt.root))
			_, err := l.Load(tt.sources)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Load() error = %v, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadStdin(t *testing.T) {
	l := New(WithFileSystem(testFS()), WithStdin(strings.NewReader(`{"id": 5}`)))
	recs, err := l.Load([]string{Stdin, "data/b.yaml"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := ids(t, recs); len(got) != 2 || got[0] != 5 || got[1] != 3 {
		t.Errorf("Load() ids = %v, want [5 3]", got)
	}
}

func TestLoadStdinOnce(t *testing.T) {
	l := New(WithFileSystem(testFS()), WithStdin(strings.NewReader("[{\"id\": 5}, {\"id\": 6}]")))
	recs, err := l.Load([]string{Stdin, "data/b.yaml", Stdin})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := ids(t, recs); len(got) != 3 || got[0] != 5 || got[1] != 6 || got[2] != 3 {
		t.Errorf("Load() ids = %v, want [5 6 3]", got)
	}
}

func TestDecodeKeepsTypes(t *testing.T) {
	recs, err := New().Decode([]byte(`{"int": 1, "float": 1.5, "str": "1", "bool": true, "null": null}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	r := recs[0]
	if _, ok := r["int"].(int); !ok {
		t.Errorf("int decoded as %T", r["int"])
	}
	if _, ok := r["float"].(float64); !ok {
		t.Errorf("float decoded as %T", r["float"])
	}
	if _, ok := r["str"].(string); !ok {
		t.Errorf("str decoded as %T", r["str"])
	}
	if _, ok := r["bool"].(bool); !ok {
		t.Errorf("bool decoded as %T", r["bool"])
	}
	if v, ok := r["null"]; !ok || v != nil {
		t.Errorf("null decoded as %#v, present %v", v, ok)
	}
}

func TestNormalizeNonStringKeys(t *testing.T) {
	recs, err := New(WithFileSystem(testFS())).Load([]string{"numeric_key.yaml"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if recs[0]["1"] != "one" || recs[0]["true"] != 2 {
		t.Errorf("Load() = %v", recs[0])
	}
}
