// Package loader decodes record documents from JSON and YAML sources.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/d-kuro/recq/pkg/filesystem"
	"github.com/d-kuro/recq/pkg/pipeline"
	"github.com/d-kuro/recq/pkg/record"
	"gopkg.in/yaml.v3"
)

// Stdin is the source name that reads from standard input.
const Stdin = "-"

var (
	ErrNoSources = errors.New("no sources given")
	ErrNotRecord = errors.New("not a record")
	ErrRootPath  = errors.New("root path not found")
)

// extensions lists the file types picked up when a source is a directory.
var extensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// Loader reads records from files, directories and standard input.
type Loader struct {
	fs    filesystem.FileSystem
	stdin io.Reader
	root  record.Path
}

// Option configures a Loader.
type Option func(*Loader)

// WithFileSystem sets the file system sources are read from.
func WithFileSystem(fs filesystem.FileSystem) Option {
	return func(l *Loader) {
		l.fs = fs
	}
}

// WithStdin sets the reader used for the "-" source.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) {
		l.stdin = r
	}
}

// WithRoot selects the sequence found at path inside each document
// instead of the document itself.
func WithRoot(path string) Option {
	return func(l *Loader) {
		if path != "" {
			l.root = record.ParsePath(path)
		}
	}
}

// New creates a Loader reading from the OS file system and os.Stdin by default.
func New(opts ...Option) *Loader {
	l := &Loader{
		fs:    filesystem.NewStandardFileSystem(),
		stdin: os.Stdin,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads every source and returns their records in source order.
// Directories contribute their .json, .yaml and .yml files in name order.
// Standard input is read once, at its first position.
func (l *Loader) Load(sources []string) ([]record.Record, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	var (
		files     []string
		readStdin bool
	)
	for _, src := range sources {
		if src == Stdin {
			if readStdin {
				continue
			}
			readStdin = true
		}
		expanded, err := l.expand(src)
		if err != nil {
			return nil, err
		}
		files = append(files, expanded...)
	}

	results, errs := pipeline.Parallel(l.loadSource, files, 0)
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	var records []record.Record
	for _, recs := range results {
		records = append(records, recs...)
	}
	return records, nil
}

func (l *Loader) expand(src string) ([]string, error) {
	if src == Stdin {
		return []string{src}, nil
	}
	if !l.fs.Exists(src) {
		return nil, fmt.Errorf("source not found: %s", src)
	}
	if !l.fs.IsDir(src) {
		return []string{src}, nil
	}

	entries, err := l.fs.ReadDir(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", src, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !extensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		files = append(files, filepath.Join(src, entry.Name()))
	}
	return files, nil
}

func (l *Loader) loadSource(name string) ([]record.Record, error) {
	var (
		data []byte
		err  error
	)
	if name == Stdin {
		data, err = io.ReadAll(l.stdin)
	} else {
		data, err = l.fs.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	recs, err := l.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return recs, nil
}

// Decode parses a JSON or YAML stream. Every document in the stream
// contributes either its elements (a sequence) or itself (a mapping).
func (l *Loader) Decode(data []byte) ([]record.Record, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var records []record.Record
	for doc := 0; ; doc++ {
		var v any
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode document %d: %w", doc, err)
		}
		if v == nil {
			continue
		}

		v = Normalize(v)
		if l.root != nil {
			selected, ok := record.Resolve(v, l.root)
			if !ok {
				return nil, fmt.Errorf("document %d: %w: %s", doc, ErrRootPath, l.root)
			}
			v = selected
		}

		recs, err := toRecords(v)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
		records = append(records, recs...)
	}
	return records, nil
}

func toRecords(v any) ([]record.Record, error) {
	if r, ok := v.(record.Record); ok {
		return []record.Record{r}, nil
	}

	elems, ok := record.Seq(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotRecord, v)
	}

	records := make([]record.Record, 0, len(elems))
	for i, elem := range elems {
		r, ok := elem.(record.Record)
		if !ok {
			return nil, fmt.Errorf("element %d: %w: %T", i, ErrNotRecord, elem)
		}
		records = append(records, r)
	}
	return records, nil
}

// Normalize converts mappings with non-string keys, which yaml.v3 produces
// for keys such as 1 or true, into records keyed by the key's text.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = Normalize(val)
		}
		return t
	case map[any]any:
		out := make(record.Record, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = Normalize(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = Normalize(val)
		}
		return t
	default:
		return v
	}
}
