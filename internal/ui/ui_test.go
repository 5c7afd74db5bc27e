package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/d-kuro/recq/pkg/models"
	"github.com/d-kuro/recq/pkg/option"
	"github.com/d-kuro/recq/pkg/record"
)

func newTestPrinter(format models.OutputFormat) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	cfg := &models.Config{Output: models.OutputConfig{Format: string(format), MaxWidth: 10}}
	return New(cfg).SetOutput(&out, &errOut), &out, &errOut
}

func sampleRecords() []record.Record {
	return []record.Record{
		{"id": 1, "symbol": "TP53", "tags": []any{"a", "b"}},
		{"id": 2, "symbol": "BRCA1", "note": "a fairly long note"},
	}
}

func TestNewPrinter(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   models.OutputFormat
	}{
		{name: "json", format: "json", want: models.FormatJSON},
		{name: "csv", format: "csv", want: models.FormatCSV},
		{name: "unknown falls back to table", format: "xml", want: models.FormatTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(&models.Config{Output: models.OutputConfig{Format: tt.format}})
			if p.format != tt.want {
				t.Errorf("format = %v, want %v", p.format, tt.want)
			}
		})
	}
}

func TestPrintRecordsJSON(t *testing.T) {
	p, out, _ := newTestPrinter(models.FormatJSON)
	if err := p.PrintRecords(sampleRecords()); err != nil {
		t.Fatalf("PrintRecords() error = %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(got) != 2 || got[1]["symbol"] != "BRCA1" {
		t.Errorf("decoded output = %v", got)
	}
}

func TestPrintRecordsYAML(t *testing.T) {
	p, out, _ := newTestPrinter(models.FormatYAML)
	if err := p.PrintRecords([]record.Record{{"id": 1, "symbol": "TP53"}}); err != nil {
		t.Fatalf("PrintRecords() error = %v", err)
	}

	want := "- id: 1\n  symbol: TP53\n"
	if out.String() != want {
		t.Errorf("PrintRecords() = %q, want %q", out.String(), want)
	}
}

func TestPrintRecordsCSV(t *testing.T) {
	p, out, _ := newTestPrinter(models.FormatCSV)
	if err := p.PrintRecords(sampleRecords()); err != nil {
		t.Fatalf("PrintRecords() error = %v", err)
	}

	want := "id,note,symbol,tags\n" +
		"1,,TP53,\"[\"\"a\"\",\"\"b\"\"]\"\n" +
		"2,a fairly long note,BRCA1,\n"
	if out.String() != want {
		t.Errorf("PrintRecords() = %q, want %q", out.String(), want)
	}
}

func TestPrintRecordsTable(t *testing.T) {
	p, out, _ := newTestPrinter(models.FormatTable)
	if err := p.PrintRecords(sampleRecords()); err != nil {
		t.Fatalf("PrintRecords() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{"symbol", "TP53", "BRCA1", "a fairly"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "a fairly long note") {
		t.Errorf("long cell was not truncated:\n%s", got)
	}

	out.Reset()
	if err := p.PrintRecords(nil); err != nil {
		t.Fatalf("PrintRecords(nil) error = %v", err)
	}
	if out.String() != "No records found\n" {
		t.Errorf("PrintRecords(nil) = %q", out.String())
	}
}

func TestPrintRecordsColumns(t *testing.T) {
	var out bytes.Buffer
	cfg := &models.Config{Output: models.OutputConfig{Format: "csv", Columns: []string{"symbol", "tags.0"}}}
	p := New(cfg).SetOutput(&out, &out)

	if err := p.PrintRecords(sampleRecords()); err != nil {
		t.Fatalf("PrintRecords() error = %v", err)
	}
	want := "symbol,tags.0\nTP53,a\nBRCA1,\n"
	if out.String() != want {
		t.Errorf("PrintRecords() = %q, want %q", out.String(), want)
	}
}

func TestPrintRecord(t *testing.T) {
	tests := []struct {
		name   string
		format models.OutputFormat
		found  option.Option[record.Record]
		want   string
	}{
		{name: "json none", format: models.FormatJSON, found: option.None[record.Record](), want: "null\n"},
		{name: "yaml none", format: models.FormatYAML, found: option.None[record.Record](), want: "null\n"},
		{name: "table none", format: models.FormatTable, found: option.None[record.Record](), want: "No matching record\n"},
		{name: "csv some", format: models.FormatCSV, found: option.Some(record.Record{"id": 7}), want: "id\n7\n"},
		{name: "yaml some", format: models.FormatYAML, found: option.Some(record.Record{"id": 7}), want: "id: 7\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out, _ := newTestPrinter(tt.format)
			if err := p.PrintRecord(tt.found); err != nil {
				t.Fatalf("PrintRecord() error = %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("PrintRecord() = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestPrintIndex(t *testing.T) {
	p, out, _ := newTestPrinter(models.FormatTable)
	p.PrintIndex(option.Some(3))
	p.PrintIndex(option.None[int]())
	if out.String() != "3\n-1\n" {
		t.Errorf("PrintIndex() = %q", out.String())
	}
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "string", value: "x", want: "x"},
		{name: "int", value: 42, want: "42"},
		{name: "float", value: 2.5, want: "2.5"},
		{name: "bool", value: false, want: "false"},
		{name: "record", value: record.Record{"b": 1}, want: `{"b":1}`},
		{name: "sequence", value: []any{1, "x"}, want: `[1,"x"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCell(tt.value); got != tt.want {
				t.Errorf("FormatCell(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestPrintConfig(t *testing.T) {
	p, out, _ := newTestPrinter(models.FormatTable)
	p.PrintConfig(map[string]any{
		"ui":     map[string]any{"color": true},
		"output": map[string]any{"format": "table", "max_width": 40},
	})

	want := "output.format = table\noutput.max_width = 40\nui.color = true\n"
	if out.String() != want {
		t.Errorf("PrintConfig() = %q, want %q", out.String(), want)
	}
}

func TestDiagnostics(t *testing.T) {
	p, out, errOut := newTestPrinter(models.FormatTable)

	p.Debugf("hidden %d", 1)
	if errOut.Len() != 0 {
		t.Errorf("Debugf wrote without verbose: %q", errOut.String())
	}

	p.SetVerbose(true)
	p.Debugf("where: %d records", 3)
	p.PrintError(errors.New("boom"))
	p.PrintInfo("done")

	if errOut.String() != "debug: where: 3 records\nError: boom\n" {
		t.Errorf("error output = %q", errOut.String())
	}
	if out.String() != "done\n" {
		t.Errorf("output = %q", out.String())
	}
}
