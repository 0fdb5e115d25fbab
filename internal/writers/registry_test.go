package writers

import (
	"bytes"
	"strings"
	"testing"

	"ccheck-core/aln"
	"ccheck-core/engine"
)

func TestUnknownReportFormatError(t *testing.T) {
	var b bytes.Buffer
	_, err := NewReport("nope-format", &b)
	if err == nil || !strings.Contains(err.Error(), "unknown report format") {
		t.Fatalf("want 'unknown report format' error, got: %v", err)
	}
}

func TestFormatsRegistered(t *testing.T) {
	got := strings.Join(Formats(), ",")
	if got != "json,table,text" {
		t.Fatalf("Formats() = %s", got)
	}
}

func result() *engine.Result {
	return &engine.Result{Pair: aln.Pair{Con: "ACGT", Ass: "ACGT"}, SpanTo: -1}
}

func TestTableHeaderOnce(t *testing.T) {
	var b bytes.Buffer
	w, err := NewReport("table", &b)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"a.sam", "b.sam"} {
		if err := w.Write(f, result()); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(b.String(), "#Filename"); n != 1 {
		t.Fatalf("header printed %d times", n)
	}
	if n := strings.Count(b.String(), "\n"); n != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", n, b.String())
	}
}

func TestTableHeaderWithoutRows(t *testing.T) {
	var b bytes.Buffer
	w, _ := NewReport("table", &b)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), "#Filename") {
		t.Fatalf("got %q", b.String())
	}
}

func TestJSONBuffersUntilClose(t *testing.T) {
	var b bytes.Buffer
	w, _ := NewReport("json", &b)
	if err := w.Write("a.sam", result()); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 0 {
		t.Fatalf("json written before Close")
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), "[") || !strings.Contains(b.String(), `"file": "a.sam"`) {
		t.Fatalf("got %s", b.String())
	}
}
