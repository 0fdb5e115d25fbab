// core/fasta/reader_test.go
package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plain = `>seq1 human mt
ACGT
RYNN
>seq2
acgt
`

// writeGz creates a gzipped FASTA file with provided data, returns the file path.
func writeGz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestReadAll(t *testing.T) {
	recs, err := ReadAll(context.Background(), strings.NewReader(plain))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ID != "seq1" || string(recs[0].Seq) != "ACGTRYNN" {
		t.Errorf("record 0 = %q %q", recs[0].ID, recs[0].Seq)
	}
	if recs[1].ID != "seq2" || !strings.EqualFold(string(recs[1].Seq), "ACGT") {
		t.Errorf("record 1 = %q %q", recs[1].ID, recs[1].Seq)
	}
}

func TestReadFileGzip(t *testing.T) {
	rec, err := LoadReference(context.Background(), writeGz(t, plain))
	if err != nil {
		t.Fatalf("LoadReference: %v", err)
	}
	if rec.ID != "seq1" {
		t.Errorf("first record %q", rec.ID)
	}
}

func TestLoadReferenceEmpty(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "empty.fa")
	if err := os.WriteFile(fn, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadReference(context.Background(), fn); !errors.Is(err, ErrNoRecords) {
		t.Errorf("err = %v, want ErrNoRecords", err)
	}
}

func TestReadAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ReadAll(ctx, strings.NewReader(plain)); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestFind(t *testing.T) {
	recs := []Record{{ID: "a"}, {ID: "b"}}
	if r, ok := Find(recs, "b"); !ok || r.ID != "b" {
		t.Errorf("Find(b) = %v %v", r, ok)
	}
	if r, ok := Find(recs, ""); !ok || r.ID != "a" {
		t.Errorf("Find(\"\") = %v %v", r, ok)
	}
	if _, ok := Find(recs, "c"); ok {
		t.Errorf("Find(c) succeeded")
	}
}
