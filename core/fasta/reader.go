// core/fasta/reader.go
package fasta

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Record represents a parsed FASTA sequence.
type Record struct {
	ID  string
	Seq []byte
}

// ErrNoRecords is returned when a file holds no sequence at all.
var ErrNoRecords = errors.New("no FASTA records")

// ReadAll parses every record from r. Cancellation is checked between
// records.
func ReadAll(ctx context.Context, r io.Reader) ([]Record, error) {
	var out []Record
	sc := seqio.NewScanner(biofasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNAredundant)))
	for sc.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s := sc.Seq().(*linear.Seq)
		b := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			b[i] = byte(l)
		}
		out = append(out, Record{ID: s.ID, Seq: b})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	return out, nil
}

// ReadFile parses every record of a (possibly gzipped) FASTA file.
func ReadFile(ctx context.Context, path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	recs, err := ReadAll(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// LoadReference returns the first record of path.
func LoadReference(ctx context.Context, path string) (Record, error) {
	recs, err := ReadFile(ctx, path)
	if err != nil {
		return Record{}, err
	}
	if len(recs) == 0 {
		return Record{}, fmt.Errorf("%s: %w", path, ErrNoRecords)
	}
	return recs[0], nil
}

// Find returns the record named id, or the first record when id is empty.
func Find(recs []Record, id string) (Record, bool) {
	for _, r := range recs {
		if id == "" || r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}
