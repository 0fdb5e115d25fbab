// internal/assembly/assembly.go
package assembly

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"

	"ccheck-core/engine"
	"ccheck-core/frag"
)

// Logger receives recoverable anomalies in the input.
type Logger interface {
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...any) {}

// Options select what to load from an alignment file.
type Options struct {
	// Contig names the reference sequence the reads are placed on; empty
	// means the first one in the header.
	Contig string
	// Target holds the bases of the mapping reference. Columns no read
	// covers fall back to it; without it they become N.
	Target []byte
	Log    Logger
}

// ErrNoContig is returned when the header lacks the requested contig.
var ErrNoContig = errors.New("contig not found in header")

// skip drops records that do not describe a primary placement.
const skip = sam.Unmapped | sam.Secondary | sam.Supplementary | sam.QCFail

type recordReader interface {
	Read() (*sam.Record, error)
	Header() *sam.Header
}

// Load reads a SAM or BAM file (BAM is recognised by its BGZF magic) and
// turns it into an assembly.
func Load(ctx context.Context, path string, opt Options) (*engine.Assembly, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	asm, err := Read(ctx, fh, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	asm.Name = path
	return asm, nil
}

// Read is Load on an open stream.
func Read(ctx context.Context, r io.Reader, opt Options) (*engine.Assembly, error) {
	if opt.Log == nil {
		opt.Log = nopLogger{}
	}
	br := bufio.NewReader(r)
	var rr recordReader
	if magic, _ := br.Peek(2); len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		b, err := bam.NewReader(br, 0)
		if err != nil {
			return nil, fmt.Errorf("bam: %w", err)
		}
		defer b.Close()
		rr = b
	} else {
		s, err := sam.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("sam: %w", err)
		}
		rr = s
	}

	ref, err := contig(rr.Header(), opt.Contig)
	if err != nil {
		return nil, err
	}

	var frags []frag.Fragment
	pile := newPileup(ref.Len())
	for n := 0; ; n++ {
		if n%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		rec, err := rr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if rec.Flags&skip != 0 || rec.Ref == nil || rec.Ref.Name() != ref.Name() {
			continue
		}
		f, err := fragmentOf(rec, opt.Target)
		if err != nil {
			opt.Log.Warnf("%s: %v; skipped", rec.Name, err)
			continue
		}
		if f.End >= ref.Len() {
			opt.Log.Warnf("%s: placed beyond the end of %s; skipped", rec.Name, ref.Name())
			continue
		}
		for i := 0; i < len(f.Seq); i++ {
			pile.add(f.Start+i, f.Seq[i])
		}
		frags = append(frags, f)
	}
	assignRoles(frags, opt.Log)

	return &engine.Assembly{
		Name:      ref.Name(),
		Consensus: pile.call(opt.Target),
		Fragments: frags,
	}, nil
}

func contig(h *sam.Header, name string) (*sam.Reference, error) {
	refs := h.Refs()
	if len(refs) == 0 {
		return nil, errors.New("no reference sequences in header")
	}
	if name == "" {
		return refs[0], nil
	}
	for _, r := range refs {
		if r.Name() == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoContig, name)
}

// fragmentOf projects a record onto the assembly columns it covers.
// Matches give calls, deletions and skips give gaps, and inserted bases
// ride on the call before them; a leading insertion has nothing to
// attach to and is dropped.
func fragmentOf(rec *sam.Record, target []byte) (frag.Fragment, error) {
	query := rec.Seq.Expand()
	var (
		calls  []byte
		ins    []string
		insAny bool
		qi     int
	)
	for _, co := range rec.Cigar {
		n := co.Len()
		switch co.Type() {
		case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch:
			if qi+n > len(query) {
				return frag.Fragment{}, errors.New("sequence shorter than CIGAR")
			}
			for k := 0; k < n; k++ {
				b := query[qi+k]
				if b == '=' {
					b = 'N'
					if pos := rec.Pos + len(calls); pos < len(target) {
						b = upper(target[pos])
					}
				}
				calls = append(calls, b)
				ins = append(ins, "")
			}
			qi += n
		case sam.CigarDeletion, sam.CigarSkipped:
			for k := 0; k < n; k++ {
				calls = append(calls, '-')
				ins = append(ins, "")
			}
		case sam.CigarInsertion:
			if qi+n > len(query) {
				return frag.Fragment{}, errors.New("sequence shorter than CIGAR")
			}
			if len(ins) > 0 {
				ins[len(ins)-1] += string(query[qi : qi+n])
				insAny = true
			}
			qi += n
		case sam.CigarSoftClipped:
			qi += n
		}
	}
	if len(calls) == 0 {
		return frag.Fragment{}, errors.New("no aligned bases")
	}
	if !insAny {
		ins = nil
	}
	return frag.Fragment{
		ID:    FixupName(rec.Name),
		Role:  frag.Whole,
		Start: rec.Pos,
		End:   rec.Pos + len(calls) - 1,
		Seq:   strings.ToUpper(string(calls)),
		Ins:   ins,
	}, nil
}

// assignRoles turns records that share a name into back and front halves,
// in file order. Anything else stays whole.
func assignRoles(frags []frag.Fragment, log Logger) {
	count := make(map[string]int, len(frags))
	for i := range frags {
		count[frags[i].ID]++
	}
	seen := make(map[string]bool)
	for i := range frags {
		id := frags[i].ID
		switch n := count[id]; {
		case n == 2 && !seen[id]:
			frags[i].Role = frag.Back
			seen[id] = true
		case n == 2:
			frags[i].Role = frag.Front
		case n > 2 && !seen[id]:
			log.Warnf("%s: %d alignments share the name; treated as unpaired", id, n)
			seen[id] = true
		}
	}
}
