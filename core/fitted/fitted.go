// core/fitted/fitted.go
package fitted

import (
	"errors"
	"fmt"

	"github.com/biogo/biogo/align"
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"

	"ccheck-core/realign"
)

// Scores is a simple nucleotide scoring scheme. Gap penalties are negative;
// a gap of length k costs GapOpen + k*GapExtend.
type Scores struct {
	Match     int `mapstructure:"match" yaml:"match" json:"match"`
	Mismatch  int `mapstructure:"mismatch" yaml:"mismatch" json:"mismatch"`
	N         int `mapstructure:"n" yaml:"n" json:"n"`
	GapOpen   int `mapstructure:"gap_open" yaml:"gap_open" json:"gap_open"`
	GapExtend int `mapstructure:"gap_extend" yaml:"gap_extend" json:"gap_extend"`
}

// DefaultScores returns the built-in scheme.
func DefaultScores() Scores {
	return Scores{Match: 2, Mismatch: -1, N: 0, GapOpen: -3, GapExtend: -1}
}

// Validate rejects schemes under which alignments degenerate.
func (s Scores) Validate() error {
	if s.Match <= 0 {
		return fmt.Errorf("match score must be positive, got %d", s.Match)
	}
	if s.Mismatch >= s.Match {
		return fmt.Errorf("mismatch score %d must be below match score %d", s.Mismatch, s.Match)
	}
	if s.GapOpen > 0 || s.GapExtend >= 0 {
		return fmt.Errorf("gap penalties must be negative (open %d, extend %d)", s.GapOpen, s.GapExtend)
	}
	return nil
}

var alpha = alphabet.DNAredundant

// matrix lays s out over the redundant DNA alphabet. Only A, C, G, T and N
// reach the aligner; other codes score like N.
func (s Scores) matrix() align.Linear {
	n := alpha.Len()
	m := make(align.Linear, n)
	gap := alpha.IndexOf('-')
	for i := range m {
		m[i] = make([]int, n)
		for j := range m[i] {
			a, b := lower(alpha.Letter(i)), lower(alpha.Letter(j))
			switch {
			case i == gap && j == gap:
				m[i][j] = 0
			case i == gap || j == gap:
				m[i][j] = s.GapExtend
			case !isBase(a) || !isBase(b):
				m[i][j] = s.N
			case a == b:
				m[i][j] = s.Match
			default:
				m[i][j] = s.Mismatch
			}
		}
	}
	return m
}

func lower(l alphabet.Letter) alphabet.Letter {
	if l >= 'A' && l <= 'Z' {
		return l + ('a' - 'A')
	}
	return l
}

func isBase(l alphabet.Letter) bool { return l == 'a' || l == 'c' || l == 'g' || l == 't' }

// Aligner is a fitted aligner: the whole read is aligned, the reference
// window may be entered and left anywhere for free. It is safe for
// concurrent use.
type Aligner struct {
	fa align.FittedAffine
}

// New builds an Aligner from a scoring scheme.
func New(s Scores) (*Aligner, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Aligner{fa: align.FittedAffine{Matrix: s.matrix(), GapOpen: s.GapOpen}}, nil
}

var errEmpty = errors.New("nothing to align")

// Align implements realign.LocalAligner. The read is normalised first.
func (a *Aligner) Align(window, read string) (realign.Alignment, error) {
	read = realign.Normalize(read)
	if len(window) == 0 || len(read) == 0 {
		return realign.Alignment{}, errEmpty
	}
	ref := linear.NewSeq("window", alphabet.BytesToLetters([]byte(window)), alpha)
	query := linear.NewSeq("read", alphabet.BytesToLetters([]byte(read)), alpha)

	pairs, err := a.fa.Align(ref, query)
	if err != nil {
		return realign.Alignment{}, err
	}
	if len(pairs) == 0 {
		return realign.Alignment{}, errEmpty
	}
	rows := align.Format(ref, query, pairs, '-')
	refRow, err := letters(rows[0])
	if err != nil {
		return realign.Alignment{}, err
	}
	fragRow, err := letters(rows[1])
	if err != nil {
		return realign.Alignment{}, err
	}
	return realign.Alignment{
		Start: pairs[0].Features()[0].Start(),
		Ref:   refRow,
		Frag:  fragRow,
	}, nil
}

func letters(s alphabet.Slice) (string, error) {
	l, ok := s.(alphabet.Letters)
	if !ok {
		return "", fmt.Errorf("unexpected aligned row type %T", s)
	}
	b := make([]byte, len(l))
	for i, c := range l {
		b[i] = byte(c)
	}
	return string(b), nil
}
