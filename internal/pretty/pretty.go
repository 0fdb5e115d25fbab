// internal/pretty/pretty.go
package pretty

import (
	"bufio"
	"io"

	"ccheck-core/aln"
)

// Options control the alignment dump.
type Options struct {
	Width      int  // columns per block; <= 0 uses the default
	MatchGlyph byte // marks identical columns
	DiffGlyph  byte
}

// DefaultOptions reproduce the classic 72-column dump.
var DefaultOptions = Options{
	Width:      72,
	MatchGlyph: '*',
	DiffGlyph:  ' ',
}

// Alignment writes the pair in blocks of three lines (contaminant row,
// assembly row, match track) separated by blank lines.
func Alignment(w io.Writer, p aln.Pair) error {
	return AlignmentWithOptions(w, p, DefaultOptions)
}

func AlignmentWithOptions(w io.Writer, p aln.Pair, opt Options) error {
	width := opt.Width
	if width <= 0 {
		width = DefaultOptions.Width
	}
	n := min(len(p.Con), len(p.Ass))
	bw := bufio.NewWriter(w)
	track := make([]byte, 0, width)
	for i := 0; i < n; i += width {
		j := min(i+width, n)
		bw.WriteString(p.Con[i:j])
		bw.WriteByte('\n')
		bw.WriteString(p.Ass[i:j])
		bw.WriteByte('\n')
		track = track[:0]
		for k := i; k < j; k++ {
			if p.Con[k] == p.Ass[k] {
				track = append(track, opt.MatchGlyph)
			} else {
				track = append(track, opt.DiffGlyph)
			}
		}
		bw.Write(track)
		bw.WriteString("\n\n")
	}
	return bw.Flush()
}
