// core/aln/cursor.go
package aln

// Cursor walks the columns of a Pair while keeping track of the assembly
// coordinate. Pos is the number of assembly symbols strictly before the
// current column, so a column whose assembly side is a gap shares its
// coordinate with the next assembly symbol.
type Cursor struct {
	p   Pair
	col int
	pos int
}

// NewCursor returns a cursor on the first column of p.
func NewCursor(p Pair) *Cursor { return &Cursor{p: p} }

// Done reports whether the cursor ran off the end of the alignment.
func (c *Cursor) Done() bool { return c.col >= len(c.p.Con) || c.col >= len(c.p.Ass) }

// Con is the consensus-side symbol of the current column.
func (c *Cursor) Con() byte { return c.p.Con[c.col] }

// Ass is the assembly-side symbol of the current column.
func (c *Cursor) Ass() byte { return c.p.Ass[c.col] }

// Pos is the assembly coordinate of the current column.
func (c *Cursor) Pos() int { return c.pos }

// Col is the alignment column index.
func (c *Cursor) Col() int { return c.col }

// Next consumes one alignment column.
func (c *Cursor) Next() {
	if c.Done() {
		return
	}
	if c.p.Ass[c.col] != Gap {
		c.pos++
	}
	c.col++
}

// Seek consumes columns until the assembly coordinate reaches pos. It
// returns false if the alignment ends first.
func (c *Cursor) Seek(pos int) bool {
	for c.pos != pos && !c.Done() {
		c.Next()
	}
	return c.pos == pos && !c.Done()
}

// Track steps through a gapped row one ungapped symbol at a time, carrying
// along the symbol of a partner row in the same column. It is used for the
// reference row of a fragment's local alignment and for the assembly row of
// the fragment itself.
type Track struct {
	row, partner string
	i            int
}

// NewTrack positions a track on the first ungapped symbol of row.
func NewTrack(row, partner string) *Track {
	t := &Track{row: row, partner: partner}
	t.skipGaps()
	return t
}

func (t *Track) skipGaps() {
	for t.i < len(t.row) && t.row[t.i] == Gap {
		t.i++
	}
}

// Done reports whether either row is exhausted.
func (t *Track) Done() bool { return t.i >= len(t.row) || t.i >= len(t.partner) }

// Base is the row symbol at the current position.
func (t *Track) Base() byte { return t.row[t.i] }

// Partner is the partner row's symbol in the same column.
func (t *Track) Partner() byte { return t.partner[t.i] }

// Step consumes one ungapped row symbol, skipping any gap columns after it.
func (t *Track) Step() {
	if t.i >= len(t.row) {
		return
	}
	t.i++
	t.skipGaps()
}
