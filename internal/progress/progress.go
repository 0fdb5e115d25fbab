// internal/progress/progress.go
package progress

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// Bar reports realignment progress on a terminal.
type Bar struct {
	w   io.Writer
	bar *pb.ProgressBar
}

// New returns a bar drawing to w (normally stderr).
func New(w io.Writer) *Bar { return &Bar{w: w} }

func (b *Bar) Start(total int) {
	b.bar = pb.Full.New(total).SetWriter(b.w)
	b.bar.Set("prefix", "realigning")
	b.bar.Start()
}

func (b *Bar) Increment() {
	if b.bar != nil {
		b.bar.Increment()
	}
}

func (b *Bar) Finish() {
	if b.bar != nil {
		b.bar.Finish()
		b.bar = nil
	}
}
