// core/engine/logger.go
package engine

import (
	"strings"

	"ccheck-core/classify"
	"ccheck-core/diag"
)

// Logger receives anomalies (Warnf) and verbosity-levelled trace output.
type Logger = classify.Logger

type nopLogger struct{}

func (nopLogger) Warnf(string, ...any)       {}
func (nopLogger) Debugf(int, string, ...any) {}

// Progress observes the realignment stage.
type Progress interface {
	Start(total int)
	Increment()
	Finish()
}

// positionList formats lazily, so listings cost nothing unless printed.
type positionList []*diag.Position

func (l positionList) String() string {
	var b strings.Builder
	for i, p := range l {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.String())
	}
	return b.String()
}
