// internal/output/common.go
package output

import (
	"strings"

	"ccheck-core/classify"
	"ccheck-core/engine"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// labelWidth is the width of the longest class label.
var labelWidth = func() int {
	w := 0
	for _, c := range classify.Classes() {
		w = max(w, len(c.String()))
	}
	return w
}()

// spanEnd is the exclusive end of the analysed span in assembly
// coordinates.
func spanEnd(r *engine.Result) int {
	if r.SpanTo >= 0 {
		return r.SpanTo
	}
	return len(r.Pair.Ass) - strings.Count(r.Pair.Ass, "-")
}
