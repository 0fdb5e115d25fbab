// internal/output/text.go
package output

import (
	"bufio"
	"fmt"
	"io"

	"ccheck-core/classify"
	"ccheck-core/engine"
	"ccheck-core/stats"
)

// WriteText prints the human-readable report for one assembly file.
func WriteText(w io.Writer, file string, r *engine.Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n\n", file)
	fmt.Fprintf(bw, "  %d alignment distance between reference and assembly.\n", r.Distance)
	fmt.Fprintf(bw, "  %d total differences between reference and assembly.\n", r.Differences)

	fmt.Fprintf(bw, "  %d diagnostic positions%s, %d of which are strongly diagnostic.\n",
		r.Differences, inRange(r), r.StrongBefore)
	fmt.Fprintf(bw, "  %d effectively diagnostic positions%s, %d of which are transversions.\n\n",
		r.Diagnostic(), inRange(r), r.Transversions)

	fmt.Fprintf(bw, "  strongly diagnostic positions: %d\n", r.Strong)
	writeTally(bw, r.StrongOnly, r.StrongRate)
	fmt.Fprintf(bw, "  effectively diagnostic positions: %d\n", r.Diagnostic())
	writeTally(bw, r.Combined, r.CombinedRate)
	return bw.Flush()
}

func inRange(r *engine.Result) string {
	if !r.Spanned() {
		return ""
	}
	return fmt.Sprintf(" in range [%d,%d)", r.SpanFrom, spanEnd(r))
}

func writeTally(w io.Writer, t classify.Tally, rate stats.Interval) {
	for _, c := range classify.Classes() {
		fmt.Fprintf(w, "  %*s fragments: %d", labelWidth, c, t[c])
		if c == classify.Contaminant && rate.Valid {
			fmt.Fprintf(w, " (%.1f .. %.1f .. %.1f%%)", rate.Lower, rate.Estimate, rate.Upper)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
