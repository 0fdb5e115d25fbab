// internal/output/table.go
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"ccheck-core/classify"
	"ccheck-core/engine"
	"ccheck-core/stats"
)

// TableHeader is the header row of table output. The second block of
// class columns (primed) counts fragments over all effectively
// diagnostic positions.
var TableHeader = func() string {
	cols := []string{"#Filename", "Aln.dist", "#diff", "#weak", "#tv"}
	for _, prime := range []string{"", "'"} {
		if prime == "" {
			cols = append(cols, "#strong")
		} else {
			cols = append(cols, "#eff")
		}
		for _, c := range classify.Classes() {
			cols = append(cols, c.String()+prime)
		}
		cols = append(cols, "LB"+prime, "ML"+prime, "UB"+prime)
	}
	return strings.Join(cols, "\t")
}()

// WriteTableHeader prints TableHeader.
func WriteTableHeader(w io.Writer) error {
	_, err := fmt.Fprintln(w, TableHeader)
	return err
}

// WriteTableRow prints one row for one assembly file.
func WriteTableRow(w io.Writer, file string, r *engine.Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\t%d\t%d\t%d\t%d", file, r.Distance, r.Differences, r.Weak, r.Transversions)
	fmt.Fprintf(bw, "\t%d", r.Strong)
	writeCells(bw, r.StrongOnly, r.StrongRate)
	fmt.Fprintf(bw, "\t%d", r.Diagnostic())
	writeCells(bw, r.Combined, r.CombinedRate)
	fmt.Fprintln(bw)
	return bw.Flush()
}

func writeCells(w io.Writer, t classify.Tally, rate stats.Interval) {
	for _, c := range classify.Classes() {
		fmt.Fprintf(w, "\t%d", t[c])
	}
	if rate.Valid {
		fmt.Fprintf(w, "\t%.1f\t%.1f\t%.1f", rate.Lower, rate.Estimate, rate.Upper)
	} else {
		fmt.Fprint(w, "\tN/A\tN/A\tN/A")
	}
}
