// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"ccheck-core/engine"
)

// ReportWriter receives one result per analysed assembly file, in order,
// and finishes the stream on Close.
type ReportWriter interface {
	Write(file string, r *engine.Result) error
	Close() error
}

// Writer registry (format → constructor). Register in init() blocks from
// the format files.
var ReportWriters = map[string]func(w io.Writer) ReportWriter{}

// RegisterReport is idempotent, last wins.
func RegisterReport(format string, fn func(io.Writer) ReportWriter) { ReportWriters[format] = fn }

// NewReport dispatches on the format name.
func NewReport(format string, w io.Writer) (ReportWriter, error) {
	fn, ok := ReportWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w), nil
}

// Formats lists the registered format names.
func Formats() []string {
	out := make([]string, 0, len(ReportWriters))
	for f := range ReportWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
