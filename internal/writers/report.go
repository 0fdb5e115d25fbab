// internal/writers/report.go
package writers

import (
	"io"

	"ccheck-core/engine"
	"ccheck/internal/output"
	"ccheck/pkg/api"
)

func init() {
	RegisterReport(output.FormatText, func(w io.Writer) ReportWriter { return &textWriter{w: w} })
	RegisterReport(output.FormatTable, func(w io.Writer) ReportWriter { return &tableWriter{w: w} })
	RegisterReport(output.FormatJSON, func(w io.Writer) ReportWriter { return &jsonWriter{w: w} })
}

type textWriter struct{ w io.Writer }

func (t *textWriter) Write(file string, r *engine.Result) error { return output.WriteText(t.w, file, r) }
func (t *textWriter) Close() error                              { return nil }

// tableWriter prints the header once, before the first row.
type tableWriter struct {
	w      io.Writer
	header bool
}

func (t *tableWriter) Write(file string, r *engine.Result) error {
	if !t.header {
		if err := output.WriteTableHeader(t.w); err != nil {
			return err
		}
		t.header = true
	}
	return output.WriteTableRow(t.w, file, r)
}

func (t *tableWriter) Close() error {
	if t.header {
		return nil
	}
	t.header = true
	return output.WriteTableHeader(t.w)
}

// jsonWriter buffers every report and emits one array on Close.
type jsonWriter struct {
	w    io.Writer
	list []api.ReportV1
}

func (j *jsonWriter) Write(file string, r *engine.Result) error {
	j.list = append(j.list, output.ToAPIReport(file, r))
	return nil
}

func (j *jsonWriter) Close() error { return output.WriteJSON(j.w, j.list) }
