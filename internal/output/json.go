// internal/output/json.go
package output

import (
	"io"

	"ccheck-core/classify"
	"ccheck-core/diag"
	"ccheck-core/engine"
	"ccheck-core/stats"
	"ccheck/internal/jsonutil"
	"ccheck/pkg/api"
)

// ToAPIReport converts a result to the stable wire schema (v1).
func ToAPIReport(file string, r *engine.Result) api.ReportV1 {
	v := api.ReportV1{
		File:          file,
		Reference:     r.Reference,
		Assembly:      r.Assembly,
		Distance:      r.Distance,
		Differences:   r.Differences,
		Diagnostic:    r.Diagnostic(),
		Strong:        r.Strong,
		Effective:     r.Effective,
		Transversions: r.Transversions,
		StrongOnly:    toAPITally(r.StrongOnly, r.StrongRate),
		Combined:      toAPITally(r.Combined, r.CombinedRate),
		Orphans:       append([]string(nil), r.Orphans...),
	}
	if r.Spanned() {
		from, to := r.SpanFrom, spanEnd(r)
		v.SpanFrom, v.SpanTo = &from, &to
	}
	for _, p := range r.Positions {
		pv := api.PositionV1{
			Coord:     p.Coord,
			Strength:  p.Strength.String(),
			Consensus: string(p.Consensus),
			Assembly:  string(p.Assembly),
		}
		if p.Strength == diag.Effective {
			pv.Contaminant = string(p.Contaminant)
		}
		v.Positions = append(v.Positions, pv)
	}
	for _, f := range r.Fragments {
		v.Fragments = append(v.Fragments, api.FragmentV1{
			ID:        f.ID,
			Role:      f.Role.String(),
			Start:     f.Start,
			End:       f.End,
			Positions: f.Positions,
			Strong:    f.Verdict.Strong.Class.String(),
			Combined:  f.Verdict.Combined.Class.String(),
			Votes:     f.Verdict.Combined.Votes,
			Counted:   f.Counted,
		})
	}
	return v
}

func toAPITally(t classify.Tally, rate stats.Interval) api.TallyV1 {
	v := api.TallyV1{Total: t.Total(), Counts: make(map[string]int, classify.NumClasses)}
	for _, c := range classify.Classes() {
		v.Counts[c.String()] = t[c]
	}
	if rate.Valid {
		v.Rate = &api.RateV1{Lower: rate.Lower, Estimate: rate.Estimate, Upper: rate.Upper}
	}
	return v
}

// WriteJSON emits the reports as one pretty-printed JSON array.
func WriteJSON(w io.Writer, list []api.ReportV1) error {
	if list == nil {
		list = []api.ReportV1{}
	}
	return jsonutil.EncodePretty(w, list)
}
