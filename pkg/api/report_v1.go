// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON schema for one analysed assembly.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	File      string `json:"file"`
	Reference string `json:"reference"`
	Assembly  string `json:"assembly"`
	Distance  int    `json:"distance"`

	SpanFrom *int `json:"span_from,omitempty"` // 0-based, inclusive
	SpanTo   *int `json:"span_to,omitempty"`   // 0-based, exclusive

	Differences   int `json:"differences"`
	Diagnostic    int `json:"diagnostic"`
	Strong        int `json:"strong"`
	Effective     int `json:"effective"`
	Transversions int `json:"transversions"`

	StrongOnly TallyV1 `json:"strong_only"`
	Combined   TallyV1 `json:"combined"`

	Positions []PositionV1 `json:"positions,omitempty"`
	Fragments []FragmentV1 `json:"fragments,omitempty"`
	Orphans   []string     `json:"orphans,omitempty"`
}

// TallyV1 counts fragments per class, keyed by class label, plus the
// contamination rate estimate.
type TallyV1 struct {
	Total  int            `json:"total"`
	Counts map[string]int `json:"counts"`
	Rate   *RateV1        `json:"rate,omitempty"` // absent without clean or contaminant fragments
}

// RateV1 is a contamination rate in percent with its Wilson interval.
type RateV1 struct {
	Lower    float64 `json:"lower"`
	Estimate float64 `json:"estimate"`
	Upper    float64 `json:"upper"`
}

// PositionV1 is a diagnostic position that survived pruning.
type PositionV1 struct {
	Coord       int    `json:"coord"`
	Strength    string `json:"strength"` // "strong" | "effective"
	Consensus   string `json:"consensus"`
	Assembly    string `json:"assembly"`
	Contaminant string `json:"contaminant,omitempty"`
}

// FragmentV1 is the verdict on one fragment.
type FragmentV1 struct {
	ID        string `json:"id"`
	Role      string `json:"role"` // "whole" | "back" | "front"
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Positions int    `json:"positions"`
	Strong    string `json:"strong"`
	Combined  string `json:"combined"`
	Votes     int    `json:"votes"`
	Counted   bool   `json:"counted"`
}
