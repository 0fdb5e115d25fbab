// core/stats/wilson.go
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Interval is a proportion with its confidence bounds, all in percent.
// Valid is false when there were no observations.
type Interval struct {
	Lower    float64
	Estimate float64
	Upper    float64
	Valid    bool
}

// Wilson returns the Wilson score interval for k successes in n trials at
// the given two-sided confidence level (e.g. 0.95). The bounds are clamped
// to [0, 100] and never exclude the point estimate, so k == 0 gives a
// lower bound of exactly 0 and k == n an upper bound of exactly 100.
func Wilson(k, n int, confidence float64) Interval {
	if n <= 0 {
		return Interval{}
	}
	z := distuv.UnitNormal.Quantile(1 - (1-confidence)/2)
	nf := float64(n)
	p := float64(k) / nf
	z2 := z * z

	denom := 1 + z2/nf
	centre := (p + z2/(2*nf)) / denom
	half := z * math.Sqrt(p*(1-p)/nf+z2/(4*nf*nf)) / denom

	lower := math.Max(0, centre-half)
	upper := math.Min(1, centre+half)
	return Interval{
		Lower:    100 * math.Min(lower, p),
		Estimate: 100 * p,
		Upper:    100 * math.Max(upper, p),
		Valid:    true,
	}
}
