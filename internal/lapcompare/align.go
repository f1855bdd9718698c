package lapcompare

import "math"

// DefaultGridPoints is the resolution of the shared distance grid. It
// balances chart smoothness against payload size.
const DefaultGridPoints = 1200

// Align builds the common distance grid for two laps' telemetry: an evenly
// spaced grid of `points` values (DefaultGridPoints when points <= 0)
// spanning the overlap of the two distance ranges, inclusive of both
// endpoints.
//
// When the ranges do not overlap (pit-affected laps, mismatched sectors) the
// grid degrades to a copy of A's raw distance values and B is later
// interpolated against that uneven axis. This is a deliberate fallback, not
// an error; Compare surfaces it via the NoOverlap quality flag.
func Align(a, b Telemetry, points int) []float64 {
	if points <= 0 {
		points = DefaultGridPoints
	}

	dMin := math.Max(a.MinDistance(), b.MinDistance())
	dMax := math.Min(a.MaxDistance(), b.MaxDistance())

	if dMax <= dMin {
		return a.Distances()
	}

	return linspace(dMin, dMax, points)
}

func linspace(min, max float64, n int) []float64 {
	if n == 1 {
		return []float64{min}
	}

	out := make([]float64, n)
	step := (max - min) / float64(n-1)

	for i := range out {
		out[i] = min + float64(i)*step
	}

	// guard against accumulated floating point error at the top end
	out[n-1] = max

	return out
}
