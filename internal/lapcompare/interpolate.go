package lapcompare

import "sort"

// Interpolate resamples the series (xs, ys) at each grid point using linear
// interpolation. Grid points outside [xs[0], xs[len(xs)-1]] clamp to the
// boundary value; there is no extrapolation. xs must be non-decreasing,
// duplicate values are tolerated. xs and ys must be the same, non-zero
// length.
func Interpolate(grid, xs, ys []float64) []float64 {
	out := make([]float64, len(grid))

	for i, x := range grid {
		out[i] = interpolateAt(x, xs, ys)
	}

	return out
}

func interpolateAt(x float64, xs, ys []float64) float64 {
	n := len(xs)

	if x <= xs[0] {
		return ys[0]
	}

	if x >= xs[n-1] {
		return ys[n-1]
	}

	// first index with xs[j] >= x. j >= 1 because x > xs[0].
	j := sort.SearchFloat64s(xs, x)

	if xs[j] == x {
		return ys[j]
	}

	x0, x1 := xs[j-1], xs[j]

	if x1 == x0 {
		return ys[j]
	}

	return ys[j-1] + (x-x0)/(x1-x0)*(ys[j]-ys[j-1])
}
