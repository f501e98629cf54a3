package recommendation

import "math"

// round2 rounds to 2 decimal places. Every score function rounds at
// its boundary so repeated calls with identical inputs are
// byte-identical, which callers rely on for reproducibility.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// angularDiff returns the minimum circular difference between two
// compass directions, in [0, 180].
func angularDiff(a, b float64) float64 {
	diff := math.Mod(math.Abs(a-b), 360)
	return math.Min(diff, 360-diff)
}
