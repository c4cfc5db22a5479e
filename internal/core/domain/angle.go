package domain

import "math"

// NormalizeDegrees reduces an angle to the range [0, 360).
// Handles negative inputs: NormalizeDegrees(-10) == 350.
func NormalizeDegrees(d float64) float64 {
	return math.Mod(math.Mod(d, 360)+360, 360)
}

// AngularSeparation returns the smallest angle between two ecliptic
// longitudes, in the range [0, 180]. Symmetric in its arguments.
func AngularSeparation(a, b float64) float64 {
	diff := math.Abs(NormalizeDegrees(a) - NormalizeDegrees(b))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}
