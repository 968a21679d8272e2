// Package analytics turns raw AMC report counts into dashboard figures: the
// location coverage tree, its summary and the small count distributions.
//
// Everything here is pure computation over the caller's data. Nothing is
// cached and inputs are never modified, so the functions are safe to call
// concurrently on independent inputs.
package analytics

import "math"

// Round1 rounds x to one decimal place, halves away from zero
// (6.25 -> 6.3, -6.25 -> -6.3).
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Percent returns part/whole as a percentage rounded with Round1.
// A non-positive whole yields 0.
func Percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return Round1(float64(part) / float64(whole) * 100)
}
