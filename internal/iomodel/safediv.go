package iomodel

import "math"

// SafeDivide returns num/den, or 0 when the denominator is zero or the
// result is not finite. Every coefficient division in the model goes through
// this so the zero-fallback policy lives in one place.
func SafeDivide(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	v := num / den
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
