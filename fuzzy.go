package geom

import "math"

// DefaultEpsilon is the relative error threshold to use with [FuzzyEqual] when
// the caller has no tighter requirement.
const DefaultEpsilon = 0.01

// fuzzyFloor is the absolute difference below which operands are treated as
// near zero and compared with the strict near-zero rule instead of the
// relative one.
const fuzzyFloor = 1e-13

// FuzzyEqual reports whether a and b are approximately equal with relative
// error threshold epsilon.
//
// Exact equality always passes. If either operand is zero, or the operands are
// within 1e-13 of each other, the difference is compared against
// epsilon · 1e-13 instead; values near zero therefore have to be very nearly
// exact to compare equal. Otherwise |a−b| / (|a|+|b|) is compared against
// epsilon.
func FuzzyEqual(a, b, epsilon float64) bool {
	if a == b {
		return true
	}
	d := math.Abs(a - b)
	if a == 0 || b == 0 || d < fuzzyFloor {
		return d < epsilon*fuzzyFloor
	}
	return d/(math.Abs(a)+math.Abs(b)) < epsilon
}
