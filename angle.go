package geom

import "math"

// ToDegrees converts an angle in radians to degrees.
func ToDegrees(radians float64) float64 {
	return radians * (180 / math.Pi)
}

// ToRadians converts an angle in degrees to radians.
func ToRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// ArcLength returns the length of the circular arc swept from startAngle to
// endAngle, both in degrees, at the given radius.
//
// The result carries the sign of startAngle − endAngle: sweeping forward
// (start < end) yields a negative length. Only the circumference factor is
// taken absolutely, so callers can recover the sweep direction from the sign.
func ArcLength(startAngle, endAngle, radius float64) float64 {
	return math.Abs(2*math.Pi*radius) * ((startAngle - endAngle) / 360)
}

// ArcLengthRad is like [ArcLength] but takes the two angles in radians.
//
// It converts both angles to degrees and delegates to ArcLength so that the
// two functions return bit-identical results for equivalent inputs.
func ArcLengthRad(startAngle, endAngle, radius float64) float64 {
	return ArcLength(ToDegrees(startAngle), ToDegrees(endAngle), radius)
}

// RadiansFromArcLength returns the angle in radians subtended by an arc of the
// given length at the given radius. The result is unspecified for radius 0;
// the division is not guarded and propagates ±Inf or NaN.
func RadiansFromArcLength(length, radius float64) float64 {
	return length / radius
}
