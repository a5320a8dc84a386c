package geom

import (
	"fmt"
	"math"
)

// Point is a position in 2D space. It doubles as a displacement vector: every
// point is also the vector from the origin to it, and the vector operations
// treat it as such.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PtOnArc returns the point at the given angle (in radians) on the circle of
// the given radius centered on the origin.
func PtOnArc(angle, radius float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: cos * radius,
		Y: sin * radius,
	}
}

// Splat returns the point's x and y coordinates.
func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Add returns the componentwise sum of two points.
func (pt Point) Add(o Point) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub returns the componentwise difference pt−o. Viewed as vectors, the
// result points from o to pt.
func (pt Point) Sub(o Point) Point {
	return Point{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Mul scales both coordinates by f.
func (pt Point) Mul(f float64) Point {
	return Point{
		X: pt.X * f,
		Y: pt.Y * f,
	}
}

// Div divides both coordinates by f. The division is not guarded; f = 0
// propagates ±Inf or NaN.
func (pt Point) Div(f float64) Point {
	return Point{
		X: pt.X / f,
		Y: pt.Y / f,
	}
}

// Negate returns a new point with the signs of x and y flipped.
func (pt Point) Negate() Point {
	return Point{
		X: -pt.X,
		Y: -pt.Y,
	}
}

// Abs returns a new point with the absolute values of x and y.
func (pt Point) Abs() Point {
	return Point{
		X: math.Abs(pt.X),
		Y: math.Abs(pt.Y),
	}
}

// Round returns a new point with x and y rounded to the nearest integers.
func (pt Point) Round() Point {
	return Point{
		X: math.Round(pt.X),
		Y: math.Round(pt.Y),
	}
}

// Ceil returns a new point with x and y rounded up to the nearest integers.
func (pt Point) Ceil() Point {
	return Point{
		X: math.Ceil(pt.X),
		Y: math.Ceil(pt.Y),
	}
}

// Floor returns a new point with x and y rounded down to the nearest integers.
func (pt Point) Floor() Point {
	return Point{
		X: math.Floor(pt.X),
		Y: math.Floor(pt.Y),
	}
}

// Expand returns a new point with x and y rounded away from zero to the
// nearest integers.
func (pt Point) Expand() Point {
	return Point{
		X: expand(pt.X),
		Y: expand(pt.Y),
	}
}

// Trunc returns a new point with x and y rounded towards zero to the nearest
// integers.
func (pt Point) Trunc() Point {
	return Point{
		X: math.Trunc(pt.X),
		Y: math.Trunc(pt.Y),
	}
}

// Dot returns the dot product of pt and o viewed as vectors.
func (pt Point) Dot(o Point) float64 {
	return pt.X*o.X + pt.Y*o.Y
}

// Cross returns the cross product of pt and o viewed as vectors.
func (pt Point) Cross(o Point) float64 {
	return pt.X*o.Y - pt.Y*o.X
}

// Hypot returns the magnitude of pt viewed as a vector.
func (pt Point) Hypot() float64 {
	return math.Hypot(pt.X, pt.Y)
}

// Hypot2 returns the squared magnitude of pt viewed as a vector.
//
// This function is more efficient than squaring the result of [Point.Hypot].
func (pt Point) Hypot2() float64 {
	return pt.Dot(pt)
}

// Normalize returns a vector of magnitude 1.0 with the same angle as pt.
// This produces a NaN vector if the magnitude is 0.
func (pt Point) Normalize() Point {
	return pt.Mul(1.0 / pt.Hypot())
}

// Project returns the projection of pt onto o, i.e. the component of pt lying
// along the direction of o. The result is a NaN vector if o is the zero
// vector.
func (pt Point) Project(o Point) Point {
	return o.Mul(pt.Dot(o) / o.Dot(o))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	// pt + t * (o-pt)
	return pt.Add(o.Sub(pt).Mul(t))
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// AngleTo returns the angle in radians of the vector from pt to o, measured
// against the positive x axis. This is atan2(o.Y−pt.Y, o.X−pt.X), with
// results in (−π, π].
func (pt Point) AngleTo(o Point) float64 {
	return math.Atan2(o.Y-pt.Y, o.X-pt.X)
}

// Distant returns the point at the given distance from pt in the direction of
// the given angle, which is expressed in degrees.
func (pt Point) Distant(distance, degrees float64) Point {
	return pt.DistantRad(distance, ToRadians(degrees))
}

// DistantRad is like [Point.Distant] but takes the angle in radians.
func (pt Point) DistantRad(distance, radians float64) Point {
	return pt.Add(PtOnArc(radians, distance))
}

// FuzzyEqual reports whether both coordinates of pt and o are approximately
// equal per [FuzzyEqual] with the given relative error threshold.
func (pt Point) FuzzyEqual(o Point, epsilon float64) bool {
	return FuzzyEqual(pt.X, o.X, epsilon) && FuzzyEqual(pt.Y, o.Y, epsilon)
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
