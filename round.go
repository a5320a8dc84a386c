package geom

import "math"

// expand rounds f away from zero.
func expand(f float64) float64 {
	return math.Copysign(math.Ceil(math.Abs(f)), f)
}
