// Package geom provides low-level 2D geometry primitives: an angle scalar, a
// point/vector type, and a size type, together with the numeric routines that
// higher-level graphics and layout code composes.
//
// # Design
//
// All types are immutable values and all operations are pure functions;
// methods return new values and never mutate their receivers. The package has
// no shared state and no I/O, so every function is safe to call concurrently
// without coordination.
//
// [Point] doubles as a displacement vector: a point is the vector from the
// origin to itself, and the vector operations (Add, Sub, Dot, Normalize, ...)
// treat it as such. [Size] is a width/height pair with componentwise
// arithmetic only.
//
// # Degenerate inputs
//
// The package never validates denominators. Dividing by zero, normalizing the
// zero vector, projecting onto the zero vector, or computing radians from an
// arc at radius zero all propagate the natural IEEE 754 result (±Inf or NaN)
// instead of returning an error. Callers that need strict behavior must
// validate inputs before calling. See each function's documentation for its
// preconditions.
//
// # Angles
//
// Angles are plain float64 values. Functions take and return radians unless
// the name or a parameter says otherwise; [ToDegrees] and [ToRadians] convert
// between the two units.
package geom
