// Package vector implements the mutable 2D/3D vector types used
// throughout the engine for positions, velocities and physics
// responses, plus observable variants that route every coordinate
// mutation through a user-supplied callback.
//
// Mutating methods operate in place and return the receiver for
// chaining. Operations that take another vector accept the Reader2d
// interface, so 2D and 3D vectors (observable or plain) mix freely.
// When a 3D operation receives a 2D-only argument the missing z
// component defaults to 0 for additive operations (add, sub, distance)
// and to 1 for multiplicative ones (scaleV, div, dot), so scaling by a
// 2D vector leaves z untouched. The asymmetry is deliberate and relied
// upon by callers.
//
// None of the arithmetic validates its input: dividing by zero or
// normalizing a zero-length vector propagates NaN/Inf per IEEE-754.
// The hot path stays branch-free; guarding is the caller's job.
package vector

// Reader2d is the read-only view of anything with x/y coordinates.
type Reader2d interface {
	X() float64
	Y() float64
}

// Reader3d is the read-only view of anything with x/y/z coordinates.
type Reader3d interface {
	Reader2d
	Z() float64
}

// zOr returns o's z component, or def when o carries no z axis.
func zOr(o Reader2d, def float64) float64 {
	if o3, ok := o.(Reader3d); ok {
		return o3.Z()
	}
	return def
}

// Point2d is a plain coordinate pair, used by the observable callback
// protocol to carry attempted and previous values.
type Point2d struct {
	X, Y float64
}

// Point3d is a plain coordinate triple, used by the observable callback
// protocol to carry attempted and previous values.
type Point3d struct {
	X, Y, Z float64
}
