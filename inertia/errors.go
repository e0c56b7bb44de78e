package inertia

import "errors"

var (
	// ErrNotPhysical is returned for a symmetric matrix that cannot be the
	// inertia matrix of a rigid body: a negative principal moment, or a
	// principal moment larger than the sum of the other two.
	ErrNotPhysical = errors.New("inertia: not a physical inertia matrix")

	// ErrNegativeMass is returned for a non-finite mass, a negative mass, or
	// a zero mass where a solid body is built.
	ErrNegativeMass = errors.New("inertia: invalid mass")

	// ErrBadDimension is returned for a non-positive or non-finite size of a
	// standard solid.
	ErrBadDimension = errors.New("inertia: dimensions must be finite and positive")

	// ErrBadSteps is returned by Sweep for a non-positive step count.
	ErrBadSteps = errors.New("inertia: steps must be > 0")
)
