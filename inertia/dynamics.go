package inertia

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rbd/matrix"
	"github.com/katalvlaran/rbd/rotation"
)

// AngularMomentum returns h = I·ω. Both must be expressed in the same frame.
func AngularMomentum(i matrix.Mat3, omega matrix.Vec3) matrix.Vec3 {
	return i.MulVec(omega)
}

// KineticEnergy returns the rotational kinetic energy ½·ωᵀ·I·ω.
func KineticEnergy(i matrix.Mat3, omega matrix.Vec3) float64 {
	return omega.Dot(i.MulVec(omega)) / 2
}

// Sample is one point of a Sweep.
type Sample struct {
	Angle   float64     // rotation of the frame, radians
	Inertia matrix.Mat3 // inertia matrix in the rotated frame
}

// Sweep turns a frame F away from the body frame B about one axis in steps
// equal increments over a full revolution and returns the inertia matrix in
// F at every step (steps+1 samples, first and last equal to i):
//
//	F_I(θ) = FCB · B_I · FCBᵀ,   FCB = rotation.About(axis, θ)
//
// The diagonal entries reach the principal moments where the off-diagonal
// products of inertia vanish.
// Errors: ErrBadSteps.
func Sweep(i matrix.Mat3, axis rotation.Axis, steps int) ([]Sample, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSteps, steps)
	}

	out := make([]Sample, steps+1)
	for k := range out {
		theta := 2 * math.Pi * float64(k) / float64(steps)
		out[k] = Sample{
			Angle:   theta,
			Inertia: Rotate(i, rotation.About(axis, theta).T()),
		}
	}

	return out, nil
}
