package inertia

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rbd/matrix"
)

// checkMass accepts a finite, positive mass (standard solids).
func checkMass(m float64) error {
	if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
		return fmt.Errorf("%w: %g", ErrNegativeMass, m)
	}

	return nil
}

// checkShiftMass also accepts m = 0: shifting a massless point adds nothing.
func checkShiftMass(m float64) error {
	if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeMass, m)
	}

	return nil
}

func checkDims(dims ...float64) error {
	for _, d := range dims {
		if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
			return fmt.Errorf("%w: %g", ErrBadDimension, d)
		}
	}

	return nil
}

// ParallelAxis shifts the inertia matrix ic about the centre of mass to a
// reference point offset by r from it (the sign of r does not matter):
//
//	I = ic + m·(rᵀr·E − r·rᵀ)
//
// m = 0 is accepted and returns ic unchanged.
// Errors: ErrNegativeMass, matrix.ErrNaNInf for a non-finite r.
func ParallelAxis(ic matrix.Mat3, m float64, r matrix.Vec3) (matrix.Mat3, error) {
	if err := checkShiftMass(m); err != nil {
		return matrix.Mat3{}, err
	}
	if err := matrix.ValidateFiniteVec(r); err != nil {
		return matrix.Mat3{}, fmt.Errorf("ParallelAxis: %w", err)
	}
	shift := matrix.Identity().Scale(r.Dot(r)).Sub(r.Outer(r))

	return ic.Add(shift.Scale(m)), nil
}

// PointMass returns the inertia matrix of a particle of mass m at r.
func PointMass(m float64, r matrix.Vec3) (matrix.Mat3, error) {
	return ParallelAxis(matrix.Mat3{}, m, r)
}

// Cuboid returns the central inertia matrix of a solid box with edges a, b
// and c along x, y and z.
func Cuboid(m, a, b, c float64) (matrix.Mat3, error) {
	if err := checkMass(m); err != nil {
		return matrix.Mat3{}, err
	}
	if err := checkDims(a, b, c); err != nil {
		return matrix.Mat3{}, err
	}
	k := m / 12

	return matrix.Diag(k*(b*b+c*c), k*(a*a+c*c), k*(a*a+b*b)), nil
}

// SolidCylinder returns the central inertia matrix of a solid cylinder of
// radius r and height h whose symmetry axis is z.
func SolidCylinder(m, r, h float64) (matrix.Mat3, error) {
	if err := checkMass(m); err != nil {
		return matrix.Mat3{}, err
	}
	if err := checkDims(r, h); err != nil {
		return matrix.Mat3{}, err
	}
	side := m * (3*r*r + h*h) / 12

	return matrix.Diag(side, side, m*r*r/2), nil
}

// SolidSphere returns the central inertia matrix of a solid sphere.
func SolidSphere(m, r float64) (matrix.Mat3, error) {
	if err := checkMass(m); err != nil {
		return matrix.Mat3{}, err
	}
	if err := checkDims(r); err != nil {
		return matrix.Mat3{}, err
	}
	k := 2 * m * r * r / 5

	return matrix.Diag(k, k, k), nil
}
