package rotation

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/rbd/matrix"
)

// Validate checks that c is a proper rotation matrix: finite, orthonormal
// within eps and det(c) = +1 within eps.
// Errors: ErrNotRotation, wrapping the matrix package cause when there is one.
func Validate(c matrix.Mat3, opts ...matrix.Option) error {
	o := matrix.Resolve(opts...)
	if err := matrix.ValidateFinite(c); err != nil {
		return fmt.Errorf("%w: %w", ErrNotRotation, err)
	}
	if err := matrix.ValidateOrthonormal(c, o.Epsilon()); err != nil {
		return fmt.Errorf("%w: %w", ErrNotRotation, err)
	}
	if d := c.Det(); math.Abs(d-1) > o.Epsilon() {
		return fmt.Errorf("%w: det = %g", ErrNotRotation, d)
	}

	return nil
}

// AxisAngle returns the rotation matrix of a rotation by angle radians about
// the principal axis e (any non-zero length; it is normalised):
//
//	C = cos φ·E + (1 − cos φ)·e·eᵀ − sin φ·ẽ
//
// AxisAngle(X.Unit(), θ) equals AboutX(θ), and likewise for Y and Z.
// Errors: matrix.ErrZeroVector.
func AxisAngle(e matrix.Vec3, angle float64) (matrix.Mat3, error) {
	u, err := matrix.Unit(e)
	if err != nil {
		return matrix.Mat3{}, fmt.Errorf("AxisAngle: %w", err)
	}
	s, c := math.Sincos(angle)

	return matrix.Identity().Scale(c).
		Add(u.Outer(u).Scale(1 - c)).
		Sub(u.Tilde().Scale(s)), nil
}

// PrincipalAxis returns the principal rotation axis e and angle φ ∈ [0, π]
// of the rotation matrix c, so that AxisAngle(e, φ) reproduces c.
//
// Implementation:
//   - Stage 1: Validate c.
//   - Stage 2: the axis is the eigenvector of the eigenvalue closest to 1
//     (matrix.DecomposeComplex); it has the same components in both triads.
//   - Stage 3: cos φ = (tr c − 1)/2 and sin φ·e = ½·(c₂₃ − c₃₂, c₃₁ − c₁₃,
//     c₁₂ − c₂₁); e is flipped if needed so sin φ ≥ 0.
//
// For the identity (φ = 0) any axis is principal; the x axis is returned.
// Errors: ErrNotRotation, matrix.ErrMatrixEigenFailed.
func PrincipalAxis(c matrix.Mat3, opts ...matrix.Option) (matrix.Vec3, float64, error) {
	// Stage 1: Validate input
	if err := Validate(c, opts...); err != nil {
		return matrix.Vec3{}, 0, err
	}
	eps := matrix.Resolve(opts...).Epsilon()

	// Stage 2: eigenvector belonging to λ = 1
	e, err := matrix.DecomposeComplex(c, opts...)
	if err != nil {
		return matrix.Vec3{}, 0, fmt.Errorf("PrincipalAxis: %w", err)
	}
	var (
		best = 0
		dist = math.Inf(1)
	)
	for k, lambda := range e.Values {
		if d := cmplx.Abs(lambda - 1); d < dist {
			best, dist = k, d
		}
	}
	raw, _ := matrix.RealPart(e.Col(best))
	axis, err := raw.Unit()
	if err != nil {
		return matrix.Vec3{}, 0, fmt.Errorf("PrincipalAxis: %w", err)
	}

	// Stage 3: angle and orientation of the axis
	cosPhi := math.Max(-1, math.Min(1, (c.Trace()-1)/2))
	skew := matrix.Vector(
		(c[1][2]-c[2][1])/2,
		(c[2][0]-c[0][2])/2,
		(c[0][1]-c[1][0])/2,
	)
	sinPhi := axis.Dot(skew)
	if sinPhi < 0 {
		axis, sinPhi = axis.Scale(-1), -sinPhi
	}
	phi := math.Atan2(sinPhi, cosPhi)
	if phi <= eps {
		return X.Unit(), 0, nil
	}

	return axis, phi, nil
}

// Relative returns the rotation matrix from triad A to triad B given the
// rotations of both from a common triad N: BCA = BCN · ACNᵀ.
func Relative(acn, bcn matrix.Mat3) matrix.Mat3 {
	return bcn.Mul(acn.T())
}
