package inertia

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rbd/matrix"
)

// PrincipalAxes is the result of Principal.
type PrincipalAxes struct {
	// Moments are the principal moments of inertia, I1 ≥ I2 ≥ I3.
	Moments matrix.Vec3
	// Axes is NCF: column k is principal axis k in N components. It is a
	// proper rotation matrix (det = +1).
	Axes matrix.Mat3
}

// Diag returns FI, the inertia matrix in the principal frame.
func (p PrincipalAxes) Diag() matrix.Mat3 {
	return matrix.Diag(p.Moments[0], p.Moments[1], p.Moments[2])
}

// FCN returns the rotation matrix from N to the principal frame F.
func (p PrincipalAxes) FCN() matrix.Mat3 {
	return p.Axes.T()
}

// Axis returns principal axis k (0, 1 or 2) in N components.
func (p PrincipalAxes) Axis(k int) matrix.Vec3 {
	return p.Axes.Col(k)
}

// Rotate expresses an inertia matrix given in frame B in frame N, where
// c = BCN: N_I = cᵀ · B_I · c.
func Rotate(i, c matrix.Mat3) matrix.Mat3 {
	return matrix.Mul(c.T(), i, c)
}

// Principal returns the principal moments and axes of the inertia matrix i.
//
// Implementation:
//   - Stage 1: require symmetry within eps (inertia matrices are symmetric).
//   - Stage 2: matrix.Decompose sorts the moments from large to small and
//     makes the axes right-handed.
//
// Errors: matrix.ErrNaNInf, matrix.ErrAsymmetry, matrix.ErrMatrixEigenFailed.
// Principal does not check physical plausibility; see Validate.
func Principal(i matrix.Mat3, opts ...matrix.Option) (PrincipalAxes, error) {
	o := matrix.Resolve(opts...)
	if o.ValidateNaNInf() {
		if err := matrix.ValidateFinite(i); err != nil {
			return PrincipalAxes{}, fmt.Errorf("Principal: %w", err)
		}
	}
	if err := matrix.ValidateSymmetric(i, o.Epsilon()); err != nil {
		return PrincipalAxes{}, fmt.Errorf("Principal: %w", err)
	}

	e, err := matrix.Decompose(i, opts...)
	if err != nil {
		return PrincipalAxes{}, fmt.Errorf("Principal: %w", err)
	}

	return PrincipalAxes{Moments: e.Values, Axes: e.Vectors}, nil
}

// Validate checks that i is a plausible inertia matrix: finite, symmetric,
// principal moments non-negative and satisfying the triangle inequality
// I1 ≤ I2 + I3. Tolerances scale with max(1, I1).
// A thin plate reaches the triangle bound exactly and is accepted.
//
// Errors: matrix.ErrNaNInf, matrix.ErrAsymmetry, ErrNotPhysical.
func Validate(i matrix.Mat3, opts ...matrix.Option) error {
	if err := matrix.ValidateFinite(i); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	p, err := Principal(i, opts...)
	if err != nil {
		return err
	}

	var (
		eps        = matrix.Resolve(opts...).Epsilon()
		i1, i2, i3 = p.Moments[0], p.Moments[1], p.Moments[2]
		slack      = eps * math.Max(1, math.Abs(i1))
	)
	if i3 < -slack {
		return fmt.Errorf("%w: negative principal moment %g", ErrNotPhysical, i3)
	}
	if i1 > i2+i3+slack {
		return fmt.Errorf("%w: %g > %g + %g violates the triangle inequality", ErrNotPhysical, i1, i2, i3)
	}

	return nil
}
