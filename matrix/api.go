// SPDX-License-Identifier: MIT
// Package matrix - public function surface.
//
// Purpose:
//   - Offer the course helpers as plain functions (Transpose(A), Dot(a, b),
//     Cross(a, b), ...) next to the equivalent methods, so formulas can be
//     transcribed either way.
//   - Keep the function forms thin: each one delegates to the method of the
//     same name, which is the single implementation.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping.
const (
	opInverse = "Inverse"
	opEigen   = "Eigen"
	opUnit    = "Unit"
	opDense   = "FromDense"
)

// Transpose returns Aᵀ.
func Transpose(a Mat3) Mat3 { return a.T() }

// Tilde returns the skew-symmetric cross-product matrix of a.
func Tilde(a Vec3) Mat3 { return a.Tilde() }

// Dot returns the inner product aᵀb.
func Dot(a, b Vec3) float64 { return a.Dot(b) }

// Cross returns a × b = Tilde(a)·b.
func Cross(a, b Vec3) Vec3 { return a.Cross(b) }

// Norm returns ‖a‖ = sqrt(aᵀa).
func Norm(a Vec3) float64 { return a.Norm() }

// Unit returns the unit vector a/‖a‖.
// Errors: ErrZeroVector for the zero vector, ErrNaNInf for non-finite input.
func Unit(a Vec3) (Vec3, error) {
	u, err := a.Unit()
	if err != nil {
		return Vec3{}, matrixErrorf(opUnit, err)
	}

	return u, nil
}

// Outer returns the dyadic product a·bᵀ.
func Outer(a, b Vec3) Mat3 { return a.Outer(b) }

// MulVec returns A·v.
func MulVec(a Mat3, v Vec3) Vec3 { return a.MulVec(v) }

// Mul returns the chained product a·b·more[0]·more[1]···, evaluated left to
// right. Mul(BCH, HCG, GCN) composes three successive rotations.
func Mul(a, b Mat3, more ...Mat3) Mat3 {
	out := a.Mul(b)
	for _, m := range more {
		out = out.Mul(m)
	}

	return out
}

// AllClose reports whether every pair of entries agrees within eps, either
// absolutely or relative to their magnitude (floats.EqualApprox).
func AllClose(a, b Mat3, eps float64) bool {
	for i := 0; i < Dim; i++ {
		if !floats.EqualApprox(a[i][:], b[i][:], eps) {
			return false
		}
	}

	return true
}

// AllCloseVec is AllClose for vectors.
func AllCloseVec(a, b Vec3, eps float64) bool {
	return floats.EqualApprox(a[:], b[:], eps)
}

// Angle returns the angle between a and b in [0, π].
// Errors: ErrZeroVector when either vector has zero length.
func Angle(a, b Vec3) (float64, error) {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0, matrixErrorf("Angle", ErrZeroVector)
	}
	// atan2 of |a×b| and a·b stays accurate near 0 and π, unlike acos.
	return math.Atan2(a.Cross(b).Norm(), a.Dot(b)), nil
}
