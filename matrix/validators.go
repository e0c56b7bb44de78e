// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating finite/symmetry/orthonormality checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Symmetry check runs on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// ValidateFinite ensures every entry of m is finite.
// Returns ErrNaNInf (tagged with the offending position) otherwise.
// Complexity: O(9).
func ValidateFinite(m Mat3) error {
	var i, j int
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			if isNonFinite(m[i][j]) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateFiniteVec ensures every component of v is finite.
func ValidateFiniteVec(v Vec3) error {
	for i := 0; i < Dim; i++ {
		if isNonFinite(v[i]) {
			return validatorErrorf(fmt.Sprintf("ValidateFiniteVec(%d)", i), ErrNaNInf)
		}
	}

	return nil
}

// ValidateSymmetric checks |m[i][j] − m[j][i]| ≤ eps·MaxAbs(m) for all i < j.
//
// Inputs: m, eps ≥ 0 (tolerance relative to the largest entry).
// The zero matrix is symmetric.
// Errors: ErrAsymmetry.
// Complexity: O(9).
func ValidateSymmetric(m Mat3, eps float64) error {
	var (
		i, j  int
		bound = eps * MaxAbs(m)
	)
	for i = 0; i < Dim; i++ {
		for j = i + 1; j < Dim; j++ {
			if math.Abs(m[i][j]-m[j][i]) > bound {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateOrthonormal checks that mᵀ·m equals the identity within eps.
// It says nothing about handedness; see Det for that.
//
// Errors: ErrNotOrthonormal.
// Complexity: O(27).
func ValidateOrthonormal(m Mat3, eps float64) error {
	var (
		i, j   int
		g, exp float64
	)
	for i = 0; i < Dim; i++ {
		for j = i; j < Dim; j++ {
			g = m.Col(i).Dot(m.Col(j)) // Gram entry (mᵀm)[i][j]
			exp = 0
			if i == j {
				exp = 1
			}
			if math.Abs(g-exp) > eps {
				return validatorErrorf(fmt.Sprintf("ValidateOrthonormal(%d,%d)", i, j), ErrNotOrthonormal)
			}
		}
	}

	return nil
}

// MaxAbs returns the largest absolute entry of m, the scale that relative
// tolerances in this package refer to.
func MaxAbs(m Mat3) float64 {
	var (
		out  float64
		i, j int
	)
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			out = math.Max(out, math.Abs(m[i][j]))
		}
	}

	return out
}

// IsDiagonal reports whether every off-diagonal entry is within eps of zero.
func IsDiagonal(m Mat3, eps float64) bool {
	var i, j int
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			if i != j && math.Abs(m[i][j]) > eps {
				return false
			}
		}
	}

	return true
}
