// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures (the course's worked example
//     frames) and tolerance-aware assertions for Vec3/Mat3.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rbd/matrix"
)

// tol is the default comparison tolerance for results of LAPACK kernels.
const tol = 1e-9

// bcn returns the rotation N→B of the worked example: successive rotations
// about x (π/3), z (π/4) and y (π/6), written out by hand so the matrix
// package tests do not depend on the rotation package.
func bcn() matrix.Mat3 {
	a, b, g := math.Pi/3, math.Pi/4, math.Pi/6
	gcn := matrix.New(
		1, 0, 0,
		0, math.Cos(a), math.Sin(a),
		0, -math.Sin(a), math.Cos(a),
	)
	hcg := matrix.New(
		math.Cos(b), math.Sin(b), 0,
		-math.Sin(b), math.Cos(b), 0,
		0, 0, 1,
	)
	bch := matrix.New(
		math.Cos(g), 0, -math.Sin(g),
		0, 1, 0,
		math.Sin(g), 0, math.Cos(g),
	)

	return matrix.Mul(bch, hcg, gcn)
}

// nic returns the inertia matrix diag(2,4,5) of frame B expressed in N.
func nic() matrix.Mat3 {
	c := bcn()
	return matrix.Mul(c.T(), matrix.Diag(2, 4, 5), c)
}

// RequireMatClose FAILS the test unless every entry of got is within eps of want.
func RequireMatClose(t *testing.T, want, got matrix.Mat3, eps float64, msgAndArgs ...interface{}) {
	t.Helper()
	for i := 0; i < matrix.Dim; i++ {
		for j := 0; j < matrix.Dim; j++ {
			require.InDelta(t, want[i][j], got[i][j], eps, msgAndArgs...)
		}
	}
}

// RequireVecClose FAILS the test unless every component of got is within eps of want.
func RequireVecClose(t *testing.T, want, got matrix.Vec3, eps float64, msgAndArgs ...interface{}) {
	t.Helper()
	for i := 0; i < matrix.Dim; i++ {
		require.InDelta(t, want[i], got[i], eps, msgAndArgs...)
	}
}

// RequireParallel FAILS the test unless unit vectors a and b are equal up to sign.
func RequireParallel(t *testing.T, a, b matrix.Vec3, eps float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.InDelta(t, 1.0, math.Abs(a.Dot(b)), eps, msgAndArgs...)
}

// RequireRightHanded FAILS the test unless v is orthonormal with det = +1.
func RequireRightHanded(t *testing.T, v matrix.Mat3, eps float64) {
	t.Helper()
	require.NoError(t, matrix.ValidateOrthonormal(v, eps))
	require.InDelta(t, 1.0, v.Det(), eps)
}
