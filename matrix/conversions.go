// SPDX-License-Identifier: MIT

// Package matrix - conversions to and from the gonum and mathgl types.
//
// Purpose:
//   - Hand Vec3/Mat3 to gonum (mat.Dense, mat.VecDense) for LAPACK-backed
//     kernels and formatting, and read the results back.
//   - Interoperate with mathgl's mgl64 (Vec3, column-major Mat3), which the
//     rotation package uses for quaternions.
//
// Notes:
//   - mgl64.Mat3 is column-major; conversions go through At(row, col) and
//     Mat3FromRows so storage order never leaks into this package.
package matrix

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// ToDense copies m into a new row-major 3×3 *mat.Dense.
func (m Mat3) ToDense() *mat.Dense {
	return mat.NewDense(Dim, Dim, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
}

// ToVecDense copies v into a new 3-element *mat.VecDense.
func (v Vec3) ToVecDense() *mat.VecDense {
	return mat.NewVecDense(Dim, []float64{v[0], v[1], v[2]})
}

// FromDense copies a 3×3 gonum matrix into a Mat3.
// Errors: ErrDimensionMismatch when d is not 3×3.
func FromDense(d mat.Matrix) (Mat3, error) {
	r, c := d.Dims()
	if r != Dim || c != Dim {
		return Mat3{}, matrixErrorf(opDense, fmt.Errorf("%w: got %dx%d", ErrDimensionMismatch, r, c))
	}

	var (
		m    Mat3
		i, j int
	)
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			m[i][j] = d.At(i, j)
		}
	}

	return m, nil
}

// FromVector copies a gonum vector of length 3 into a Vec3.
// Errors: ErrDimensionMismatch when v.Len() != 3.
func FromVector(v mat.Vector) (Vec3, error) {
	if v.Len() != Dim {
		return Vec3{}, matrixErrorf(opDense, fmt.Errorf("%w: got length %d", ErrDimensionMismatch, v.Len()))
	}

	return Vec3{v.AtVec(0), v.AtVec(1), v.AtVec(2)}, nil
}

// ToMgl converts m to mathgl's column-major representation.
func (m Mat3) ToMgl() mgl64.Mat3 {
	return mgl64.Mat3FromRows(m[0].ToMgl(), m[1].ToMgl(), m[2].ToMgl())
}

// FromMgl converts a mathgl matrix to a Mat3.
func FromMgl(g mgl64.Mat3) Mat3 {
	var (
		m    Mat3
		i, j int
	)
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			m[i][j] = g.At(i, j)
		}
	}

	return m
}

// ToMgl converts v to a mathgl vector.
func (v Vec3) ToMgl() mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// VecFromMgl converts a mathgl vector to a Vec3.
func VecFromMgl(g mgl64.Vec3) Vec3 {
	return Vec3{g[0], g[1], g[2]}
}

// String renders m with gonum's matrix formatter:
//
//	⎡1  2  3⎤
//	⎢4  5  6⎥
//	⎣7  8  9⎦
func (m Mat3) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.ToDense(), mat.Squeeze()))
}

// String renders v as a column.
func (v Vec3) String() string {
	return fmt.Sprintf("%v", mat.Formatted(v.ToVecDense(), mat.Squeeze()))
}
