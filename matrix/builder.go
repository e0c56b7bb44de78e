// SPDX-License-Identifier: MIT

// Package matrix: builders. Arguments are listed the way the entries are
// written on paper (row by row), so New(1,2,3, 4,5,6, 7,8,9) reads like
//
//	⎡1 2 3⎤
//	⎢4 5 6⎥
//	⎣7 8 9⎦
package matrix

// Vector returns the 3×1 column vector (a1, a2, a3).
func Vector(a1, a2, a3 float64) Vec3 {
	return Vec3{a1, a2, a3}
}

// New returns the 3×3 matrix with the given entries, row by row.
func New(a11, a12, a13, a21, a22, a23, a31, a32, a33 float64) Mat3 {
	return Mat3{
		{a11, a12, a13},
		{a21, a22, a23},
		{a31, a32, a33},
	}
}

// Diag returns the diagonal matrix diag(a11, a22, a33).
func Diag(a11, a22, a33 float64) Mat3 {
	return Mat3{
		{a11, 0, 0},
		{0, a22, 0},
		{0, 0, a33},
	}
}

// Identity returns the 3×3 unit matrix E.
func Identity() Mat3 {
	return Diag(1, 1, 1)
}

// FromRows stacks three vectors as the rows of a matrix.
func FromRows(r0, r1, r2 Vec3) Mat3 {
	return Mat3{r0, r1, r2}
}

// FromColumns places three vectors side by side as columns.
// A frame's unit vectors expressed in N, used as columns, give the rotation
// matrix from that frame to N.
func FromColumns(c0, c1, c2 Vec3) Mat3 {
	return FromRows(c0, c1, c2).T()
}
