// SPDX-License-Identifier: MIT

// Package matrix: value types shared by every kernel in the package.
// Vec3 and Mat3 are arrays, not slices, so assignment copies and the zero
// value is a valid (zero) vector or matrix.
package matrix

// Dim is the fixed dimension of every vector and matrix in this package.
const Dim = 3

// Vec3 is a 3×1 column vector.
type Vec3 [Dim]float64

// Mat3 is a 3×3 matrix stored row-major: m[i][j] is row i, column j.
// Each row is a Vec3, so row arithmetic reuses the vector methods.
type Mat3 [Dim]Vec3

// Eigen holds a real eigen-decomposition.
//
// Values are sorted from large to small; column k of Vectors is the unit
// eigenvector belonging to Values[k]. Vectors is right-handed (det ≥ 0), so
// for a symmetric input it is a proper rotation matrix.
type Eigen struct {
	Values  Vec3 // eigenvalues, descending
	Vectors Mat3 // eigenvectors as columns, same order as Values
}

// ComplexEigen holds the eigen-decomposition of a general real matrix,
// whose eigenvalues may come in complex-conjugate pairs (e.g. rotations).
//
// Values are sorted by real part, then imaginary part, both descending.
// Vectors[i][k] is component i of the eigenvector belonging to Values[k].
type ComplexEigen struct {
	Values  [Dim]complex128
	Vectors [Dim][Dim]complex128
}

// Diag returns the eigenvalues as a diagonal matrix.
func (e Eigen) Diag() Mat3 {
	return Diag(e.Values[0], e.Values[1], e.Values[2])
}

// Col returns eigenvector k of a complex decomposition.
func (e ComplexEigen) Col(k int) [Dim]complex128 {
	return [Dim]complex128{e.Vectors[0][k], e.Vectors[1][k], e.Vectors[2][k]}
}
