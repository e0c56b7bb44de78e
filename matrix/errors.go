// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm returns one of these sentinels, optionally wrapped with an
// operation tag via matrixErrorf; tests and callers match them with errors.Is.
// No function panics on user-triggered conditions. Option constructors panic
// on nonsensical parameters, which is a programmer error.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
//
// ERROR PRIORITY (enforced in tests):
// NaN/Inf -> symmetry -> numerical failure (singular, eigen, complex).

var (
	// ErrOutOfRange indicates that a row or column index is outside 0..2.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a foreign matrix (gonum) that is not 3×3
	// or a vector that is not of length 3.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a matrix is singular or too ill-conditioned
	// to invert reliably.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNotOrthonormal signals that the columns of a matrix are not an
	// orthonormal basis within the configured epsilon.
	ErrNotOrthonormal = errors.New("matrix: matrix is not orthonormal within eps")

	// ErrZeroVector is returned when a direction is requested from a vector
	// of zero length.
	ErrZeroVector = errors.New("matrix: zero-length vector")

	// ErrMatrixEigenFailed indicates that an eigen routine failed to converge
	// under the given tolerance/iterations.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrComplexEigen is returned by the real decomposition when the spectrum
	// contains complex eigenvalues; use DecomposeComplex for such matrices.
	ErrComplexEigen = errors.New("matrix: eigenvalues are not real")
)
