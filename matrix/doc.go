// Package matrix offers the small, fixed-size linear algebra used in
// rigid-body dynamics: 3×1 column vectors and 3×3 matrices.
//
// The matrix package provides:
//
//   - Builders (Vector, New, Diag, Identity, FromRows, FromColumns) for
//     writing vectors and matrices the way they appear on paper.
//   - Vector algebra: Dot, Cross, Norm, Unit and the Tilde (skew-symmetric
//     cross-product) matrix, so that Tilde(a)·b == Cross(a, b).
//   - Matrix algebra: Transpose, Mul (chained products), MulVec, Inv, Det.
//   - Eigen-decomposition with a fixed post-processing convention:
//     eigenvalues sorted from large to small, eigenvectors as unit columns
//     in the same order, and the third column flipped when needed so the
//     columns form a right-handed triad (a proper rotation matrix).
//   - Conversions to gonum (*mat.Dense) and mathgl (mgl64) types.
//
// Vec3 and Mat3 are plain value types: every operation returns a fresh
// value and never mutates its operands. Errors are package-level sentinels
// wrapped with an operation tag; match them with errors.Is.
//
// See the examples in this package, and the rotation and inertia packages,
// for usage patterns.
package matrix
