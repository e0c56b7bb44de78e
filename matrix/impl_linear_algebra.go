// SPDX-License-Identifier: MIT
// Package matrix - dense linear-algebra kernels: inverse and eigen-decomposition.
//
// Purpose:
//   - Delegate the numerically delicate parts (LU with pivoting, symmetric and
//     general eigen solvers) to gonum's LAPACK ports.
//   - Apply the package's fixed post-processing on top: descending order,
//     unit eigenvector columns, right-handed eigenvector triad.
//
// Notes:
//   - All kernels validate through validators.go and wrap with matrixErrorf.
//   - Jacobi lives in impl_jacobi.go and is selected with WithEigenMethod.

package matrix

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// matrixErrorf wraps err with an operation tag, preserving the wrapped error
// via %w so errors.Is keeps matching the sentinel.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Inv returns A⁻¹.
// Implementation:
//   - Stage 1: reject non-finite input (unless disabled by options).
//   - Stage 2: invert with gonum (LU with partial pivoting).
//   - Stage 3: map gonum's condition error to ErrSingular.
//
// Errors:
//   - ErrNaNInf: non-finite entry.
//   - ErrSingular: exactly singular, or condition number above
//     mat.ConditionTolerance; the message carries the estimate.
//
// Complexity: O(1) (fixed 3×3), one small allocation for the gonum buffers.
func Inv(a Mat3, opts ...Option) (Mat3, error) {
	o := Resolve(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(a); err != nil {
			return Mat3{}, matrixErrorf(opInverse, err)
		}
	}

	var inv mat.Dense
	if err := inv.Inverse(a.ToDense()); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return Mat3{}, matrixErrorf(opInverse, fmt.Errorf("%w (condition number %g)", ErrSingular, float64(cond)))
		}

		return Mat3{}, matrixErrorf(opInverse, err)
	}

	return FromDense(&inv)
}

// Decompose returns the real eigen-decomposition of A.
// Implementation:
//   - Stage 1: reject non-finite input (unless disabled by options).
//   - Stage 2: symmetric A (within eps relative to its largest entry) goes
//     to the symmetric solver chosen by WithEigenMethod; other matrices go
//     to gonum's general solver and must have a real spectrum.
//   - Stage 3: sort descending, normalise columns, flip the third column if
//     the triad is left-handed.
//
// Errors:
//   - ErrNaNInf, ErrMatrixEigenFailed, ErrComplexEigen.
//   - ErrAsymmetry when Jacobi is requested for a non-symmetric matrix.
//
// Determinism:
//   - Ties keep the solver's output order (stable sort).
func Decompose(a Mat3, opts ...Option) (Eigen, error) {
	o := Resolve(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(a); err != nil {
			return Eigen{}, matrixErrorf(opEigen, err)
		}
	}

	var (
		vals Vec3
		vecs Mat3
		err  error
	)
	if symErr := ValidateSymmetric(a, o.eps); symErr == nil {
		switch o.method {
		case EigenJacobi:
			vals, vecs, err = jacobi(a, o.eps, o.maxIterations)
		default:
			vals, vecs, err = eigenSym(a)
		}
	} else {
		if o.method == EigenJacobi {
			return Eigen{}, matrixErrorf(opEigen, symErr)
		}
		vals, vecs, err = eigenGeneralReal(a, o.eps)
	}
	if err != nil {
		return Eigen{}, matrixErrorf(opEigen, err)
	}

	return sortEigen(vals, vecs), nil
}

// EigenValues returns the eigenvalues of A, from large to small, on the
// diagonal of a matrix.
func EigenValues(a Mat3, opts ...Option) (Mat3, error) {
	e, err := Decompose(a, opts...)
	if err != nil {
		return Mat3{}, err
	}

	return e.Diag(), nil
}

// EigenVectors returns the eigenvectors of A as columns, in the order of
// EigenValues, forming a right-handed triad.
func EigenVectors(a Mat3, opts ...Option) (Mat3, error) {
	e, err := Decompose(a, opts...)
	if err != nil {
		return Mat3{}, err
	}

	return e.Vectors, nil
}

// DecomposeComplex returns the eigen-decomposition of a general real matrix.
// Eigenvalues are sorted by real part, then imaginary part, both descending;
// eigenvector columns follow the same order. When the real part of the
// eigenvector determinant is negative the third column is negated.
//
// A rotation matrix has eigenvalues 1 and cos φ ± i·sin φ, so the principal
// rotation axis ends up in column 0 (unless φ = 0).
//
// Errors: ErrNaNInf, ErrMatrixEigenFailed.
func DecomposeComplex(a Mat3, opts ...Option) (ComplexEigen, error) {
	o := Resolve(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(a); err != nil {
			return ComplexEigen{}, matrixErrorf(opEigen, err)
		}
	}

	vals, vecs, err := eigenGeneral(a)
	if err != nil {
		return ComplexEigen{}, matrixErrorf(opEigen, err)
	}

	idx := []int{0, 1, 2}
	sort.SliceStable(idx, func(x, y int) bool {
		p, q := vals[idx[x]], vals[idx[y]]
		if real(p) != real(q) {
			return real(p) > real(q)
		}
		return imag(p) > imag(q)
	})

	var (
		out    ComplexEigen
		i, k   int
		source int
	)
	for k, source = range idx {
		out.Values[k] = vals[source]
		for i = 0; i < Dim; i++ {
			out.Vectors[i][k] = vecs[i][source]
		}
	}
	if real(complexDet(out.Vectors)) < 0 {
		for i = 0; i < Dim; i++ {
			out.Vectors[i][2] = -out.Vectors[i][2]
		}
	}

	return out, nil
}

// eigenSym runs gonum's symmetric solver on the upper triangle of a.
// Values come back ascending; sortEigen reorders them.
func eigenSym(a Mat3) (Vec3, Mat3, error) {
	sym := mat.NewSymDense(Dim, []float64{
		a[0][0], a[0][1], a[0][2],
		a[0][1], a[1][1], a[1][2],
		a[0][2], a[1][2], a[2][2],
	})

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return Vec3{}, Mat3{}, ErrMatrixEigenFailed
	}

	var (
		vals Vec3
		ev   mat.Dense
	)
	es.Values(vals[:])
	es.VectorsTo(&ev)
	vecs, err := FromDense(&ev)
	if err != nil {
		return Vec3{}, Mat3{}, err
	}

	return vals, vecs, nil
}

// eigenGeneral runs gonum's general (non-symmetric) solver.
func eigenGeneral(a Mat3) ([Dim]complex128, [Dim][Dim]complex128, error) {
	var (
		eig  mat.Eigen
		vals [Dim]complex128
		vecs [Dim][Dim]complex128
	)
	if ok := eig.Factorize(a.ToDense(), mat.EigenRight); !ok {
		return vals, vecs, ErrMatrixEigenFailed
	}
	eig.Values(vals[:])

	var ev mat.CDense
	eig.VectorsTo(&ev)
	var i, k int
	for i = 0; i < Dim; i++ {
		for k = 0; k < Dim; k++ {
			vecs[i][k] = ev.At(i, k)
		}
	}

	return vals, vecs, nil
}

// eigenGeneralReal runs the general solver and requires a real spectrum:
// every |imag(λ)| must be ≤ eps·MaxAbs(a). The eigenvectors of real eigenvalues of a
// real matrix are real, so only their real parts are kept.
func eigenGeneralReal(a Mat3, eps float64) (Vec3, Mat3, error) {
	cvals, cvecs, err := eigenGeneral(a)
	if err != nil {
		return Vec3{}, Mat3{}, err
	}

	var (
		vals  Vec3
		vecs  Mat3
		i, k  int
		bound = eps * MaxAbs(a)
	)
	for k = 0; k < Dim; k++ {
		if math.Abs(imag(cvals[k])) > bound {
			return Vec3{}, Mat3{}, fmt.Errorf("%w: λ%d = %v", ErrComplexEigen, k, cvals[k])
		}
		vals[k] = real(cvals[k])
		for i = 0; i < Dim; i++ {
			vecs[i][k] = real(cvecs[i][k])
		}
	}

	return vals, vecs, nil
}

// sortEigen orders eigenpairs by descending eigenvalue, normalises every
// column to unit length and negates the third column when det < 0, so the
// result is a right-handed triad.
func sortEigen(vals Vec3, vecs Mat3) Eigen {
	neg := []float64{-vals[0], -vals[1], -vals[2]}
	idx := make([]int, Dim)
	floats.ArgsortStable(neg, idx)

	var (
		out       Eigen
		col       Vec3
		n         float64
		i, k, src int
	)
	for k, src = range idx {
		out.Values[k] = vals[src]
		col = vecs.Col(src)
		if n = col.Norm(); n > 0 {
			col = col.Scale(1 / n)
		}
		for i = 0; i < Dim; i++ {
			out.Vectors[i][k] = col[i]
		}
	}
	if out.Vectors.Det() < 0 {
		for i = 0; i < Dim; i++ {
			out.Vectors[i][2] = -out.Vectors[i][2]
		}
	}

	return out
}

// complexDet returns the determinant of a complex 3×3 matrix.
func complexDet(m [Dim][Dim]complex128) complex128 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// RealPart returns the component-wise real part of a complex vector and the
// largest discarded imaginary magnitude, so callers can judge whether the
// vector was real to begin with.
func RealPart(c [Dim]complex128) (Vec3, float64) {
	var (
		v      Vec3
		maxIm  float64
		i      int
		absIm  float64
		phase  complex128
		maxAbs float64
	)
	// Eigenvectors are defined up to a complex phase; rotate so the largest
	// component is real before dropping imaginary parts.
	for i = 0; i < Dim; i++ {
		if a := cmplx.Abs(c[i]); a > maxAbs {
			maxAbs = a
			phase = c[i] / complex(a, 0)
		}
	}
	if maxAbs == 0 {
		return Vec3{}, 0
	}
	for i = 0; i < Dim; i++ {
		z := c[i] / phase
		v[i] = real(z)
		if absIm = math.Abs(imag(z)); absIm > maxIm {
			maxIm = absIm
		}
	}

	return v, maxIm
}
