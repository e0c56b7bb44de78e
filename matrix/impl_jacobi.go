// SPDX-License-Identifier: MIT
// Package matrix - Jacobi eigenvalue kernel for symmetric 3×3 matrices.

package matrix

import "math"

// jacobi performs classic Jacobi eigenvalue decomposition on a symmetric
// matrix a. It returns the (unsorted) eigenvalues and the accumulated
// rotations Q whose columns are the eigenvectors.
//
// Blueprint:
//
//	Stage 1 (Prepare): A = a (working copy), Q = E.
//	Stage 2 (Execute): repeatedly annihilate the largest |A[p][q]|, p < q,
//	                   with a plane rotation; accumulate it into Q.
//	Stage 3 (Finalize): eigenvalues are the diagonal of A.
//
// Convergence: stop when the largest off-diagonal magnitude is ≤ tol·‖a‖_F,
// so the test is relative and holds for inertias of any unit scale. The zero
// matrix is returned as is. Each rotation counts against maxIter.
//
// Errors: ErrMatrixEigenFailed when maxIter rotations are not enough.
// Complexity: O(27) per rotation; a 3×3 input typically converges in < 15.
func jacobi(a Mat3, tol float64, maxIter int) (Vec3, Mat3, error) {
	// Stage 1: working copy and identity accumulator
	var (
		A     = a.Sym() // working copy; exact symmetry from the start
		Q     = Identity()
		scale = frobenius(a)
	)
	if scale == 0 {
		return A.Diagonal(), Q, nil
	}

	// Stage 2: rotations
	var (
		iter               int
		p, q, i, j, r      int
		maxOff, off        float64
		app, aqq, apq      float64
		theta, t, c, s     float64
		arp, arq, vrp, vrq float64
	)
	for iter = 0; iter <= maxIter; iter++ {
		// find largest |A[p][q]|
		maxOff, p, q = 0, 0, 1
		for i = 0; i < Dim; i++ {
			for j = i + 1; j < Dim; j++ {
				if off = math.Abs(A[i][j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff <= tol*scale {
			// Stage 3: diagonal holds the eigenvalues
			return A.Diagonal(), Q, nil
		}
		if iter == maxIter {
			break
		}

		// rotation angle: tan φ = t, chosen with |φ| ≤ π/4 for stability
		app, aqq, apq = A[p][p], A[q][q], A[p][q]
		theta = (aqq - app) / (2 * apq)
		t = 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
		if theta < 0 {
			t = -t
		}
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		// apply rotation to A (rows/cols p and q)
		for r = 0; r < Dim; r++ {
			if r == p || r == q {
				continue
			}
			arp, arq = A[r][p], A[r][q]
			A[r][p] = c*arp - s*arq
			A[p][r] = A[r][p]
			A[r][q] = s*arp + c*arq
			A[q][r] = A[r][q]
		}
		A[p][p] = app - t*apq
		A[q][q] = aqq + t*apq
		A[p][q], A[q][p] = 0, 0

		// accumulate into Q
		for r = 0; r < Dim; r++ {
			vrp, vrq = Q[r][p], Q[r][q]
			Q[r][p] = c*vrp - s*vrq
			Q[r][q] = s*vrp + c*vrq
		}
	}

	return Vec3{}, Mat3{}, ErrMatrixEigenFailed
}

// frobenius returns the Frobenius norm of m, combining the row norms with
// math.Hypot so no intermediate square overflows.
func frobenius(m Mat3) float64 {
	var f float64
	for i := 0; i < Dim; i++ {
		f = math.Hypot(f, m[i].Norm())
	}

	return f
}
