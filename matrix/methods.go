// SPDX-License-Identifier: MIT

// Package matrix - methods on Vec3 and Mat3.
//
// Purpose:
//   - Keep the arithmetic on the value types so expressions chain naturally:
//     a.Cross(b).Scale(2), C.T().Mul(I).Mul(C).
//   - Guarantee safety at the indexed surface: At/Set return ErrOutOfRange
//     instead of panicking.
//
// Every method takes its receiver by value (Set excepted) and returns a new
// value; operands are never mutated.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// indexErrorf attaches the accessor name and coordinates to err.
func indexErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Mat3.%s(%d,%d): %w", method, i, j, err)
}

// inRange reports whether k is a valid row/column index.
func inRange(k int) bool { return k >= 0 && k < Dim }

// ---------- Vec3 ----------

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v − w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns s·v.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{s * v[0], s * v[1], s * v[2]}
}

// Dot returns the inner product vᵀw.
func (v Vec3) Dot(w Vec3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns v × w, computed as Tilde(v)·w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return v.Tilde().MulVec(w)
}

// Norm returns the Euclidean length sqrt(vᵀv).
// The components are scaled before squaring, so finite vectors near the
// float64 limits do not overflow.
func (v Vec3) Norm() float64 {
	return floats.Norm(v[:], 2)
}

// Unit returns v/‖v‖, or ErrZeroVector when v has zero length.
// Non-finite components yield ErrNaNInf.
func (v Vec3) Unit() (Vec3, error) {
	if err := ValidateFiniteVec(v); err != nil {
		return Vec3{}, ErrNaNInf
	}
	n := v.Norm()
	if n == 0 {
		return Vec3{}, ErrZeroVector
	}

	return v.Scale(1 / n), nil
}

// Tilde returns the skew-symmetric cross-product matrix
//
//	⎡  0  −a3  a2⎤
//	⎢ a3    0 −a1⎥
//	⎣−a2   a1   0⎦
//
// so that v.Tilde().MulVec(w) == v × w.
func (v Vec3) Tilde() Mat3 {
	return New(
		0, -v[2], v[1],
		v[2], 0, -v[0],
		-v[1], v[0], 0,
	)
}

// Outer returns the dyadic product v·wᵀ.
func (v Vec3) Outer(w Vec3) Mat3 {
	var (
		out  Mat3
		i, j int
	)
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			out[i][j] = v[i] * w[j]
		}
	}

	return out
}

// IsZero reports whether all components are exactly zero.
func (v Vec3) IsZero() bool {
	return v == Vec3{}
}

// ---------- Mat3 ----------

// At returns m[i][j] or ErrOutOfRange.
func (m Mat3) At(i, j int) (float64, error) {
	if !inRange(i) || !inRange(j) {
		return 0, indexErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m[i][j], nil
}

// Set assigns m[i][j] = v.
// Errors: ErrOutOfRange for bad indices, ErrNaNInf for non-finite v.
func (m *Mat3) Set(i, j int, v float64) error {
	if !inRange(i) || !inRange(j) {
		return indexErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if isNonFinite(v) {
		return indexErrorf(ctxSet, i, j, ErrNaNInf)
	}
	m[i][j] = v

	return nil
}

// Row returns row i as a vector. Panics if i is out of range.
func (m Mat3) Row(i int) Vec3 {
	return m[i]
}

// Col returns column j as a vector. Panics if j is out of range.
func (m Mat3) Col(j int) Vec3 {
	return Vec3{m[0][j], m[1][j], m[2][j]}
}

// T returns the transpose mᵀ.
func (m Mat3) T() Mat3 {
	var (
		out  Mat3
		i, j int
	)
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			out[j][i] = m[i][j]
		}
	}

	return out
}

// Mul returns the product m·b.
// Loop order i→j→k is fixed for deterministic rounding.
func (m Mat3) Mul(b Mat3) Mat3 {
	var (
		out     Mat3
		i, j, k int
		sum     float64
	)
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			sum = 0
			for k = 0; k < Dim; k++ {
				sum += m[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// MulVec returns the product m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// Add returns m + b.
func (m Mat3) Add(b Mat3) Mat3 {
	return Mat3{m[0].Add(b[0]), m[1].Add(b[1]), m[2].Add(b[2])}
}

// Sub returns m − b.
func (m Mat3) Sub(b Mat3) Mat3 {
	return Mat3{m[0].Sub(b[0]), m[1].Sub(b[1]), m[2].Sub(b[2])}
}

// Scale returns s·m.
func (m Mat3) Scale(s float64) Mat3 {
	return Mat3{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s)}
}

// Det returns the determinant, expanded along the first row.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Trace returns the sum of the diagonal entries.
func (m Mat3) Trace() float64 {
	return m[0][0] + m[1][1] + m[2][2]
}

// Diagonal returns the diagonal entries as a vector.
func (m Mat3) Diagonal() Vec3 {
	return Vec3{m[0][0], m[1][1], m[2][2]}
}

// Sym returns the symmetric part (m + mᵀ)/2.
func (m Mat3) Sym() Mat3 {
	return m.Add(m.T()).Scale(0.5)
}
