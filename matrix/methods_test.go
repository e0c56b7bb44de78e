// Package matrix_test contains unit tests for Vec3/Mat3 methods and the
// function-style surface.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rbd/matrix"
)

func TestBuilders(t *testing.T) {
	m := matrix.New(1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.Equal(t, matrix.Vector(1, 2, 3), m.Row(0))
	assert.Equal(t, matrix.Vector(3, 6, 9), m.Col(2))
	assert.Equal(t, matrix.New(2, 0, 0, 0, 4, 0, 0, 0, 5), matrix.Diag(2, 4, 5))
	assert.Equal(t, matrix.Diag(1, 1, 1), matrix.Identity())
	assert.Equal(t, m, matrix.FromRows(m.Row(0), m.Row(1), m.Row(2)))
	assert.Equal(t, m, matrix.FromColumns(m.Col(0), m.Col(1), m.Col(2)))
}

func TestTranspose(t *testing.T) {
	m := matrix.New(1, 2, 3, 4, 5, 6, 7, 8, 9)
	want := matrix.New(1, 4, 7, 2, 5, 8, 3, 6, 9)
	assert.Equal(t, want, matrix.Transpose(m))
	assert.Equal(t, m, m.T().T(), "transpose is an involution")
}

func TestCrossProduct(t *testing.T) {
	x, y, z := matrix.Vector(1, 0, 0), matrix.Vector(0, 1, 0), matrix.Vector(0, 0, 1)

	for _, tc := range []struct {
		name       string
		a, b, want matrix.Vec3
	}{
		{"x×y=z", x, y, z},
		{"y×z=x", y, z, x},
		{"z×x=y", z, x, y},
		{"y×x=−z", y, x, z.Scale(-1)},
		{"a×a=0", matrix.Vector(1, 3, 2), matrix.Vector(1, 3, 2), matrix.Vec3{}},
		{"general", matrix.Vector(1, 3, 2), matrix.Vector(4, 6, 5), matrix.Vector(3, 3, -6)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := matrix.Cross(tc.a, tc.b)
			RequireVecClose(t, tc.want, got, 0)
			RequireVecClose(t, got, matrix.MulVec(matrix.Tilde(tc.a), tc.b), 0, "tilde(a)·b must equal a×b")
			assert.InDelta(t, 0, matrix.Dot(got, tc.a), 1e-12, "a×b ⟂ a")
		})
	}
}

func TestTildeIsSkewSymmetric(t *testing.T) {
	a := matrix.Vector(1, -2, 3)
	w := a.Tilde()
	assert.Equal(t, w.Scale(-1), w.T())
	assert.Equal(t, matrix.New(0, -3, -2, 3, 0, -1, 2, 1, 0), w)
}

func TestDotNormUnit(t *testing.T) {
	a := matrix.Vector(3, 4, 0)
	assert.Equal(t, 25.0, matrix.Dot(a, a))
	assert.InDelta(t, 5.0, matrix.Norm(a), 1e-15)

	u, err := matrix.Unit(a)
	require.NoError(t, err)
	RequireVecClose(t, matrix.Vector(0.6, 0.8, 0), u, 1e-15)
	assert.InDelta(t, 1.0, u.Norm(), 1e-15)

	_, err = matrix.Unit(matrix.Vec3{})
	require.ErrorIs(t, err, matrix.ErrZeroVector)

	_, err = matrix.Unit(matrix.Vector(math.NaN(), 0, 0))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.Unit(matrix.Vector(0, math.Inf(1), 0))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNormExtremeScales(t *testing.T) {
	huge := matrix.Vector(1e200, 1e200, 0)
	assert.InDelta(t, math.Sqrt2, matrix.Norm(huge)/1e200, 1e-15)

	u, err := matrix.Unit(huge)
	require.NoError(t, err, "finite input must not overflow")
	RequireVecClose(t, matrix.Vector(math.Sqrt2/2, math.Sqrt2/2, 0), u, 1e-15)

	tiny := matrix.Vector(3e-200, 0, 4e-200)
	u, err = matrix.Unit(tiny)
	require.NoError(t, err, "finite input must not underflow to zero")
	RequireVecClose(t, matrix.Vector(0.6, 0, 0.8), u, 1e-15)
}

func TestAngle(t *testing.T) {
	got, err := matrix.Angle(matrix.Vector(1, 0, 0), matrix.Vector(1, 1, 0))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/4, got, 1e-15)

	got, err = matrix.Angle(matrix.Vector(1, 0, 0), matrix.Vector(-2, 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, got, 1e-15)

	_, err = matrix.Angle(matrix.Vec3{}, matrix.Vector(1, 0, 0))
	require.ErrorIs(t, err, matrix.ErrZeroVector)
}

func TestMulChain(t *testing.T) {
	a := matrix.New(1, 2, 0, 0, 1, 0, 0, 0, 1)
	b := matrix.New(0, 1, 0, 1, 0, 0, 0, 0, 1)
	c := matrix.Diag(2, 3, 4)

	assert.Equal(t, a.Mul(b).Mul(c), matrix.Mul(a, b, c))
	assert.Equal(t, a, matrix.Mul(a, matrix.Identity()))
	assert.Equal(t, matrix.New(2, 1, 0, 1, 0, 0, 0, 0, 1), matrix.Mul(a, b))
	assert.Equal(t, matrix.Vector(5, 2, 3), a.MulVec(matrix.Vector(1, 2, 3)))
}

func TestDetTraceOuter(t *testing.T) {
	assert.Equal(t, 40.0, matrix.Diag(2, 4, 5).Det())
	assert.Equal(t, 0.0, matrix.New(1, 2, 3, 4, 5, 6, 7, 8, 9).Det())
	assert.Equal(t, 15.0, matrix.New(1, 2, 3, 4, 5, 6, 7, 8, 9).Trace())
	assert.InDelta(t, 1.0, bcn().Det(), tol, "rotation has det +1")

	o := matrix.Outer(matrix.Vector(1, 2, 3), matrix.Vector(1, 0, -1))
	assert.Equal(t, matrix.New(1, 0, -1, 2, 0, -2, 3, 0, -3), o)
}

func TestAtSet(t *testing.T) {
	m := matrix.Identity()

	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = m.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.NoError(t, m.Set(0, 2, 7))
	assert.Equal(t, 7.0, m[0][2])

	err = m.Set(0, 2, math.Inf(1))
	require.True(t, errors.Is(err, matrix.ErrNaNInf))
	assert.Equal(t, 7.0, m[0][2], "failed Set leaves the entry untouched")

	require.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
}

func TestValueSemantics(t *testing.T) {
	m := matrix.New(1, 2, 3, 4, 5, 6, 7, 8, 9)
	orig := m
	_ = m.T()
	_ = m.Mul(m)
	_ = m.Scale(2)
	assert.Equal(t, orig, m, "operations must not mutate their receiver")
}

func TestSym(t *testing.T) {
	m := matrix.New(1, 2, 0, 4, 5, 6, 0, 0, 9)
	s := m.Sym()
	require.NoError(t, matrix.ValidateSymmetric(s, 0))
	assert.Equal(t, 3.0, s[0][1])
	assert.Equal(t, 3.0, s[1][2])
}
