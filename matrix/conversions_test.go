package matrix_test

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rbd/matrix"
)

func TestDenseRoundTrip(t *testing.T) {
	m := matrix.New(1, 2, 3, 4, 5, 6, 7, 8, 9)
	d := m.ToDense()
	assert.Equal(t, 2.0, d.At(0, 1), "row-major layout")
	assert.Equal(t, 4.0, d.At(1, 0))

	back, err := matrix.FromDense(d)
	require.NoError(t, err)
	assert.Equal(t, m, back)

	_, err = matrix.FromDense(mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestVecDenseRoundTrip(t *testing.T) {
	v := matrix.Vector(1, -2, 3)
	back, err := matrix.FromVector(v.ToVecDense())
	require.NoError(t, err)
	assert.Equal(t, v, back)

	_, err = matrix.FromVector(mat.NewVecDense(4, nil))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMglRoundTrip(t *testing.T) {
	m := matrix.New(1, 2, 3, 4, 5, 6, 7, 8, 9)
	g := m.ToMgl()
	assert.Equal(t, 2.0, g.At(0, 1))
	assert.Equal(t, 4.0, g.At(1, 0))
	assert.Equal(t, m, matrix.FromMgl(g))

	v := matrix.Vector(1, 0, -1)
	assert.Equal(t, v, matrix.VecFromMgl(v.ToMgl()))

	// both libraries agree on the matrix-vector product
	want := m.MulVec(v)
	got := matrix.VecFromMgl(g.Mul3x1(v.ToMgl()))
	assert.Equal(t, want, got)

	// and on transposition
	assert.Equal(t, m.T(), matrix.FromMgl(g.Transpose()))
	assert.Equal(t, mgl64.Ident3(), matrix.Identity().ToMgl())
}

func TestString(t *testing.T) {
	s := matrix.Diag(1, 2, 3).String()
	assert.GreaterOrEqual(t, strings.Count(s, "\n"), 2, "one line per row")
	assert.Contains(t, s, "1")
	assert.Contains(t, s, "3")

	v := matrix.Vector(4, 5, 6).String()
	assert.GreaterOrEqual(t, strings.Count(v, "\n"), 2, "column vector prints vertically")
}
