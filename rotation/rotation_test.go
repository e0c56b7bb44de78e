package rotation_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rbd/matrix"
	"github.com/katalvlaran/rbd/rotation"
)

const tol = 1e-9

func requireMatClose(t *testing.T, want, got matrix.Mat3, eps float64, msgAndArgs ...interface{}) {
	t.Helper()
	for i := 0; i < matrix.Dim; i++ {
		for j := 0; j < matrix.Dim; j++ {
			require.InDelta(t, want[i][j], got[i][j], eps, msgAndArgs...)
		}
	}
}

func requireVecClose(t *testing.T, want, got matrix.Vec3, eps float64, msgAndArgs ...interface{}) {
	t.Helper()
	for i := 0; i < matrix.Dim; i++ {
		require.InDelta(t, want[i], got[i], eps, msgAndArgs...)
	}
}

// exampleBCN is the N→B rotation of the worked example: x by π/3, then z by
// π/4, then y by π/6.
func exampleBCN(t *testing.T) matrix.Mat3 {
	t.Helper()
	c, err := rotation.Sequence("XZY", math.Pi/3, math.Pi/4, math.Pi/6)
	require.NoError(t, err)
	return c
}

func TestElementaryMatrices(t *testing.T) {
	th := 0.3
	s, c := math.Sin(th), math.Cos(th)

	requireMatClose(t, matrix.New(1, 0, 0, 0, c, s, 0, -s, c), rotation.AboutX(th), 1e-15)
	requireMatClose(t, matrix.New(c, 0, -s, 0, 1, 0, s, 0, c), rotation.AboutY(th), 1e-15)
	requireMatClose(t, matrix.New(c, s, 0, -s, c, 0, 0, 0, 1), rotation.AboutZ(th), 1e-15)

	for _, axis := range []rotation.Axis{rotation.X, rotation.Y, rotation.Z} {
		t.Run(axis.String(), func(t *testing.T) {
			m := rotation.About(axis, th)
			require.NoError(t, rotation.Validate(m))
			requireMatClose(t, m.T(), rotation.About(axis, -th), 1e-15, "inverse rotation is the transpose")
			requireMatClose(t, matrix.Identity(), m.Mul(rotation.About(axis, -th)), 1e-15)
			requireVecClose(t, axis.Unit(), m.MulVec(axis.Unit()), 0, "the rotation axis is fixed")
		})
	}

	assert.Equal(t, matrix.Identity(), rotation.About(rotation.Axis(7), th))
}

func TestQuarterTurnMapsBasis(t *testing.T) {
	// N→F by 90° about z: n1 = −f2 and n2 = f1
	c := rotation.AboutZ(math.Pi / 2)
	requireVecClose(t, matrix.Vector(0, -1, 0), c.MulVec(matrix.Vector(1, 0, 0)), 1e-15)
	requireVecClose(t, matrix.Vector(1, 0, 0), c.MulVec(matrix.Vector(0, 1, 0)), 1e-15)
}

func TestSequence(t *testing.T) {
	a, b, g := math.Pi/3, math.Pi/4, math.Pi/6
	gcn := rotation.AboutX(a)
	hcg := rotation.AboutZ(b)
	bch := rotation.AboutY(g)
	want := matrix.Mul(bch, hcg, gcn)

	for _, order := range []string{"XZY", "xzy", "x-z-y", "1 3 2"} {
		got, err := rotation.Sequence(order, a, b, g)
		require.NoError(t, err, order)
		requireMatClose(t, want, got, 0, order)
	}

	bcn := exampleBCN(t)
	require.NoError(t, rotation.Validate(bcn))

	// translating a vector N→B and back
	nr := matrix.Vector(1, 0, 0)
	br := bcn.MulVec(nr)
	requireVecClose(t, nr, bcn.T().MulVec(br), 1e-15)
	assert.InDelta(t, 1.0, br.Norm(), 1e-15, "rotation preserves length")
}

func TestSequenceErrors(t *testing.T) {
	_, err := rotation.Sequence("", 1)
	require.ErrorIs(t, err, rotation.ErrBadSequence)

	_, err = rotation.Sequence("XQZ", 1, 2, 3)
	require.ErrorIs(t, err, rotation.ErrBadSequence)

	_, err = rotation.Sequence("XZ", 1, 2, 3)
	require.ErrorIs(t, err, rotation.ErrAngleCount)

	_, err = rotation.ParseAxis("w")
	require.ErrorIs(t, err, rotation.ErrBadSequence)
}

func TestParseSequence(t *testing.T) {
	axes, err := rotation.ParseSequence("3-1-3")
	require.NoError(t, err)
	assert.Equal(t, []rotation.Axis{rotation.Z, rotation.X, rotation.Z}, axes)
}

func TestValidate(t *testing.T) {
	require.NoError(t, rotation.Validate(matrix.Identity()))

	err := rotation.Validate(matrix.Diag(1, 1, -1))
	require.ErrorIs(t, err, rotation.ErrNotRotation, "reflection has det −1")

	err = rotation.Validate(matrix.Diag(1, 2, 1))
	require.ErrorIs(t, err, rotation.ErrNotRotation)
	require.ErrorIs(t, err, matrix.ErrNotOrthonormal)

	err = rotation.Validate(matrix.Diag(1, math.NaN(), 1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// printed to three decimals the example DCM is a rotation only at a coarse eps
	rounded := exampleBCN(t)
	for i := range rounded {
		for j := range rounded[i] {
			rounded[i][j] = math.Round(rounded[i][j]*1000) / 1000
		}
	}
	require.Error(t, rotation.Validate(rounded))
	require.NoError(t, rotation.Validate(rounded, matrix.WithEpsilon(5e-3)))
}

func TestAxisAngle(t *testing.T) {
	th := 1.2
	for _, axis := range []rotation.Axis{rotation.X, rotation.Y, rotation.Z} {
		got, err := rotation.AxisAngle(axis.Unit().Scale(3), th)
		require.NoError(t, err)
		requireMatClose(t, rotation.About(axis, th), got, 1e-15, axis.String())
	}

	e := matrix.Vector(1, 2, 2)
	c, err := rotation.AxisAngle(e, 2.0)
	require.NoError(t, err)
	require.NoError(t, rotation.Validate(c))
	requireVecClose(t, e, c.MulVec(e), 1e-14)

	_, err = rotation.AxisAngle(matrix.Vec3{}, 1)
	require.ErrorIs(t, err, matrix.ErrZeroVector)
}

func TestPrincipalAxisRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name  string
		axis  matrix.Vec3
		angle float64
	}{
		{"x small", matrix.Vector(1, 0, 0), 0.01},
		{"z", matrix.Vector(0, 0, 1), 1.0},
		{"skew", matrix.Vector(1, 2, 2), 2.0},
		{"negative components", matrix.Vector(-3, 1, 0.5), 2.9},
		{"half turn", matrix.Vector(0, 1, 0), math.Pi},
	} {
		t.Run(tc.name, func(t *testing.T) {
			want, err := matrix.Unit(tc.axis)
			require.NoError(t, err)
			c, err := rotation.AxisAngle(want, tc.angle)
			require.NoError(t, err)

			axis, angle, err := rotation.PrincipalAxis(c)
			require.NoError(t, err)
			assert.InDelta(t, tc.angle, angle, 1e-8)
			if tc.angle < math.Pi {
				requireVecClose(t, want, axis, 1e-8)
			} else {
				// at π the axis sign is not determined
				assert.InDelta(t, 1.0, math.Abs(want.Dot(axis)), 1e-8)
			}

			back, err := rotation.AxisAngle(axis, angle)
			require.NoError(t, err)
			requireMatClose(t, c, back, 1e-8)
		})
	}
}

func TestPrincipalAxisOrientation(t *testing.T) {
	// a negative turn about z is a positive turn about −z
	axis, angle, err := rotation.PrincipalAxis(rotation.AboutZ(-0.5))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, angle, 1e-12)
	requireVecClose(t, matrix.Vector(0, 0, -1), axis, 1e-12)
}

func TestPrincipalAxisExample(t *testing.T) {
	bcn := exampleBCN(t)
	axis, angle, err := rotation.PrincipalAxis(bcn)
	require.NoError(t, err)
	assert.Greater(t, angle, 0.0)
	assert.LessOrEqual(t, angle, math.Pi)
	requireVecClose(t, axis, bcn.MulVec(axis), 1e-9, "principal axis is the same in N and B")
	assert.InDelta(t, (bcn.Trace()-1)/2, math.Cos(angle), 1e-12)
}

func TestPrincipalAxisEdgeCases(t *testing.T) {
	axis, angle, err := rotation.PrincipalAxis(matrix.Identity())
	require.NoError(t, err)
	assert.Equal(t, 0.0, angle)
	assert.Equal(t, matrix.Vector(1, 0, 0), axis)

	_, _, err = rotation.PrincipalAxis(matrix.Diag(2, 1, 1))
	require.ErrorIs(t, err, rotation.ErrNotRotation)
}

func TestRelative(t *testing.T) {
	acn := rotation.AboutZ(0.4)
	bcn := rotation.AboutZ(1.0)
	requireMatClose(t, rotation.AboutZ(0.6), rotation.Relative(acn, bcn), 1e-15)

	// BCA·ACN reproduces BCN
	ex := exampleBCN(t)
	requireMatClose(t, ex, rotation.Relative(acn, ex).Mul(acn), 1e-15)
}

func TestQuaternionConventions(t *testing.T) {
	e := matrix.Vector(1, 2, 2).Scale(1.0 / 3)
	phi := 0.8

	// mathgl's active quaternion corresponds to our passive matrix
	q := mgl64.QuatRotate(phi, e.ToMgl())
	want, err := rotation.AxisAngle(e, phi)
	require.NoError(t, err)
	requireMatClose(t, want, rotation.FromQuat(q), 1e-12)

	got := rotation.ToQuat(want)
	assert.InDelta(t, 1.0, math.Abs(got.Dot(q)), 1e-12, "same rotation up to sign")

	assert.Equal(t, matrix.Identity(), rotation.FromQuat(mgl64.Quat{}))
}

func TestQuaternionRoundTrip(t *testing.T) {
	for _, c := range []matrix.Mat3{
		matrix.Identity(),
		rotation.AboutX(2.5),
		rotation.AboutY(-1.0),
		exampleBCN(t),
	} {
		requireMatClose(t, c, rotation.FromQuat(rotation.ToQuat(c)), 1e-12)
	}
}

func TestSlerp(t *testing.T) {
	a := matrix.Identity()
	b := rotation.AboutZ(1.0)

	requireMatClose(t, a, rotation.Slerp(a, b, 0), 1e-12)
	requireMatClose(t, b, rotation.Slerp(a, b, 1), 1e-12)
	requireMatClose(t, rotation.AboutZ(0.5), rotation.Slerp(a, b, 0.5), 1e-9)

	// shortest arc even when the quaternions point to opposite hemispheres
	c := rotation.AboutX(3.0)
	d := rotation.AboutX(-3.0)
	_, angle, err := rotation.PrincipalAxis(rotation.Relative(c, rotation.Slerp(c, d, 0.5)))
	require.NoError(t, err)
	assert.InDelta(t, (2*math.Pi-6.0)/2, angle, 1e-9)
}
