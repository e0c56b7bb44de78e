package rotation

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/rbd/matrix"
)

// Axis names one of the three coordinate axes of a triad.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

// String returns "X", "Y" or "Z".
func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Unit returns the unit vector along a, or the zero vector for an unknown axis.
func (a Axis) Unit() matrix.Vec3 {
	var v matrix.Vec3
	if a >= X && a <= Z {
		v[a] = 1
	}

	return v
}

// ParseAxis accepts "x", "y", "z" (any case) and "1", "2", "3".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X", "1":
		return X, nil
	case "Y", "2":
		return Y, nil
	case "Z", "3":
		return Z, nil
	default:
		return 0, fmt.Errorf("%w: axis %q", ErrBadSequence, s)
	}
}

// AboutX returns the rotation matrix from triad N to F for a rotation of
// angle radians about the x axis:
//
//	⎡1    0     0  ⎤
//	⎢0  cos θ  sin θ⎥
//	⎣0 −sin θ  cos θ⎦
func AboutX(angle float64) matrix.Mat3 {
	s, c := math.Sincos(angle)
	return matrix.New(
		1, 0, 0,
		0, c, s,
		0, -s, c,
	)
}

// AboutY returns the rotation matrix from triad N to F for a rotation of
// angle radians about the y axis:
//
//	⎡cos θ  0 −sin θ⎤
//	⎢  0    1    0  ⎥
//	⎣sin θ  0  cos θ⎦
func AboutY(angle float64) matrix.Mat3 {
	s, c := math.Sincos(angle)
	return matrix.New(
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	)
}

// AboutZ returns the rotation matrix from triad N to F for a rotation of
// angle radians about the z axis:
//
//	⎡ cos θ  sin θ  0⎤
//	⎢−sin θ  cos θ  0⎥
//	⎣   0      0    1⎦
func AboutZ(angle float64) matrix.Mat3 {
	s, c := math.Sincos(angle)
	return matrix.New(
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	)
}

// About dispatches to AboutX, AboutY or AboutZ.
// An unknown axis yields the identity.
func About(axis Axis, angle float64) matrix.Mat3 {
	switch axis {
	case X:
		return AboutX(angle)
	case Y:
		return AboutY(angle)
	case Z:
		return AboutZ(angle)
	default:
		return matrix.Identity()
	}
}

// Sequence composes successive body-fixed rotations. order lists the axes in
// the order the rotations are applied, e.g. "XZY" (or "x-z-y", "132");
// angles[k] is the angle of rotation k in radians.
//
// For "XZY" with angles α, β, γ the result is
//
//	BCN = AboutY(γ) · AboutZ(β) · AboutX(α).
//
// Errors: ErrBadSequence, ErrAngleCount.
func Sequence(order string, angles ...float64) (matrix.Mat3, error) {
	axes, err := ParseSequence(order)
	if err != nil {
		return matrix.Mat3{}, err
	}
	if len(axes) != len(angles) {
		return matrix.Mat3{}, fmt.Errorf("%w: %d axes, %d angles", ErrAngleCount, len(axes), len(angles))
	}

	out := matrix.Identity()
	for k, a := range axes {
		out = About(a, angles[k]).Mul(out)
	}

	return out, nil
}

// ParseSequence splits an order string into axes. Separators '-', ' ', ','
// and '_' are ignored.
func ParseSequence(order string) ([]Axis, error) {
	var axes []Axis
	for _, r := range order {
		switch r {
		case '-', ' ', ',', '_':
			continue
		}
		a, err := ParseAxis(string(r))
		if err != nil {
			return nil, fmt.Errorf("%w in %q", ErrBadSequence, order)
		}
		axes = append(axes, a)
	}
	if len(axes) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBadSequence)
	}

	return axes, nil
}
