// Package body reads rigid-body descriptions from YAML files: mass, inertia
// matrix (given explicitly or derived from a standard solid) and the
// orientation of the body frame B relative to N as a rotation sequence.
//
//	name: plate
//	mass: 2
//	inertia:
//	  - [3, 0, 0]
//	  - [0, 1, 0]
//	  - [0, 0, 2]
//	orientation:
//	  sequence: XZY
//	  angles: [60, 45, 30]
//	  degrees: true
//
// Instead of inertia a solid may be given:
//
//	solid: {kind: cuboid, dims: [1, 2, 3]}
package body

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rbd/inertia"
	"github.com/katalvlaran/rbd/matrix"
	"github.com/katalvlaran/rbd/rotation"
)

// ErrInvalid is returned for a description that cannot be turned into a body.
var ErrInvalid = errors.New("body: invalid description")

// Solid kinds understood by Body.Inertia.
const (
	KindCuboid   = "cuboid"   // dims: [a, b, c] along x, y, z
	KindCylinder = "cylinder" // dims: [radius, height], axis z
	KindSphere   = "sphere"   // dims: [radius]
)

// Body is a rigid-body description.
type Body struct {
	Name        string      `yaml:"name"`
	Mass        float64     `yaml:"mass"`
	InertiaRows [][]float64 `yaml:"inertia,omitempty"` // 3 rows of 3, in B
	Solid       *Solid      `yaml:"solid,omitempty"`
	Orientation Orientation `yaml:"orientation"`
}

// Solid describes a standard homogeneous solid.
type Solid struct {
	Kind string    `yaml:"kind"`
	Dims []float64 `yaml:"dims"`
}

// Orientation describes BCN as successive body-fixed rotations.
type Orientation struct {
	Sequence string    `yaml:"sequence"`
	Angles   []float64 `yaml:"angles"`
	Degrees  bool      `yaml:"degrees"`
}

// Load reads and parses the file at path.
func Load(path string) (Body, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Body{}, fmt.Errorf("body: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return Body{}, fmt.Errorf("%s: %w", path, err)
	}

	return b, nil
}

// Parse decodes a YAML description. Unknown fields are rejected so typos do
// not silently fall back to defaults.
func Parse(data []byte) (Body, error) {
	var b Body
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return Body{}, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return Body{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := b.validate(); err != nil {
		return Body{}, err
	}

	return b, nil
}

// validate checks the parts that do not need any computation.
func (b Body) validate() error {
	switch {
	case b.InertiaRows != nil && b.Solid != nil:
		return fmt.Errorf("%w: give either inertia or solid, not both", ErrInvalid)
	case b.InertiaRows == nil && b.Solid == nil:
		return fmt.Errorf("%w: inertia or solid is required", ErrInvalid)
	case b.Solid != nil && b.Mass <= 0:
		return fmt.Errorf("%w: a solid needs a positive mass", ErrInvalid)
	}
	if b.InertiaRows != nil {
		if _, err := b.explicitInertia(); err != nil {
			return err
		}
	}

	return nil
}

// explicitInertia converts the YAML rows into a matrix.
func (b Body) explicitInertia() (matrix.Mat3, error) {
	var m matrix.Mat3
	if len(b.InertiaRows) != matrix.Dim {
		return m, fmt.Errorf("%w: inertia needs 3 rows, got %d", ErrInvalid, len(b.InertiaRows))
	}
	for i, row := range b.InertiaRows {
		if len(row) != matrix.Dim {
			return m, fmt.Errorf("%w: inertia row %d needs 3 entries, got %d", ErrInvalid, i, len(row))
		}
		copy(m[i][:], row)
	}

	return m, nil
}

// Inertia returns the inertia matrix in B, from the explicit rows or from
// the solid.
func (b Body) Inertia() (matrix.Mat3, error) {
	if b.Solid == nil {
		return b.explicitInertia()
	}

	var (
		d    = b.Solid.Dims
		want int
	)
	switch strings.ToLower(b.Solid.Kind) {
	case KindCuboid:
		if want = 3; len(d) == want {
			return inertia.Cuboid(b.Mass, d[0], d[1], d[2])
		}
	case KindCylinder:
		if want = 2; len(d) == want {
			return inertia.SolidCylinder(b.Mass, d[0], d[1])
		}
	case KindSphere:
		if want = 1; len(d) == want {
			return inertia.SolidSphere(b.Mass, d[0])
		}
	default:
		return matrix.Mat3{}, fmt.Errorf("%w: unknown solid kind %q", ErrInvalid, b.Solid.Kind)
	}

	return matrix.Mat3{}, fmt.Errorf("%w: %s needs %d dims, got %d", ErrInvalid, b.Solid.Kind, want, len(d))
}

// Frame returns BCN. Without a sequence the body frame coincides with N.
func (b Body) Frame() (matrix.Mat3, error) {
	if b.Orientation.Sequence == "" && len(b.Orientation.Angles) == 0 {
		return matrix.Identity(), nil
	}
	angles := make([]float64, len(b.Orientation.Angles))
	for k, a := range b.Orientation.Angles {
		if b.Orientation.Degrees {
			a = a * math.Pi / 180
		}
		angles[k] = a
	}

	c, err := rotation.Sequence(b.Orientation.Sequence, angles...)
	if err != nil {
		return matrix.Mat3{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return c, nil
}

// InertiaInN returns the inertia matrix expressed in N: BCNᵀ·B_I·BCN.
func (b Body) InertiaInN() (matrix.Mat3, error) {
	bi, err := b.Inertia()
	if err != nil {
		return matrix.Mat3{}, err
	}
	c, err := b.Frame()
	if err != nil {
		return matrix.Mat3{}, err
	}

	return inertia.Rotate(bi, c), nil
}
