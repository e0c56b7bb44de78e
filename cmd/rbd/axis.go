package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rbd/matrix"
	"github.com/katalvlaran/rbd/rotation"
)

type axisOpts struct {
	sequence string
	angles   []float64
	degrees  bool
}

func newAxisCommand(a *app) *cobra.Command {
	opts := axisOpts{}

	cmd := &cobra.Command{
		Use:   "axis",
		Short: "Compose a rotation sequence and report its principal axis and angle",
		Long: `Compose successive elementary rotations into one direction cosine matrix
FCN and report its principal rotation axis, angle and unit quaternion.

The first letter of --sequence is applied first: XZY with angles a,b,c is
FCN = C_Y(c)·C_Z(b)·C_X(a).`,
		Example: `  rbd axis --sequence XZY --angles 60,45,30 --degrees`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAxis(a.printer(cmd.OutOrStdout()), opts)
		},
	}
	cmd.Flags().StringVar(&opts.sequence, "sequence", "XYZ", "rotation axes, first applied first")
	cmd.Flags().Float64SliceVar(&opts.angles, "angles", nil, "one angle per axis")
	cmd.Flags().BoolVar(&opts.degrees, "degrees", false, "angles are in degrees instead of radians")
	_ = cmd.MarkFlagRequired("angles")

	return cmd
}

func (a *app) runAxis(p printer, opts axisOpts) error {
	angles := make([]float64, len(opts.angles))
	for k, v := range opts.angles {
		if opts.degrees {
			v = v * math.Pi / 180
		}
		angles[k] = v
	}
	a.log.WithFields(logrus.Fields{
		"sequence": opts.sequence,
		"angles":   joinNums(opts.angles),
		"degrees":  opts.degrees,
	}).Info("composing rotation")

	fcn, err := rotation.Sequence(opts.sequence, angles...)
	if err != nil {
		return err
	}
	axis, angle, err := rotation.PrincipalAxis(fcn, a.cfg.options()...)
	if err != nil {
		return err
	}
	q := rotation.ToQuat(fcn)

	p.Mat("FCN", fcn)
	p.Scalar("det", fcn.Det())
	p.Vec("axis", axis)
	p.Scalar("angle [deg]", degrees(angle))
	p.Scalar("angle [rad]", angle)
	p.Text("quaternion: w=%s v=%s", p.num(q.W), p.vec(matrix.VecFromMgl(q.V)))

	return nil
}

// formatComplex renders eigenvalues as "a±bi" with the printer precision.
func formatComplex(p printer, vals []complex128) string {
	parts := make([]string, len(vals))
	for k, z := range vals {
		im := p.num(imag(z))
		sign := "+"
		if strings.HasPrefix(im, "-") {
			sign, im = "-", im[1:]
		}
		parts[k] = fmt.Sprintf("%s%s%si", p.num(real(z)), sign, im)
	}

	return strings.Join(parts, ", ")
}
