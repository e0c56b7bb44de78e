package main

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/rbd/inertia"
	"github.com/katalvlaran/rbd/matrix"
	"github.com/katalvlaran/rbd/rotation"
)

type sweepOpts struct {
	file    string
	inertia []float64
	axis    string
	steps   int
	out     string
	width   float64
	height  float64
}

func newSweepCommand(a *app) *cobra.Command {
	opts := sweepOpts{}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Plot inertia components while a frame turns about one axis",
		Long: `Turn a frame F about one body axis through a full revolution and plot the
inertia components in F against the angle. The moments of inertia about
the two perpendicular axes reach their extremes where the product of
inertia between them vanishes. The image format follows the --out
extension (png, svg, pdf, ...).`,
		Example: `  rbd sweep --inertia 3,1,0,1,2,0,0,0,4 --axis z --out sweep.png`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			i, name, err := a.inertiaInput(opts.file, opts.inertia)
			if err != nil {
				return err
			}
			axis, err := rotation.ParseAxis(opts.axis)
			if err != nil {
				return err
			}
			if err = a.runSweep(name, i, axis, opts); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), opts.out)

			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "body definition (yaml)")
	cmd.Flags().Float64SliceVar(&opts.inertia, "inertia", nil, "inertia matrix, 9 numbers row-major")
	cmd.Flags().StringVar(&opts.axis, "axis", "z", "rotation axis (x, y or z)")
	cmd.Flags().IntVar(&opts.steps, "steps", 180, "increments over a full revolution")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "sweep.png", "output image")
	cmd.Flags().Float64Var(&opts.width, "width", 6, "image width in inches")
	cmd.Flags().Float64Var(&opts.height, "height", 4, "image height in inches")
	cmd.MarkFlagsMutuallyExclusive("file", "inertia")
	cmd.MarkFlagsOneRequired("file", "inertia")

	return cmd
}

// runSweep samples the inertia matrix and renders the chart.
//
// Stage 1: inertia.Sweep over one revolution.
// Stage 2: one line per diagonal entry plus the product of inertia between
// the two axes perpendicular to the rotation axis.
// Stage 3: save; gonum/plot picks the format from the file extension.
func (a *app) runSweep(name string, i matrix.Mat3, axis rotation.Axis, opts sweepOpts) error {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("image size must be positive, got %gx%g", opts.width, opts.height)
	}

	// Stage 1
	samples, err := inertia.Sweep(i, axis, opts.steps)
	if err != nil {
		return err
	}

	// Stage 2
	var (
		u, w  = perpendicular(axis)
		diag  [matrix.Dim]plotter.XYs
		prod  = make(plotter.XYs, len(samples))
		k, d  int
		angle float64
	)
	for d = 0; d < matrix.Dim; d++ {
		diag[d] = make(plotter.XYs, len(samples))
	}
	for k = range samples {
		angle = degrees(samples[k].Angle)
		for d = 0; d < matrix.Dim; d++ {
			diag[d][k].X, diag[d][k].Y = angle, samples[k].Inertia[d][d]
		}
		prod[k].X, prod[k].Y = angle, samples[k].Inertia[u][w]
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: inertia in F, rotated about %s", name, axis)
	p.X.Label.Text = "angle [deg]"
	p.Y.Label.Text = "inertia"
	p.Add(plotter.NewGrid())
	if err = plotutil.AddLines(p,
		"I11", diag[0],
		"I22", diag[1],
		"I33", diag[2],
		fmt.Sprintf("I%d%d", u+1, w+1), prod,
	); err != nil {
		return err
	}

	// Stage 3
	if err = p.Save(vg.Length(opts.width)*vg.Inch, vg.Length(opts.height)*vg.Inch, opts.out); err != nil {
		return fmt.Errorf("saving %s: %w", filepath.Clean(opts.out), err)
	}
	a.log.WithFields(logrus.Fields{
		"out":   opts.out,
		"axis":  axis.String(),
		"steps": opts.steps,
	}).Info("sweep written")

	return nil
}

// perpendicular returns the two other axis indices, in cyclic order.
func perpendicular(axis rotation.Axis) (int, int) {
	switch axis {
	case rotation.X:
		return 1, 2
	case rotation.Y:
		return 2, 0
	default:
		return 0, 1
	}
}
