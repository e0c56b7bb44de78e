package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rbd/body"
	"github.com/katalvlaran/rbd/inertia"
	"github.com/katalvlaran/rbd/matrix"
)

type principalOpts struct {
	file    string
	inertia []float64
}

func newPrincipalCommand(a *app) *cobra.Command {
	opts := principalOpts{}

	cmd := &cobra.Command{
		Use:   "principal",
		Short: "Find the principal moments and axes of an inertia matrix",
		Long: `Find the principal moments of inertia I1 ≥ I2 ≥ I3 and the right-handed
principal axes. The inertia matrix is read from a body file (--file) and
expressed in N using the body orientation, or given directly as nine numbers
(--inertia, row-major).`,
		Example: `  rbd principal --inertia 2,0,0,0,4,0,0,0,5
  rbd principal --file body.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			i, name, err := a.inertiaInput(opts.file, opts.inertia)
			if err != nil {
				return err
			}
			return a.runPrincipal(a.printer(cmd.OutOrStdout()), name, i)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "body definition (yaml)")
	cmd.Flags().Float64SliceVar(&opts.inertia, "inertia", nil, "inertia matrix, 9 numbers row-major")
	cmd.MarkFlagsMutuallyExclusive("file", "inertia")
	cmd.MarkFlagsOneRequired("file", "inertia")

	return cmd
}

// inertiaInput resolves the inertia matrix (in N) from a body file or a flag.
func (a *app) inertiaInput(file string, vals []float64) (matrix.Mat3, string, error) {
	if file == "" {
		i, err := parseMat3(vals)
		if err != nil {
			return matrix.Mat3{}, "", fmt.Errorf("--inertia: %w", err)
		}
		return i, "inertia", nil
	}

	a.log.WithField("file", file).Info("loading body")
	b, err := body.Load(file)
	if err != nil {
		return matrix.Mat3{}, "", err
	}
	i, err := b.InertiaInN()
	if err != nil {
		return matrix.Mat3{}, "", err
	}
	name := b.Name
	if name == "" {
		name = file
	}

	return i, name, nil
}

func (a *app) runPrincipal(p printer, name string, i matrix.Mat3) error {
	opts := a.cfg.options()

	pa, err := inertia.Principal(i, opts...)
	if err != nil {
		return err
	}

	p.Section(name)
	p.Mat("I", i)
	p.Vec("moments", pa.Moments)
	for k := 0; k < matrix.Dim; k++ {
		p.Vec(fmt.Sprintf("axis %d", k+1), pa.Axis(k))
	}
	p.Mat("FCN", pa.FCN())

	switch err = inertia.Validate(i, opts...); {
	case err == nil:
		p.Text("physical: yes")
	case errors.Is(err, inertia.ErrNotPhysical):
		a.log.WithError(err).Warn("inertia matrix is not physically realisable")
		p.Text("physical: no (%v)", err)
	default:
		return err
	}
	a.log.WithFields(logrus.Fields{
		"body":    name,
		"moments": joinNums(pa.Moments[:]),
	}).Debug("principal axes found")

	return nil
}
