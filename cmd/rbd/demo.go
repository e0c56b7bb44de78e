package main

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rbd/inertia"
	"github.com/katalvlaran/rbd/matrix"
	"github.com/katalvlaran/rbd/rotation"
)

func newDemoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the worked example: frames, vectors, eigenvectors, principal axes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Info("running worked example")
			return a.runDemo(a.printer(cmd.OutOrStdout()))
		},
	}
}

// runDemo prints every intermediate result of the worked example.
func (a *app) runDemo(p printer) error {
	opts := a.cfg.options()

	// successive rotations N → G → H → B
	var (
		alpha = math.Pi / 3
		beta  = math.Pi / 4
		gamma = math.Pi / 6

		gcn = rotation.AboutX(alpha)
		hcg = rotation.AboutZ(beta)
		bch = rotation.AboutY(gamma)

		bcn = matrix.Mul(bch, hcg, gcn)
		ncb = matrix.Transpose(bcn)
	)
	seq, err := rotation.Sequence("XZY", alpha, beta, gamma)
	if err != nil {
		return err
	}
	if !matrix.AllClose(bcn, seq, a.cfg.Epsilon) {
		a.log.WithField("sequence", "XZY").Warn("composed rotation disagrees with Sequence")
	}
	p.Section("Rotations")
	p.Mat("BCN", bcn)
	p.Mat("NCB = transpose(BCN)", ncb)

	p.Section("Frame translations")
	p.Vec("Br = BCN·Nr, Nr = x", bcn.MulVec(matrix.Vector(1, 0, 0)))
	p.Vec("Nr = NCB·Br, Br = x", ncb.MulVec(matrix.Vector(1, 0, 0)))

	// vectors given in different frames, compared in N
	var (
		nrBA = ncb.MulVec(matrix.Vector(1, 3, 2))
		nrCA = gcn.T().MulVec(matrix.Vector(4, 6, 5))
	)
	unit, err := matrix.Unit(nrBA)
	if err != nil {
		return err
	}
	p.Section("Vector operations")
	p.Vec("NrBA", nrBA)
	p.Vec("NrCA", nrCA)
	p.Scalar("dot", matrix.Dot(nrBA, nrCA))
	p.Vec("cross", matrix.Cross(nrBA, nrCA))
	p.Scalar("norm", matrix.Norm(nrBA))
	p.Vec("unit", unit)

	nic := inertia.Rotate(matrix.Diag(2, 4, 5), bcn)
	inv, err := matrix.Inv(nic, opts...)
	if err != nil {
		return err
	}
	eig, err := matrix.Decompose(nic, opts...)
	if err != nil {
		return err
	}
	p.Section("Matrix operations")
	p.Mat("NIC = NCB·diag(2,4,5)·BCN", nic)
	p.Mat("inverse", inv)
	p.Mat("eigenvalues", eig.Diag())
	p.Mat("eigenvectors", eig.Vectors)

	axis, angle, err := rotation.PrincipalAxis(bcn, opts...)
	if err != nil {
		return err
	}
	ce, err := matrix.DecomposeComplex(bcn, opts...)
	if err != nil {
		return err
	}
	q := rotation.ToQuat(bcn)
	p.Section("Principal rotation axis of BCN")
	p.Text("eigenvalues: %s", formatComplex(p, ce.Values[:]))
	// column k belongs to eigenvalue k; the axis is the column of λ = 1
	p.Text("eigenvectors (columns):")
	for i := 0; i < matrix.Dim; i++ {
		p.Text("  [%s]", formatComplex(p, ce.Vectors[i][:]))
	}
	p.Vec("axis", axis)
	p.Scalar("angle [deg]", degrees(angle))
	p.Text("quaternion: w=%s v=%s", p.num(q.W), p.vec(matrix.VecFromMgl(q.V)))

	var (
		bi = matrix.Diag(3, 1, 2)
		ni = inertia.Rotate(bi, bcn)
	)
	fromN, err := inertia.Principal(ni, opts...)
	if err != nil {
		return err
	}
	fromB, err := inertia.Principal(bi, opts...)
	if err != nil {
		return err
	}
	p.Section("Inertia matrices")
	p.Mat("NI = NCB·BI·BCN", ni)
	p.Mat("FI", fromN.Diag())
	p.Mat("NCF", fromN.Axes)
	p.Mat("FI (from BI)", fromB.Diag())
	p.Mat("BCF", fromB.Axes)

	// body with m = 256 kg, spinning at ω = (1, 0, 2) rad/s
	var (
		s3    = math.Sqrt(3)
		fis   = matrix.New(46, 3*s3, -15, 3*s3, 62.5, 2.5*s3, -15, 2.5*s3, 51.5)
		omega = matrix.Vector(1, 0, 2)
	)
	if err = inertia.Validate(fis, opts...); err != nil {
		return err
	}
	fp, err := inertia.Principal(fis, opts...)
	if err != nil {
		return err
	}
	p.Section("Angular momentum and kinetic energy")
	p.Mat("I", fis)
	p.Vec("ω", omega)
	p.Vec("H = I·ω", inertia.AngularMomentum(fis, omega))
	p.Scalar("T = ½ωᵀIω", inertia.KineticEnergy(fis, omega))
	p.Vec("principal moments", fp.Moments)

	return nil
}
