// Package rbd is a small workbench for rigid body dynamics in 3-D: the
// vector and matrix helpers, rotation matrices and inertia calculations
// that a first course in rigid body kinematics builds on.
//
// 🚀 What is rbd?
//
//	A numeric library (plus a CLI) that brings together:
//		• Vectors & matrices: fixed 3×3 values, transpose, inverse, tilde, dot, cross
//		• Eigen-decomposition: descending eigenvalues, right-handed eigenvector triads
//		• Rotations: elementary FCN matrices, sequences, principal axis & angle, quaternions
//		• Inertia: principal axes, parallel-axis theorem, standard solids, sweeps
//		• Bodies: YAML descriptions of mass, inertia and orientation
//
// ✨ Conventions
//
//   - Vectors are column vectors with three components; matrices are 3×3.
//   - FCN maps N components to F components: F_r = FCN · N_r (passive).
//   - Angles are radians unless a flag or field says degrees.
//   - Eigenvalues are sorted from large to small and the eigenvector matrix
//     always has det ≥ 0, so it can be used as a rotation matrix.
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/   — Vec3, Mat3, builders, inverse, eigen-decomposition, gonum interop
//	rotation/ — AboutX/Y/Z, Sequence, PrincipalAxis, AxisAngle, quaternions
//	inertia/  — Principal, Validate, ParallelAxis, solids, AngularMomentum, Sweep
//	body/     — YAML body files
//
// Quick example, the rotation N → B through x, z and y:
//
//	bcn := matrix.Mul(rotation.AboutY(γ), rotation.AboutZ(β), rotation.AboutX(α))
//	axis, angle, err := rotation.PrincipalAxis(bcn)
//
// The rbd command (cmd/rbd) runs the worked example and exposes the same
// operations from the shell:
//
//	go install github.com/katalvlaran/rbd/cmd/rbd@latest
//	rbd demo
package rbd
