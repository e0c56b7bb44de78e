// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - Resolve, which applies options over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// The same Option values are accepted by the rotation and inertia packages,
// so one tolerance governs a whole computation.
package matrix

import (
	"fmt"
	"strings"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by structural checks
	// (symmetry, orthonormality, real-spectrum detection) and by the Jacobi
	// convergence test.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on input.
	DefaultValidateNaNInf = true

	// DefaultMaxIterations caps the number of Jacobi rotations.
	DefaultMaxIterations = 100

	// DefaultEigenMethod selects the LAPACK-backed gonum solvers.
	DefaultEigenMethod = EigenGonum
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid    = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicIterationsInvalid = "matrix: WithMaxIterations: n must be > 0"
	panicMethodInvalid     = "matrix: WithEigenMethod: unknown method"
)

// EigenMethod selects the solver used for symmetric matrices.
// Non-symmetric matrices always go through the general gonum solver.
type EigenMethod int

const (
	// EigenGonum uses gonum's mat.EigenSym (LAPACK dsyev).
	EigenGonum EigenMethod = iota
	// EigenJacobi uses classic Jacobi rotations on the largest off-diagonal
	// element; slower, but every step is visible and easy to follow.
	EigenJacobi
)

// String returns the canonical lower-case name of the method.
func (m EigenMethod) String() string {
	switch m {
	case EigenGonum:
		return "gonum"
	case EigenJacobi:
		return "jacobi"
	default:
		return fmt.Sprintf("EigenMethod(%d)", int(m))
	}
}

// ParseEigenMethod parses "gonum" or "jacobi" (case-insensitive).
func ParseEigenMethod(s string) (EigenMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gonum", "lapack", "":
		return EigenGonum, nil
	case "jacobi":
		return EigenJacobi, nil
	default:
		return 0, fmt.Errorf("matrix: unknown eigen method %q", s)
	}
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; read them through the
// accessor methods.
type Options struct {
	eps            float64     // >= 0; DefaultEpsilon
	validateNaNInf bool        // DefaultValidateNaNInf
	maxIterations  int         // > 0; DefaultMaxIterations
	method         EigenMethod // DefaultEigenMethod
}

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - Larger eps relaxes symmetry/orthonormality checks and stops Jacobi
//     earlier; use judiciously.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation; non-finite input then
// flows into the solvers and yields non-finite output instead of ErrNaNInf.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithMaxIterations caps the number of Jacobi rotations.
// Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithEigenMethod selects the symmetric eigen solver.
// Panics on values other than EigenGonum and EigenJacobi.
func WithEigenMethod(m EigenMethod) Option {
	if m != EigenGonum && m != EigenJacobi {
		panic(panicMethodInvalid)
	}

	return func(o *Options) { o.method = m }
}

// Resolve applies opts over the defaults in order (last writer wins) and
// returns the effective configuration.
// Complexity: O(len(opts)).
func Resolve(opts ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		maxIterations:  DefaultMaxIterations,
		method:         DefaultEigenMethod,
	}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// Epsilon returns the structural tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether non-finite input is rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// MaxIterations returns the Jacobi rotation budget.
func (o Options) MaxIterations() int { return o.maxIterations }

// Method returns the symmetric eigen solver.
func (o Options) Method() EigenMethod { return o.method }
