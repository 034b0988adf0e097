// SPDX-License-Identifier: MIT
// Package berreman: engine configuration.
//
// Contract:
//   - Option constructors panic on nonsensical values (programmer error).
//   - Evaluate never panics on structure or query content.

package berreman

import (
	"math"

	"github.com/katalvlaran/lvoptics/cmat"
)

// Defaults.
const (
	// DefaultDegeneracyTolerance is the relative eigenvalue separation below
	// which the eigen branch yields to the exponential branch.
	DefaultDegeneracyTolerance = 1e-6

	// DefaultPhysicalTolerance bounds the negative principal minors of the
	// anti-Hermitian part of ε accepted as round-off.
	DefaultPhysicalTolerance = 1e-9

	// DefaultSingularTolerance is the relative pivot threshold of the boundary
	// solve and of eigenvector inversion.
	DefaultSingularTolerance = cmat.DefaultSingularTolerance

	// DefaultStrictPhysics keeps ErrNonPhysicalTensor a warning.
	DefaultStrictPhysics = false
)

const (
	panicDegeneracyTolerance = "berreman: WithDegeneracyTolerance: tol must be finite, positive"
	panicPhysicalTolerance   = "berreman: WithPhysicalTolerance: tol must be finite, non-negative"
	panicSingularTolerance   = "berreman: WithSingularTolerance: tol must be finite, positive"
)

// Option configures an Engine.
type Option func(*Engine)

// WithDegeneracyTolerance sets the eigenvalue clustering threshold.
func WithDegeneracyTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicDegeneracyTolerance)
	}
	return func(e *Engine) { e.degTol = tol }
}

// WithPhysicalTolerance sets the gain tolerance of the physics diagnostic.
func WithPhysicalTolerance(tol float64) Option {
	if !(tol >= 0) || math.IsInf(tol, 0) {
		panic(panicPhysicalTolerance)
	}
	return func(e *Engine) { e.physTol = tol }
}

// WithSingularTolerance sets the relative pivot threshold.
func WithSingularTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicSingularTolerance)
	}
	return func(e *Engine) { e.singTol = tol }
}

// WithStrictPhysics makes ErrNonPhysicalTensor fatal to Evaluate instead of a
// recorded warning.
func WithStrictPhysics() Option {
	return func(e *Engine) { e.strict = true }
}
