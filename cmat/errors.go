// SPDX-License-Identifier: MIT
// Package cmat: sentinel error set.
// All kernels return these sentinels (optionally wrapped with cmatErrorf) and
// tests check them via errors.Is. No kernel panics on numeric input.

package cmat

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned when a pivot falls below the scale-aware
	// singularity threshold during inversion or solve.
	ErrSingular = errors.New("cmat: singular matrix")

	// ErrEigenFailed indicates that an eigen decomposition did not converge
	// or produced a rank-deficient eigenvector set.
	ErrEigenFailed = errors.New("cmat: eigen decomposition failed")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("cmat: NaN or Inf encountered")
)

// Operation tags used for error wrapping.
const (
	opInverse = "Inverse"
	opSolve   = "Solve4"
	opEigen   = "Eigen4"
)

// cmatErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func cmatErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
