// SPDX-License-Identifier: MIT
// Package berreman: sentinel errors.
//
// Per-wavelength failures (ErrSingularBoundaryMatrix, ErrEvanescentIncidence,
// ErrNonPhysicalTensor when strict) are returned from Evaluate; the sweep
// isolates them to one result slot.

package berreman

import (
	"errors"
	"fmt"
)

var (
	// ErrSingularBoundaryMatrix indicates the partitioned boundary system could
	// not be solved (e.g. grazing incidence, where forward and backward front
	// modes coincide).
	ErrSingularBoundaryMatrix = errors.New("berreman: singular boundary matrix")

	// ErrNonPhysicalTensor flags a slice whose tensor implies optical gain
	// beyond tolerance, or whose propagator is not finite.
	ErrNonPhysicalTensor = errors.New("berreman: non-physical tensor")

	// ErrEvanescentIncidence indicates Kx exceeds the front index: no
	// propagating incident wave exists.
	ErrEvanescentIncidence = errors.New("berreman: evanescent incidence")

	// ErrInvalidQuery indicates a non-finite or non-positive wavelength, a
	// non-finite Kx or a nil structure.
	ErrInvalidQuery = errors.New("berreman: invalid query")
)

// berremanErrorf wraps err with an operation name and detail.
func berremanErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
