// SPDX-License-Identifier: MIT
// Package sweep: sentinel errors and the per-entry error type.

package sweep

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySweepConfiguration indicates an empty wavelength list.
	ErrEmptySweepConfiguration = errors.New("sweep: empty sweep configuration")

	// ErrNilStructure indicates Run was given no structure.
	ErrNilStructure = errors.New("sweep: nil structure")

	// ErrInvalidWavelength indicates a non-positive or non-finite wavelength
	// in the input list.
	ErrInvalidWavelength = errors.New("sweep: invalid wavelength")

	// ErrInvalidKx indicates a non-finite in-plane wavenumber.
	ErrInvalidKx = errors.New("sweep: invalid kx")

	// ErrUnknownCoefficient indicates a coefficient name the dataset does
	// not provide.
	ErrUnknownCoefficient = errors.New("sweep: unknown coefficient")
)

// EntryError is the failure of one wavelength.
type EntryError struct {
	Index      int
	Wavelength float64
	Err        error
}

// Error implements error.
func (e *EntryError) Error() string {
	return fmt.Sprintf("sweep: entry %d (λ=%g m): %v", e.Index, e.Wavelength, e.Err)
}

// Unwrap returns the engine error.
func (e *EntryError) Unwrap() error { return e.Err }
