// SPDX-License-Identifier: MIT
// Package structure: sentinel errors.

package structure

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHalfSpace indicates a nil or anisotropic ambient material.
	ErrInvalidHalfSpace = errors.New("structure: half-space must be isotropic")

	// ErrNilLayer indicates a nil entry in the layer list.
	ErrNilLayer = errors.New("structure: nil layer")
)

// structureErrorf wraps err with the calling method and a detail message.
func structureErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
