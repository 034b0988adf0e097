// SPDX-License-Identifier: MIT
// Package material: sentinel errors.

package material

import (
	"errors"
	"fmt"
)

// ErrInvalidMaterialParameters is returned when a refractive index has a
// non-positive real part, is NaN or ±Inf, when a rotation is not orthonormal,
// when a wavelength is not positive, or when a model is missing.
// It is fatal to the material being constructed or evaluated.
var ErrInvalidMaterialParameters = errors.New("material: invalid material parameters")

// materialErrorf wraps ErrInvalidMaterialParameters with method context.
func materialErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidMaterialParameters)
}
