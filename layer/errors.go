// SPDX-License-Identifier: MIT
// Package layer: sentinel errors.

package layer

import (
	"errors"
	"fmt"
)

// ErrInvalidLayerParameters is returned for a negative or non-finite
// thickness, a non-positive subdivision or repeat count, a nil material, an
// empty group or a nil child layer. It is fatal to the layer being built.
var ErrInvalidLayerParameters = errors.New("layer: invalid layer parameters")

// Constructor names for error context.
const (
	methodHomogeneous = "NewHomogeneous"
	methodTwisted     = "NewTwisted"
	methodRepeated    = "NewRepeated"
	methodCholesteric = "Cholesteric"
)

// layerErrorf wraps ErrInvalidLayerParameters with constructor context.
func layerErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidLayerParameters)
}
