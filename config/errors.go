// SPDX-License-Identifier: MIT
// Package config: sentinel errors.

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a malformed or inconsistent description.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownMaterial indicates a reference to an undeclared material.
	ErrUnknownMaterial = errors.New("config: unknown material")
)

// configErrorf wraps err with the location of the problem.
func configErrorf(where string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", where, fmt.Sprintf(format, args...), err)
}
