// SPDX-License-Identifier: MIT
// Package layer: functional options for twisted layers.
//
// Contract:
//   • Option constructors validate and panic on meaningless input
//     (programmer error). Layer constructors never panic.

package layer

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvoptics/material"
)

// TwistOption customizes NewTwisted.
type TwistOption func(*twistConfig)

type twistConfig struct {
	axis r3.Vec // helix axis; DefaultAxis unless overridden
}

// DefaultAxis is the helix axis used when WithAxis is not given: the stack
// normal.
var DefaultAxis = material.Ez

// WithAxis sets the helix axis. Panics on the zero vector.
func WithAxis(axis r3.Vec) TwistOption {
	if r3.Norm(axis) == 0 {
		panic("layer: WithAxis(zero vector)")
	}
	return func(c *twistConfig) {
		c.axis = r3.Unit(axis)
	}
}

// newTwistConfig resolves options over the defaults.
func newTwistConfig(opts ...TwistOption) twistConfig {
	cfg := twistConfig{axis: DefaultAxis}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
