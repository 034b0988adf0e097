// SPDX-License-Identifier: MIT
// Package sweep: wavelength grids.

package sweep

import "gonum.org/v1/gonum/floats"

// Linspace returns n evenly spaced values from start to stop inclusive.
// n = 1 yields {start}; n < 1 yields nil.
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n < 1:
		return nil
	case n == 1:
		return []float64{start}
	}

	return floats.Span(make([]float64, n), start, stop)
}
