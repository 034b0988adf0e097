// SPDX-License-Identifier: MIT
// Package berreman: passivity diagnostic.

package berreman

import (
	"math"

	"github.com/katalvlaran/lvoptics/cmat"
)

// IsPassive reports whether eps describes a passive (lossless or absorbing)
// medium: its anti-Hermitian part G = (ε − εᴴ)/2i must be positive
// semi-definite. Every principal minor of G is checked against −tol·s^k,
// where s = max(1, ‖G‖max) and k is the minor order.
func IsPassive(eps cmat.Mat3, tol float64) bool {
	g := eps.Sub(eps.ConjTranspose()).Scale(complex(0, -0.5))
	s := math.Max(1, g.NormMax())

	// order 1
	for i := 0; i < 3; i++ {
		if real(g[i][i]) < -tol*s {
			return false
		}
	}
	// order 2
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			m := real(g[i][i]*g[j][j] - g[i][j]*g[j][i])
			if m < -tol*s*s {
				return false
			}
		}
	}
	// order 3
	return real(g.Det()) >= -tol*s*s*s
}
