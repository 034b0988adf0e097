// SPDX-License-Identifier: MIT
// Package cmat: matrix exponential.

package cmat

import "math"

const (
	// expmTargetNorm bounds ‖x/2^s‖₁ before the Taylor series is summed.
	expmTargetNorm = 0.5

	// expmTerms is enough Taylor terms for full double precision at
	// ‖x‖₁ ≤ expmTargetNorm (0.5¹⁸/18! < 1e-21).
	expmTerms = 18

	// expmMaxSquarings caps the scaling exponent for huge inputs.
	expmMaxSquarings = 64
)

// Expm4 returns exp(x) by scaling and squaring a truncated Taylor series.
// Implementation:
//   - Stage 1: choose s so that ‖x‖₁/2^s ≤ 0.5.
//   - Stage 2: sum the Taylor series of y = x/2^s.
//   - Stage 3: square the result s times.
//
// Notes:
//   - Works for defective and clustered spectra where an eigenvector basis is
//     ill-conditioned; this is the engine's fallback propagator.
//   - Returns ErrNaNInf for non-finite input or output.
func Expm4(x Mat4) (Mat4, error) {
	if !x.IsFinite() {
		return Mat4{}, ErrNaNInf
	}

	// Stage 1: scaling exponent
	s := 0
	if n := x.Norm1(); n > expmTargetNorm {
		s = int(math.Ceil(math.Log2(n / expmTargetNorm)))
		if s > expmMaxSquarings {
			s = expmMaxSquarings
		}
	}
	y := x.Scale(complex(math.Ldexp(1, -s), 0))

	// Stage 2: Taylor sum
	sum, term := Identity4(), Identity4()
	for k := 1; k <= expmTerms; k++ {
		term = term.Mul(y).Scale(complex(1/float64(k), 0))
		sum = sum.Add(term)
	}

	// Stage 3: undo the scaling
	for i := 0; i < s; i++ {
		sum = sum.Mul(sum)
	}
	if !sum.IsFinite() {
		return Mat4{}, ErrNaNInf
	}

	return sum, nil
}
