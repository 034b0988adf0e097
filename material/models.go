// SPDX-License-Identifier: MIT
// Package material: index models (dispersion providers).
//
// An IndexModel returns the three principal refractive indices (nx, ny, nz)
// of the canonical, unrotated tensor at a vacuum wavelength in metres.
// Complex indices n + iκ model absorption (κ ≥ 0 for passive media).

package material

import (
	"math"
	"math/cmplx"
)

// metresPerMicron converts module wavelengths to the micrometre convention
// of the Cauchy and Sellmeier formulas.
const metresPerMicron = 1e-6

// IndexModel yields principal refractive indices at a wavelength.
// Implementations must be safe for concurrent use.
type IndexModel interface {
	Indices(wavelength float64) ([3]complex128, error)
}

// Constant is a non-dispersive model.
type Constant [3]complex128

// Indices implements IndexModel.
func (c Constant) Indices(float64) ([3]complex128, error) { return c, nil }

// IndexFunc adapts a plain function (e.g. a tabulated interpolator supplied by
// a data provider) to IndexModel.
type IndexFunc func(wavelength float64) [3]complex128

// Indices implements IndexModel.
func (f IndexFunc) Indices(wavelength float64) ([3]complex128, error) {
	return f(wavelength), nil
}

// Cauchy is an isotropic model n(λ) = A + B/λ² + C/λ⁴ with λ in micrometres.
type Cauchy struct {
	A, B, C float64
}

// Indices implements IndexModel.
func (c Cauchy) Indices(wavelength float64) ([3]complex128, error) {
	l2 := wavelength / metresPerMicron
	l2 *= l2
	n := complex(c.A+c.B/l2+c.C/(l2*l2), 0)

	return [3]complex128{n, n, n}, nil
}

// Sellmeier is a (possibly anisotropic) model with one three-term Sellmeier
// equation per principal axis: n² = 1 + Σ B[k]·λ²/(λ² − C[k]), λ in µm,
// C in µm².
type Sellmeier struct {
	B, C [3][3]float64 // [axis][term]
}

// Indices implements IndexModel.
func (s Sellmeier) Indices(wavelength float64) ([3]complex128, error) {
	l := wavelength / metresPerMicron
	l2 := l * l
	var out [3]complex128
	for axis := 0; axis < 3; axis++ {
		n2 := 1.0
		for k := 0; k < 3; k++ {
			d := l2 - s.C[axis][k]
			if d == 0 {
				return out, materialErrorf("Sellmeier", "pole at %g m", wavelength)
			}
			n2 += s.B[axis][k] * l2 / d
		}
		out[axis] = cmplx.Sqrt(complex(n2, 0))
	}

	return out, nil
}

// IsotropicSellmeier returns a Sellmeier model with the same coefficients on
// every axis.
func IsotropicSellmeier(b, c [3]float64) Sellmeier {
	return Sellmeier{B: [3][3]float64{b, b, b}, C: [3][3]float64{c, c, c}}
}

// MixIndex blends two refractive indices for a volume fraction f of the second
// component by interpolating linearly in √n: (√n1·(1−f) + √n2·f)².
// Used for solvent-infiltration (swelling) studies of porous films.
func MixIndex(n1, n2, f float64) float64 {
	v := math.Sqrt(n1)*(1-f) + math.Sqrt(n2)*f

	return v * v
}

// mixModel applies MixIndex axis-wise to a base model.
type mixModel struct {
	base     IndexModel
	guest    float64
	fraction float64
}

// Indices implements IndexModel.
func (m mixModel) Indices(wavelength float64) ([3]complex128, error) {
	idx, err := m.base.Indices(wavelength)
	if err != nil {
		return idx, err
	}
	for i := range idx {
		idx[i] = complex(MixIndex(real(idx[i]), m.guest, m.fraction), imag(idx[i])*(1-m.fraction))
	}

	return idx, nil
}

// validIndex reports whether n has a finite, positive real part and a finite
// imaginary part.
func validIndex(n complex128) bool {
	re, im := real(n), imag(n)

	return !math.IsNaN(re) && !math.IsInf(re, 0) && re > 0 &&
		!math.IsNaN(im) && !math.IsInf(im, 0)
}
