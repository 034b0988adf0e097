// SPDX-License-Identifier: MIT
// Package polar: power matrices and the circular change of basis.

package polar

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvoptics/cmat"
)

var invSqrt2 = complex(1/math.Sqrt2, 0)

// forward holds the (L, R) Jones vectors as columns.
var forward = cmat.Mat2{
	{invSqrt2, invSqrt2},
	{1i * invSqrt2, -1i * invSqrt2},
}

// backward is forward for counter-propagating waves.
var backward = cmat.Mat2{
	{invSqrt2, invSqrt2},
	{-1i * invSqrt2, 1i * invSqrt2},
}

// PowerMatrix returns |a_ij|²·factor. factor carries the flux ratio of the
// exit and incidence media (Re q_back / Re q_front for transmission, 1 for
// reflection).
func PowerMatrix(amp cmat.Mat2, factor float64) [2][2]float64 {
	var out [2][2]float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			a := cmplx.Abs(amp[i][j])
			out[i][j] = a * a * factor
		}
	}

	return out
}

// ToCircular maps a (p, s) amplitude matrix to the (L, R) basis. The incident
// side always uses the forward basis; the output side uses the backward basis
// when reflected is true.
func ToCircular(amp cmat.Mat2, reflected bool) cmat.Mat2 {
	out := forward
	if reflected {
		out = backward
	}

	return out.ConjTranspose().Mul(amp).Mul(forward)
}

// Handedness of a polarization state.
type Handedness int

const (
	// Linear or elliptical with negligible circular character.
	Linear Handedness = iota
	// Left circular/elliptical.
	Left
	// Right circular/elliptical.
	Right
)

// String implements fmt.Stringer.
func (h Handedness) String() string {
	switch h {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "linear"
	}
}

// Eigenpolarization is one eigenmode of a Jones matrix.
type Eigenpolarization struct {
	Value  complex128 // eigenvalue; |Value|² is the power transmitted
	Vector [2]complex128
	Ratio  complex128 // s/p amplitude ratio (Inf for pure s)
	Sense  Handedness
}

// Eigenpolarizations returns the two eigenmodes of a (p, s) Jones matrix,
// classified by the phase of s/p: near +90° is Left, near −90° is Right.
// Modes whose phase is within tolDeg degrees of 0° or 180° are Linear.
func Eigenpolarizations(j cmat.Mat2, tolDeg float64) [2]Eigenpolarization {
	l1, l2 := j.Eigenvalues()
	var out [2]Eigenpolarization
	for k, l := range [2]complex128{l1, l2} {
		v := eigenvector(j, l)
		e := Eigenpolarization{Value: l, Vector: v, Ratio: cmplx.Inf()}
		if v[0] != 0 {
			e.Ratio = v[1] / v[0]
			deg := cmplx.Phase(e.Ratio) * 180 / math.Pi
			switch {
			case deg > tolDeg && deg < 180-tolDeg:
				e.Sense = Left
			case deg < -tolDeg && deg > -180+tolDeg:
				e.Sense = Right
			}
		}
		out[k] = e
	}

	return out
}

// eigenvector returns a unit null vector of j − λI.
func eigenvector(j cmat.Mat2, l complex128) [2]complex128 {
	a, b := j[0][0]-l, j[0][1]
	c, d := j[1][0], j[1][1]-l
	// pick the row with the larger norm
	var v [2]complex128
	if cmplx.Abs(a)+cmplx.Abs(b) >= cmplx.Abs(c)+cmplx.Abs(d) {
		v = [2]complex128{-b, a}
	} else {
		v = [2]complex128{-d, c}
	}
	n := math.Hypot(cmplx.Abs(v[0]), cmplx.Abs(v[1]))
	if n == 0 {
		return [2]complex128{1, 0}
	}

	return [2]complex128{v[0] / complex(n, 0), v[1] / complex(n, 0)}
}
