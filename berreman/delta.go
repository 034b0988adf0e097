// SPDX-License-Identifier: MIT
// Package berreman: the Berreman Δ operator and partial waves.

package berreman

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/lvoptics/cmat"
)

// Delta returns the Berreman operator for relative permittivity eps at
// reduced in-plane wavenumber kx, in the Ψ = (Ex, Hy, Ey, −Hx) ordering.
// Ez and Hz are eliminated through ε₃₃, which must be non-zero.
func Delta(eps cmat.Mat3, kx complex128) cmat.Mat4 {
	e := eps
	inv := 1 / e[2][2]
	kk := kx * kx

	var d cmat.Mat4
	d[0][0] = -kx * e[2][0] * inv
	d[0][1] = 1 - kk*inv
	d[0][2] = -kx * e[2][1] * inv

	d[1][0] = e[0][0] - e[0][2]*e[2][0]*inv
	d[1][1] = -kx * e[0][2] * inv
	d[1][2] = e[0][1] - e[0][2]*e[2][1]*inv

	d[2][3] = 1

	d[3][0] = e[1][0] - e[1][2]*e[2][0]*inv
	d[3][1] = -kx * e[1][2] * inv
	d[3][2] = e[1][1] - e[1][2]*e[2][1]*inv - kk

	return d
}

// Waves is the partial-wave decomposition of one homogeneous medium.
// Q[0], Q[1] are forward (+z) modes, Q[2], Q[3] backward; column j of Fields
// is the unit field vector of Q[j].
type Waves struct {
	Q      [4]complex128
	Fields cmat.Mat4
}

// Flux returns the z-component of the time-averaged Poynting vector carried
// by field vector v (up to a constant factor): Re(Ex·Hy* − Ey·Hx*).
func Flux(v cmat.Vec4) float64 {
	return real(v[0]*cmplx.Conj(v[1]) + v[2]*cmplx.Conj(v[3]))
}

// PartialWaves decomposes Δ(eps, kx) into its four eigenmodes and sorts them
// into forward and backward pairs. A mode is forward when it decays towards
// +z (Im q > 0) or, for propagating modes, when it carries positive flux.
//
// Errors: eigen failures from cmat, or ErrNonPhysicalTensor when the
// classification does not yield exactly two modes per direction.
func PartialWaves(eps cmat.Mat3, kx complex128) (Waves, error) {
	vals, vecs, err := cmat.Eigen4(Delta(eps, kx))
	if err != nil {
		return Waves{}, err
	}

	type mode struct {
		q   complex128
		v   cmat.Vec4
		fwd bool
	}
	modes := make([]mode, 4)
	nFwd := 0
	for j := 0; j < 4; j++ {
		q, v := vals[j], vecs.Column(j)
		tol := 1e-9 * math.Max(1, cmplx.Abs(q))
		fwd := imag(q) > tol || (math.Abs(imag(q)) <= tol && Flux(v) > 0)
		if fwd {
			nFwd++
		}
		modes[j] = mode{q: q, v: v, fwd: fwd}
	}
	if nFwd != 2 {
		return Waves{}, berremanErrorf("PartialWaves", ErrNonPhysicalTensor, "%d forward modes", nFwd)
	}
	// forward first, then by descending Re q for a stable order
	sort.SliceStable(modes, func(a, b int) bool {
		if modes[a].fwd != modes[b].fwd {
			return modes[a].fwd
		}

		return real(modes[a].q) > real(modes[b].q)
	})

	var w Waves
	for j, m := range modes {
		w.Q[j] = m.q
		w.Fields = w.Fields.SetColumn(j, m.v)
	}

	return w, nil
}

// Modes holds the analytic eigenmodes of an isotropic ambient medium.
type Modes struct {
	Q         complex128 // out-of-plane component, Im ≥ 0
	PForward  cmat.Vec4
	SForward  cmat.Vec4
	PBackward cmat.Vec4
	SBackward cmat.Vec4
}

// AmbientModes returns the partial waves of an isotropic medium of index n
// at reduced in-plane wavenumber kx:
//
//	p⁺ = (q/n,  n, 0, 0)    s⁺ = (0, 0, 1,  q)
//	p⁻ = (q/n, −n, 0, 0)    s⁻ = (0, 0, 1, −q)
//
// with q = √(n² − kx²) on the branch Im q ≥ 0 (Re q ≥ 0 when real). Each
// mode has unit tangential-plus-normal E amplitude and flux ±Re q for real n.
func AmbientModes(n, kx complex128) Modes {
	q := outOfPlane(n, kx)

	return Modes{
		Q:         q,
		PForward:  cmat.Vec4{q / n, n, 0, 0},
		SForward:  cmat.Vec4{0, 0, 1, q},
		PBackward: cmat.Vec4{q / n, -n, 0, 0},
		SBackward: cmat.Vec4{0, 0, 1, -q},
	}
}

// outOfPlane returns √(n² − kx²) on the decaying/forward branch.
func outOfPlane(n, kx complex128) complex128 {
	q := cmplx.Sqrt(n*n - kx*kx)
	if imag(q) < 0 || (imag(q) == 0 && real(q) < 0) {
		q = -q
	}

	return q
}
