// SPDX-License-Identifier: MIT
// Package berreman: slice propagators exp(iφΔ).
//
// Branch selection (first match wins):
//  1. isotropic tensor            → closed form on the p and s 2x2 blocks
//  2. kx = 0                      → closed form through f(A), A the 2x2
//                                   "ε-block" of Δ² (divided differences)
//  3. well separated eigenvalues  → V·diag(exp(iφq))·V⁻¹
//  4. otherwise                   → Expm4(iφΔ)
//
// Branches 1 and 2 cover exactly the cases whose eigenvalues are degenerate
// by symmetry (±q pairs of equal magnitude), where an eigenvector basis is
// ill-conditioned or missing.

package berreman

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvoptics/cmat"
)

// Branch identifies how a propagator was computed.
type Branch int

const (
	// BranchIsotropic is the scalar-tensor closed form.
	BranchIsotropic Branch = iota
	// BranchNormal is the normal-incidence closed form.
	BranchNormal
	// BranchEigen is the eigen decomposition.
	BranchEigen
	// BranchExponential is the scaling-and-squaring exponential.
	BranchExponential

	numBranches
)

// String implements fmt.Stringer.
func (b Branch) String() string {
	switch b {
	case BranchIsotropic:
		return "isotropic"
	case BranchNormal:
		return "normal"
	case BranchEigen:
		return "eigen"
	case BranchExponential:
		return "exponential"
	default:
		return "unknown"
	}
}

// isotropicTol is the relative tolerance for treating a tensor as scalar.
const isotropicTol = 1e-12

// smallArg is the |x| below which sin(x)/x uses its Taylor expansion.
const smallArg = 1e-8

// Propagator returns exp(i·phi·Δ(eps, kx)), phi = k0·d, and the branch used.
func (e *Engine) Propagator(eps cmat.Mat3, kx complex128, phi float64) (cmat.Mat4, Branch, error) {
	if phi == 0 {
		return cmat.Identity4(), BranchIsotropic, nil
	}
	if n2, ok := scalarTensor(eps); ok {
		return isotropicPropagator(n2, kx, phi), BranchIsotropic, nil
	}
	if kx == 0 {
		return normalPropagator(eps, phi, e.degTol), BranchNormal, nil
	}

	delta := Delta(eps, kx)
	if p, ok := e.eigenPropagator(delta, phi); ok {
		return p, BranchEigen, nil
	}
	p, err := cmat.Expm4(delta.Scale(complex(0, phi)))
	if err != nil {
		return cmat.Mat4{}, BranchExponential, err
	}

	return p, BranchExponential, nil
}

// scalarTensor reports whether eps ≈ ε·I and returns ε.
func scalarTensor(eps cmat.Mat3) (complex128, bool) {
	s := eps.NormMax()
	tol := isotropicTol * math.Max(1, s)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				if cmplx.Abs(eps[i][i]-eps[0][0]) > tol {
					return 0, false
				}
			} else if cmplx.Abs(eps[i][j]) > tol {
				return 0, false
			}
		}
	}

	return eps[0][0], true
}

// sinc returns sin(phi·s)/s, continuous at s = 0.
func sinc(phi float64, s complex128) complex128 {
	x := complex(phi, 0) * s
	if cmplx.Abs(x) < smallArg {
		return complex(phi, 0) * (1 - x*x/6)
	}

	return cmplx.Sin(x) / s
}

// isotropicPropagator exponentiates the two blocks [[0, β], [γ, 0]] with
// βγ = q² = ε − kx²:  exp(iφB) = cos(φq)·I + i·sin(φq)/q·B.
func isotropicPropagator(eps, kx complex128, phi float64) cmat.Mat4 {
	q := cmplx.Sqrt(eps - kx*kx)
	c := cmplx.Cos(complex(phi, 0) * q)
	g := sinc(phi, q)
	i := complex(0, 1)

	var p cmat.Mat4
	// p block (Ex, Hy)
	p[0][0], p[0][1] = c, i*(1-kx*kx/eps)*g
	p[1][0], p[1][1] = i*eps*g, c
	// s block (Ey, −Hx)
	p[2][2], p[2][3] = c, i*g
	p[3][2], p[3][3] = i*(eps-kx*kx)*g, c

	return p
}

// normalPropagator handles kx = 0, where Δ = [[0, I], [A, 0]] in the
// (Ex, Ey | Hy, −Hx) split and Δ² = diag(A, A). With s = √λ:
//
//	P_uu = P_vv = cos(φ√A)   P_uv = i·sin(φ√A)/√A   P_vu = i·√A·sin(φ√A)
//
// Each function of A is built from its eigenvalues by divided differences,
// which stay exact when A is defective or its eigenvalues coincide.
func normalPropagator(eps cmat.Mat3, phi, tol float64) cmat.Mat4 {
	inv := 1 / eps[2][2]
	a := cmat.Mat2{
		{eps[0][0] - eps[0][2]*eps[2][0]*inv, eps[0][1] - eps[0][2]*eps[2][1]*inv},
		{eps[1][0] - eps[1][2]*eps[2][0]*inv, eps[1][1] - eps[1][2]*eps[2][1]*inv},
	}
	l1, l2 := a.Eigenvalues()

	fc := func(l complex128) complex128 { return cmplx.Cos(complex(phi, 0) * cmplx.Sqrt(l)) }
	fg := func(l complex128) complex128 { return sinc(phi, cmplx.Sqrt(l)) }
	fh := func(l complex128) complex128 {
		s := cmplx.Sqrt(l)
		return s * cmplx.Sin(complex(phi, 0)*s)
	}
	// derivatives d/dλ, used when λ1 ≈ λ2
	dc := func(l complex128) complex128 { return -complex(phi/2, 0) * fg(l) }
	dg := func(l complex128) complex128 {
		if cmplx.Abs(l)*phi*phi < smallArg {
			return -complex(phi*phi*phi/6, 0)
		}
		return (complex(phi, 0)*fc(l) - fg(l)) / (2 * l)
	}
	dh := func(l complex128) complex128 { return (fg(l) + complex(phi, 0)*fc(l)) / 2 }

	near := cmplx.Abs(l1-l2) <= tol*math.Max(1, math.Max(cmplx.Abs(l1), cmplx.Abs(l2)))
	mid := (l1 + l2) / 2
	shifted := a.Sub(cmat.Identity2().Scale(l1))
	matFn := func(f, df func(complex128) complex128) cmat.Mat2 {
		var dd complex128
		if near {
			dd = df(mid)
		} else {
			dd = (f(l1) - f(l2)) / (l1 - l2)
		}
		return cmat.Identity2().Scale(f(l1)).Add(shifted.Scale(dd))
	}

	c := matFn(fc, dc)
	g := matFn(fg, dg).Scale(complex(0, 1))
	h := matFn(fh, dh).Scale(complex(0, 1))

	// u = (0, 2), v = (1, 3)
	u := [2]int{0, 2}
	v := [2]int{1, 3}
	var p cmat.Mat4
	for r := 0; r < 2; r++ {
		for k := 0; k < 2; k++ {
			p[u[r]][u[k]] = c[r][k]
			p[v[r]][v[k]] = c[r][k]
			p[u[r]][v[k]] = g[r][k]
			p[v[r]][u[k]] = h[r][k]
		}
	}

	return p
}

// eigenPropagator returns V·diag(exp(iφq))·V⁻¹ when the eigenvalues of delta
// are well separated and V is invertible.
func (e *Engine) eigenPropagator(delta cmat.Mat4, phi float64) (cmat.Mat4, bool) {
	vals, vecs, err := cmat.Eigen4(delta)
	if err != nil {
		return cmat.Mat4{}, false
	}
	sep, scale := cmat.MinSeparation(vals)
	if sep <= e.degTol*math.Max(1, scale) {
		return cmat.Mat4{}, false
	}
	vinv, err := vecs.InverseTol(e.singTol)
	if err != nil {
		return cmat.Mat4{}, false
	}

	var scaled cmat.Mat4
	for j := 0; j < 4; j++ {
		ph := cmplx.Exp(complex(0, phi) * vals[j])
		for i := 0; i < 4; i++ {
			scaled[i][j] = vecs[i][j] * ph
		}
	}

	return scaled.Mul(vinv), true
}
