// SPDX-License-Identifier: MIT
// Package cmat: eigen decomposition of 4x4 matrices.
//
// Purpose:
//   - Provide eigenvalues and right eigenvectors of the Berreman Δ matrix.
//
// Paths:
//   - Real input (lossless media, real Kx): gonum mat.Eigen (LAPACK dgeev port).
//   - Complex input (absorbing media): Faddeev–LeVerrier characteristic
//     polynomial, Durand–Kerner simultaneous root iteration with Newton
//     polishing, eigenvectors from the dominant adjugate column of (A − λI).
//
// Notes:
//   - Eigenvectors are returned as unit-norm columns of vecs.
//   - Clustered eigenvalues make the eigenvector basis ill-conditioned; callers
//     check MinSeparation and fall back to Expm4.

package cmat

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

const (
	// dkMaxIter caps Durand–Kerner sweeps.
	dkMaxIter = 500

	// dkStepTol is the relative step size treated as converged.
	dkStepTol = 1e-15

	// newtonPolish is the number of Newton refinements per root.
	newtonPolish = 3
)

// Eigen4 returns the eigenvalues of a and the matching unit eigenvectors
// (column j of vecs belongs to vals[j]).
//
// Errors:
//   - ErrNaNInf for non-finite input.
//   - ErrEigenFailed when factorization fails or a null vector cannot be
//     extracted (geometric multiplicity > 1).
func Eigen4(a Mat4) (vals [4]complex128, vecs Mat4, err error) {
	if !a.IsFinite() {
		return vals, vecs, cmatErrorf(opEigen, ErrNaNInf)
	}
	if a.IsReal() {
		return eigenReal(a)
	}

	return eigenComplex(a)
}

// eigenReal delegates to gonum's general real eigen solver.
func eigenReal(a Mat4) (vals [4]complex128, vecs Mat4, err error) {
	data := make([]float64, 16)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			data[i*4+j] = real(a[i][j])
		}
	}

	var eig mat.Eigen
	if ok := eig.Factorize(mat.NewDense(4, 4, data), mat.EigenRight); !ok {
		return vals, vecs, cmatErrorf(opEigen, ErrEigenFailed)
	}
	v := eig.Values(nil)
	var ev mat.CDense
	eig.VectorsTo(&ev)

	for j := 0; j < 4; j++ {
		vals[j] = v[j]
		var col Vec4
		for i := 0; i < 4; i++ {
			col[i] = ev.At(i, j)
		}
		n := col.Norm()
		if n == 0 || math.IsNaN(n) {
			return vals, vecs, cmatErrorf(opEigen, ErrEigenFailed)
		}
		vecs = vecs.SetColumn(j, col.Scale(complex(1/n, 0)))
	}

	return vals, vecs, nil
}

// eigenComplex handles general complex input.
func eigenComplex(a Mat4) (vals [4]complex128, vecs Mat4, err error) {
	coeffs := CharPoly(a)
	vals, err = quarticRoots(coeffs)
	if err != nil {
		return vals, vecs, cmatErrorf(opEigen, err)
	}

	I := Identity4()
	for j := 0; j < 4; j++ {
		v, ok := nullVector(a.Sub(I.Scale(vals[j])))
		if !ok {
			return vals, vecs, cmatErrorf(opEigen, ErrEigenFailed)
		}
		vecs = vecs.SetColumn(j, v)
	}

	return vals, vecs, nil
}

// CharPoly returns c such that det(λI − a) = λ⁴ + c[3]λ³ + c[2]λ² + c[1]λ + c[0]
// (Faddeev–LeVerrier recursion).
func CharPoly(a Mat4) [4]complex128 {
	var (
		c  [4]complex128
		m  Mat4 // M_k
		am Mat4 // A·M_k
		I  = Identity4()
	)
	prev := complex(1, 0) // c_n = 1
	for k := 1; k <= 4; k++ {
		m = am.Add(I.Scale(prev))
		am = a.Mul(m)
		tr := am[0][0] + am[1][1] + am[2][2] + am[3][3]
		prev = -tr / complex(float64(k), 0)
		c[4-k] = prev
	}

	return c
}

// quarticRoots finds the four roots of the monic quartic with coefficients c.
func quarticRoots(c [4]complex128) ([4]complex128, error) {
	var z [4]complex128

	// Start on a circle enclosing all roots (Cauchy bound).
	bound := 0.0
	for _, v := range c {
		bound = math.Max(bound, cmplx.Abs(v))
	}
	r := 1 + bound
	for j := 0; j < 4; j++ {
		z[j] = cmplx.Rect(r, 0.4+float64(j)*math.Pi/2)
	}

	var (
		num, den, d complex128
		step        float64
	)
	for it := 0; it < dkMaxIter; it++ {
		step = 0
		for j := 0; j < 4; j++ {
			num = polyEval(c, z[j])
			den = 1
			for k := 0; k < 4; k++ {
				if k != j {
					den *= z[j] - z[k]
				}
			}
			if den == 0 {
				// Coincident iterates: nudge apart and keep going.
				z[j] += complex(1e-10*r, 1e-10*r)
				step = math.Inf(1)
				continue
			}
			d = num / den
			z[j] -= d
			step = math.Max(step, cmplx.Abs(d)/(1+cmplx.Abs(z[j])))
		}
		if step < dkStepTol {
			break
		}
	}

	// Newton polish; keep a step only if it lowers the residual.
	for j := 0; j < 4; j++ {
		for it := 0; it < newtonPolish; it++ {
			dp := polyDeriv(c, z[j])
			if dp == 0 {
				break
			}
			cand := z[j] - polyEval(c, z[j])/dp
			if cmplx.Abs(polyEval(c, cand)) >= cmplx.Abs(polyEval(c, z[j])) {
				break
			}
			z[j] = cand
		}
		if !finite(z[j]) {
			return z, ErrNaNInf
		}
	}

	return z, nil
}

// polyEval evaluates the monic quartic by Horner's rule.
func polyEval(c [4]complex128, x complex128) complex128 {
	return (((x+c[3])*x+c[2])*x+c[1])*x + c[0]
}

// polyDeriv evaluates the derivative of the monic quartic.
func polyDeriv(c [4]complex128, x complex128) complex128 {
	return ((4*x+3*c[3])*x+2*c[2])*x + c[1]
}

// nullVector returns the dominant column of adj(b), normalized.
// For a rank-3 matrix every non-zero adjugate column spans the null space.
func nullVector(b Mat4) (Vec4, bool) {
	var (
		best  Vec4
		bestN float64
	)
	for k := 0; k < 4; k++ {
		var v Vec4
		for i := 0; i < 4; i++ {
			v[i] = cofactor(b, k, i) // adj[i][k] = C[k][i]
		}
		if n := v.Norm(); n > bestN {
			best, bestN = v, n
		}
	}
	if bestN == 0 || math.IsNaN(bestN) || math.IsInf(bestN, 0) {
		return Vec4{}, false
	}

	return best.Scale(complex(1/bestN, 0)), true
}

// cofactor returns (−1)^(r+c)·det(minor(b, r, c)).
func cofactor(b Mat4, r, c int) complex128 {
	var m Mat3
	ri := 0
	for i := 0; i < 4; i++ {
		if i == r {
			continue
		}
		cj := 0
		for j := 0; j < 4; j++ {
			if j == c {
				continue
			}
			m[ri][cj] = b[i][j]
			cj++
		}
		ri++
	}
	d := m.Det()
	if (r+c)%2 == 1 {
		return -d
	}

	return d
}

// MinSeparation returns min |vals[i] − vals[j]| over i ≠ j, and max |vals[i]|.
func MinSeparation(vals [4]complex128) (sep, scale float64) {
	sep = math.Inf(1)
	for i := 0; i < 4; i++ {
		scale = math.Max(scale, cmplx.Abs(vals[i]))
		for j := i + 1; j < 4; j++ {
			sep = math.Min(sep, cmplx.Abs(vals[i]-vals[j]))
		}
	}

	return sep, scale
}
