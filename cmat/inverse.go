// SPDX-License-Identifier: MIT
// Package cmat: Gauss–Jordan inverse and two-column solve for 4x4 systems.

package cmat

import "math/cmplx"

// DefaultSingularTolerance is the relative pivot threshold: a pivot p is
// treated as zero when |p| <= tol·max|a_ij|.
const DefaultSingularTolerance = 1e-12

// Inverse returns a⁻¹ using DefaultSingularTolerance.
func (a Mat4) Inverse() (Mat4, error) {
	return a.InverseTol(DefaultSingularTolerance)
}

// InverseTol returns a⁻¹, or ErrSingular when a pivot is negligible relative
// to tol·max|a_ij|.
// Blueprint:
//
//	Stage 1 (Validate): reject non-finite input and the zero matrix.
//	Stage 2 (Eliminate): for each column pick the largest pivot below the
//	                     diagonal, swap rows, normalize, clear the column.
//	Stage 3 (Finalize): the right half of the augmented system is a⁻¹.
//
// Complexity: O(4³) flops, no heap allocation.
func (a Mat4) InverseTol(tol float64) (Mat4, error) {
	// Stage 1: validate input
	if !a.IsFinite() {
		return Mat4{}, cmatErrorf(opInverse, ErrNaNInf)
	}
	scale := a.NormMax()
	if scale == 0 {
		return Mat4{}, cmatErrorf(opInverse, ErrSingular)
	}

	// Stage 2: Gauss–Jordan with partial pivoting
	work, inv := a, Identity4()
	var (
		col, row, j, p int
		best, v        float64
		piv, f         complex128
	)
	for col = 0; col < 4; col++ {
		p, best = col, cmplx.Abs(work[col][col])
		for row = col + 1; row < 4; row++ {
			if v = cmplx.Abs(work[row][col]); v > best {
				p, best = row, v
			}
		}
		if best <= tol*scale {
			return Mat4{}, cmatErrorf(opInverse, ErrSingular)
		}
		work[col], work[p] = work[p], work[col]
		inv[col], inv[p] = inv[p], inv[col]

		piv = work[col][col]
		for j = 0; j < 4; j++ {
			work[col][j] /= piv
			inv[col][j] /= piv
		}
		for row = 0; row < 4; row++ {
			if row == col {
				continue
			}
			if f = work[row][col]; f == 0 {
				continue
			}
			for j = 0; j < 4; j++ {
				work[row][j] -= f * work[col][j]
				inv[row][j] -= f * inv[col][j]
			}
		}
	}

	// Stage 3: return
	return inv, nil
}

// Solve4 solves a·x = b for the two columns of b with partial pivoting.
// It returns ErrSingular under the same relative criterion as InverseTol.
func Solve4(a Mat4, b Mat4x2, tol float64) (Mat4x2, error) {
	if !a.IsFinite() {
		return Mat4x2{}, cmatErrorf(opSolve, ErrNaNInf)
	}
	scale := a.NormMax()
	if scale == 0 {
		return Mat4x2{}, cmatErrorf(opSolve, ErrSingular)
	}

	var (
		col, row, j, p int
		best, v        float64
		piv, f         complex128
	)
	for col = 0; col < 4; col++ {
		p, best = col, cmplx.Abs(a[col][col])
		for row = col + 1; row < 4; row++ {
			if v = cmplx.Abs(a[row][col]); v > best {
				p, best = row, v
			}
		}
		if best <= tol*scale {
			return Mat4x2{}, cmatErrorf(opSolve, ErrSingular)
		}
		a[col], a[p] = a[p], a[col]
		b[col], b[p] = b[p], b[col]

		piv = a[col][col]
		for j = 0; j < 4; j++ {
			a[col][j] /= piv
		}
		b[col][0] /= piv
		b[col][1] /= piv
		for row = 0; row < 4; row++ {
			if row == col {
				continue
			}
			if f = a[row][col]; f == 0 {
				continue
			}
			for j = 0; j < 4; j++ {
				a[row][j] -= f * a[col][j]
			}
			b[row][0] -= f * b[col][0]
			b[row][1] -= f * b[col][1]
		}
	}

	return b, nil
}
