// SPDX-License-Identifier: MIT
// Package cmat: fixed-size value types and elementwise kernels.
//
// Conventions:
//   - Row-major indexing m[i][j] (row i, column j).
//   - All methods take value receivers and return fresh values; operands are
//     never mutated.
//   - Loop orders are fixed (i→j→k) so results are bitwise reproducible.

package cmat

import (
	"math"
	"math/cmplx"
)

// Vec4 is a 4-component complex column vector (a Berreman field state).
type Vec4 [4]complex128

// Mat2 is a 2x2 complex matrix (Jones amplitude matrix).
type Mat2 [2][2]complex128

// Mat3 is a 3x3 complex matrix (dielectric tensor).
type Mat3 [3][3]complex128

// Mat4 is a 4x4 complex matrix (Berreman Δ or propagator).
type Mat4 [4][4]complex128

// Mat4x2 holds two right-hand-side columns for Solve4.
type Mat4x2 [4][2]complex128

// Identity2 returns the 2x2 identity.
func Identity2() Mat2 { return Mat2{{1, 0}, {0, 1}} }

// Identity3 returns the 3x3 identity.
func Identity3() Mat3 { return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} }

// Identity4 returns the 4x4 identity.
func Identity4() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}

	return m
}

// Diag3 returns diag(a, b, c).
func Diag3(a, b, c complex128) Mat3 {
	return Mat3{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
}

// ---------- Mat2 ----------

// Mul returns a·b.
func (a Mat2) Mul(b Mat2) Mat2 {
	var out Mat2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j]
		}
	}

	return out
}

// Add returns a+b.
func (a Mat2) Add(b Mat2) Mat2 {
	return Mat2{{a[0][0] + b[0][0], a[0][1] + b[0][1]}, {a[1][0] + b[1][0], a[1][1] + b[1][1]}}
}

// Sub returns a−b.
func (a Mat2) Sub(b Mat2) Mat2 {
	return Mat2{{a[0][0] - b[0][0], a[0][1] - b[0][1]}, {a[1][0] - b[1][0], a[1][1] - b[1][1]}}
}

// Scale returns s·a.
func (a Mat2) Scale(s complex128) Mat2 {
	return Mat2{{s * a[0][0], s * a[0][1]}, {s * a[1][0], s * a[1][1]}}
}

// Det returns the determinant.
func (a Mat2) Det() complex128 { return a[0][0]*a[1][1] - a[0][1]*a[1][0] }

// Trace returns the trace.
func (a Mat2) Trace() complex128 { return a[0][0] + a[1][1] }

// ConjTranspose returns aᴴ.
func (a Mat2) ConjTranspose() Mat2 {
	return Mat2{
		{cmplx.Conj(a[0][0]), cmplx.Conj(a[1][0])},
		{cmplx.Conj(a[0][1]), cmplx.Conj(a[1][1])},
	}
}

// Inverse returns a⁻¹ or ErrSingular when |det| is negligible against the
// squared max-norm of a.
func (a Mat2) Inverse() (Mat2, error) {
	det := a.Det()
	scale := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			scale = math.Max(scale, cmplx.Abs(a[i][j]))
		}
	}
	if scale == 0 || cmplx.Abs(det) <= DefaultSingularTolerance*scale*scale {
		return Mat2{}, cmatErrorf(opInverse, ErrSingular)
	}
	inv := 1 / det

	return Mat2{{a[1][1] * inv, -a[0][1] * inv}, {-a[1][0] * inv, a[0][0] * inv}}, nil
}

// Eigenvalues returns the two eigenvalues of a via the closed-form quadratic.
func (a Mat2) Eigenvalues() (complex128, complex128) {
	half := a.Trace() / 2
	disc := cmplx.Sqrt(half*half - a.Det())

	return half + disc, half - disc
}

// ---------- Mat3 ----------

// Mul returns a·b.
func (a Mat3) Mul(b Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum complex128
			for k := 0; k < 3; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// Transpose returns aᵀ.
func (a Mat3) Transpose() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[j][i] = a[i][j]
		}
	}

	return out
}

// ConjTranspose returns aᴴ.
func (a Mat3) ConjTranspose() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[j][i] = cmplx.Conj(a[i][j])
		}
	}

	return out
}

// Sub returns a−b.
func (a Mat3) Sub(b Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a[i][j] - b[i][j]
		}
	}

	return out
}

// Scale returns s·a.
func (a Mat3) Scale(s complex128) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = s * a[i][j]
		}
	}

	return out
}

// NormMax returns max |a_ij|.
func (a Mat3) NormMax() float64 {
	m := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m = math.Max(m, cmplx.Abs(a[i][j]))
		}
	}

	return m
}

// Det returns the determinant by cofactor expansion along the first row.
func (a Mat3) Det() complex128 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// IsFinite reports whether every entry is finite.
func (a Mat3) IsFinite() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !finite(a[i][j]) {
				return false
			}
		}
	}

	return true
}

// ---------- Mat4 ----------

// Mul returns a·b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j] + a[i][3]*b[3][j]
		}
	}

	return out
}

// MulVec returns a·v.
func (a Mat4) MulVec(v Vec4) Vec4 {
	var out Vec4
	for i := 0; i < 4; i++ {
		out[i] = a[i][0]*v[0] + a[i][1]*v[1] + a[i][2]*v[2] + a[i][3]*v[3]
	}

	return out
}

// Add returns a+b.
func (a Mat4) Add(b Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = a[i][j] + b[i][j]
		}
	}

	return out
}

// Sub returns a−b.
func (a Mat4) Sub(b Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = a[i][j] - b[i][j]
		}
	}

	return out
}

// Scale returns s·a.
func (a Mat4) Scale(s complex128) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = s * a[i][j]
		}
	}

	return out
}

// Column returns column j as a vector.
func (a Mat4) Column(j int) Vec4 {
	return Vec4{a[0][j], a[1][j], a[2][j], a[3][j]}
}

// SetColumn returns a copy of a with column j replaced by v.
func (a Mat4) SetColumn(j int, v Vec4) Mat4 {
	for i := 0; i < 4; i++ {
		a[i][j] = v[i]
	}

	return a
}

// Norm1 returns the maximum absolute column sum.
func (a Mat4) Norm1() float64 {
	m := 0.0
	for j := 0; j < 4; j++ {
		s := 0.0
		for i := 0; i < 4; i++ {
			s += cmplx.Abs(a[i][j])
		}
		m = math.Max(m, s)
	}

	return m
}

// NormMax returns max |a_ij|.
func (a Mat4) NormMax() float64 {
	m := 0.0
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m = math.Max(m, cmplx.Abs(a[i][j]))
		}
	}

	return m
}

// IsFinite reports whether every entry is finite.
func (a Mat4) IsFinite() bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !finite(a[i][j]) {
				return false
			}
		}
	}

	return true
}

// IsReal reports whether every imaginary part is exactly zero.
func (a Mat4) IsReal() bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if imag(a[i][j]) != 0 {
				return false
			}
		}
	}

	return true
}

// ---------- Vec4 ----------

// Norm returns the Euclidean norm.
func (v Vec4) Norm() float64 {
	s := 0.0
	for i := 0; i < 4; i++ {
		s += real(v[i])*real(v[i]) + imag(v[i])*imag(v[i])
	}

	return math.Sqrt(s)
}

// Scale returns s·v.
func (v Vec4) Scale(s complex128) Vec4 {
	return Vec4{s * v[0], s * v[1], s * v[2], s * v[3]}
}

// finite reports whether both parts of z are finite.
func finite(z complex128) bool {
	return !math.IsNaN(real(z)) && !math.IsNaN(imag(z)) &&
		!math.IsInf(real(z), 0) && !math.IsInf(imag(z), 0)
}
