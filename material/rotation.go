// SPDX-License-Identifier: MIT
// Package material: orientation rotations.

package material

import (
	"math"

	"github.com/katalvlaran/lvoptics/cmat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Lab-frame axes. Ez is the stack normal and the default helix axis.
var (
	Ex = r3.Vec{X: 1}
	Ey = r3.Vec{Y: 1}
	Ez = r3.Vec{Z: 1}
)

// orthoTol bounds ‖RᵀR − I‖max for a matrix accepted as a rotation.
const orthoTol = 1e-9

// Rotation is a real 3x3 orthonormal matrix acting on column vectors.
type Rotation [3][3]float64

// Identity returns the identity rotation.
func Identity() Rotation {
	return Rotation{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// RotationAbout returns the active rotation by angle (radians, right-handed)
// about axis, by Rodrigues' formula. A zero axis yields the identity.
func RotationAbout(axis r3.Vec, angle float64) Rotation {
	if r3.Norm(axis) == 0 {
		return Identity()
	}
	k := r3.Unit(axis)
	c, s := math.Cos(angle), math.Sin(angle)
	t := 1 - c

	return Rotation{
		{c + t*k.X*k.X, t*k.X*k.Y - s*k.Z, t*k.X*k.Z + s*k.Y},
		{t*k.Y*k.X + s*k.Z, c + t*k.Y*k.Y, t*k.Y*k.Z - s*k.X},
		{t*k.Z*k.X - s*k.Y, t*k.Z*k.Y + s*k.X, c + t*k.Z*k.Z},
	}
}

// Mul returns r·o (apply o first, then r).
func (r Rotation) Mul(o Rotation) Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = r[i][0]*o[0][j] + r[i][1]*o[1][j] + r[i][2]*o[2][j]
		}
	}

	return out
}

// Transpose returns rᵀ (the inverse rotation).
func (r Rotation) Transpose() Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[j][i] = r[i][j]
		}
	}

	return out
}

// Apply rotates v.
func (r Rotation) Apply(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: r[0][0]*v.X + r[0][1]*v.Y + r[0][2]*v.Z,
		Y: r[1][0]*v.X + r[1][1]*v.Y + r[1][2]*v.Z,
		Z: r[2][0]*v.X + r[2][1]*v.Y + r[2][2]*v.Z,
	}
}

// IsOrthonormal reports whether rᵀr = I within tol and det r = +1.
func (r Rotation) IsOrthonormal(tol float64) bool {
	p := r.Transpose().Mul(r)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if v := p[i][j]; math.IsNaN(v) || math.Abs(v-want) > tol {
				return false
			}
		}
	}
	det := r[0][0]*(r[1][1]*r[2][2]-r[1][2]*r[2][1]) -
		r[0][1]*(r[1][0]*r[2][2]-r[1][2]*r[2][0]) +
		r[0][2]*(r[1][0]*r[2][1]-r[1][1]*r[2][0])

	return math.Abs(det-1) <= tol
}

// Complex lifts r into a complex 3x3 matrix.
func (r Rotation) Complex() cmat.Mat3 {
	var out cmat.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = complex(r[i][j], 0)
		}
	}

	return out
}
