// SPDX-License-Identifier: MIT
// Package material: the Material type and the permittivity tensor.

package material

import (
	"math"

	"github.com/katalvlaran/lvoptics/cmat"
)

// Kind classifies the symmetry of the canonical tensor.
type Kind int

const (
	// Isotropic: nx = ny = nz.
	Isotropic Kind = iota
	// Uniaxial: nx = ny = no, nz = ne (optic axis along canonical z).
	Uniaxial
	// Biaxial: three distinct principal indices.
	Biaxial
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Isotropic:
		return "isotropic"
	case Uniaxial:
		return "uniaxial"
	case Biaxial:
		return "biaxial"
	default:
		return "unknown"
	}
}

// Material is an immutable dielectric medium: an index model plus an
// orientation. Share it by pointer; it is safe for concurrent use.
type Material struct {
	model IndexModel
	kind  Kind
	rot   Rotation
}

// Tensor is a relative permittivity tensor kept in factored form.
// Canonical is diagonal; Rotation orients it in the lab frame.
type Tensor struct {
	Canonical cmat.Mat3
	Rotation  Rotation
}

// Matrix returns the lab-frame tensor R·Canonical·Rᵀ.
func (t Tensor) Matrix() cmat.Mat3 {
	r := t.Rotation.Complex()

	return r.Mul(t.Canonical).Mul(r.Transpose())
}

// New returns a material driven by model. Constant models are validated
// immediately; other models are validated on every TensorAt call.
func New(model IndexModel, kind Kind) (*Material, error) {
	if model == nil {
		return nil, materialErrorf("New", "nil index model")
	}
	if c, ok := model.(Constant); ok {
		for i, n := range c {
			if !validIndex(n) {
				return nil, materialErrorf("New", "index[%d]=%v", i, n)
			}
		}
	}

	return &Material{model: model, kind: kind, rot: Identity()}, nil
}

// NewIsotropic returns a non-dispersive isotropic material of index n.
func NewIsotropic(n float64) (*Material, error) {
	c := complex(n, 0)

	return New(Constant{c, c, c}, Isotropic)
}

// NewUniaxial returns a non-dispersive uniaxial material with the
// extraordinary index ne along canonical z.
func NewUniaxial(no, ne float64) (*Material, error) {
	o, e := complex(no, 0), complex(ne, 0)

	return New(Constant{o, o, e}, Uniaxial)
}

// NewBiaxial returns a non-dispersive biaxial material.
func NewBiaxial(nx, ny, nz float64) (*Material, error) {
	return NewAbsorbing(complex(nx, 0), complex(ny, 0), complex(nz, 0))
}

// NewAbsorbing returns a non-dispersive material with complex principal
// indices n + iκ. The kind is derived from equality of the indices: all
// three equal is isotropic, any two equal is uniaxial.
func NewAbsorbing(nx, ny, nz complex128) (*Material, error) {
	kind := Biaxial
	switch {
	case nx == ny && ny == nz:
		kind = Isotropic
	case nx == ny || ny == nz || nx == nz:
		kind = Uniaxial
	}

	return New(Constant{nx, ny, nz}, kind)
}

// Kind returns the canonical symmetry class.
func (m *Material) Kind() Kind { return m.kind }

// IsIsotropic reports whether the material is isotropic.
func (m *Material) IsIsotropic() bool { return m.kind == Isotropic }

// Rotation returns the orientation applied to the canonical tensor.
func (m *Material) Rotation() Rotation { return m.rot }

// Model returns the index model.
func (m *Material) Model() IndexModel { return m.model }

// Indices returns the principal indices at wavelength after validation.
func (m *Material) Indices(wavelength float64) ([3]complex128, error) {
	if math.IsNaN(wavelength) || math.IsInf(wavelength, 0) || wavelength <= 0 {
		return [3]complex128{}, materialErrorf("Indices", "wavelength %g", wavelength)
	}
	idx, err := m.model.Indices(wavelength)
	if err != nil {
		return idx, err
	}
	for i, n := range idx {
		if !validIndex(n) {
			return idx, materialErrorf("Indices", "index[%d]=%v at %g m", i, n, wavelength)
		}
	}

	return idx, nil
}

// TensorAt returns the relative permittivity at a vacuum wavelength
// (metres): canonical diag(n²) together with the material rotation.
func (m *Material) TensorAt(wavelength float64) (Tensor, error) {
	idx, err := m.Indices(wavelength)
	if err != nil {
		return Tensor{}, err
	}

	return Tensor{
		Canonical: cmat.Diag3(idx[0]*idx[0], idx[1]*idx[1], idx[2]*idx[2]),
		Rotation:  m.rot,
	}, nil
}

// Rotated returns a new material oriented by r·(current rotation).
// The receiver is not modified.
func (m *Material) Rotated(r Rotation) (*Material, error) {
	if !r.IsOrthonormal(orthoTol) {
		return nil, materialErrorf("Rotated", "rotation is not orthonormal")
	}
	out := *m
	out.rot = r.Mul(m.rot)

	return &out, nil
}

// Mixed returns a material whose principal indices are blended with a guest
// medium of index guest at volume fraction f ∈ [0, 1] (see MixIndex).
// Orientation and kind are preserved.
func (m *Material) Mixed(guest, f float64) (*Material, error) {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return nil, materialErrorf("Mixed", "fraction %g", f)
	}
	if !validIndex(complex(guest, 0)) {
		return nil, materialErrorf("Mixed", "guest index %g", guest)
	}
	out := *m
	out.model = mixModel{base: m.model, guest: guest, fraction: f}

	return &out, nil
}
