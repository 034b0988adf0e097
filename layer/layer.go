// SPDX-License-Identifier: MIT
// Package layer: the Layer interface and its three variants.

package layer

import (
	"math"

	"github.com/katalvlaran/lvoptics/material"
	"gonum.org/v1/gonum/spatial/r3"
)

// Slice is one homogeneous sub-layer of a flattened stack.
type Slice struct {
	Material  *material.Material
	Thickness float64 // metres, ≥ 0
}

// Layer is implemented only by *Homogeneous, *Twisted and *Repeated.
type Layer interface {
	// Thickness returns the total physical thickness in metres.
	Thickness() float64
	// Flatten returns the layer as ordered homogeneous slices, front first.
	// The returned slice is freshly allocated; its elements may share
	// *material.Material pointers with other layers.
	Flatten() []Slice

	sealed()
}

// validThickness reports whether d is finite and non-negative.
func validThickness(d float64) bool {
	return !math.IsNaN(d) && !math.IsInf(d, 0) && d >= 0
}

// ---------- Homogeneous ----------

// Homogeneous is a single material of constant orientation.
type Homogeneous struct {
	slice Slice
}

// NewHomogeneous returns a homogeneous layer of thickness d.
func NewHomogeneous(m *material.Material, d float64) (*Homogeneous, error) {
	if m == nil {
		return nil, layerErrorf(methodHomogeneous, "nil material")
	}
	if !validThickness(d) {
		return nil, layerErrorf(methodHomogeneous, "thickness %g", d)
	}

	return &Homogeneous{slice: Slice{Material: m, Thickness: d}}, nil
}

// Thickness implements Layer.
func (h *Homogeneous) Thickness() float64 { return h.slice.Thickness }

// Flatten implements Layer.
func (h *Homogeneous) Flatten() []Slice { return []Slice{h.slice} }

// Material returns the layer material.
func (h *Homogeneous) Material() *material.Material { return h.slice.Material }

func (*Homogeneous) sealed() {}

// ---------- Twisted ----------

// Twisted is a material whose orientation turns by Angle about the helix axis
// across its thickness, sampled by Divisions homogeneous slices. Slice i has
// thickness d/N and the base material rotated by Angle·i/N.
type Twisted struct {
	base   *material.Material
	d      float64
	angle  float64
	div    int
	axis   r3.Vec
	slices []Slice
}

// NewTwisted returns a twisted layer. Angle is in radians (sign gives the
// sense of rotation) and need not be a multiple of 2π.
func NewTwisted(m *material.Material, d, angle float64, div int, opts ...TwistOption) (*Twisted, error) {
	if m == nil {
		return nil, layerErrorf(methodTwisted, "nil material")
	}
	if !validThickness(d) {
		return nil, layerErrorf(methodTwisted, "thickness %g", d)
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return nil, layerErrorf(methodTwisted, "angle %g", angle)
	}
	if div <= 0 {
		return nil, layerErrorf(methodTwisted, "divisions %d", div)
	}
	cfg := newTwistConfig(opts...)

	slices := make([]Slice, div)
	dz := d / float64(div)
	for i := 0; i < div; i++ {
		if i == 0 {
			slices[i] = Slice{Material: m, Thickness: dz}
			continue
		}
		r := material.RotationAbout(cfg.axis, angle*float64(i)/float64(div))
		mi, err := m.Rotated(r)
		if err != nil {
			return nil, layerErrorf(methodTwisted, "slice %d: %v", i, err)
		}
		slices[i] = Slice{Material: mi, Thickness: dz}
	}

	return &Twisted{
		base:   m,
		d:      d,
		angle:  angle,
		div:    div,
		axis:   cfg.axis,
		slices: slices,
	}, nil
}

// Thickness implements Layer.
func (t *Twisted) Thickness() float64 { return t.d }

// Flatten implements Layer.
func (t *Twisted) Flatten() []Slice {
	out := make([]Slice, len(t.slices))
	copy(out, t.slices)

	return out
}

// Angle returns the total twist in radians.
func (t *Twisted) Angle() float64 { return t.angle }

// Axis returns the helix axis.
func (t *Twisted) Axis() r3.Vec { return t.axis }

// Divisions returns the slice count N.
func (t *Twisted) Divisions() int { return t.div }

// Material returns the unrotated base material.
func (t *Twisted) Material() *material.Material { return t.base }

func (*Twisted) sealed() {}

// ---------- Repeated ----------

// Repeated is an ordered group of layers repeated Count times. It is
// equivalent to concatenating the group Count times.
type Repeated struct {
	layers []Layer
	n      int
	unit   []Slice // one flattened period
}

// NewRepeated returns the group layers repeated n ≥ 1 times.
func NewRepeated(n int, layers ...Layer) (*Repeated, error) {
	if n < 1 {
		return nil, layerErrorf(methodRepeated, "count %d", n)
	}
	if len(layers) == 0 {
		return nil, layerErrorf(methodRepeated, "empty group")
	}
	var unit []Slice
	for i, l := range layers {
		if l == nil {
			return nil, layerErrorf(methodRepeated, "layer %d is nil", i)
		}
		unit = append(unit, l.Flatten()...)
	}
	group := make([]Layer, len(layers))
	copy(group, layers)

	return &Repeated{layers: group, n: n, unit: unit}, nil
}

// Thickness implements Layer.
func (r *Repeated) Thickness() float64 {
	sum := 0.0
	for _, s := range r.unit {
		sum += s.Thickness
	}

	return sum * float64(r.n)
}

// Flatten implements Layer.
func (r *Repeated) Flatten() []Slice {
	out := make([]Slice, 0, len(r.unit)*r.n)
	for i := 0; i < r.n; i++ {
		out = append(out, r.unit...)
	}

	return out
}

// Count returns the repeat count.
func (r *Repeated) Count() int { return r.n }

// Layers returns a copy of the repeated group.
func (r *Repeated) Layers() []Layer {
	out := make([]Layer, len(r.layers))
	copy(out, r.layers)

	return out
}

func (*Repeated) sealed() {}
