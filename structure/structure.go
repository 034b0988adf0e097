// SPDX-License-Identifier: MIT
// Package structure: half-spaces, the immutable stack and its slice arena.

package structure

import (
	"math/cmplx"

	"github.com/katalvlaran/lvoptics/layer"
	"github.com/katalvlaran/lvoptics/material"
)

// HalfSpace is a semi-infinite isotropic ambient medium.
type HalfSpace struct {
	m *material.Material
}

// NewHalfSpace wraps an isotropic material as an ambient medium.
func NewHalfSpace(m *material.Material) (HalfSpace, error) {
	if m == nil {
		return HalfSpace{}, structureErrorf("NewHalfSpace", ErrInvalidHalfSpace, "nil material")
	}
	if !m.IsIsotropic() {
		return HalfSpace{}, structureErrorf("NewHalfSpace", ErrInvalidHalfSpace, "material is %s", m.Kind())
	}
	if c, ok := m.Model().(material.Constant); ok && !sameIndex(c) {
		return HalfSpace{}, structureErrorf("NewHalfSpace", ErrInvalidHalfSpace, "indices %v differ", c)
	}

	return HalfSpace{m: m}, nil
}

// indexTol is the relative spread allowed between the three indices of an
// ambient medium.
const indexTol = 1e-12

// sameIndex reports whether the three principal indices agree.
func sameIndex(idx [3]complex128) bool {
	ref := cmplx.Abs(idx[0])
	for _, n := range idx[1:] {
		if cmplx.Abs(n-idx[0]) > indexTol*ref {
			return false
		}
	}

	return true
}

// Material returns the ambient material.
func (h HalfSpace) Material() *material.Material { return h.m }

// Index returns the (possibly complex) refractive index at wavelength.
// A model yielding unequal principal indices fails with ErrInvalidHalfSpace.
func (h HalfSpace) Index(wavelength float64) (complex128, error) {
	idx, err := h.m.Indices(wavelength)
	if err != nil {
		return 0, err
	}
	if !sameIndex(idx) {
		return 0, structureErrorf("Index", ErrInvalidHalfSpace, "anisotropic indices %v at %g m", idx, wavelength)
	}

	return idx[0], nil
}

// sliceKey identifies slices that produce the same propagator.
type sliceKey struct {
	m *material.Material
	d float64
}

// Structure is an immutable stack bounded by two half-spaces.
type Structure struct {
	front, back HalfSpace
	layers      []layer.Layer

	slices []layer.Slice // flattened arena, front first
	rep    []int         // rep[i] = first index with the same sliceKey
	unique int           // number of distinct slices
	depth  float64       // total thickness
}

// New builds a structure and caches its flattened slice list.
//
// Steps:
//  1. Validate the half-spaces and every layer.
//  2. Flatten each layer once, appending into one arena.
//  3. Map each slice to its first identical occurrence.
//
// Complexity: O(S) time and memory for S slices.
func New(front, back HalfSpace, layers ...layer.Layer) (*Structure, error) {
	if front.m == nil || back.m == nil {
		return nil, structureErrorf("New", ErrInvalidHalfSpace, "zero HalfSpace")
	}
	for i, l := range layers {
		if l == nil {
			return nil, structureErrorf("New", ErrNilLayer, "layer %d", i)
		}
	}

	s := &Structure{
		front:  front,
		back:   back,
		layers: append([]layer.Layer(nil), layers...),
	}
	for _, l := range layers {
		s.slices = append(s.slices, l.Flatten()...)
	}

	s.rep = make([]int, len(s.slices))
	first := make(map[sliceKey]int, len(s.slices))
	for i, sl := range s.slices {
		s.depth += sl.Thickness
		k := sliceKey{m: sl.Material, d: sl.Thickness}
		if j, ok := first[k]; ok {
			s.rep[i] = j
			continue
		}
		first[k] = i
		s.rep[i] = i
	}
	s.unique = len(first)

	return s, nil
}

// Front returns the incidence half-space.
func (s *Structure) Front() HalfSpace { return s.front }

// Back returns the exit half-space.
func (s *Structure) Back() HalfSpace { return s.back }

// Layers returns a copy of the layer list.
func (s *Structure) Layers() []layer.Layer {
	return append([]layer.Layer(nil), s.layers...)
}

// NumSlices returns the number of flattened slices.
func (s *Structure) NumSlices() int { return len(s.slices) }

// Slice returns slice i (front first). It panics when i is out of range,
// like indexing.
func (s *Structure) Slice(i int) layer.Slice { return s.slices[i] }

// Slices returns a copy of the slice arena.
func (s *Structure) Slices() []layer.Slice {
	return append([]layer.Slice(nil), s.slices...)
}

// Representative returns the index of the first slice identical to slice i.
// Representative(i) ≤ i, with equality for the first occurrence.
func (s *Structure) Representative(i int) int { return s.rep[i] }

// UniqueSlices returns the number of distinct slices.
func (s *Structure) UniqueSlices() int { return s.unique }

// Thickness returns the total stack thickness in metres.
func (s *Structure) Thickness() float64 { return s.depth }
