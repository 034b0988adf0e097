// SPDX-License-Identifier: MIT
// Package config: decoding, validation and construction.

package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvoptics/berreman"
	"github.com/katalvlaran/lvoptics/layer"
	"github.com/katalvlaran/lvoptics/material"
	"github.com/katalvlaran/lvoptics/structure"
	"github.com/katalvlaran/lvoptics/sweep"
)

const nm = 1e-9

// Decode parses a YAML document. Unknown fields are rejected.
func Decode(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, configErrorf("Decode", ErrInvalidConfig, "%v", err)
	}

	return &c, nil
}

// Setup is a built simulation ready to run.
type Setup struct {
	Structure   *structure.Structure
	Wavelengths []float64 // metres, in document order
	Kx          float64
	Options     []sweep.Option
}

// Run executes the sweep.
func (s *Setup) Run(ctx context.Context, opts ...sweep.Option) (*sweep.Dataset, error) {
	all := append(append([]sweep.Option(nil), s.Options...), opts...)

	return sweep.Run(ctx, s.Structure, s.Wavelengths, s.Kx, all...)
}

// ---------- validation ----------

// Validate checks references, layer shapes and the sweep description
// without building anything. All problems are reported, joined.
func (c *Config) Validate() error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	if len(c.Materials) == 0 {
		add(configErrorf("materials", ErrInvalidConfig, "none declared"))
	}
	for _, name := range c.materialNames() {
		add(c.Materials[name].validate(name))
	}
	add(c.ref("front", c.Front))
	add(c.ref("back", c.Back))
	for i, l := range c.Layers {
		add(c.validateLayer(fmt.Sprintf("layers[%d]", i), l))
	}
	add(c.Sweep.validate())

	return errors.Join(errs...)
}

func (c *Config) materialNames() []string {
	names := make([]string, 0, len(c.Materials))
	for n := range c.Materials {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

func (c *Config) ref(where, name string) error {
	if _, ok := c.Materials[name]; !ok {
		return configErrorf(where, ErrUnknownMaterial, "%q", name)
	}

	return nil
}

func (m MaterialSpec) validate(name string) error {
	where := "materials." + name
	switch strings.ToLower(m.Kind) {
	case "isotropic", "uniaxial":
	case "biaxial":
		if len(m.Indices) != 3 {
			return configErrorf(where, ErrInvalidConfig, "biaxial needs 3 indices, got %d", len(m.Indices))
		}
	case "cauchy":
		if m.Cauchy == nil {
			return configErrorf(where, ErrInvalidConfig, "cauchy coefficients missing")
		}
	case "sellmeier":
		if m.Sellmeier == nil || len(m.Sellmeier.B) != 3 || len(m.Sellmeier.C) != 3 {
			return configErrorf(where, ErrInvalidConfig, "sellmeier needs 3 b and 3 c terms")
		}
	default:
		return configErrorf(where, ErrInvalidConfig, "kind %q", m.Kind)
	}
	if len(m.Kappa) != 0 && len(m.Kappa) != 3 {
		return configErrorf(where, ErrInvalidConfig, "kappa needs 3 values, got %d", len(m.Kappa))
	}
	for i, r := range m.Rotations {
		if len(r.Axis) != 3 {
			return configErrorf(where, ErrInvalidConfig, "rotations[%d]: axis needs 3 components", i)
		}
		if err := axisOK(fmt.Sprintf("%s.rotations[%d]", where, i), r.Axis); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateLayer(where string, l LayerSpec) error {
	set := 0
	for _, p := range []bool{l.Homogeneous != nil, l.Twisted != nil, l.Repeated != nil, l.Cholesteric != nil} {
		if p {
			set++
		}
	}
	if set != 1 {
		return configErrorf(where, ErrInvalidConfig, "exactly one layer kind expected, got %d", set)
	}

	switch {
	case l.Homogeneous != nil:
		return c.ref(where+".homogeneous", l.Homogeneous.Material)
	case l.Twisted != nil:
		if err := axisOK(where+".twisted", l.Twisted.Axis); err != nil {
			return err
		}
		return c.ref(where+".twisted", l.Twisted.Material)
	case l.Cholesteric != nil:
		switch strings.ToLower(l.Cholesteric.Handedness) {
		case "left", "right":
		default:
			return configErrorf(where+".cholesteric", ErrInvalidConfig, "handedness %q", l.Cholesteric.Handedness)
		}
		if err := axisOK(where+".cholesteric", l.Cholesteric.Axis); err != nil {
			return err
		}
		return c.ref(where+".cholesteric", l.Cholesteric.Material)
	}

	var errs []error
	for i, child := range l.Repeated.Layers {
		errs = append(errs, c.validateLayer(fmt.Sprintf("%s.repeated.layers[%d]", where, i), child))
	}

	return errors.Join(errs...)
}

// axisOK accepts an omitted axis or a non-zero 3-vector.
func axisOK(where string, axis []float64) error {
	if axis == nil {
		return nil
	}
	if len(axis) != 3 || r3.Norm(vec(axis)) == 0 {
		return configErrorf(where, ErrInvalidConfig, "axis %v", axis)
	}

	return nil
}

func (s SweepSpec) validate() error {
	switch {
	case len(s.WavelengthsNm) == 0 && s.RangeNm == nil:
		return configErrorf("sweep", ErrInvalidConfig, "wavelengths_nm or range_nm required")
	case len(s.WavelengthsNm) != 0 && s.RangeNm != nil:
		return configErrorf("sweep", ErrInvalidConfig, "wavelengths_nm and range_nm are exclusive")
	case s.Kx != nil && s.IncidenceDeg != nil:
		return configErrorf("sweep", ErrInvalidConfig, "kx and incidence_deg are exclusive")
	case s.RangeNm != nil && s.RangeNm.Points < 1:
		return configErrorf("sweep.range_nm", ErrInvalidConfig, "points %d", s.RangeNm.Points)
	case s.Workers < 0:
		return configErrorf("sweep", ErrInvalidConfig, "workers %d", s.Workers)
	}

	return nil
}

// ---------- construction ----------

// Build validates c and constructs the structure, wavelength grid, Kx and
// sweep options.
//
// Kx for incidence_deg is n_front·sin θ with n_front taken at the first
// wavelength; it stays fixed across the sweep.
func (c *Config) Build() (*Setup, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	mats := make(map[string]*material.Material, len(c.Materials))
	for _, name := range c.materialNames() {
		m, err := c.Materials[name].build()
		if err != nil {
			return nil, fmt.Errorf("materials.%s: %w", name, err)
		}
		mats[name] = m
	}

	front, err := structure.NewHalfSpace(mats[c.Front])
	if err != nil {
		return nil, fmt.Errorf("front: %w", err)
	}
	back, err := structure.NewHalfSpace(mats[c.Back])
	if err != nil {
		return nil, fmt.Errorf("back: %w", err)
	}

	var layers []layer.Layer
	for i, spec := range c.Layers {
		ls, err := buildLayer(spec, mats)
		if err != nil {
			return nil, fmt.Errorf("layers[%d]: %w", i, err)
		}
		layers = append(layers, ls...)
	}
	s, err := structure.New(front, back, layers...)
	if err != nil {
		return nil, err
	}

	ws := c.Sweep.wavelengths()
	kx := 0.0
	switch {
	case c.Sweep.Kx != nil:
		kx = *c.Sweep.Kx
	case c.Sweep.IncidenceDeg != nil:
		n, err := front.Index(ws[0])
		if err != nil {
			return nil, fmt.Errorf("sweep: %w", err)
		}
		kx = berreman.QueryFromAngle(ws[0], real(n), *c.Sweep.IncidenceDeg*math.Pi/180).Kx
	}

	var opts []sweep.Option
	if c.Sweep.Workers > 0 {
		opts = append(opts, sweep.WithWorkers(c.Sweep.Workers))
	}
	if c.Sweep.Strict {
		opts = append(opts, sweep.WithStrict())
	}
	if c.Sweep.StrictPhysics {
		opts = append(opts, sweep.WithEngineOptions(berreman.WithStrictPhysics()))
	}

	return &Setup{Structure: s, Wavelengths: ws, Kx: kx, Options: opts}, nil
}

func (s SweepSpec) wavelengths() []float64 {
	var out []float64
	if s.RangeNm != nil {
		out = sweep.Linspace(s.RangeNm.Start, s.RangeNm.Stop, s.RangeNm.Points)
	} else {
		out = append(out, s.WavelengthsNm...)
	}
	for i := range out {
		out[i] *= nm
	}

	return out
}

func (m MaterialSpec) build() (*material.Material, error) {
	var (
		out *material.Material
		err error
	)
	kappa := func(i int) float64 {
		if len(m.Kappa) == 3 {
			return m.Kappa[i]
		}
		return 0
	}
	switch strings.ToLower(m.Kind) {
	case "isotropic":
		out, err = material.NewAbsorbing(complex(m.N, kappa(0)), complex(m.N, kappa(1)), complex(m.N, kappa(2)))
	case "uniaxial":
		out, err = material.NewAbsorbing(complex(m.No, kappa(0)), complex(m.No, kappa(1)), complex(m.Ne, kappa(2)))
	case "biaxial":
		out, err = material.NewAbsorbing(complex(m.Indices[0], kappa(0)), complex(m.Indices[1], kappa(1)), complex(m.Indices[2], kappa(2)))
	case "cauchy":
		out, err = material.New(material.Cauchy{A: m.Cauchy.A, B: m.Cauchy.B, C: m.Cauchy.C}, material.Isotropic)
	case "sellmeier":
		var b, c [3]float64
		copy(b[:], m.Sellmeier.B)
		copy(c[:], m.Sellmeier.C)
		out, err = material.New(material.IsotropicSellmeier(b, c), material.Isotropic)
	}
	if err != nil {
		return nil, err
	}

	if m.Mix != nil {
		if out, err = out.Mixed(m.Mix.Guest, m.Mix.Fraction); err != nil {
			return nil, err
		}
	}
	for _, r := range m.Rotations {
		if out, err = out.Rotated(material.RotationAbout(vec(r.Axis), r.AngleDeg*math.Pi/180)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func buildLayer(spec LayerSpec, mats map[string]*material.Material) ([]layer.Layer, error) {
	switch {
	case spec.Homogeneous != nil:
		h := spec.Homogeneous
		l, err := layer.NewHomogeneous(mats[h.Material], h.ThicknessNm*nm)
		if err != nil {
			return nil, err
		}
		return []layer.Layer{l}, nil

	case spec.Twisted != nil:
		t := spec.Twisted
		l, err := layer.NewTwisted(mats[t.Material], t.ThicknessNm*nm, t.AngleDeg*math.Pi/180, t.Divisions, twistOptions(t.Axis)...)
		if err != nil {
			return nil, err
		}
		return []layer.Layer{l}, nil

	case spec.Cholesteric != nil:
		ch := spec.Cholesteric
		h := layer.LeftHanded
		if strings.EqualFold(ch.Handedness, "right") {
			h = layer.RightHanded
		}
		return layer.Cholesteric(mats[ch.Material], ch.PitchNm*nm, ch.ThicknessNm*nm, ch.Divisions, h, twistOptions(ch.Axis)...)
	}

	var group []layer.Layer
	for _, child := range spec.Repeated.Layers {
		ls, err := buildLayer(child, mats)
		if err != nil {
			return nil, err
		}
		group = append(group, ls...)
	}
	l, err := layer.NewRepeated(spec.Repeated.Count, group...)
	if err != nil {
		return nil, err
	}

	return []layer.Layer{l}, nil
}

func twistOptions(axis []float64) []layer.TwistOption {
	if axis == nil {
		return nil
	}

	return []layer.TwistOption{layer.WithAxis(vec(axis))}
}

func vec(v []float64) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}
