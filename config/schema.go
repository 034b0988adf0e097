// SPDX-License-Identifier: MIT
// Package config: YAML schema.

package config

// Config is the root document.
type Config struct {
	Materials map[string]MaterialSpec `yaml:"materials"`
	Front     string                  `yaml:"front"`
	Back      string                  `yaml:"back"`
	Layers    []LayerSpec             `yaml:"layers"`
	Sweep     SweepSpec               `yaml:"sweep"`
}

// MaterialSpec declares one material.
//
// Kinds and their fields:
//
//	isotropic  n
//	uniaxial   no, ne
//	biaxial    indices [nx, ny, nz]
//	cauchy     cauchy {a, b, c}      (λ in µm)
//	sellmeier  sellmeier {b, c}      (λ in µm, three terms each)
//
// kappa optionally adds extinction coefficients to the principal indices of
// the first three kinds.
type MaterialSpec struct {
	Kind      string         `yaml:"kind"`
	N         float64        `yaml:"n,omitempty"`
	No        float64        `yaml:"no,omitempty"`
	Ne        float64        `yaml:"ne,omitempty"`
	Indices   []float64      `yaml:"indices,omitempty"`
	Kappa     []float64      `yaml:"kappa,omitempty"`
	Cauchy    *CauchySpec    `yaml:"cauchy,omitempty"`
	Sellmeier *SellmeierSpec `yaml:"sellmeier,omitempty"`
	Rotations []RotationSpec `yaml:"rotations,omitempty"`
	Mix       *MixSpec       `yaml:"mix,omitempty"`
}

// CauchySpec holds A + B/λ² + C/λ⁴ coefficients.
type CauchySpec struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
}

// SellmeierSpec holds three-term Sellmeier coefficients.
type SellmeierSpec struct {
	B []float64 `yaml:"b"`
	C []float64 `yaml:"c"`
}

// RotationSpec is one rotation about axis; rotations apply in list order.
type RotationSpec struct {
	Axis     []float64 `yaml:"axis"`
	AngleDeg float64   `yaml:"angle_deg"`
}

// MixSpec blends the material with a guest medium (e.g. infiltrated water).
type MixSpec struct {
	Guest    float64 `yaml:"guest"`
	Fraction float64 `yaml:"fraction"`
}

// LayerSpec holds exactly one layer variant.
type LayerSpec struct {
	Homogeneous *HomogeneousSpec `yaml:"homogeneous,omitempty"`
	Twisted     *TwistedSpec     `yaml:"twisted,omitempty"`
	Repeated    *RepeatedSpec    `yaml:"repeated,omitempty"`
	Cholesteric *CholestericSpec `yaml:"cholesteric,omitempty"`
}

// HomogeneousSpec describes layer.Homogeneous.
type HomogeneousSpec struct {
	Material    string  `yaml:"material"`
	ThicknessNm float64 `yaml:"thickness_nm"`
}

// TwistedSpec describes layer.Twisted.
type TwistedSpec struct {
	Material    string    `yaml:"material"`
	ThicknessNm float64   `yaml:"thickness_nm"`
	AngleDeg    float64   `yaml:"angle_deg"`
	Divisions   int       `yaml:"divisions"`
	Axis        []float64 `yaml:"axis,omitempty"`
}

// RepeatedSpec describes layer.Repeated.
type RepeatedSpec struct {
	Count  int         `yaml:"count"`
	Layers []LayerSpec `yaml:"layers"`
}

// CholestericSpec describes a layer.Cholesteric film.
type CholestericSpec struct {
	Material    string    `yaml:"material"`
	PitchNm     float64   `yaml:"pitch_nm"`
	ThicknessNm float64   `yaml:"thickness_nm"`
	Divisions   int       `yaml:"divisions"`
	Handedness  string    `yaml:"handedness"` // left | right
	Axis        []float64 `yaml:"axis,omitempty"`
}

// SweepSpec describes the wavelengths and illumination.
type SweepSpec struct {
	WavelengthsNm []float64  `yaml:"wavelengths_nm,omitempty"`
	RangeNm       *RangeSpec `yaml:"range_nm,omitempty"`
	Kx            *float64   `yaml:"kx,omitempty"`
	IncidenceDeg  *float64   `yaml:"incidence_deg,omitempty"`
	Workers       int        `yaml:"workers,omitempty"`
	Strict        bool       `yaml:"strict,omitempty"`
	StrictPhysics bool       `yaml:"strict_physics,omitempty"`
}

// RangeSpec is an inclusive evenly spaced grid.
type RangeSpec struct {
	Start  float64 `yaml:"start"`
	Stop   float64 `yaml:"stop"`
	Points int     `yaml:"points"`
}
