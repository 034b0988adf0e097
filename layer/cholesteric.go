// SPDX-License-Identifier: MIT
// Package layer: cholesteric (chiral nematic) film construction.
//
// Model:
//   - n   = ⌊thickness / pitch⌋ full turns, one Twisted period repeated n times
//   - rem = thickness − n·pitch, a Twisted remainder turning 2π·rem/pitch
//   - the remainder sits on the back side of the full turns
//
// The remainder keeps the slice density of the full pitch: its division
// count is ⌈div·rem/pitch⌉.

package layer

import (
	"math"

	"github.com/katalvlaran/lvoptics/material"
)

// Handedness selects the sense of the helix.
type Handedness int

const (
	// LeftHanded turns by −2π per pitch.
	LeftHanded Handedness = iota
	// RightHanded turns by +2π per pitch.
	RightHanded
)

// turn returns the signed rotation per pitch.
func (h Handedness) turn() float64 {
	if h == RightHanded {
		return 2 * math.Pi
	}

	return -2 * math.Pi
}

// remainderTol absorbs floating-point noise in thickness/pitch.
const remainderTol = 1e-9

// Cholesteric returns the layers of a helicoidal film of the given pitch and
// total thickness: a Repeated full pitch (omitted when the film is thinner
// than one pitch) followed by a Twisted remainder (omitted when the thickness
// is a whole number of pitches). div is the slice count per pitch.
func Cholesteric(m *material.Material, pitch, thickness float64, div int, h Handedness, opts ...TwistOption) ([]Layer, error) {
	if !validThickness(pitch) || pitch == 0 {
		return nil, layerErrorf(methodCholesteric, "pitch %g", pitch)
	}
	if !validThickness(thickness) || thickness == 0 {
		return nil, layerErrorf(methodCholesteric, "thickness %g", thickness)
	}
	if div <= 0 {
		return nil, layerErrorf(methodCholesteric, "divisions %d", div)
	}

	ratio := thickness / pitch
	turns := math.Floor(ratio)
	frac := ratio - turns
	if frac > 1-remainderTol {
		turns++
		frac = 0
	} else if frac < remainderTol {
		frac = 0
	}

	var out []Layer
	if turns >= 1 {
		period, err := NewTwisted(m, pitch, h.turn(), div, opts...)
		if err != nil {
			return nil, err
		}
		full, err := NewRepeated(int(turns), period)
		if err != nil {
			return nil, err
		}
		out = append(out, full)
	}
	if frac > 0 {
		remDiv := int(math.Ceil(float64(div)*frac - remainderTol))
		if remDiv < 1 {
			remDiv = 1
		}
		rem, err := NewTwisted(m, pitch*frac, h.turn()*frac, remDiv, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, rem)
	}

	return out, nil
}

// Bragg holds the analytic estimates for a cholesteric film at normal
// incidence.
type Bragg struct {
	Center float64 // p·n̄
	Low    float64 // p·min(no, ne)
	High   float64 // p·max(no, ne)
	Peak   float64 // tanh²(π·Δn·h / (n̄·p)), reflectance of the matched handedness
}

// BraggEstimate returns the stop band and peak reflectance of a helix of
// pitch p and thickness h made of a uniaxial medium (no, ne).
func BraggEstimate(no, ne, pitch, thickness float64) Bragg {
	avg := (no + ne) / 2
	dn := math.Abs(ne - no)
	x := math.Tanh(dn / avg * math.Pi * thickness / pitch)

	return Bragg{
		Center: pitch * avg,
		Low:    pitch * math.Min(no, ne),
		High:   pitch * math.Max(no, ne),
		Peak:   x * x,
	}
}
