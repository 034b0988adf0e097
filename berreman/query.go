// SPDX-License-Identifier: MIT
// Package berreman: the per-evaluation wave query.

package berreman

import "math"

// Query is one illumination condition.
type Query struct {
	Wavelength float64 // vacuum wavelength, metres
	Kx         float64 // reduced in-plane wavenumber, n_front·sin θ
}

// K0 returns the vacuum wavenumber 2π/λ.
func (q Query) K0() float64 { return 2 * math.Pi / q.Wavelength }

// Validate reports ErrInvalidQuery for a non-positive or non-finite
// wavelength or a non-finite Kx.
func (q Query) Validate() error {
	if math.IsNaN(q.Wavelength) || math.IsInf(q.Wavelength, 0) || q.Wavelength <= 0 {
		return berremanErrorf("Query", ErrInvalidQuery, "wavelength %g", q.Wavelength)
	}
	if math.IsNaN(q.Kx) || math.IsInf(q.Kx, 0) {
		return berremanErrorf("Query", ErrInvalidQuery, "kx %g", q.Kx)
	}

	return nil
}

// QueryFromAngle returns the query for incidence angle theta (radians) from
// a front medium of index nFront.
func QueryFromAngle(wavelength, nFront, theta float64) Query {
	return Query{Wavelength: wavelength, Kx: nFront * math.Sin(theta)}
}
