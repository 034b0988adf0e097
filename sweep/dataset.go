// SPDX-License-Identifier: MIT
// Package sweep: the read-only result of a sweep.

package sweep

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvoptics/berreman"
	"github.com/katalvlaran/lvoptics/polar"
)

// Entry is the outcome of one wavelength. Result and Coefficients are zero
// when Err is set.
type Entry struct {
	Query        berreman.Query
	Result       *berreman.Result
	Coefficients polar.Coefficients
	Err          error // *EntryError or nil
}

// Failed reports whether the wavelength failed.
func (e Entry) Failed() bool { return e.Err != nil }

// Dataset is the ordered, read-only result of Run. Entry i belongs to the
// i-th input wavelength.
type Dataset struct {
	id      uuid.UUID
	kx      float64
	entries []Entry
}

// ID returns the run identifier.
func (d *Dataset) ID() uuid.UUID { return d.id }

// Kx returns the in-plane wavenumber shared by all entries.
func (d *Dataset) Kx() float64 { return d.kx }

// Len returns the number of entries.
func (d *Dataset) Len() int { return len(d.entries) }

// At returns entry i. It panics when i is out of range, like indexing.
func (d *Dataset) At(i int) Entry { return d.entries[i] }

// Wavelengths returns the wavelengths in input order.
func (d *Dataset) Wavelengths() []float64 {
	out := make([]float64, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Query.Wavelength
	}

	return out
}

// Column returns coefficient name for every entry, NaN where the entry
// failed.
func (d *Dataset) Column(name polar.Name) ([]float64, error) {
	var probe polar.Coefficients
	if _, ok := probe.Get(name); !ok {
		return nil, fmt.Errorf("Column: %q: %w", name, ErrUnknownCoefficient)
	}
	out := make([]float64, len(d.entries))
	for i, e := range d.entries {
		if e.Failed() {
			out[i] = math.NaN()
			continue
		}
		out[i], _ = e.Coefficients.Get(name)
	}

	return out, nil
}

// Table returns one row per entry: the wavelength followed by the named
// coefficients. With no names, all of polar.Names are used.
func (d *Dataset) Table(names ...polar.Name) ([][]float64, error) {
	if len(names) == 0 {
		names = polar.Names()
	}
	cols := make([][]float64, len(names))
	for j, n := range names {
		c, err := d.Column(n)
		if err != nil {
			return nil, err
		}
		cols[j] = c
	}

	rows := make([][]float64, len(d.entries))
	for i, e := range d.entries {
		row := make([]float64, 1+len(names))
		row[0] = e.Query.Wavelength
		for j := range names {
			row[1+j] = cols[j][i]
		}
		rows[i] = row
	}

	return rows, nil
}

// Failed returns the indices of failed entries in ascending order.
func (d *Dataset) Failed() []int {
	var out []int
	for i, e := range d.entries {
		if e.Failed() {
			out = append(out, i)
		}
	}

	return out
}

// Err joins the errors of all failed entries, or returns nil.
func (d *Dataset) Err() error {
	var errs []error
	for _, e := range d.entries {
		if e.Err != nil {
			errs = append(errs, e.Err)
		}
	}

	return errors.Join(errs...)
}

// Warnings returns the engine diagnostics of all entries, in entry order.
func (d *Dataset) Warnings() []error {
	var out []error
	for _, e := range d.entries {
		if e.Result != nil {
			out = append(out, e.Result.Warnings...)
		}
	}

	return out
}
