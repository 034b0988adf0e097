// SPDX-License-Identifier: MIT
// Package polar: the named coefficient set.

package polar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvoptics/berreman"
	"github.com/katalvlaran/lvoptics/cmat"
)

// Name identifies one power coefficient.
type Name string

// Linear basis.
const (
	Tpp Name = "T_pp"
	Tps Name = "T_ps"
	Tsp Name = "T_sp"
	Tss Name = "T_ss"
	Rpp Name = "R_pp"
	Rps Name = "R_ps"
	Rsp Name = "R_sp"
	Rss Name = "R_ss"
)

// Circular basis.
const (
	TLL Name = "T_LL"
	TLR Name = "T_LR"
	TRL Name = "T_RL"
	TRR Name = "T_RR"
	RLL Name = "R_LL"
	RLR Name = "R_LR"
	RRL Name = "R_RL"
	RRR Name = "R_RR"
)

// Unpolarized incidence or detection.
const (
	Tpn Name = "T_pn" // p detected, unpolarized incidence
	Tsn Name = "T_sn"
	Tnn Name = "T_nn"
	Tnp Name = "T_np" // all detected, p incidence
	Tns Name = "T_ns"
	Rpn Name = "R_pn"
	Rsn Name = "R_sn"
	Rnn Name = "R_nn"
	Rnp Name = "R_np"
	Rns Name = "R_ns"
)

// names lists every Name in report order.
var names = []Name{
	Tpp, Tps, Tsp, Tss, Rpp, Rps, Rsp, Rss,
	TLL, TLR, TRL, TRR, RLL, RLR, RRL, RRR,
	Tpn, Tsn, Tnn, Tnp, Tns, Rpn, Rsn, Rnn, Rnp, Rns,
}

// Names returns all coefficient names in report order.
func Names() []Name {
	return append([]Name(nil), names...)
}

// Coefficients are the power coefficients of one wavelength. Matrices are
// [out][in]; T, R use (p, s) and TC, RC use (L, R).
type Coefficients struct {
	T, R   [2][2]float64
	TC, RC [2][2]float64
}

// Derive computes all coefficients from the amplitude matrices and the
// out-of-plane wavenumbers of the front and back media.
// Errors: ErrNoIncidentFlux when Re q_front ≤ 0 or is not finite.
func Derive(t, r cmat.Mat2, qFront, qBack complex128) (Coefficients, error) {
	qf := real(qFront)
	if !(qf > 0) || math.IsInf(qf, 0) {
		return Coefficients{}, fmt.Errorf("Derive: q_front %v: %w", qFront, ErrNoIncidentFlux)
	}
	f := real(qBack) / qf

	return Coefficients{
		T:  PowerMatrix(t, f),
		R:  PowerMatrix(r, 1),
		TC: PowerMatrix(ToCircular(t, false), f),
		RC: PowerMatrix(ToCircular(r, true), 1),
	}, nil
}

// FromResult derives the coefficients of an engine result.
func FromResult(res *berreman.Result) (Coefficients, error) {
	return Derive(res.T, res.R, res.QFront, res.QBack)
}

// Get returns the coefficient called name.
func (c Coefficients) Get(name Name) (float64, bool) {
	const p, s = 0, 1
	const l, r = 0, 1
	switch name {
	case Tpp:
		return c.T[p][p], true
	case Tps:
		return c.T[p][s], true
	case Tsp:
		return c.T[s][p], true
	case Tss:
		return c.T[s][s], true
	case Rpp:
		return c.R[p][p], true
	case Rps:
		return c.R[p][s], true
	case Rsp:
		return c.R[s][p], true
	case Rss:
		return c.R[s][s], true

	case TLL:
		return c.TC[l][l], true
	case TLR:
		return c.TC[l][r], true
	case TRL:
		return c.TC[r][l], true
	case TRR:
		return c.TC[r][r], true
	case RLL:
		return c.RC[l][l], true
	case RLR:
		return c.RC[l][r], true
	case RRL:
		return c.RC[r][l], true
	case RRR:
		return c.RC[r][r], true

	case Tpn:
		return unpolarizedIn(c.T, p), true
	case Tsn:
		return unpolarizedIn(c.T, s), true
	case Tnn:
		return unpolarizedIn(c.T, p) + unpolarizedIn(c.T, s), true
	case Tnp:
		return detectedAll(c.T, p), true
	case Tns:
		return detectedAll(c.T, s), true
	case Rpn:
		return unpolarizedIn(c.R, p), true
	case Rsn:
		return unpolarizedIn(c.R, s), true
	case Rnn:
		return unpolarizedIn(c.R, p) + unpolarizedIn(c.R, s), true
	case Rnp:
		return detectedAll(c.R, p), true
	case Rns:
		return detectedAll(c.R, s), true
	}

	return 0, false
}

// unpolarizedIn averages output channel out over both incident polarizations.
func unpolarizedIn(m [2][2]float64, out int) float64 {
	return 0.5 * (m[out][0] + m[out][1])
}

// detectedAll sums both output channels for incident polarization in.
func detectedAll(m [2][2]float64, in int) float64 {
	return m[0][in] + m[1][in]
}
