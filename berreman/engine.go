// SPDX-License-Identifier: MIT
// Package berreman: the transfer-matrix engine.

package berreman

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvoptics/cmat"
	"github.com/katalvlaran/lvoptics/structure"
)

// Engine evaluates structures. It is immutable after NewEngine and safe for
// concurrent use.
type Engine struct {
	degTol  float64
	physTol float64
	singTol float64
	strict  bool
}

// NewEngine returns an engine with defaults overridden by opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		degTol:  DefaultDegeneracyTolerance,
		physTol: DefaultPhysicalTolerance,
		singTol: DefaultSingularTolerance,
		strict:  DefaultStrictPhysics,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Result is the amplitude response of one query. T and R are indexed
// [out][in] with 0 = p and 1 = s, so T[1][0] is the s amplitude transmitted
// for unit p incidence.
type Result struct {
	Query    Query
	T, R     cmat.Mat2
	NFront   complex128
	NBack    complex128
	QFront   complex128 // out-of-plane wavenumber in the front medium
	QBack    complex128 // out-of-plane wavenumber in the back medium
	Branches [numBranches]int
	Warnings []error
}

// Transfer returns the stack matrix M = P_N···P_1 mapping Ψ at the front
// surface to Ψ at the back surface, with the branch counts and diagnostics
// collected on the way.
//
// Stages:
//  1. For each distinct slice (structure representative table): tensor,
//     passivity check, propagator.
//  2. Left-multiply the slice propagators in stack order.
//
// Complexity: O(U) propagators for U distinct slices plus O(S) 4x4 products.
func (e *Engine) Transfer(s *structure.Structure, q Query) (cmat.Mat4, *Result, error) {
	if s == nil {
		return cmat.Mat4{}, nil, berremanErrorf("Transfer", ErrInvalidQuery, "nil structure")
	}
	if err := q.Validate(); err != nil {
		return cmat.Mat4{}, nil, err
	}

	res := &Result{Query: q}
	k0 := q.K0()
	kx := complex(q.Kx, 0)
	n := s.NumSlices()
	props := make([]cmat.Mat4, n)

	m := cmat.Identity4()
	for i := 0; i < n; i++ {
		if r := s.Representative(i); r != i {
			m = props[r].Mul(m)
			continue
		}
		sl := s.Slice(i)
		t, err := sl.Material.TensorAt(q.Wavelength)
		if err != nil {
			return cmat.Mat4{}, nil, fmt.Errorf("Transfer: slice %d: %w", i, err)
		}
		eps := t.Matrix()
		if !IsPassive(eps, e.physTol) {
			w := berremanErrorf("Transfer", ErrNonPhysicalTensor, "slice %d: gain in ε", i)
			if e.strict {
				return cmat.Mat4{}, nil, w
			}
			res.Warnings = append(res.Warnings, w)
		}

		p, b, err := e.Propagator(eps, kx, k0*sl.Thickness)
		if err != nil {
			return cmat.Mat4{}, nil, fmt.Errorf("Transfer: slice %d: %w", i, err)
		}
		if !p.IsFinite() {
			return cmat.Mat4{}, nil, berremanErrorf("Transfer", ErrNonPhysicalTensor, "slice %d: non-finite propagator", i)
		}
		res.Branches[b]++
		props[i] = p
		m = p.Mul(m)
	}

	return m, res, nil
}

// grazingTol is the relative band around |Kx| = Re n_front treated as grazing
// incidence: the incident wave carries no flux into the stack.
const grazingTol = 1e-9

// Evaluate computes the amplitude transmission and reflection matrices of s
// for query q.
//
// Stages:
//  1. Front/back indices and the Kx admissibility check.
//  2. Stack matrix M (Transfer).
//  3. Solve [M·e_p⁻, M·e_s⁻, −f_p⁺, −f_s⁺]·(r_p, r_s, t_p, t_s)ᵀ = −M·e_in
//     for e_in = e_p⁺ and e_s⁺ at once.
//
// Errors: ErrInvalidQuery, ErrEvanescentIncidence, ErrSingularBoundaryMatrix
// (also for grazing incidence, |Kx| = Re n_front),
// ErrNonPhysicalTensor (strict mode or non-finite propagators), material
// errors from dispersive models.
func (e *Engine) Evaluate(s *structure.Structure, q Query) (*Result, error) {
	if s == nil {
		return nil, berremanErrorf("Evaluate", ErrInvalidQuery, "nil structure")
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	// Stage 1: ambient media
	nf, err := s.Front().Index(q.Wavelength)
	if err != nil {
		return nil, fmt.Errorf("Evaluate: front: %w", err)
	}
	nb, err := s.Back().Index(q.Wavelength)
	if err != nil {
		return nil, fmt.Errorf("Evaluate: back: %w", err)
	}
	switch ratio := math.Abs(q.Kx) / real(nf); {
	case ratio > 1+grazingTol:
		return nil, berremanErrorf("Evaluate", ErrEvanescentIncidence, "kx %g > n_front %g", q.Kx, real(nf))
	case ratio >= 1-grazingTol:
		return nil, berremanErrorf("Evaluate", ErrSingularBoundaryMatrix, "grazing incidence: kx %g = n_front %g", q.Kx, real(nf))
	}
	kx := complex(q.Kx, 0)
	front := AmbientModes(nf, kx)
	back := AmbientModes(nb, kx)

	// Stage 2: stack
	m, res, err := e.Transfer(s, q)
	if err != nil {
		return nil, err
	}

	// Stage 3: boundary system
	var a cmat.Mat4
	a = a.SetColumn(0, m.MulVec(front.PBackward))
	a = a.SetColumn(1, m.MulVec(front.SBackward))
	a = a.SetColumn(2, back.PForward.Scale(-1))
	a = a.SetColumn(3, back.SForward.Scale(-1))

	mp := m.MulVec(front.PForward)
	ms := m.MulVec(front.SForward)
	var rhs cmat.Mat4x2
	for i := 0; i < 4; i++ {
		rhs[i][0] = -mp[i]
		rhs[i][1] = -ms[i]
	}

	x, err := cmat.Solve4(a, rhs, e.singTol)
	if err != nil {
		return nil, berremanErrorf("Evaluate", ErrSingularBoundaryMatrix, "λ=%g kx=%g (%v)", q.Wavelength, q.Kx, err)
	}

	for in := 0; in < 2; in++ {
		res.R[0][in] = x[0][in]
		res.R[1][in] = x[1][in]
		res.T[0][in] = x[2][in]
		res.T[1][in] = x[3][in]
	}
	res.NFront, res.NBack = nf, nb
	res.QFront, res.QBack = front.Q, back.Q

	return res, nil
}

// BranchCount returns how many distinct slices used branch b.
func (r *Result) BranchCount(b Branch) int {
	if b < 0 || b >= numBranches {
		return 0
	}

	return r.Branches[b]
}
