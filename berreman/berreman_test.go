package berreman_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/lvoptics/berreman"
	"github.com/katalvlaran/lvoptics/cmat"
	"github.com/katalvlaran/lvoptics/layer"
	"github.com/katalvlaran/lvoptics/material"
	"github.com/katalvlaran/lvoptics/structure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- helpers ----------

func iso(t testing.TB, n float64) *material.Material {
	t.Helper()
	m, err := material.NewIsotropic(n)
	require.NoError(t, err)

	return m
}

func ambient(t testing.TB, n float64) structure.HalfSpace {
	t.Helper()
	h, err := structure.NewHalfSpace(iso(t, n))
	require.NoError(t, err)

	return h
}

// plate returns a uniaxial material with its optic axis tilted by polar
// angle tilt from z and then turned by azimuth about z.
func plate(t testing.TB, no, ne, tilt, azimuth float64) *material.Material {
	t.Helper()
	m, err := material.NewUniaxial(no, ne)
	require.NoError(t, err)
	r := material.RotationAbout(material.Ez, azimuth).Mul(material.RotationAbout(material.Ey, tilt))
	m, err = m.Rotated(r)
	require.NoError(t, err)

	return m
}

func stack(t testing.TB, front, back float64, layers ...layer.Layer) *structure.Structure {
	t.Helper()
	s, err := structure.New(ambient(t, front), ambient(t, back), layers...)
	require.NoError(t, err)

	return s
}

func homogeneous(t testing.TB, m *material.Material, d float64) layer.Layer {
	t.Helper()
	h, err := layer.NewHomogeneous(m, d)
	require.NoError(t, err)

	return h
}

// powers returns T and R power matrices [out][in].
func powers(r *berreman.Result) (tp, rp [2][2]float64) {
	f := real(r.QBack) / real(r.QFront)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			a := cmplx.Abs(r.T[i][j])
			b := cmplx.Abs(r.R[i][j])
			tp[i][j] = a * a * f
			rp[i][j] = b * b
		}
	}

	return tp, rp
}

func assertMat4InDelta(t *testing.T, want, got cmat.Mat4, delta float64) {
	t.Helper()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, 0, cmplx.Abs(want[i][j]-got[i][j]), delta, "(%d,%d) want %v got %v", i, j, want[i][j], got[i][j])
		}
	}
}

// ---------- operator and modes ----------

func TestDelta_Isotropic(t *testing.T) {
	eps := cmat.Identity3().Scale(2.25)
	d := berreman.Delta(eps, 0.6)

	want := cmat.Mat4{
		{0, 1 - 0.36/2.25, 0, 0},
		{2.25, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 2.25 - 0.36, 0},
	}
	assertMat4InDelta(t, want, d, 1e-15)
}

func TestAmbientModes(t *testing.T) {
	m := berreman.AmbientModes(1.5, 0.9)
	assert.InDelta(t, 1.2, real(m.Q), 1e-15)
	assert.InDelta(t, 1.2, berreman.Flux(m.PForward), 1e-14)
	assert.InDelta(t, 1.2, berreman.Flux(m.SForward), 1e-14)
	assert.InDelta(t, -1.2, berreman.Flux(m.PBackward), 1e-14)
	assert.InDelta(t, -1.2, berreman.Flux(m.SBackward), 1e-14)

	// beyond the critical angle q is imaginary and decays forward
	ev := berreman.AmbientModes(1, 1.5)
	assert.InDelta(t, 0, real(ev.Q), 1e-15)
	assert.Greater(t, imag(ev.Q), 0.0)
}

func TestPartialWaves_Uniaxial(t *testing.T) {
	const no, ne, kx = 1.51, 1.59, 0.3
	m := plate(t, no, ne, math.Pi/2, 0) // optic axis along x
	tn, err := m.TensorAt(500e-9)
	require.NoError(t, err)
	eps := tn.Matrix()

	w, err := berreman.PartialWaves(eps, kx)
	require.NoError(t, err)

	qe := math.Sqrt(ne * ne * (1 - kx*kx/(no*no)))
	qo := math.Sqrt(no*no - kx*kx)
	want := [4]float64{qe, qo, -qo, -qe}
	for j := 0; j < 4; j++ {
		assert.InDelta(t, want[j], real(w.Q[j]), 1e-10, "mode %d", j)
		assert.InDelta(t, 0, imag(w.Q[j]), 1e-10, "mode %d", j)

		v := w.Fields.Column(j)
		lhs := berreman.Delta(eps, kx).MulVec(v)
		for i := 0; i < 4; i++ {
			assert.InDelta(t, 0, cmplx.Abs(lhs[i]-w.Q[j]*v[i]), 1e-10)
		}
		if j < 2 {
			assert.Greater(t, berreman.Flux(v), 0.0)
		} else {
			assert.Less(t, berreman.Flux(v), 0.0)
		}
	}
}

// ---------- propagator branches ----------

func TestPropagator_BranchesMatchExponential(t *testing.T) {
	e := berreman.NewEngine()
	const phi = 2 * math.Pi * 100e-9 / 500e-9

	tilted := plate(t, 1.51, 1.59, 0.7, 0.4)
	axial := plate(t, 1.51, 1.59, 0, 0)
	lossy, err := material.NewAbsorbing(1.5+0.02i, 1.6+0.01i, 1.7+0.03i)
	require.NoError(t, err)
	lossy, err = lossy.Rotated(material.RotationAbout(material.Ex, 0.3))
	require.NoError(t, err)

	cases := []struct {
		name string
		m    *material.Material
		kx   complex128
		want berreman.Branch
	}{
		{"isotropic oblique", iso(t, 1.5), 0.4, berreman.BranchIsotropic},
		{"isotropic normal", iso(t, 1.5), 0, berreman.BranchIsotropic},
		{"tilted normal", tilted, 0, berreman.BranchNormal},
		{"axial normal degenerate", axial, 0, berreman.BranchNormal},
		{"tilted oblique", tilted, 0.3, berreman.BranchEigen},
		{"absorbing biaxial oblique", lossy, 0.5, berreman.BranchEigen},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tn, err := tc.m.TensorAt(500e-9)
			require.NoError(t, err)
			eps := tn.Matrix()

			p, b, err := e.Propagator(eps, tc.kx, phi)
			require.NoError(t, err)
			assert.Equal(t, tc.want, b)

			ref, err := cmat.Expm4(berreman.Delta(eps, tc.kx).Scale(complex(0, phi)))
			require.NoError(t, err)
			assertMat4InDelta(t, ref, p, 1e-9)
		})
	}
}

func TestPropagator_ClusteredFallsBackToExponential(t *testing.T) {
	// A near-isotropic tensor off normal incidence has nearly equal
	// eigenvalue pairs but is not scalar.
	m := plate(t, 1.5, 1.5+1e-9, 0.5, 0.2)
	tn, err := m.TensorAt(500e-9)
	require.NoError(t, err)
	eps := tn.Matrix()

	p, b, err := berreman.NewEngine().Propagator(eps, 0.3, 1.0)
	require.NoError(t, err)
	assert.Equal(t, berreman.BranchExponential, b)

	ref, err := cmat.Expm4(berreman.Delta(eps, 0.3).Scale(1i))
	require.NoError(t, err)
	assertMat4InDelta(t, ref, p, 1e-12)
}

func TestPropagator_ZeroThickness(t *testing.T) {
	p, _, err := berreman.NewEngine().Propagator(cmat.Identity3(), 0.2, 0)
	require.NoError(t, err)
	assert.Equal(t, cmat.Identity4(), p)
}

// ---------- boundary solve ----------

func TestEvaluate_FresnelNormalIncidence(t *testing.T) {
	const n1, n2 = 1.0, 1.5
	wantR := math.Pow((n1-n2)/(n1+n2), 2)
	wantT := 4 * n1 * n2 / math.Pow(n1+n2, 2)

	bare := stack(t, n1, n2)
	coated := stack(t, n1, n2, homogeneous(t, iso(t, n2), 237e-9))

	e := berreman.NewEngine()
	for _, s := range []*structure.Structure{bare, coated} {
		res, err := e.Evaluate(s, berreman.Query{Wavelength: 550e-9})
		require.NoError(t, err)
		tp, rp := powers(res)
		for pol := 0; pol < 2; pol++ {
			assert.InDelta(t, wantR, rp[pol][pol], 1e-12)
			assert.InDelta(t, wantT, tp[pol][pol], 1e-12)
		}
		assert.InDelta(t, 0, tp[0][1]+tp[1][0]+rp[0][1]+rp[1][0], 1e-20)
	}
}

func TestEvaluate_FresnelOblique(t *testing.T) {
	const n1, n2 = 1.0, 1.5
	theta := math.Pi / 4
	q := berreman.QueryFromAngle(633e-9, n1, theta)
	ci := math.Cos(theta)
	ct := math.Sqrt(1 - math.Pow(n1*math.Sin(theta)/n2, 2))
	rs := (n1*ci - n2*ct) / (n1*ci + n2*ct)
	rpp := (n2*ci - n1*ct) / (n2*ci + n1*ct)

	res, err := berreman.NewEngine().Evaluate(stack(t, n1, n2), q)
	require.NoError(t, err)
	tp, rp := powers(res)

	assert.InDelta(t, rs*rs, rp[1][1], 1e-12)
	assert.InDelta(t, rpp*rpp, rp[0][0], 1e-12)
	assert.InDelta(t, 1-rs*rs, tp[1][1], 1e-12)
	assert.InDelta(t, 1-rpp*rpp, tp[0][0], 1e-12)
}

func TestEvaluate_AirySlab(t *testing.T) {
	const n1, n2, n3, d = 1.0, 2.0, 1.5, 180e-9
	s := stack(t, n1, n3, homogeneous(t, iso(t, n2), d))
	r12 := complex((n1-n2)/(n1+n2), 0)
	r23 := complex((n2-n3)/(n2+n3), 0)

	e := berreman.NewEngine()
	for _, lambda := range []float64{400e-9, 550e-9, 720e-9, 1064e-9} {
		ph := cmplx.Exp(complex(0, 2*2*math.Pi*n2*d/lambda))
		r := (r12 + r23*ph) / (1 + r12*r23*ph)
		want := cmplx.Abs(r) * cmplx.Abs(r)

		res, err := e.Evaluate(s, berreman.Query{Wavelength: lambda})
		require.NoError(t, err)
		tp, rp := powers(res)
		assert.InDelta(t, want, rp[0][0], 1e-12, "λ=%g", lambda)
		assert.InDelta(t, want, rp[1][1], 1e-12, "λ=%g", lambda)
		assert.InDelta(t, 1-want, tp[0][0], 1e-12, "λ=%g", lambda)
	}
}

func cholesteric(t testing.TB, pitches int, div int, kind layer.Handedness) *structure.Structure {
	t.Helper()
	cnc := plate(t, 1.51, 1.59, math.Pi/2, 0)
	ls, err := layer.Cholesteric(cnc, 300e-9, float64(pitches)*300e-9, div, kind)
	require.NoError(t, err)

	return stack(t, 1.55, 1.55, ls...)
}

func TestEvaluate_EnergyConservation(t *testing.T) {
	structures := map[string]*structure.Structure{
		"cholesteric": cholesteric(t, 5, 24, layer.LeftHanded),
		"tilted plate": stack(t, 1.0, 1.45,
			homogeneous(t, plate(t, 1.5, 1.7, 0.6, 0.9), 800e-9),
			homogeneous(t, iso(t, 2.1), 90e-9)),
	}
	e := berreman.NewEngine()
	for name, s := range structures {
		for _, kx := range []float64{0, 0.35, 0.8} {
			for _, lambda := range []float64{420e-9, 465e-9, 530e-9, 700e-9} {
				res, err := e.Evaluate(s, berreman.Query{Wavelength: lambda, Kx: kx})
				require.NoError(t, err, "%s kx=%g λ=%g", name, kx, lambda)
				tp, rp := powers(res)
				for in := 0; in < 2; in++ {
					sum := tp[0][in] + tp[1][in] + rp[0][in] + rp[1][in]
					assert.InDelta(t, 1, sum, 1e-9, "%s kx=%g λ=%g in=%d", name, kx, lambda, in)
				}
				assert.Empty(t, res.Warnings)
			}
		}
	}
}

func TestEvaluate_AbsorbingSlabLosesEnergy(t *testing.T) {
	lossy, err := material.NewAbsorbing(1.6+0.05i, 1.6+0.05i, 1.6+0.05i)
	require.NoError(t, err)
	s := stack(t, 1, 1, homogeneous(t, lossy, 500e-9))
	res, err := berreman.NewEngine().Evaluate(s, berreman.Query{Wavelength: 500e-9, Kx: 0.2})
	require.NoError(t, err)
	tp, rp := powers(res)
	for in := 0; in < 2; in++ {
		sum := tp[0][in] + tp[1][in] + rp[0][in] + rp[1][in]
		assert.Less(t, sum, 0.99)
		assert.Greater(t, sum, 0.0)
	}
	assert.Empty(t, res.Warnings)
}

func TestEvaluate_TwistConvergence(t *testing.T) {
	m := plate(t, 1.51, 1.59, math.Pi/2, 0)
	q := berreman.Query{Wavelength: 550e-9, Kx: 0.2}
	e := berreman.NewEngine()

	eval := func(n int) *berreman.Result {
		tw, err := layer.NewTwisted(m, 300e-9, 2*math.Pi, n)
		require.NoError(t, err)
		res, err := e.Evaluate(stack(t, 1.55, 1.55, tw), q)
		require.NoError(t, err)

		return res
	}
	ref := eval(1000)
	deviation := func(r *berreman.Result) float64 {
		sum := 0.0
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				sum += math.Pow(cmplx.Abs(r.T[i][j]-ref.T[i][j]), 2)
				sum += math.Pow(cmplx.Abs(r.R[i][j]-ref.R[i][j]), 2)
			}
		}
		return math.Sqrt(sum)
	}

	prev := math.Inf(1)
	for _, n := range []int{10, 20, 40, 80} {
		dev := deviation(eval(n))
		assert.Less(t, dev, prev, "N=%d", n)
		prev = dev
	}
}

func TestEvaluate_RepeatEquivalence(t *testing.T) {
	m := plate(t, 1.51, 1.59, math.Pi/2, 0)
	tw, err := layer.NewTwisted(m, 300e-9, -2*math.Pi, 16)
	require.NoError(t, err)
	rep, err := layer.NewRepeated(4, tw)
	require.NoError(t, err)

	q := berreman.Query{Wavelength: 470e-9, Kx: 0.3}
	e := berreman.NewEngine()
	a, err := e.Evaluate(stack(t, 1.55, 1.55, rep), q)
	require.NoError(t, err)
	b, err := e.Evaluate(stack(t, 1.55, 1.55, tw, tw, tw, tw), q)
	require.NoError(t, err)

	assert.Equal(t, a.T, b.T)
	assert.Equal(t, a.R, b.R)
	assert.Equal(t, 16, a.BranchCount(berreman.BranchEigen))
}

func TestEvaluate_Reciprocity(t *testing.T) {
	// At normal incidence every block of a single plate's transfer matrix is
	// a function of one symmetric 2x2 tensor, so t_ps = t_sp.
	tilted := plate(t, 1.5, 1.65, 0.8, math.Pi/5)
	s := stack(t, 1.0, 1.33, homogeneous(t, tilted, 1.2e-6))

	e := berreman.NewEngine()
	for _, lambda := range []float64{450e-9, 600e-9, 800e-9} {
		res, err := e.Evaluate(s, berreman.Query{Wavelength: lambda})
		require.NoError(t, err)
		tp, _ := powers(res)
		assert.Greater(t, tp[0][1], 1e-4)
		assert.InDelta(t, tp[0][1], tp[1][0], 1e-12, "λ=%g", lambda)
	}
}

func TestEvaluate_DegenerateAngleStability(t *testing.T) {
	s := stack(t, 1.0, 1.5, homogeneous(t, plate(t, 1.52, 1.68, 0.7, 0.5), 2e-6))
	e := berreman.NewEngine()

	normal, err := e.Evaluate(s, berreman.Query{Wavelength: 600e-9})
	require.NoError(t, err)
	assert.Equal(t, 1, normal.BranchCount(berreman.BranchNormal))

	near, err := e.Evaluate(s, berreman.Query{Wavelength: 600e-9, Kx: 1e-6})
	require.NoError(t, err)
	assert.Equal(t, 1, near.BranchCount(berreman.BranchEigen))

	tn, rn := powers(normal)
	tk, rk := powers(near)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, tn[i][j], tk[i][j], 1e-5)
			assert.InDelta(t, rn[i][j], rk[i][j], 1e-5)
		}
	}
}

// ---------- failure modes ----------

func TestEvaluate_Errors(t *testing.T) {
	e := berreman.NewEngine()
	air := stack(t, 1, 1)

	_, err := e.Evaluate(nil, berreman.Query{Wavelength: 500e-9})
	require.ErrorIs(t, err, berreman.ErrInvalidQuery)

	_, err = e.Evaluate(air, berreman.Query{Wavelength: 0})
	require.ErrorIs(t, err, berreman.ErrInvalidQuery)

	_, err = e.Evaluate(air, berreman.Query{Wavelength: 500e-9, Kx: math.NaN()})
	require.ErrorIs(t, err, berreman.ErrInvalidQuery)

	_, err = e.Evaluate(air, berreman.Query{Wavelength: 500e-9, Kx: 1.2})
	require.ErrorIs(t, err, berreman.ErrEvanescentIncidence)

	// grazing incidence: forward and backward modes coincide on both sides
	_, err = e.Evaluate(air, berreman.Query{Wavelength: 500e-9, Kx: 1})
	require.ErrorIs(t, err, berreman.ErrSingularBoundaryMatrix)
}

func TestEvaluate_GrazingIncidence(t *testing.T) {
	e := berreman.NewEngine()
	film, err := layer.Cholesteric(plate(t, 1.51, 1.59, math.Pi/2, 0), 300e-9, 1200e-9, 20, layer.LeftHanded)
	require.NoError(t, err)
	s := stack(t, 1.55, 1.55, film...)

	for _, kx := range []float64{1.55, -1.55, 1.55 * (1 + 1e-12), 1.55 * math.Sin(math.Pi/2)} {
		res, err := e.Evaluate(s, berreman.Query{Wavelength: 465e-9, Kx: kx})
		require.ErrorIs(t, err, berreman.ErrSingularBoundaryMatrix, "kx=%v", kx)
		assert.Nil(t, res)
	}

	// just inside the band edge the result is finite and conserves energy
	res, err := e.Evaluate(s, berreman.Query{Wavelength: 465e-9, Kx: 1.55 * (1 - 1e-6)})
	require.NoError(t, err)
	assert.Greater(t, real(res.QFront), 0.0)
	tp, rp := powers(res)
	for in := 0; in < 2; in++ {
		sum := tp[0][in] + tp[1][in] + rp[0][in] + rp[1][in]
		require.False(t, math.IsNaN(sum))
		assert.InDelta(t, 1, sum, 1e-6)
	}
}

func TestEvaluate_TotalInternalReflection(t *testing.T) {
	s := stack(t, 1.5, 1.0)
	res, err := berreman.NewEngine().Evaluate(s, berreman.Query{Wavelength: 500e-9, Kx: 1.2})
	require.NoError(t, err)
	tp, rp := powers(res)
	assert.InDelta(t, 1, rp[0][0], 1e-12)
	assert.InDelta(t, 1, rp[1][1], 1e-12)
	assert.InDelta(t, 0, tp[0][0], 1e-15)
}

func TestEvaluate_NonPhysicalTensor(t *testing.T) {
	gain, err := material.NewAbsorbing(1.5-0.1i, 1.5-0.1i, 1.5-0.1i)
	require.NoError(t, err)
	s := stack(t, 1, 1, homogeneous(t, gain, 100e-9))
	q := berreman.Query{Wavelength: 500e-9}

	res, err := berreman.NewEngine().Evaluate(s, q)
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.ErrorIs(t, res.Warnings[0], berreman.ErrNonPhysicalTensor)

	_, err = berreman.NewEngine(berreman.WithStrictPhysics()).Evaluate(s, q)
	require.ErrorIs(t, err, berreman.ErrNonPhysicalTensor)

	// a generous tolerance accepts the same tensor
	res, err = berreman.NewEngine(berreman.WithPhysicalTolerance(1), berreman.WithStrictPhysics()).Evaluate(s, q)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
}

func TestIsPassive(t *testing.T) {
	assert.True(t, berreman.IsPassive(cmat.Identity3().Scale(2.25), 0))
	assert.True(t, berreman.IsPassive(cmat.Identity3().Scale(2.25+0.1i), 0))
	assert.False(t, berreman.IsPassive(cmat.Identity3().Scale(2.25-0.1i), 1e-9))

	// Hermitian off-diagonal coupling is lossless
	h := cmat.Mat3{{2, 0.3i, 0}, {-0.3i, 2, 0}, {0, 0, 2}}
	assert.True(t, berreman.IsPassive(h, 1e-12))
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { berreman.WithDegeneracyTolerance(0) })
	assert.Panics(t, func() { berreman.WithDegeneracyTolerance(math.NaN()) })
	assert.Panics(t, func() { berreman.WithPhysicalTolerance(-1) })
	assert.Panics(t, func() { berreman.WithSingularTolerance(math.Inf(1)) })
	assert.NotPanics(t, func() { berreman.WithPhysicalTolerance(0) })
}

func TestQuery(t *testing.T) {
	q := berreman.QueryFromAngle(500e-9, 1.5, math.Pi/6)
	assert.InDelta(t, 0.75, q.Kx, 1e-15)
	assert.InDelta(t, 2*math.Pi/500e-9, q.K0(), 1e-3)
	assert.NoError(t, q.Validate())
}
