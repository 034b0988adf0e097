package layer_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvoptics/layer"
	"github.com/katalvlaran/lvoptics/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func mustUniaxial(t *testing.T) *material.Material {
	t.Helper()
	m, err := material.NewUniaxial(1.51, 1.59)
	require.NoError(t, err)
	m, err = m.Rotated(material.RotationAbout(material.Ey, math.Pi/2))
	require.NoError(t, err)

	return m
}

func TestConstructors_InvalidParameters(t *testing.T) {
	m := mustUniaxial(t)
	h, err := layer.NewHomogeneous(m, 10e-9)
	require.NoError(t, err)

	cases := []struct {
		name string
		err  error
	}{
		{"homogeneous negative", func() error { _, e := layer.NewHomogeneous(m, -1e-9); return e }()},
		{"homogeneous nan", func() error { _, e := layer.NewHomogeneous(m, math.NaN()); return e }()},
		{"homogeneous nil material", func() error { _, e := layer.NewHomogeneous(nil, 1e-9); return e }()},
		{"twisted zero div", func() error { _, e := layer.NewTwisted(m, 1e-7, math.Pi, 0); return e }()},
		{"twisted negative div", func() error { _, e := layer.NewTwisted(m, 1e-7, math.Pi, -3); return e }()},
		{"twisted inf angle", func() error { _, e := layer.NewTwisted(m, 1e-7, math.Inf(1), 4); return e }()},
		{"twisted negative thickness", func() error { _, e := layer.NewTwisted(m, -1e-7, 1, 4); return e }()},
		{"repeated zero count", func() error { _, e := layer.NewRepeated(0, h); return e }()},
		{"repeated empty", func() error { _, e := layer.NewRepeated(2); return e }()},
		{"repeated nil child", func() error { _, e := layer.NewRepeated(2, h, nil); return e }()},
		{"cholesteric zero pitch", func() error { _, e := layer.Cholesteric(m, 0, 1e-6, 10, layer.LeftHanded); return e }()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.err, layer.ErrInvalidLayerParameters)
		})
	}
}

func TestHomogeneous_Flatten(t *testing.T) {
	m := mustUniaxial(t)
	h, err := layer.NewHomogeneous(m, 25e-9)
	require.NoError(t, err)
	s := h.Flatten()
	require.Len(t, s, 1)
	assert.Same(t, m, s[0].Material)
	assert.Equal(t, 25e-9, h.Thickness())
}

func TestTwisted_Flatten(t *testing.T) {
	m := mustUniaxial(t)
	const n = 8
	tw, err := layer.NewTwisted(m, 80e-9, math.Pi, n)
	require.NoError(t, err)

	s := tw.Flatten()
	require.Len(t, s, n)
	sum := 0.0
	for i, sl := range s {
		assert.InDelta(t, 10e-9, sl.Thickness, 1e-20)
		sum += sl.Thickness

		// Optic axis (lab x at i=0) rotated by π·i/N about z.
		want := material.RotationAbout(material.Ez, math.Pi*float64(i)/n).Apply(material.Ex)
		got := sl.Material.Rotation().Apply(material.Ez)
		assert.InDelta(t, want.X, got.X, 1e-12, "slice %d", i)
		assert.InDelta(t, want.Y, got.Y, 1e-12, "slice %d", i)
	}
	assert.InDelta(t, tw.Thickness(), sum, 1e-20)
	assert.Same(t, m, s[0].Material)

	// Flatten hands out copies.
	s[0].Thickness = 1
	assert.InDelta(t, 10e-9, tw.Flatten()[0].Thickness, 1e-20)
}

func TestTwisted_CustomAxis(t *testing.T) {
	m := mustUniaxial(t)
	tw, err := layer.NewTwisted(m, 40e-9, math.Pi/2, 2, layer.WithAxis(r3.Vec{Y: 3}))
	require.NoError(t, err)
	assert.InDelta(t, 1, tw.Axis().Y, 1e-15)
	// About y the x-aligned optic axis turns toward −z.
	got := tw.Flatten()[1].Material.Rotation().Apply(material.Ez)
	assert.InDelta(t, math.Cos(math.Pi/4), got.X, 1e-12)
	assert.InDelta(t, -math.Sin(math.Pi/4), got.Z, 1e-12)

	assert.Panics(t, func() { layer.WithAxis(r3.Vec{}) })
}

func TestRepeated_EquivalentToConcatenation(t *testing.T) {
	m := mustUniaxial(t)
	iso, err := material.NewIsotropic(1.5)
	require.NoError(t, err)
	tw, err := layer.NewTwisted(m, 300e-9, -2*math.Pi, 12)
	require.NoError(t, err)
	spacer, err := layer.NewHomogeneous(iso, 20e-9)
	require.NoError(t, err)

	const n = 4
	rep, err := layer.NewRepeated(n, tw, spacer)
	require.NoError(t, err)

	var manual []layer.Slice
	for i := 0; i < n; i++ {
		manual = append(manual, tw.Flatten()...)
		manual = append(manual, spacer.Flatten()...)
	}
	got := rep.Flatten()
	require.Equal(t, manual, got)
	assert.InDelta(t, n*(300e-9+20e-9), rep.Thickness(), 1e-18)
	assert.Equal(t, n, rep.Count())
	assert.Len(t, rep.Layers(), 2)
}

func TestRepeated_Nested(t *testing.T) {
	iso, err := material.NewIsotropic(1.5)
	require.NoError(t, err)
	h, err := layer.NewHomogeneous(iso, 1e-9)
	require.NoError(t, err)
	inner, err := layer.NewRepeated(3, h)
	require.NoError(t, err)
	outer, err := layer.NewRepeated(2, inner, h)
	require.NoError(t, err)
	assert.Len(t, outer.Flatten(), 8)
	assert.InDelta(t, 8e-9, outer.Thickness(), 1e-21)
}

func TestCholesteric_Split(t *testing.T) {
	m := mustUniaxial(t)

	// 3500 nm of a 300 nm pitch: 11 full turns plus 2/3 of a turn.
	ls, err := layer.Cholesteric(m, 300e-9, 3500e-9, 90, layer.LeftHanded)
	require.NoError(t, err)
	require.Len(t, ls, 2)

	full, ok := ls[0].(*layer.Repeated)
	require.True(t, ok)
	assert.Equal(t, 11, full.Count())
	period := full.Layers()[0].(*layer.Twisted)
	assert.InDelta(t, -2*math.Pi, period.Angle(), 1e-15)

	rem, ok := ls[1].(*layer.Twisted)
	require.True(t, ok)
	assert.InDelta(t, 200e-9, rem.Thickness(), 1e-15)
	assert.InDelta(t, -2*math.Pi*2/3, rem.Angle(), 1e-9)
	assert.Equal(t, 60, rem.Divisions())

	total := ls[0].Thickness() + ls[1].Thickness()
	assert.InDelta(t, 3500e-9, total, 1e-15)
}

func TestCholesteric_WholeAndPartial(t *testing.T) {
	m := mustUniaxial(t)

	whole, err := layer.Cholesteric(m, 300e-9, 900e-9, 30, layer.RightHanded)
	require.NoError(t, err)
	require.Len(t, whole, 1)
	assert.Equal(t, 3, whole[0].(*layer.Repeated).Count())

	thin, err := layer.Cholesteric(m, 300e-9, 150e-9, 30, layer.RightHanded)
	require.NoError(t, err)
	require.Len(t, thin, 1)
	tw := thin[0].(*layer.Twisted)
	assert.InDelta(t, math.Pi, tw.Angle(), 1e-12)
	assert.Equal(t, 15, tw.Divisions())
}

func TestBraggEstimate(t *testing.T) {
	b := layer.BraggEstimate(1.51, 1.59, 300e-9, 3000e-9)
	assert.InDelta(t, 465e-9, b.Center, 1e-15)
	assert.InDelta(t, 453e-9, b.Low, 1e-15)
	assert.InDelta(t, 477e-9, b.High, 1e-15)
	x := math.Tanh(0.08 / 1.55 * math.Pi * 10)
	assert.InDelta(t, x*x, b.Peak, 1e-12)
	assert.Greater(t, b.Peak, 0.8)
}
