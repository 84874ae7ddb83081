package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"Cantilever/internal/calc/calcerr"
)

func TestMomentOfInertiaSolidIgnoresWall(t *testing.T) {
	t.Parallel()

	tcs := []struct{ h, w float64 }{
		{100, 50},
		{20, 20},
		{1, 300},
		{0.5, 0.25},
	}
	for _, tc := range tcs {
		want := (tc.w / 1000) * (tc.h / 1000) * (tc.h / 1000) * (tc.h / 1000) / 12
		for _, wall := range []float64{0, 5, 1e6, -3} {
			got, err := MomentOfInertia(tc.h, tc.w, true, wall)
			require.NoError(t, err)
			assert.True(t, scalar.EqualWithinRel(got, want, 1e-12), "h=%g w=%g wall=%g: %g != %g", tc.h, tc.w, wall, got, want)
		}
	}
}

func TestMomentOfInertiaScenario(t *testing.T) {
	t.Parallel()

	I, err := MomentOfInertia(100, 50, true, 0)
	require.NoError(t, err)
	assert.InDelta(t, 4.1667e-6, I, 1e-10)
}

func TestMomentOfInertiaHollowBelowSolid(t *testing.T) {
	t.Parallel()

	solid, err := MomentOfInertia(100, 50, true, 0)
	require.NoError(t, err)

	prev := solid
	for _, wall := range []float64{0.5, 1, 2, 5, 10, 20, 24.9} {
		I, err := MomentOfInertia(100, 50, false, wall)
		require.NoError(t, err, "wall=%g", wall)
		assert.Greater(t, I, 0.0)
		assert.Less(t, I, solid, "wall=%g", wall)
		assert.Less(t, I, prev, "inertia must decrease as wall grows, wall=%g", wall)
		prev = I
	}
}

func TestMomentOfInertiaHollowFormula(t *testing.T) {
	t.Parallel()

	I, err := MomentOfInertia(100, 50, false, 5)
	require.NoError(t, err)
	want := (0.05*0.1*0.1*0.1 - 0.04*0.09*0.09*0.09) / 12
	assert.True(t, scalar.EqualWithinRel(I, want, 1e-12), "%g != %g", I, want)
}

func TestMomentOfInertiaInvalid(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name       string
		h, w, wall float64
		solid      bool
	}{
		{"inverted core", 20, 20, 12, false},
		{"wall equals half height", 20, 40, 10, false},
		{"wall equals half width", 40, 20, 10, false},
		{"zero wall hollow", 20, 20, 0, false},
		{"negative wall hollow", 20, 20, -1, false},
		{"zero height", 0, 20, 0, true},
		{"negative width", 20, -5, 0, true},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			I, err := MomentOfInertia(tc.h, tc.w, tc.solid, tc.wall)
			require.ErrorIs(t, err, calcerr.ErrInvalidGeometry)
			assert.Zero(t, I)
		})
	}
}

func TestCalculate(t *testing.T) {
	t.Parallel()

	res, err := Calculate(Input{HeightMM: 100, WidthMM: 50, IsSolid: true})
	require.NoError(t, err)
	assert.InDelta(t, 4.1667e-6, res.MomentOfInertiaM4, 1e-10)

	_, err = Calculate(Input{HeightMM: 20, WidthMM: 20, WallThicknessMM: 12})
	assert.ErrorIs(t, err, calcerr.ErrInvalidGeometry)
}
