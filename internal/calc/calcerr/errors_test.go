package calcerr

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name string
		err  error
		want string
	}{
		{"geometry", fmt.Errorf("%w: height", ErrInvalidGeometry), "invalid_geometry"},
		{"load", fmt.Errorf("%w: force", ErrInvalidLoad), "invalid_load"},
		{"sampling", ErrInvalidSampling, "invalid_sampling"},
		{"other", errors.New("boom"), ""},
		{"nil", nil, ""},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Kind(tc.err))
		})
	}
}

func TestPositive(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Positive("h", 1e-9))
	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := Positive("h", v)
		assert.ErrorIs(t, err, ErrInvalidGeometry, "value %g", v)
	}
}

func TestNonNegativeLoad(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NonNegativeLoad("force", 0))
	assert.NoError(t, NonNegativeLoad("force", 10))
	for _, v := range []float64{-1e-12, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, NonNegativeLoad("force", v), ErrInvalidLoad, "value %g", v)
	}
}
