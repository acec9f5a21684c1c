package Euler1D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/eulerfv/types"
)

func TestLimiterBounds(t *testing.T) {
	for lt := Minmod_L; lt <= VanAlbada_L; lt++ {
		phi := lt.Func()
		assert.Equal(t, 1., phi(1), lt.Print())
		for r := -10.; r <= 10.; r += 0.01 {
			f := phi(r)
			assert.True(t, f >= 0 && f <= 2, "%s(%v) = %v", lt.Print(), r, f)
			if r <= 0 {
				assert.Equal(t, 0., f, "%s(%v)", lt.Print(), r)
			}
		}
		for _, r := range []float64{math.Inf(-1), -1.e12, 0, 1.e12, math.Inf(1)} {
			f := phi(r)
			assert.True(t, f >= 0 && f <= 2, "%s(%v) = %v", lt.Print(), r, f)
		}
		// Symmetric limiters treat forward and backward ratios alike
		for _, r := range []float64{0.1, 0.5, 2, 3.7} {
			assert.InDelta(t, phi(r)/r, phi(1/r), 1.e-12, "%s(%v)", lt.Print(), r)
		}
	}
	assert.Equal(t, 0.5, Minmod(0.5))
	assert.Equal(t, 1., Minmod(3))
	assert.Equal(t, 1., Superbee(0.5))
	assert.Equal(t, 1.5, Superbee(1.5))
	assert.Equal(t, 2., Superbee(5))
	assert.InDelta(t, 4./3., VanLeer(2), 1.e-12)
	assert.InDelta(t, 1.2, VanAlbada(2), 1.e-12)
	assert.Equal(t, 0., VanAlbada(-0.5))
	// Large ratios approach the limits without NaN
	assert.Equal(t, 2., VanLeer(math.Inf(1)))
	assert.InDelta(t, 2, VanLeer(1.e300), 1.e-12)
	assert.Equal(t, 1., VanAlbada(math.Inf(1)))
	assert.Equal(t, 1., VanAlbada(1.e200))
	assert.InDelta(t, 1, VanAlbada(1.e7), 1.e-6)
}

func TestLimiterNames(t *testing.T) {
	for label, want := range map[string]LimiterType{
		"":           Minmod_L,
		"minmod":     Minmod_L,
		"SuperBee":   Superbee_L,
		" van leer ": VanLeer_L,
		"vanleer":    VanLeer_L,
		"Van Albada": VanAlbada_L,
		"vanalbada":  VanAlbada_L,
	} {
		lt, err := NewLimiterType(label)
		assert.NoError(t, err)
		assert.Equal(t, want, lt, label)
	}
	_, err := NewLimiterType("koren")
	assert.True(t, errors.Is(err, types.ErrConfiguration))
	assert.Equal(t, "Van Leer", VanLeer_L.Print())
}
