package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, Linspace(-1, 1, 5))
	assert.Equal(t, []float64{2}, Linspace(2, 3, 1))
	v := Linspace(0, 0.3, 7)
	assert.Equal(t, 0.3, v[6])
}

func TestPOW(t *testing.T) {
	for _, x := range []float64{-1.5, 0.5, 2, 3.25} {
		for p := -6; p <= 6; p++ {
			assert.InDelta(t, math.Pow(x, float64(p)), POW(x, p), 1.e-12*math.Max(1, math.Abs(math.Pow(x, float64(p)))))
		}
	}
}

func TestFinite(t *testing.T) {
	v := []float64{1, 2, math.NaN(), 4, math.Inf(-1)}
	assert.Equal(t, 2, FirstNonFinite(v, 0, len(v)))
	assert.Equal(t, 4, FirstNonFinite(v, 3, len(v)))
	assert.Equal(t, -1, FirstNonFinite(v, 0, 2))
	assert.True(t, IsFinite(1.e300))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.Contains(t, GetMemUsage(), "MiB")
}
