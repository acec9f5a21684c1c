package utils

import (
	"math"
)

// Linspace returns N evenly spaced values from min to max inclusive
func Linspace(min, max float64, N int) (v []float64) {
	v = make([]float64, N)
	if N == 1 {
		v[0] = min
		return
	}
	del := (max - min) / float64(N-1)
	for i := range v {
		v[i] = min + float64(i)*del
	}
	v[N-1] = max
	return
}

// POW is x^pp with small integer powers unrolled
func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 4 || pp < -4 {
		return math.Pow(x, float64(pp))
	}
	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	}
	if flipped {
		y = 1. / y
	}
	return
}
