package Euler1D

import (
	"math"
	"strings"

	"github.com/notargets/eulerfv/types"
)

// Limiter maps the ratio of successive slopes to a slope scaling factor
type Limiter func(r float64) float64

type LimiterType uint8

const (
	Minmod_L LimiterType = iota
	Superbee_L
	VanLeer_L
	VanAlbada_L
)

var (
	LimiterNames = map[string]LimiterType{
		"minmod":     Minmod_L,
		"superbee":   Superbee_L,
		"vanleer":    VanLeer_L,
		"van leer":   VanLeer_L,
		"vanalbada":  VanAlbada_L,
		"van albada": VanAlbada_L,
	}
	LimiterPrintNames = []string{"Minmod", "Superbee", "Van Leer", "Van Albada"}
	limiterFuncs      = []Limiter{Minmod, Superbee, VanLeer, VanAlbada}
)

func (lt LimiterType) Print() (txt string) {
	txt = LimiterPrintNames[lt]
	return
}

func (lt LimiterType) Func() Limiter { return limiterFuncs[lt] }

// NewLimiterType parses a limiter name, an empty label selects Minmod
func NewLimiterType(label string) (lt LimiterType, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if len(label) == 0 {
		return Minmod_L, nil
	}
	if lt, ok = LimiterNames[label]; !ok {
		err = types.NewConfigurationError("Limiter", "unable to use limiter named [%s]", label)
	}
	return
}

func Minmod(r float64) float64 {
	return math.Max(0, math.Min(1, r))
}

func Superbee(r float64) float64 {
	return math.Max(0, math.Max(math.Min(1, 2*r), math.Min(2, r)))
}

func VanLeer(r float64) float64 {
	switch {
	case r <= 0:
		return 0
	case math.IsInf(r, 1): // Inf/Inf is NaN
		return 2
	}
	return 2 * r / (1 + r)
}

// VanAlbada is clipped to zero for r <= 0 so opposing slopes fall back to first order
func VanAlbada(r float64) float64 {
	switch {
	case r <= 0:
		return 0
	case r > 1.e8: // r*r overflows near 1e154, the function is 1 to double precision well before
		return 1
	}
	return (r + r*r) / (1 + r*r)
}
