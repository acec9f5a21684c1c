package Euler1D

import (
	"math"

	"github.com/notargets/eulerfv/FV1D"
	"github.com/notargets/eulerfv/types"
	"github.com/notargets/eulerfv/utils"
)

// SlopeRatioEpsilon keeps the TVD slope ratio finite when the central
// difference vanishes
const SlopeRatioEpsilon = 1.e-6

// Reconstruction fills the interface states of a field from its cell averages
type Reconstruction interface {
	Apply(f *FV1D.ConservedField) error
	// Order is the ghost layer width the stencil needs
	Order() int
}

// PiecewiseConstant is the first order reconstruction
type PiecewiseConstant struct{}

func (pc PiecewiseConstant) Order() int { return 1 }

func (pc PiecewiseConstant) Apply(f *FV1D.ConservedField) (err error) {
	var (
		M = f.NCells()
	)
	if err = checkStencil(f, pc.Order()); err != nil {
		return
	}
	f.MarkFluxStale()
	for j := 1; j < M; j++ {
		f.Left[j] = f.Value[j-1]
		f.Right[j] = f.Value[j]
	}
	return checkFinite(f, 1, M)
}

// TVD is the limited piecewise linear reconstruction
type TVD struct {
	Limiter Limiter
}

func NewTVD(lt LimiterType) *TVD {
	return &TVD{Limiter: lt.Func()}
}

func (tvd *TVD) Order() int { return 2 }

func (tvd *TVD) Apply(f *FV1D.ConservedField) (err error) {
	var (
		M = f.NCells()
		v = f.Value
	)
	if err = checkStencil(f, tvd.Order()); err != nil {
		return
	}
	f.MarkFluxStale()
	for j := 2; j < M-1; j++ {
		var (
			delM = v[j-1] - v[j-2]
			del0 = v[j] - v[j-1]
			delP = v[j+1] - v[j]
		)
		rL, rR := SlopeRatio(delM, del0), SlopeRatio(delP, del0)
		f.Left[j] = v[j-1] + 0.5*tvd.Limiter(rL)*del0
		f.Right[j] = v[j] - 0.5*tvd.Limiter(rR)*del0
	}
	return checkFinite(f, 2, M-1)
}

// SlopeRatio is del/del0 with |del0| held at or above SlopeRatioEpsilon,
// keeping the sign of del0 so decreasing data is limited like increasing data
func SlopeRatio(del, del0 float64) float64 {
	if math.Abs(del0) <= SlopeRatioEpsilon {
		del0 = math.Copysign(SlopeRatioEpsilon, del0)
	}
	return del / del0
}

func checkStencil(f *FV1D.ConservedField, order int) (err error) {
	if f.NCells() < 2*order+1 {
		return types.NewConfigurationError(f.Kind.String(),
			"reconstruction of order %d needs at least %d cells, have %d",
			order, 2*order+1, f.NCells())
	}
	return f.CheckShape()
}

// checkFinite reports the first non-finite interface state in [lo, hi)
func checkFinite(f *FV1D.ConservedField, lo, hi int) (err error) {
	for _, side := range [][]float64{f.Left, f.Right} {
		if j := utils.FirstNonFinite(side, lo, hi); j >= 0 {
			return &types.NonPhysicalStateError{
				Stage: "reconstruction",
				Field: f.Kind.String(),
				Index: j,
				Value: side[j],
			}
		}
	}
	return
}

// ReconstructAll applies a reconstruction to each of the three fields
func ReconstructAll(rc Reconstruction, Q FV1D.Fields) (err error) {
	for _, f := range Q {
		if err = rc.Apply(f); err != nil {
			return
		}
	}
	return
}
