package Euler1D

import (
	"math"
	"strings"

	"github.com/notargets/eulerfv/FV1D"
	"github.com/notargets/eulerfv/types"
)

type CaseType uint8

const (
	SOD CaseType = iota
	DENSITY_WAVE
)

var (
	CaseNames = map[string]CaseType{
		"sod":          SOD,
		"shocktube":    SOD,
		"densitywave":  DENSITY_WAVE,
		"density wave": DENSITY_WAVE,
	}
	CasePrintNames = []string{"Sod Shock Tube", "Density Wave"}
)

func (ct CaseType) Print() (txt string) {
	txt = CasePrintNames[ct]
	return
}

func NewCaseType(label string) (ct CaseType, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if len(label) == 0 {
		return SOD, nil
	}
	if ct, ok = CaseNames[label]; !ok {
		err = types.NewConfigurationError("Case", "unable to use case named [%s]", label)
	}
	return
}

type PrimitiveState struct {
	Rho, U, P float64
}

// Conserved returns (rho, rhoU, rhoE) of the state
func (ps PrimitiveState) Conserved(eos *EquationOfState) (q [FV1D.NumFields]float64) {
	q[0] = ps.Rho
	q[1] = ps.Rho * ps.U
	q[2] = eos.Energy(ps.Rho, ps.U, ps.P)
	return
}

// CaseParameters describe an initial condition on a uniform grid
type CaseParameters struct {
	N                 int
	XMin, XMax, Split float64
	Gamma             float64
	Left, Right       PrimitiveState
	BC                types.BCFLAG
	Amplitude         float64 // Density perturbation of the density wave
}

// DefaultSod is Sod's shock tube on [-1, 1]
func DefaultSod() CaseParameters {
	return CaseParameters{
		N:     100,
		XMin:  -1,
		XMax:  1,
		Split: 0,
		Gamma: 1.4,
		Left:  PrimitiveState{Rho: 1, U: 0, P: 1},
		Right: PrimitiveState{Rho: 0.1, U: 0, P: 0.1},
		BC:    types.BC_Out,
	}
}

// DefaultDensityWave advects a sine density perturbation through a periodic box
func DefaultDensityWave() CaseParameters {
	return CaseParameters{
		N:         100,
		XMin:      0,
		XMax:      1,
		Gamma:     1.4,
		Left:      PrimitiveState{Rho: 1, U: 1, P: 1},
		Right:     PrimitiveState{Rho: 1, U: 1, P: 1},
		BC:        types.BC_Periodic,
		Amplitude: 0.2,
	}
}

func (cp CaseParameters) checkState(name string, ps PrimitiveState) (err error) {
	if !(ps.Rho > 0) || !(ps.P > 0) || math.IsInf(ps.Rho, 0) || math.IsInf(ps.P, 0) ||
		math.IsNaN(ps.U) || math.IsInf(ps.U, 0) {
		err = types.NewConfigurationError(name,
			"density and pressure must be positive and finite, have rho = %g, u = %g, p = %g",
			ps.Rho, ps.U, ps.P)
	}
	return
}

// NewShockTube builds the grid and fields of a two state Riemann problem.
// Cells centred left of Split take the left state.
func (cp CaseParameters) NewShockTube(order int) (g *FV1D.Grid, Q FV1D.Fields, eos *EquationOfState, err error) {
	if eos, err = NewEquationOfState(cp.Gamma); err != nil {
		return
	}
	if err = cp.checkState("Left", cp.Left); err != nil {
		return
	}
	if err = cp.checkState("Right", cp.Right); err != nil {
		return
	}
	if g, err = FV1D.NewGrid(cp.N, order, cp.XMin, cp.XMax); err != nil {
		return
	}
	Q = FV1D.NewFields(g.NCells())
	var (
		qL, qR = cp.Left.Conserved(eos), cp.Right.Conserved(eos)
	)
	for i, x := range g.X {
		q := qR
		if x < cp.Split {
			q = qL
		}
		for n := range Q {
			Q[n].Value[i] = q[n]
		}
	}
	err = FV1D.FillGhostCells(g, Q, cp.BC)
	return
}

// NewDensityWave builds rho = 1 + A*sin(2*pi*(x-XMin)/L) with the uniform
// velocity and pressure of the left state on a periodic domain
func (cp CaseParameters) NewDensityWave(order int) (g *FV1D.Grid, Q FV1D.Fields, eos *EquationOfState, err error) {
	if !(math.Abs(cp.Amplitude) < 1) {
		err = types.NewConfigurationError("Amplitude",
			"density wave amplitude must be below 1, have %g", cp.Amplitude)
		return
	}
	if eos, err = NewEquationOfState(cp.Gamma); err != nil {
		return
	}
	if err = cp.checkState("Left", cp.Left); err != nil {
		return
	}
	if g, err = FV1D.NewGrid(cp.N, order, cp.XMin, cp.XMax); err != nil {
		return
	}
	Q = FV1D.NewFields(g.NCells())
	var (
		L = cp.XMax - cp.XMin
	)
	for i, x := range g.X {
		ps := cp.Left
		ps.Rho = 1 + cp.Amplitude*math.Sin(2*math.Pi*(x-cp.XMin)/L)
		q := ps.Conserved(eos)
		for n := range Q {
			Q[n].Value[i] = q[n]
		}
	}
	err = FV1D.FillGhostCells(g, Q, types.BC_Periodic)
	return
}

// Build dispatches on the case type. The density wave always runs periodic.
func (cp CaseParameters) Build(ct CaseType, order int) (g *FV1D.Grid, Q FV1D.Fields, eos *EquationOfState, bc types.BCFLAG, err error) {
	switch ct {
	case SOD:
		g, Q, eos, err = cp.NewShockTube(order)
		bc = cp.BC
	case DENSITY_WAVE:
		g, Q, eos, err = cp.NewDensityWave(order)
		bc = types.BC_Periodic
	default:
		err = types.NewConfigurationError("Case", "unknown case %d", ct)
	}
	return
}
