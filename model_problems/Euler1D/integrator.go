package Euler1D

import (
	"math"
	"strings"

	"github.com/notargets/eulerfv/FV1D"
	"github.com/notargets/eulerfv/types"
)

// MinWaveSpeed floors the local wave speed so a fluid at rest still gives a
// finite time step
const MinWaveSpeed = 0.1

// CalculateDT returns the largest stable explicit step for the current state
func CalculateDT(g *FV1D.Grid, eos *EquationOfState, Q FV1D.Fields, CFL float64) (dt float64, err error) {
	var (
		first, end = g.Interior()
		rho, rhoU  = Q.Rho().Value, Q.RhoU().Value
		rhoE       = Q.RhoE().Value
	)
	dt = math.MaxFloat64
	for i := first; i < end; i++ {
		var p float64
		if p, err = eos.CheckState("dt", i, rho[i], rhoU[i], rhoE[i]); err != nil {
			return
		}
		var (
			u      = rhoU[i] / rho[i]
			c      = eos.SoundSpeed(rho[i], p)
			lamMax = math.Max(math.Max(math.Abs(u), math.Abs(u+c)),
				math.Max(math.Abs(u-c), MinWaveSpeed))
		)
		dt = math.Min(dt, CFL*g.Width(i)/lamMax)
	}
	if !(dt > 0) || math.IsInf(dt, 0) || dt == math.MaxFloat64 {
		err = &types.DtUnderflowError{Dt: dt}
	}
	return
}

type SchemeType uint8

const (
	FirstOrder_S SchemeType = iota
	RK2_S
)

var (
	SchemeNames = map[string]SchemeType{
		"firstorder":  FirstOrder_S,
		"first order": FirstOrder_S,
		"euler":       FirstOrder_S,
		"rk2":         RK2_S,
		"heun":        RK2_S,
	}
	SchemePrintNames = []string{"First Order, Forward Euler", "TVD, Two Stage Runge-Kutta"}
)

func (st SchemeType) Print() (txt string) {
	txt = SchemePrintNames[st]
	return
}

// Order is the ghost layer width the scheme's reconstruction needs
func (st SchemeType) Order() int {
	if st == RK2_S {
		return 2
	}
	return 1
}

func NewSchemeType(label string) (st SchemeType, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if len(label) == 0 {
		return FirstOrder_S, nil
	}
	if st, ok = SchemeNames[label]; !ok {
		err = types.NewConfigurationError("Scheme", "unable to use scheme named [%s]", label)
	}
	return
}

// Scheme advances the cell averages it owns by one time step
type Scheme interface {
	Order() int
	Advance(dt float64) error
}

// RHS evaluates Lh = (Flux[i] - Flux[i+1]) / width[i] for all three fields:
// ghost fill, reconstruction, Riemann solve, flux difference
type RHS struct {
	Grid   *FV1D.Grid
	BC     types.BCFLAG
	Recon  Reconstruction
	Solver *RoeSolver
	Div    *FV1D.Divergence
}

func NewRHS(g *FV1D.Grid, bc types.BCFLAG, recon Reconstruction, solver *RoeSolver) (rhs *RHS, err error) {
	if recon.Order() != g.Order {
		return nil, types.NewConfigurationError("Order",
			"reconstruction needs ghost width %d, grid has %d", recon.Order(), g.Order)
	}
	if solver == nil {
		return nil, types.NewConfigurationError("Solver", "riemann solver is missing")
	}
	return &RHS{
		Grid:   g,
		BC:     bc,
		Recon:  recon,
		Solver: solver,
		Div:    FV1D.NewDivergence(g),
	}, nil
}

func (rhs *RHS) Compute(Q FV1D.Fields, Lh [FV1D.NumFields][]float64) (err error) {
	if err = FV1D.FillGhostCells(rhs.Grid, Q, rhs.BC); err != nil {
		return
	}
	if err = ReconstructAll(rhs.Recon, Q); err != nil {
		return
	}
	if err = rhs.Solver.Solve(Q, rhs.Grid.Order); err != nil {
		return
	}
	for n := range Q {
		if err = rhs.Div.Residual(Q[n], Lh[n]); err != nil {
			return
		}
	}
	return
}

func newResidualBuffers(nCells int) (Lh [FV1D.NumFields][]float64) {
	for n := range Lh {
		Lh[n] = make([]float64, nCells)
	}
	return
}

// ValidateState checks every interior cell for positive density and pressure
// and finite values
func ValidateState(g *FV1D.Grid, eos *EquationOfState, Q FV1D.Fields, stage string) (err error) {
	var (
		first, end = g.Interior()
	)
	for i := first; i < end; i++ {
		if _, err = eos.CheckState(stage, i, Q[0].Value[i], Q[1].Value[i], Q[2].Value[i]); err != nil {
			return
		}
	}
	return
}

// ForwardEuler is the first order scheme, piecewise constant reconstruction
// and a single explicit update
type ForwardEuler struct {
	rhs *RHS
	EOS *EquationOfState
	Q   FV1D.Fields
	Lh  [FV1D.NumFields][]float64
}

func NewForwardEuler(rhs *RHS, eos *EquationOfState, Q FV1D.Fields) (fe *ForwardEuler, err error) {
	if err = Q.Check(rhs.Grid); err != nil {
		return
	}
	return &ForwardEuler{
		rhs: rhs,
		EOS: eos,
		Q:   Q,
		Lh:  newResidualBuffers(rhs.Grid.NCells()),
	}, nil
}

func (fe *ForwardEuler) Order() int { return 1 }

func (fe *ForwardEuler) Advance(dt float64) (err error) {
	var (
		g          = fe.rhs.Grid
		first, end = g.Interior()
	)
	if err = fe.rhs.Compute(fe.Q, fe.Lh); err != nil {
		return
	}
	for n, f := range fe.Q {
		for i := first; i < end; i++ {
			f.Value[i] += dt * fe.Lh[n][i]
		}
		f.MarkFluxStale()
	}
	return ValidateState(g, fe.EOS, fe.Q, "update")
}

// RK2 is Heun's two stage method on a TVD reconstruction
type RK2 struct {
	rhs     *RHS
	EOS     *EquationOfState
	Q       FV1D.Fields
	QStar   FV1D.Fields
	Lh, LhS [FV1D.NumFields][]float64
}

func NewRK2(rhs *RHS, eos *EquationOfState, Q FV1D.Fields) (rk *RK2, err error) {
	var (
		M = rhs.Grid.NCells()
	)
	if err = Q.Check(rhs.Grid); err != nil {
		return
	}
	return &RK2{
		rhs:   rhs,
		EOS:   eos,
		Q:     Q,
		QStar: FV1D.NewFields(M),
		Lh:    newResidualBuffers(M),
		LhS:   newResidualBuffers(M),
	}, nil
}

func (rk *RK2) Order() int { return 2 }

func (rk *RK2) Advance(dt float64) (err error) {
	var (
		g          = rk.rhs.Grid
		first, end = g.Interior()
	)
	// Predictor U* = U + dt*Lh(U)
	if err = rk.rhs.Compute(rk.Q, rk.Lh); err != nil {
		return
	}
	rk.QStar.CopyValues(rk.Q)
	for n, f := range rk.QStar {
		for i := first; i < end; i++ {
			f.Value[i] += dt * rk.Lh[n][i]
		}
	}
	if err = ValidateState(g, rk.EOS, rk.QStar, "predictor"); err != nil {
		return
	}
	// Corrector U = U + 0.5*dt*(Lh(U) + Lh(U*))
	if err = rk.rhs.Compute(rk.QStar, rk.LhS); err != nil {
		return
	}
	for n, f := range rk.Q {
		for i := first; i < end; i++ {
			f.Value[i] += 0.5 * dt * (rk.Lh[n][i] + rk.LhS[n][i])
		}
		f.MarkFluxStale()
	}
	return ValidateState(g, rk.EOS, rk.Q, "update")
}

// NewScheme assembles the reconstruction, solver and update for a scheme type
func NewScheme(st SchemeType, lt LimiterType, g *FV1D.Grid, bc types.BCFLAG, eos *EquationOfState,
	epsilon float64, Q FV1D.Fields) (s Scheme, err error) {
	var (
		solver *RoeSolver
		rhs    *RHS
		recon  Reconstruction
	)
	if solver, err = NewRoeSolver(eos, epsilon); err != nil {
		return
	}
	switch st {
	case FirstOrder_S:
		recon = PiecewiseConstant{}
	case RK2_S:
		recon = NewTVD(lt)
	default:
		return nil, types.NewConfigurationError("Scheme", "unknown scheme %d", st)
	}
	if rhs, err = NewRHS(g, bc, recon, solver); err != nil {
		return
	}
	if st == RK2_S {
		var rk *RK2
		if rk, err = NewRK2(rhs, eos, Q); err != nil {
			return
		}
		return rk, nil
	}
	var fe *ForwardEuler
	if fe, err = NewForwardEuler(rhs, eos, Q); err != nil {
		return
	}
	return fe, nil
}

type (
	DtFunc   func() (dt float64, err error)
	StepFunc func(dt float64) error
	// Observer is called at step 0 and after every completed step, done is
	// true only on the final call
	Observer func(step int, time, dt float64, done bool) error
)

// March advances from startTime until endTime. The last step is shortened to
// land on endTime. Any failure stops the march and is returned as a RunError
// carrying the failing step and the time at which it began.
func March(startTime, endTime float64, dtCalc DtFunc, step StepFunc, observe Observer) (steps int, Time float64, err error) {
	var (
		dt float64
	)
	Time = startTime
	wrap := func(step int, e error) error {
		return &types.RunError{Step: step, Time: Time, Wrapped: e}
	}
	if err = observe(0, Time, 0, !(Time < endTime)); err != nil {
		return steps, Time, wrap(0, err)
	}
	for Time < endTime {
		if dt, err = dtCalc(); err != nil {
			return steps, Time, wrap(steps+1, err)
		}
		if Time+dt >= endTime {
			dt = endTime - Time
		}
		if err = step(dt); err != nil {
			return steps, Time, wrap(steps+1, err)
		}
		steps++
		if endTime-Time <= dt {
			Time = endTime
		} else {
			Time += dt
		}
		if err = observe(steps, Time, dt, !(Time < endTime)); err != nil {
			return steps, Time, wrap(steps, err)
		}
	}
	return
}
