package Euler1D

import (
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/eulerfv/FV1D"
	"github.com/notargets/eulerfv/InputParameters"
	"github.com/notargets/eulerfv/types"
	"github.com/notargets/eulerfv/utils"
)

// Euler is a finite volume solution of the 1D Euler equations, owning its
// grid, fields and time integration scheme for the duration of one run
type Euler struct {
	// Input parameters
	Title                     string
	CFL, StartTime, FinalTime float64
	Epsilon                   float64
	PlotSteps, LogFrequency   int
	Case                      CaseType
	SchemeType                SchemeType
	Limiter                   LimiterType
	BC                        types.BCFLAG
	CaseParameters            CaseParameters
	// Solution state
	Grid   *FV1D.Grid
	Q      FV1D.Fields
	EOS    *EquationOfState
	Scheme Scheme
	Steps  int
	Time   float64
}

func NewEuler(ip *InputParameters.InputParameters1D) (c *Euler, err error) {
	c = &Euler{
		Title:        ip.Title,
		CFL:          ip.CFL,
		StartTime:    ip.StartTime,
		FinalTime:    ip.FinalTime,
		Epsilon:      ip.Epsilon,
		PlotSteps:    ip.PlotSteps,
		LogFrequency: ip.LogFrequency,
	}
	if !(c.CFL > 0) || math.IsInf(c.CFL, 0) {
		return nil, types.NewConfigurationError("CFL", "must be positive and finite, have %g", c.CFL)
	}
	if !(c.FinalTime >= c.StartTime) || math.IsInf(c.FinalTime, 0) || math.IsInf(c.StartTime, 0) {
		return nil, types.NewConfigurationError("FinalTime",
			"run interval [%g, %g] is not a finite forward interval", c.StartTime, c.FinalTime)
	}
	if c.PlotSteps < 0 {
		return nil, types.NewConfigurationError("PlotSteps", "must not be negative, have %d", c.PlotSteps)
	}
	if c.LogFrequency <= 0 {
		c.LogFrequency = 50
	}
	if c.Case, err = NewCaseType(ip.Case); err != nil {
		return nil, err
	}
	if c.SchemeType, err = NewSchemeType(ip.Scheme); err != nil {
		return nil, err
	}
	if c.Limiter, err = NewLimiterType(ip.Limiter); err != nil {
		return nil, err
	}
	if c.BC, err = types.NewBCFLAG(ip.BC); err != nil {
		return nil, err
	}
	c.CaseParameters = CaseParameters{
		N:         ip.N,
		XMin:      ip.XMin,
		XMax:      ip.XMax,
		Split:     ip.Split,
		Gamma:     ip.Gamma,
		Left:      PrimitiveState{Rho: ip.Left.Rho, U: ip.Left.U, P: ip.Left.P},
		Right:     PrimitiveState{Rho: ip.Right.Rho, U: ip.Right.U, P: ip.Right.P},
		BC:        c.BC,
		Amplitude: ip.Amplitude,
	}
	if c.Grid, c.Q, c.EOS, c.BC, err = c.CaseParameters.Build(c.Case, c.SchemeType.Order()); err != nil {
		return nil, err
	}
	if c.Scheme, err = NewScheme(c.SchemeType, c.Limiter, c.Grid, c.BC, c.EOS, c.Epsilon, c.Q); err != nil {
		return nil, err
	}
	c.Time = c.StartTime
	return
}

// Snapshot copies the current interior solution
func (c *Euler) Snapshot(step int, time float64) *Snapshot {
	return NewSnapshot(step, time, c.Grid, c.EOS, c.Q)
}

// Run marches to FinalTime. Snapshots go to vis at step 0, every PlotSteps
// steps and at the end; vis may be nil. A failed step is returned as a
// *types.RunError.
func (c *Euler) Run(vis Visualizer) (err error) {
	var (
		first, end = c.Grid.Interior()
	)
	fields := log.Fields{
		"case":   c.Case.Print(),
		"scheme": c.SchemeType.Print(),
		"N":      c.Grid.N,
		"CFL":    c.CFL,
		"BC":     c.BC.String(),
	}
	if c.SchemeType == RK2_S {
		fields["limiter"] = c.Limiter.Print()
	}
	log.WithFields(fields).Infof("Euler Equations in 1 Dimension, %s", c.Title)
	observe := func(step int, time, dt float64, done bool) (err error) {
		if step%c.LogFrequency == 0 || done {
			rho := c.Q.Rho().Value[first:end]
			log.WithFields(log.Fields{
				"step":   step,
				"time":   time,
				"dt":     dt,
				"rhoMin": floats.Min(rho),
				"rhoMax": floats.Max(rho),
			}).Info("progress")
		} else {
			log.WithFields(log.Fields{"step": step, "time": time, "dt": dt}).Debug("step")
		}
		if vis == nil {
			return
		}
		if step == 0 || done || (c.PlotSteps > 0 && step%c.PlotSteps == 0) {
			err = vis.AddSnapshot(c.Snapshot(step, time))
		}
		return
	}
	dtCalc := func() (float64, error) {
		return CalculateDT(c.Grid, c.EOS, c.Q, c.CFL)
	}
	c.Steps, c.Time, err = March(c.StartTime, c.FinalTime, dtCalc, c.Scheme.Advance, observe)
	if vis != nil {
		if ferr := vis.Finish(); err == nil {
			err = ferr
		}
	}
	if err != nil {
		log.WithError(err).Error("run stopped")
		return
	}
	log.WithFields(log.Fields{
		"steps": c.Steps,
		"time":  c.Time,
		"mass":  c.Q.Total(c.Grid, FV1D.Density),
	}).Info(utils.GetMemUsage())
	return
}
