package Euler1D

import (
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/eulerfv/FV1D"
)

// Snapshot is a copy of the interior solution at one instant
type Snapshot struct {
	Step            int
	Time            float64
	X               []float64
	Rho, RhoU, RhoE []float64
	P               []float64
}

func NewSnapshot(step int, time float64, g *FV1D.Grid, eos *EquationOfState, Q FV1D.Fields) (s *Snapshot) {
	s = &Snapshot{
		Step: step,
		Time: time,
		X:    g.InteriorX(),
		Rho:  Q.InteriorValues(g, FV1D.Density),
		RhoU: Q.InteriorValues(g, FV1D.Momentum),
		RhoE: Q.InteriorValues(g, FV1D.Energy),
	}
	s.P = make([]float64, len(s.Rho))
	for i := range s.P {
		s.P[i] = eos.Pressure(s.Rho[i], s.RhoU[i], s.RhoE[i])
	}
	return
}

// U is the velocity at each cell centre
func (s *Snapshot) U() (u []float64) {
	u = make([]float64, len(s.Rho))
	floats.DivTo(u, s.RhoU, s.Rho)
	return
}

// DensityRange returns the minimum and maximum cell density
func (s *Snapshot) DensityRange() (rhoMin, rhoMax float64) {
	return floats.Min(s.Rho), floats.Max(s.Rho)
}

// Visualizer consumes snapshots while a run progresses
type Visualizer interface {
	AddSnapshot(s *Snapshot) error
	// Finish is called once after the last snapshot
	Finish() error
}
