package Euler1D

import (
	"math"

	"github.com/notargets/eulerfv/FV1D"
	"github.com/notargets/eulerfv/types"
	"github.com/notargets/eulerfv/utils"
)

// EquationOfState is the calorically perfect gas closure
type EquationOfState struct {
	Gamma float64
}

func NewEquationOfState(gamma float64) (eos *EquationOfState, err error) {
	if !(gamma > 1) || math.IsInf(gamma, 0) {
		return nil, types.NewConfigurationError("Gamma",
			"ratio of specific heats must be finite and greater than 1, have %g", gamma)
	}
	return &EquationOfState{Gamma: gamma}, nil
}

// Pressure is (gamma-1)*(rhoE - 0.5*(rhoU)^2/rho)
func (eos *EquationOfState) Pressure(rho, rhoU, rhoE float64) (p float64) {
	p = (eos.Gamma - 1.) * (rhoE - 0.5*utils.POW(rhoU, 2)/rho)
	return
}

func (eos *EquationOfState) SoundSpeed(rho, p float64) float64 {
	return math.Sqrt(eos.Gamma * p / rho)
}

// Energy is the total energy per unit volume of a primitive state
func (eos *EquationOfState) Energy(rho, u, p float64) float64 {
	return p/(eos.Gamma-1.) + 0.5*rho*u*u
}

// PhysicalFlux is the exact Euler flux of one conserved field
func PhysicalFlux(kind FV1D.FieldKind, rho, rhoU, rhoE, p float64) (f float64) {
	switch kind {
	case FV1D.Density:
		f = rhoU
	case FV1D.Momentum:
		f = rhoU*rhoU/rho + p
	case FV1D.Energy:
		f = (rhoE + p) * rhoU / rho
	}
	return
}

// PhysicalFluxes evaluates all three physical fluxes of a conserved state
func (eos *EquationOfState) PhysicalFluxes(q [FV1D.NumFields]float64) (F [FV1D.NumFields]float64) {
	var (
		p = eos.Pressure(q[0], q[1], q[2])
	)
	for n := range F {
		F[n] = PhysicalFlux(FV1D.FieldKind(n), q[0], q[1], q[2], p)
	}
	return
}

// CheckState returns a NonPhysicalStateError unless rho and p are positive and
// the state is finite
func (eos *EquationOfState) CheckState(stage string, index int, rho, rhoU, rhoE float64) (p float64, err error) {
	p = eos.Pressure(rho, rhoU, rhoE)
	if !(rho > 0) || !(p > 0) || !utils.IsFinite(rho) || !utils.IsFinite(rhoU) ||
		!utils.IsFinite(rhoE) || !utils.IsFinite(p) {
		err = &types.NonPhysicalStateError{
			Stage: stage,
			Index: index,
			Rho:   rho,
			P:     p,
		}
	}
	return
}
