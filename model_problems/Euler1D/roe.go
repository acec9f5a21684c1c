package Euler1D

import (
	"math"

	"github.com/notargets/eulerfv/FV1D"
	"github.com/notargets/eulerfv/types"
)

const DefaultEntropyFix = 0.15

// RoeSolver computes interface fluxes with Roe's approximate Riemann solver,
// using Harten's entropy correction on the characteristic speeds
type RoeSolver struct {
	EOS     *EquationOfState
	Epsilon float64
}

func NewRoeSolver(eos *EquationOfState, epsilon float64) (rs *RoeSolver, err error) {
	if eos == nil {
		return nil, types.NewConfigurationError("EOS", "equation of state is missing")
	}
	if !(epsilon > 0) || math.IsInf(epsilon, 0) {
		return nil, types.NewConfigurationError("Epsilon",
			"entropy fix width must be positive and finite, have %g", epsilon)
	}
	return &RoeSolver{EOS: eos, Epsilon: epsilon}, nil
}

// Harten is the entropy corrected magnitude of a characteristic speed
func Harten(alpha, eps float64) (res float64) {
	absAlpha := math.Abs(alpha)
	if absAlpha < 2*eps {
		res = alpha*alpha/(4*eps) + eps
	} else {
		res = absAlpha
	}
	return
}

// Solve fills Flux on every interface in [order, M-order] from the current
// Left and Right states, then copies the ghost interface fluxes
func (rs *RoeSolver) Solve(Q FV1D.Fields, order int) (err error) {
	var (
		M = Q.Rho().NCells()
	)
	for _, f := range Q {
		if err = f.CheckShape(); err != nil {
			return
		}
		if f.NCells() != M {
			return types.NewConfigurationError(f.Kind.String(),
				"field has %d cells, density has %d", f.NCells(), M)
		}
	}
	if M < 2*order+1 {
		return types.NewConfigurationError("Order",
			"ghost width %d needs at least %d cells, have %d", order, 2*order+1, M)
	}
	for j := order; j <= M-order; j++ {
		var (
			qL = [FV1D.NumFields]float64{Q[0].Left[j], Q[1].Left[j], Q[2].Left[j]}
			qR = [FV1D.NumFields]float64{Q[0].Right[j], Q[1].Right[j], Q[2].Right[j]}
			F  [FV1D.NumFields]float64
		)
		if F, err = rs.interfaceFlux(j, qL, qR); err != nil {
			return
		}
		for n := range Q {
			Q[n].Flux[j] = F[n]
		}
	}
	FV1D.CopyGhostFluxes(order, Q)
	for _, f := range Q {
		f.MarkFluxCurrent()
	}
	return
}

// InterfaceFlux is the Roe flux between two conserved states
func (rs *RoeSolver) InterfaceFlux(qL, qR [FV1D.NumFields]float64) (F [FV1D.NumFields]float64, err error) {
	return rs.interfaceFlux(0, qL, qR)
}

func (rs *RoeSolver) interfaceFlux(j int, qL, qR [FV1D.NumFields]float64) (F [FV1D.NumFields]float64, err error) {
	var (
		eos        = rs.EOS
		pL, pR     float64
		rhoL, rhoR = qL[0], qR[0]
	)
	if pL, err = eos.CheckState("riemann", j, qL[0], qL[1], qL[2]); err != nil {
		return
	}
	if pR, err = eos.CheckState("riemann", j, qR[0], qR[1], qR[2]); err != nil {
		return
	}
	var (
		uL, uR   = qL[1] / rhoL, qR[1] / rhoR
		hL, hR   = (qL[2] + pL) / rhoL, (qR[2] + pR) / rhoR
		srl, srr = math.Sqrt(rhoL), math.Sqrt(rhoR)
		roeAve   = func(l, r float64) float64 { return (srl*l + srr*r) / (srl + srr) }
		rhoRL    = srl * srr
		uRL      = roeAve(uL, uR)
		hRL      = roeAve(hL, hR)
		c2       = (eos.Gamma - 1) * (hRL - 0.5*uRL*uRL)
	)
	if !(c2 > 0) || math.IsInf(c2, 0) {
		return F, &types.NonPhysicalStateError{
			Stage: "riemann",
			Field: "Roe averaged sound speed squared",
			Index: j,
			Value: c2,
		}
	}
	var (
		cRL              = math.Sqrt(c2)
		delRho, delU     = rhoR - rhoL, uR - uL
		delP             = pR - pL
		eps              = rs.Epsilon
		lam1, lam2, lam3 = Harten(uRL, eps), Harten(uRL+cRL, eps), Harten(uRL-cRL, eps)
		dw1              = delRho - delP/c2
		dw2              = delU + delP/(rhoRL*cRL)
		dw3              = delU - delP/(rhoRL*cRL)
		scale            = 0.5 * rhoRL / cRL
		FL               = eos.PhysicalFluxes(qL)
		FR               = eos.PhysicalFluxes(qR)
		// Right eigenvector components, one row per field
		eig = [FV1D.NumFields][3]float64{
			{1, scale, -scale},
			{uRL, scale * (uRL + cRL), -scale * (uRL - cRL)},
			{0.5 * uRL * uRL, scale * (hRL + cRL*uRL), -scale * (hRL - cRL*uRL)},
		}
	)
	for n := range F {
		diss := lam1*dw1*eig[n][0] + lam2*dw2*eig[n][1] + lam3*dw3*eig[n][2]
		F[n] = 0.5*(FL[n]+FR[n]) - 0.5*diss
		if math.IsNaN(F[n]) || math.IsInf(F[n], 0) {
			return F, &types.NonPhysicalStateError{
				Stage: "riemann",
				Field: FV1D.FieldKind(n).String(),
				Index: j,
				Value: F[n],
			}
		}
	}
	return
}
