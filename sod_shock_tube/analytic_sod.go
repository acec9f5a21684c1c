package sod_shock_tube

import (
	"math"

	"github.com/notargets/eulerfv/types"
	"github.com/notargets/eulerfv/utils"
)

type State struct {
	Rho, U, P float64
}

// RiemannProblem is the exact solution of a 1D shock tube, two constant
// states separated at X0 at t = 0
type RiemannProblem struct {
	Gamma, X0    float64
	Left, Right  State
	PStar, UStar float64 // Pressure and velocity between the outer waves
	cL, cR       float64
}

// NewSod is the shock tube started at x = 0 with (rho, u, p) = (1, 0, 1) on
// the left and (0.1, 0, 0.1) on the right
func NewSod() (rp *RiemannProblem) {
	rp, _ = NewRiemannProblem(1.4, 0, State{1, 0, 1}, State{0.1, 0, 0.1})
	return
}

func NewRiemannProblem(gamma, x0 float64, left, right State) (rp *RiemannProblem, err error) {
	if !(gamma > 1) || math.IsInf(gamma, 0) {
		return nil, types.NewConfigurationError("Gamma", "must be finite and greater than 1, have %g", gamma)
	}
	for _, s := range []State{left, right} {
		if !(s.Rho > 0) || !(s.P > 0) || !utils.IsFinite(s.U) || math.IsInf(s.Rho, 0) || math.IsInf(s.P, 0) {
			return nil, types.NewConfigurationError("State",
				"density and pressure must be positive and finite, have %v", s)
		}
	}
	rp = &RiemannProblem{
		Gamma: gamma,
		X0:    x0,
		Left:  left,
		Right: right,
		cL:    math.Sqrt(gamma * left.P / left.Rho),
		cR:    math.Sqrt(gamma * right.P / right.Rho),
	}
	// The two rarefactions must not open a vacuum between them
	if 2*(rp.cL+rp.cR)/(gamma-1) <= right.U-left.U {
		return nil, types.NewConfigurationError("State",
			"initial states generate a vacuum, du = %g", right.U-left.U)
	}
	rp.PStar, rp.UStar = rp.starState()
	return
}

// waveFunction is the velocity change across the wave separating state s
// from the star region at pressure p, and its derivative in p
func (rp *RiemannProblem) waveFunction(p float64, s State, c float64) (f, df float64) {
	var (
		g = rp.Gamma
	)
	if p > s.P { // Shock
		var (
			A = 2 / ((g + 1) * s.Rho)
			B = (g - 1) / (g + 1) * s.P
			q = math.Sqrt(A / (p + B))
		)
		f = (p - s.P) * q
		df = q * (1 - 0.5*(p-s.P)/(B+p))
		return
	}
	// Rarefaction
	var (
		pr = p / s.P
	)
	f = 2 * c / (g - 1) * (math.Pow(pr, (g-1)/(2*g)) - 1)
	df = math.Pow(pr, -(g+1)/(2*g)) / (s.Rho * c)
	return
}

// starState solves f_L(p) + f_R(p) + (uR - uL) = 0 by Newton iteration
func (rp *RiemannProblem) starState() (pStar, uStar float64) {
	var (
		tol     = 1.e-14
		du      = rp.Right.U - rp.Left.U
		fL, dfL float64
		fR, dfR float64
	)
	pStar = math.Max(tol, 0.5*(rp.Left.P+rp.Right.P))
	for iter := 0; iter < 100; iter++ {
		fL, dfL = rp.waveFunction(pStar, rp.Left, rp.cL)
		fR, dfR = rp.waveFunction(pStar, rp.Right, rp.cR)
		pNew := pStar - (fL+fR+du)/(dfL+dfR)
		if pNew < 0 {
			pNew = tol
		}
		change := 2 * math.Abs(pNew-pStar) / (pNew + pStar)
		pStar = pNew
		if change < tol {
			break
		}
	}
	fL, _ = rp.waveFunction(pStar, rp.Left, rp.cL)
	fR, _ = rp.waveFunction(pStar, rp.Right, rp.cR)
	uStar = 0.5*(rp.Left.U+rp.Right.U) + 0.5*(fR-fL)
	return
}

// WaveSpeeds are the speeds of the left wave head and tail, the contact and
// the right wave tail and head. A shock has equal head and tail speeds.
func (rp *RiemannProblem) WaveSpeeds() (lHead, lTail, contact, rTail, rHead float64) {
	var (
		g              = rp.Gamma
		G1, G2         = (g - 1) / (2 * g), (g + 1) / (2 * g)
		L, R           = rp.Left, rp.Right
		pStar, uStar   = rp.PStar, rp.UStar
		cStarL, cStarR = rp.cL * math.Pow(pStar/L.P, G1), rp.cR * math.Pow(pStar/R.P, G1)
	)
	contact = uStar
	if pStar > L.P {
		lHead = L.U - rp.cL*math.Sqrt(G2*pStar/L.P+G1)
		lTail = lHead
	} else {
		lHead, lTail = L.U-rp.cL, uStar-cStarL
	}
	if pStar > R.P {
		rHead = R.U + rp.cR*math.Sqrt(G2*pStar/R.P+G1)
		rTail = rHead
	} else {
		rHead, rTail = R.U+rp.cR, uStar+cStarR
	}
	return
}

// Sample returns the exact density, velocity and pressure at (x, t)
func (rp *RiemannProblem) Sample(x, t float64) (rho, u, p float64) {
	var (
		g            = rp.Gamma
		G3, G4       = 2 * g / (g - 1), 2 / (g - 1)
		G5, G6, G7   = 2 / (g + 1), (g - 1) / (g + 1), (g - 1) / 2
		L, R         = rp.Left, rp.Right
		cL, cR       = rp.cL, rp.cR
		pStar, uStar = rp.PStar, rp.UStar
	)
	lHead, lTail, _, rTail, rHead := rp.WaveSpeeds()
	if t <= 0 {
		if x < rp.X0 {
			return L.Rho, L.U, L.P
		}
		return R.Rho, R.U, R.P
	}
	S := (x - rp.X0) / t
	if S <= uStar {
		switch {
		case S <= lHead:
			return L.Rho, L.U, L.P
		case pStar > L.P: // Behind the left shock
			pr := pStar / L.P
			return L.Rho * (pr + G6) / (pr*G6 + 1), uStar, pStar
		case S > lTail:
			return L.Rho * math.Pow(pStar/L.P, 1/g), uStar, pStar
		}
		// Inside the left rarefaction fan
		base := G5 + G6/cL*(L.U-S)
		return L.Rho * math.Pow(base, G4), G5 * (cL + G7*L.U + S), L.P * math.Pow(base, G3)
	}
	switch {
	case S >= rHead:
		return R.Rho, R.U, R.P
	case pStar > R.P: // Behind the right shock
		pr := pStar / R.P
		return R.Rho * (pr + G6) / (pr*G6 + 1), uStar, pStar
	case S < rTail:
		return R.Rho * math.Pow(pStar/R.P, 1/g), uStar, pStar
	}
	// Inside the right rarefaction fan
	base := G5 - G6/cR*(R.U-S)
	return R.Rho * math.Pow(base, G4), G5 * (-cR + G7*R.U + S), R.P * math.Pow(base, G3)
}

// Profile samples the solution at n evenly spaced points on [xMin, xMax].
// E is the total energy per unit volume.
func (rp *RiemannProblem) Profile(t, xMin, xMax float64, n int) (X, Rho, P, U, E []float64) {
	X = utils.Linspace(xMin, xMax, n)
	Rho = make([]float64, n)
	P = make([]float64, n)
	U = make([]float64, n)
	E = make([]float64, n)
	for i, x := range X {
		Rho[i], U[i], P[i] = rp.Sample(x, t)
		E[i] = P[i]/(rp.Gamma-1) + 0.5*Rho[i]*U[i]*U[i]
	}
	return
}

// L1Density is the integral of |rho - rho_exact| over the cells, the exact
// solution sampled at cell centres
func (rp *RiemannProblem) L1Density(t float64, X, Rho, widths []float64) (l1 float64) {
	for i, x := range X {
		rho, _, _ := rp.Sample(x, t)
		l1 += math.Abs(Rho[i]-rho) * widths[i]
	}
	return
}
