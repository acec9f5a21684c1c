package FV1D

import (
	"github.com/notargets/eulerfv/types"
)

// FillGhostCells sets the Order ghost cell values at both ends of every field
// from the interior according to the boundary condition
func FillGhostCells(g *Grid, Q Fields, bc types.BCFLAG) (err error) {
	var (
		ng, N = g.Order, g.N
	)
	if bc != types.BC_Out && N < ng {
		return types.NewConfigurationError("N",
			"%s boundaries need at least %d interior cells, have %d", bc, ng, N)
	}
	for _, f := range Q {
		v := f.Value
		for k := 0; k < ng; k++ {
			left, right := ng-1-k, ng+N+k
			switch bc {
			case types.BC_Out:
				v[left], v[right] = v[ng], v[ng+N-1]
			case types.BC_Wall:
				v[left], v[right] = v[ng+k], v[ng+N-1-k]
				if f.Kind == Momentum {
					v[left], v[right] = -v[left], -v[right]
				}
			case types.BC_Periodic:
				v[left], v[right] = v[ng+N-1-k], v[ng+k]
			default:
				return types.NewConfigurationError("BC", "unsupported boundary condition %s", bc)
			}
		}
		f.MarkFluxStale()
	}
	return
}

// CopyGhostFluxes copies the first and last interior interface fluxes into the
// order ghost interfaces at each end, a zero gradient (outflow) treatment.
// Applying it more than once leaves the fluxes unchanged.
func CopyGhostFluxes(order int, Q Fields) {
	for _, f := range Q {
		var (
			ng     = order
			M      = f.NCells()
			lo, hi = ng, M - ng
		)
		for j := 0; j < ng; j++ {
			f.Flux[j] = f.Flux[lo]
			f.Flux[M-j] = f.Flux[hi]
		}
	}
}
