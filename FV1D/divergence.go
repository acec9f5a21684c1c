package FV1D

import (
	"errors"
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/notargets/eulerfv/types"
)

var ErrStaleFlux = errors.New("flux read before a solver pass on the current state")

// Divergence is the finite volume flux difference operator,
// Lh[i] = (Flux[i] - Flux[i+1]) / width[i] on interior cells and zero on ghost
// cells, stored as a sparse [NCells x NInterfaces] matrix
type Divergence struct {
	g  *Grid
	Op *sparse.CSR
}

func NewDivergence(g *Grid) (d *Divergence) {
	var (
		first, end = g.Interior()
		opTmp      = sparse.NewDOK(g.NCells(), g.NInterfaces())
	)
	for i := first; i < end; i++ {
		oow := 1. / g.Width(i)
		opTmp.Set(i, i, oow)
		opTmp.Set(i, i+1, -oow)
	}
	return &Divergence{
		g:  g,
		Op: opTmp.ToCSR(),
	}
}

// Apply computes Lh = Op * flux
func (d *Divergence) Apply(flux, Lh []float64) {
	var (
		raw = d.Op.RawMatrix()
	)
	for i := 0; i < raw.I; i++ {
		var sum float64
		for k := raw.Indptr[i]; k < raw.Indptr[i+1]; k++ {
			sum += raw.Data[k] * flux[raw.Ind[k]]
		}
		Lh[i] = sum
	}
}

// Residual computes Lh for one field. The field's fluxes must have been
// produced by a solver pass on its current interface states.
func (d *Divergence) Residual(f *ConservedField, Lh []float64) (err error) {
	if !f.FluxCurrent() {
		return fmt.Errorf("%s: %w", f.Kind, ErrStaleFlux)
	}
	if len(Lh) != d.g.NCells() {
		return types.NewConfigurationError("Lh",
			"residual buffer has %d values, grid has %d cells", len(Lh), d.g.NCells())
	}
	d.Apply(f.Flux, Lh)
	return
}
