package FV1D

import (
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/eulerfv/types"
)

type FieldKind uint8

const (
	Density FieldKind = iota
	Momentum
	Energy
	NumFields = 3
)

var fieldNames = []string{"Density", "Momentum", "Energy"}

func (fk FieldKind) String() string { return fieldNames[fk] }

// ConservedField stores one conserved quantity on a grid: cell averages,
// reconstructed states either side of each interface and the numerical flux
// through each interface
type ConservedField struct {
	Kind  FieldKind
	Value []float64 // Cell averages, one per cell
	Left  []float64 // State just left of each interface
	Right []float64 // State just right of each interface
	Flux  []float64 // Numerical flux through each interface
	// Flux is only valid after a solver pass on the current interface states
	fluxCurrent bool
}

func NewConservedField(kind FieldKind, nCells int) (f *ConservedField) {
	return &ConservedField{
		Kind:  kind,
		Value: make([]float64, nCells),
		Left:  make([]float64, nCells+1),
		Right: make([]float64, nCells+1),
		Flux:  make([]float64, nCells+1),
	}
}

// NewConservedFieldFromValues wraps an existing set of cell averages
func NewConservedFieldFromValues(kind FieldKind, values []float64) (f *ConservedField) {
	f = NewConservedField(kind, len(values))
	copy(f.Value, values)
	return
}

func (f *ConservedField) NCells() int { return len(f.Value) }

// CheckShape verifies the interface arrays are sized one past the cell array
func (f *ConservedField) CheckShape() (err error) {
	var (
		M = len(f.Value)
	)
	if len(f.Left) != M+1 || len(f.Right) != M+1 || len(f.Flux) != M+1 {
		err = types.NewConfigurationError(f.Kind.String(),
			"interface arrays must hold %d values, have left %d, right %d, flux %d",
			M+1, len(f.Left), len(f.Right), len(f.Flux))
	}
	return
}

func (f *ConservedField) FluxCurrent() bool { return f.fluxCurrent }

// MarkFluxStale is called whenever the interface states change
func (f *ConservedField) MarkFluxStale() { f.fluxCurrent = false }

// MarkFluxCurrent is called by a solver after writing Flux
func (f *ConservedField) MarkFluxCurrent() { f.fluxCurrent = true }

// Fields is the triplet of conserved fields indexed by FieldKind
type Fields [NumFields]*ConservedField

func NewFields(nCells int) (Q Fields) {
	for n := 0; n < NumFields; n++ {
		Q[n] = NewConservedField(FieldKind(n), nCells)
	}
	return
}

func (Q Fields) Rho() *ConservedField  { return Q[Density] }
func (Q Fields) RhoU() *ConservedField { return Q[Momentum] }
func (Q Fields) RhoE() *ConservedField { return Q[Energy] }

// Check validates the three fields share one shape and are ordered by kind
func (Q Fields) Check(g *Grid) (err error) {
	for n, f := range Q {
		if f == nil {
			return types.NewConfigurationError(FieldKind(n).String(), "field is missing")
		}
		if f.Kind != FieldKind(n) {
			return types.NewConfigurationError(FieldKind(n).String(),
				"field in slot %d has kind %s", n, f.Kind)
		}
		if err = f.CheckShape(); err != nil {
			return
		}
		if f.NCells() != g.NCells() {
			return types.NewConfigurationError(f.Kind.String(),
				"field has %d cells, grid has %d", f.NCells(), g.NCells())
		}
	}
	return
}

// State returns the conserved state of cell i
func (Q Fields) State(i int) (q [NumFields]float64) {
	for n := range Q {
		q[n] = Q[n].Value[i]
	}
	return
}

// InteriorValues copies the interior cell averages of one field
func (Q Fields) InteriorValues(g *Grid, kind FieldKind) (v []float64) {
	first, end := g.Interior()
	return append([]float64(nil), Q[kind].Value[first:end]...)
}

// Total is the width weighted sum of a field over the interior cells
func (Q Fields) Total(g *Grid, kind FieldKind) (total float64) {
	var (
		first, end = g.Interior()
		widths     = make([]float64, g.N)
	)
	for i := first; i < end; i++ {
		widths[i-first] = g.Width(i)
	}
	return floats.Dot(widths, Q[kind].Value[first:end])
}

// CopyValues copies cell averages of all fields from src into Q
func (Q Fields) CopyValues(src Fields) {
	for n := range Q {
		copy(Q[n].Value, src[n].Value)
		Q[n].MarkFluxStale()
	}
}
