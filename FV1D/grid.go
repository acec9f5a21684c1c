package FV1D

import (
	"github.com/notargets/eulerfv/types"
)

// Grid holds cell centre and cell interface coordinates, including Order ghost
// cells at each end. Cell i is bounded by interfaces i and i+1.
type Grid struct {
	N     int       // Number of interior cells
	Order int       // Ghost layer width at each end
	X     []float64 // Cell centres, N+2*Order
	XB    []float64 // Cell interfaces, N+2*Order+1
}

// NewGrid builds a uniform grid over [xMin, xMax] padded with ghost cells of
// the same width
func NewGrid(N, order int, xMin, xMax float64) (g *Grid, err error) {
	var (
		dx float64
		XB []float64
	)
	if N <= 0 {
		return nil, types.NewConfigurationError("N", "cell count must be positive, have %d", N)
	}
	if !(xMax > xMin) {
		return nil, types.NewConfigurationError("XMax", "domain [%g, %g] is empty", xMin, xMax)
	}
	dx = (xMax - xMin) / float64(N)
	XB = make([]float64, N+2*order+1)
	for i := range XB {
		XB[i] = xMin + float64(i-order)*dx
	}
	// Land the physical bounds exactly
	XB[order], XB[order+N] = xMin, xMax
	return NewGridFromInterfaces(XB, order)
}

// NewGridFromInterfaces builds a grid from an explicit, strictly increasing
// interface list that already contains the ghost layers
func NewGridFromInterfaces(XB []float64, order int) (g *Grid, err error) {
	var (
		M = len(XB) - 1
	)
	if order < 1 {
		return nil, types.NewConfigurationError("Order", "ghost width must be at least 1, have %d", order)
	}
	if M-2*order <= 0 {
		return nil, types.NewConfigurationError("XB",
			"%d interfaces leave no interior cells for ghost width %d", len(XB), order)
	}
	for i := 1; i < len(XB); i++ {
		if !(XB[i] > XB[i-1]) {
			return nil, types.NewConfigurationError("XB",
				"interfaces not strictly increasing at %d: %g <= %g", i, XB[i], XB[i-1])
		}
	}
	g = &Grid{
		N:     M - 2*order,
		Order: order,
		X:     make([]float64, M),
		XB:    append([]float64(nil), XB...),
	}
	for i := range g.X {
		g.X[i] = 0.5 * (g.XB[i] + g.XB[i+1])
	}
	return
}

// NCells is the total cell count including ghosts
func (g *Grid) NCells() int { return len(g.X) }

// NInterfaces is the total interface count including ghosts
func (g *Grid) NInterfaces() int { return len(g.XB) }

func (g *Grid) Width(i int) float64 { return g.XB[i+1] - g.XB[i] }

// Interior returns the half open cell index range [first, end) of interior cells
func (g *Grid) Interior() (first, end int) { return g.Order, g.Order + g.N }

// InteriorX is a copy of the interior cell centres
func (g *Grid) InteriorX() (x []float64) {
	first, end := g.Interior()
	return append([]float64(nil), g.X[first:end]...)
}

// Bounds returns the physical domain limits
func (g *Grid) Bounds() (xMin, xMax float64) {
	return g.XB[g.Order], g.XB[g.Order+g.N]
}
