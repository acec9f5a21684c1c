package plotting

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/notargets/eulerfv/model_problems/Euler1D"
	"github.com/notargets/eulerfv/sod_shock_tube"
)

const exactSamples = 400

// PNGPlotter collects snapshots and writes a density and a pressure figure,
// one line per snapshot, when the run finishes
type PNGPlotter struct {
	Dir, Name     string
	Width, Height vg.Length
	// Exact, when set, overlays the exact solution at the last snapshot time
	Exact *sod_shock_tube.RiemannProblem
	snaps []*Euler1D.Snapshot
}

func NewPNGPlotter(dir, name string, exact *sod_shock_tube.RiemannProblem) (pp *PNGPlotter) {
	return &PNGPlotter{
		Dir:    dir,
		Name:   name,
		Width:  7 * vg.Inch,
		Height: 4 * vg.Inch,
		Exact:  exact,
	}
}

func (pp *PNGPlotter) AddSnapshot(s *Euler1D.Snapshot) error {
	pp.snaps = append(pp.snaps, s)
	return nil
}

// Files are the figures written by Finish
func (pp *PNGPlotter) Files() (rho, p string) {
	rho = filepath.Join(pp.Dir, pp.Name+"_rho.png")
	p = filepath.Join(pp.Dir, pp.Name+"_p.png")
	return
}

func (pp *PNGPlotter) Finish() (err error) {
	if len(pp.snaps) == 0 {
		return
	}
	if err = os.MkdirAll(pp.Dir, 0o755); err != nil {
		return
	}
	var (
		rhoFile, pFile = pp.Files()
		pRho, pP       *plot.Plot
	)
	if pRho, err = pp.figure("Density", func(s *Euler1D.Snapshot) []float64 { return s.Rho }); err != nil {
		return
	}
	if pP, err = pp.figure("Pressure", func(s *Euler1D.Snapshot) []float64 { return s.P }); err != nil {
		return
	}
	if pp.Exact != nil {
		var (
			last       = pp.snaps[len(pp.snaps)-1]
			xMin, xMax = last.X[0], last.X[len(last.X)-1]
		)
		X, Rho, P, _, _ := pp.Exact.Profile(last.Time, xMin, xMax, exactSamples)
		if err = addExact(pRho, X, Rho); err != nil {
			return
		}
		if err = addExact(pP, X, P); err != nil {
			return
		}
	}
	if err = pRho.Save(pp.Width, pp.Height, rhoFile); err != nil {
		return
	}
	if err = pP.Save(pp.Width, pp.Height, pFile); err != nil {
		return
	}
	log.WithFields(log.Fields{
		"density":   rhoFile,
		"pressure":  pFile,
		"snapshots": len(pp.snaps),
	}).Info("wrote figures")
	return
}

func (pp *PNGPlotter) figure(label string, field func(s *Euler1D.Snapshot) []float64) (p *plot.Plot, err error) {
	p = plot.New()
	p.Title.Text = pp.Name
	p.X.Label.Text = "x"
	p.Y.Label.Text = label
	p.Legend.Top = true
	for i, s := range pp.snaps {
		var l *plotter.Line
		if l, err = plotter.NewLine(toXYs(s.X, field(s))); err != nil {
			return
		}
		l.LineStyle.Width = vg.Points(1)
		l.LineStyle.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(fmt.Sprintf("t=%.4g", s.Time), l)
	}
	return
}

func addExact(p *plot.Plot, X, F []float64) (err error) {
	var (
		sc *plotter.Scatter
	)
	if sc, err = plotter.NewScatter(toXYs(X, F)); err != nil {
		return
	}
	sc.GlyphStyle.Shape = draw.CrossGlyph{}
	sc.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(sc)
	p.Legend.Add("exact", sc)
	return
}

func toXYs(x, f []float64) (xys plotter.XYs) {
	xys = make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X, xys[i].Y = x[i], f[i]
	}
	return
}
