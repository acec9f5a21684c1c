package plotting

import (
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/eulerfv/model_problems/Euler1D"
	"github.com/notargets/eulerfv/sod_shock_tube"
)

// LiveChart draws each snapshot's density into an interactive window
type LiveChart struct {
	Chart *chart2d.Chart2D
	Exact *sod_shock_tube.RiemannProblem
	Delay time.Duration
}

// NewLiveChart opens the chart window, fMin and fMax bound the density axis
func NewLiveChart(xMin, xMax, fMin, fMax float64, exact *sod_shock_tube.RiemannProblem,
	delay time.Duration) (lc *LiveChart) {
	return &LiveChart{
		Chart: chart2d.NewChart2D(float32(xMin), float32(xMax), float32(fMin), float32(fMax),
			1920, 1280, utils2.WHITE, utils2.BLACK),
		Exact: exact,
		Delay: delay,
	}
}

func (lc *LiveChart) AddSnapshot(s *Euler1D.Snapshot) error {
	lc.Chart.AddLine(Polyline(s.X, s.Rho), utils2.BLACK)
	if lc.Exact != nil && len(s.X) > 1 {
		X, Rho, _, _, _ := lc.Exact.Profile(s.Time, s.X[0], s.X[len(s.X)-1], exactSamples)
		lc.Chart.AddLine(Polyline(X, Rho), utils2.RED)
	}
	if lc.Delay > 0 {
		time.Sleep(lc.Delay)
	}
	return nil
}

func (lc *LiveChart) Finish() error { return nil }

// Polyline packs consecutive points into the x1, y1, x2, y2 segment list
// the chart draws
func Polyline(x, f []float64) (line []float32) {
	if len(x) < 2 {
		return
	}
	line = make([]float32, 0, 4*(len(x)-1))
	for i := 0; i < len(x)-1; i++ {
		line = append(line,
			float32(x[i]), float32(f[i]),
			float32(x[i+1]), float32(f[i+1]),
		)
	}
	return
}
