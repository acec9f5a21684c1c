/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/eulerfv/InputParameters"
	"github.com/notargets/eulerfv/model_problems/Euler1D"
	"github.com/notargets/eulerfv/plotting"
	"github.com/notargets/eulerfv/sod_shock_tube"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One Dimensional Euler Finite Volume Solutions",
	Long: `
Executes the finite volume Euler solver for the Sod shock tube or a periodic density wave.
Parameters come from the defaults, then an input file (-I), then the config file,
EULERFV_ environment variables and flags, each overriding the one before.

eulerfv 1D -I sod.yaml --plotDir figures`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.InputParameters1D
		)
		m1d := NewModel1D(viper.GetViper())
		if ip, err = NewInputParameters(viper.GetViper()); err != nil {
			return
		}
		if m1d.Profile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		ip.Print()
		return Run1D(m1d, ip)
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	var (
		ip = InputParameters.Defaults()
	)
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Case, Scheme, Limiter\n\t- CFL, FinalTime\n\t- N, XMin, XMax, Left, Right")
	OneDCmd.Flags().StringP("case", "c", ip.Case, "case to run: sod or densitywave")
	OneDCmd.Flags().String("scheme", ip.Scheme, "time integration: firstorder or rk2")
	OneDCmd.Flags().String("limiter", ip.Limiter, "TVD limiter for rk2: minmod, superbee, vanleer or vanalbada")
	OneDCmd.Flags().Float64("CFL", ip.CFL, "CFL - increase for speedup, decrease for stability")
	OneDCmd.Flags().Float64("epsilon", ip.Epsilon, "Harten entropy fix width")
	OneDCmd.Flags().Float64("startTime", ip.StartTime, "StartTime - the time of the initial condition")
	OneDCmd.Flags().Float64("finalTime", ip.FinalTime, "FinalTime - the target end time for the sim")
	OneDCmd.Flags().IntP("cells", "k", ip.N, "number of interior cells")
	OneDCmd.Flags().Float64("xMin", ip.XMin, "left end of the domain")
	OneDCmd.Flags().Float64("xMax", ip.XMax, "right end of the domain")
	OneDCmd.Flags().Float64("gamma", ip.Gamma, "ratio of specific heats")
	OneDCmd.Flags().String("bc", ip.BC, "boundary condition: outflow, wall or periodic")
	OneDCmd.Flags().IntP("plotSteps", "s", ip.PlotSteps, "number of steps between snapshots, 0 plots only the first and last")
	OneDCmd.Flags().String("plotDir", "", "write density and pressure figures to this directory")
	OneDCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	OneDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	OneDCmd.Flags().String("serve", "", "stream snapshots to websocket clients at this address, e.g. :8080")
	OneDCmd.Flags().Bool("profile", false, "write a CPU profile to the working directory")
	if err := viper.BindPFlags(OneDCmd.Flags()); err != nil {
		panic(err)
	}
}

type Model1D struct {
	PlotDir string
	Graph   bool
	Delay   time.Duration
	Serve   string
	Profile bool
}

func NewModel1D(v *viper.Viper) (m1d *Model1D) {
	return &Model1D{
		PlotDir: v.GetString("plotDir"),
		Graph:   v.GetBool("graph"),
		Delay:   time.Duration(v.GetInt("delay")) * time.Millisecond,
		Serve:   v.GetString("serve"),
		Profile: v.GetBool("profile"),
	}
}

// NewInputParameters starts from the defaults, overlays the input file when
// one is named and then any value set in v
func NewInputParameters(v *viper.Viper) (ip *InputParameters.InputParameters1D, err error) {
	ip = InputParameters.Defaults()
	if file := v.GetString("inputConditionsFile"); len(file) != 0 {
		var data []byte
		if data, err = os.ReadFile(file); err != nil {
			return nil, err
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
	}
	setString := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}
	setFloat := func(key string, dst *float64) {
		if v.IsSet(key) {
			*dst = v.GetFloat64(key)
		}
	}
	setInt := func(key string, dst *int) {
		if v.IsSet(key) {
			*dst = v.GetInt(key)
		}
	}
	setString("case", &ip.Case)
	setString("scheme", &ip.Scheme)
	setString("limiter", &ip.Limiter)
	setString("bc", &ip.BC)
	setFloat("CFL", &ip.CFL)
	setFloat("epsilon", &ip.Epsilon)
	setFloat("startTime", &ip.StartTime)
	setFloat("finalTime", &ip.FinalTime)
	setFloat("xMin", &ip.XMin)
	setFloat("xMax", &ip.XMax)
	setFloat("gamma", &ip.Gamma)
	setInt("cells", &ip.N)
	setInt("plotSteps", &ip.PlotSteps)
	return
}

// FigureName labels output by case, scheme and limiter, e.g. sod_rk2_vanleer
func FigureName(c *Euler1D.Euler) (name string) {
	compact := func(s string) string { return strings.ToLower(strings.ReplaceAll(s, " ", "")) }
	name = compact(c.Case.Print())
	if c.SchemeType == Euler1D.RK2_S {
		return name + "_rk2_" + compact(c.Limiter.Print())
	}
	return name + "_firstorder"
}

func Run1D(m1d *Model1D, ip *InputParameters.InputParameters1D) (err error) {
	var (
		c   *Euler1D.Euler
		vis plotting.Multi
	)
	if c, err = Euler1D.NewEuler(ip); err != nil {
		return
	}
	var exact *sod_shock_tube.RiemannProblem
	if c.Case == Euler1D.SOD {
		left := sod_shock_tube.State{Rho: ip.Left.Rho, U: ip.Left.U, P: ip.Left.P}
		right := sod_shock_tube.State{Rho: ip.Right.Rho, U: ip.Right.U, P: ip.Right.P}
		if exact, err = sod_shock_tube.NewRiemannProblem(ip.Gamma, ip.Split, left, right); err != nil {
			log.WithError(err).Warn("no exact solution overlay")
			exact, err = nil, nil
		}
	}
	if len(m1d.PlotDir) != 0 {
		vis = append(vis, plotting.NewPNGPlotter(m1d.PlotDir, FigureName(c), exact))
	}
	if m1d.Graph {
		rhoMax := math.Max(ip.Left.Rho, ip.Right.Rho)
		if c.Case == Euler1D.DENSITY_WAVE {
			rhoMax = 1 + math.Abs(ip.Amplitude)
		}
		xMin, xMax := c.Grid.Bounds()
		vis = append(vis, plotting.NewLiveChart(xMin, xMax, -0.1, 1.25*rhoMax, exact, m1d.Delay))
	}
	if len(m1d.Serve) != 0 {
		hub := plotting.NewHub()
		go func() {
			if err := hub.ListenAndServe(m1d.Serve); err != nil {
				log.WithError(err).Error("snapshot server stopped")
			}
		}()
		log.WithField("addr", m1d.Serve).Info("streaming snapshots at /ws")
		vis = append(vis, hub)
	}
	if len(vis) == 0 {
		return c.Run(nil)
	}
	return c.Run(vis)
}
