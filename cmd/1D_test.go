package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/eulerfv/model_problems/Euler1D"
	"github.com/notargets/eulerfv/types"
)

func TestNewInputParameters(t *testing.T) {
	var (
		err error
		dir = t.TempDir()
	)
	fileInput := []byte(`
Title: Density Wave Test
Case: densitywave
Scheme: rk2
Limiter: vanleer
CFL: 0.4
FinalTime: 1.
Cells: 64
XMin: 0
XMax: 1
Left:
  Rho: 1
  U: 1
  P: 1
`)
	file := filepath.Join(dir, "wave.yaml")
	require.NoError(t, os.WriteFile(file, fileInput, 0o644))

	{ // Defaults only
		ip, err := NewInputParameters(viper.New())
		require.NoError(t, err)
		assert.Equal(t, "sod", ip.Case)
		assert.Equal(t, 0.5, ip.CFL)
		assert.Equal(t, 100, ip.N)
	}
	{ // The input file overlays the defaults, set values override the file
		v := viper.New()
		v.Set("inputConditionsFile", file)
		v.Set("CFL", 0.3)
		v.Set("cells", 32)
		ip, err := NewInputParameters(v)
		require.NoError(t, err)
		assert.Equal(t, "Density Wave Test", ip.Title)
		assert.Equal(t, "densitywave", ip.Case)
		assert.Equal(t, "vanleer", ip.Limiter)
		assert.Equal(t, 1., ip.FinalTime)
		assert.Equal(t, 0.3, ip.CFL)
		assert.Equal(t, 32, ip.N)
		// Untouched by either
		assert.Equal(t, 0.15, ip.Epsilon)
		assert.Equal(t, 1.4, ip.Gamma)
	}
	{ // The input file alone sets the cell count
		v := viper.New()
		v.Set("inputConditionsFile", file)
		ip, err := NewInputParameters(v)
		require.NoError(t, err)
		assert.Equal(t, 64, ip.N)
		assert.Equal(t, 0.4, ip.CFL)
	}
	{ // Missing input file
		v := viper.New()
		v.Set("inputConditionsFile", filepath.Join(dir, "missing.yaml"))
		_, err = NewInputParameters(v)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	}
	{ // Malformed input file
		bad := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("CFL: [1, 2"), 0o644))
		v := viper.New()
		v.Set("inputConditionsFile", bad)
		_, err = NewInputParameters(v)
		assert.Error(t, err)
	}
}

func TestRun1D(t *testing.T) {
	dir := t.TempDir()
	v := viper.New()
	v.Set("cells", 20)
	v.Set("finalTime", 0.1)
	v.Set("scheme", "rk2")
	v.Set("limiter", "van albada")
	v.Set("plotDir", dir)
	ip, err := NewInputParameters(v)
	require.NoError(t, err)
	m1d := NewModel1D(v)
	assert.Equal(t, dir, m1d.PlotDir)
	assert.False(t, m1d.Graph)
	require.NoError(t, Run1D(m1d, ip))
	for _, suffix := range []string{"_rho.png", "_p.png"} {
		_, err = os.Stat(filepath.Join(dir, "sodshocktube_rk2_vanalbada"+suffix))
		assert.NoError(t, err)
	}

	// Configuration errors surface before anything runs
	ip.Scheme = "rk4"
	assert.True(t, errors.Is(Run1D(&Model1D{}, ip), types.ErrConfiguration))
}

func TestFigureName(t *testing.T) {
	for want, input := range map[string][2]string{
		"sodshocktube_firstorder":  {"sod", "firstorder"},
		"densitywave_rk2_superbee": {"densitywave", "rk2"},
	} {
		v := viper.New()
		v.Set("case", input[0])
		v.Set("scheme", input[1])
		v.Set("limiter", "superbee")
		v.Set("xMin", 0)
		ip, err := NewInputParameters(v)
		require.NoError(t, err)
		c, err := Euler1D.NewEuler(ip)
		require.NoError(t, err)
		assert.Equal(t, want, FigureName(c))
	}
}
