package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStudy(t *testing.T) {
	cs, err := RunStudy("firstorder", "", 0.5, []int{25, 50})
	require.NoError(t, err)
	assert.Equal(t, []int{25, 50}, cs.numPTS)
	assert.True(t, cs.rhoL1[1] < cs.rhoL1[0])
	assert.True(t, cs.rhoMAX[1] < cs.rhoMAX[0])
	l1, _ := cs.Orders()
	// First order upwinding converges at close to first order
	assert.InDelta(t, 1, l1[0], 0.35)

	cs2, err := RunStudy("rk2", "vanleer", 0.5, []int{25, 50})
	require.NoError(t, err)
	assert.Equal(t, "rk2 vanleer", cs2.title)
	assert.True(t, cs2.rhoL1[1] < cs.rhoL1[1])

	_, err = RunStudy("rk4", "", 0.5, []int{25})
	assert.Error(t, err)
}

func TestCSV(t *testing.T) {
	a := NewConvergenceStudy("firstorder", 0.5)
	a.Add(25, 0.04, 0.06)
	a.Add(50, 0.02, 0.03)
	a.Add(100, 0.01, 0.015)
	b := NewConvergenceStudy("rk2 minmod", 0.4)
	b.Add(25, 0.016, 0.1)
	b.Add(50, 0.004, 0.05)

	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, []*ConvergenceStudy{a, b}))
	assert.True(t, strings.HasPrefix(buf.String(), "Title,NumPTS,CFL,RhoL1,RhoMAX\n"))
	studies, err := readCSV(&buf)
	require.NoError(t, err)
	require.Len(t, studies, 2)
	assert.Equal(t, a, studies[0])
	assert.Equal(t, b, studies[1])

	l1, lMax := a.Orders()
	assert.InDeltaSlice(t, []float64{1, 1}, l1, 1.e-12)
	assert.InDeltaSlice(t, []float64{1, 1}, lMax, 1.e-12)
	l1, _ = b.Orders()
	assert.InDelta(t, 2, l1[0], 1.e-12)

	var out bytes.Buffer
	b.Print(&out)
	assert.Contains(t, out.String(), "Title = rk2 minmod")
	assert.Contains(t, out.String(), "order  2.00")

	_, err = readCSV(strings.NewReader("Title,NumPTS,CFL,RhoL1,RhoMAX\nx,ten,0.5,1,1\n"))
	assert.Error(t, err)
}

func TestParseCells(t *testing.T) {
	numPTS, err := parseCells("100, 25,50")
	require.NoError(t, err)
	assert.Equal(t, []int{25, 50, 100}, numPTS)
	_, err = parseCells("25,,50")
	assert.Error(t, err)
}
