package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/eulerfv/InputParameters"
	"github.com/notargets/eulerfv/model_problems/Euler1D"
)

var (
	csvFile string
	outFile string
	cells   = "25,50,100,200"
	CFL     = 0.5
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	outFilePtr := flag.String("run", outFile, "run the density wave study and write it to this file")
	cellsPtr := flag.String("cells", cells, "comma separated cell counts of the study")
	CFLPtr := flag.Float64("CFL", CFL, "CFL of every run")
	flag.Parse()
	csvFile, outFile, cells, CFL = *csvFilePtr, *outFilePtr, *cellsPtr, *CFLPtr
	if len(csvFile) == 0 && len(outFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	var (
		studies []*ConvergenceStudy
		err     error
	)
	if len(outFile) != 0 {
		if studies, err = runAll(cells, CFL); err != nil {
			log.Fatal(err)
		}
		if err = writeFile(outFile, studies); err != nil {
			log.Fatal(err)
		}
	} else {
		fmt.Printf("Input file: %v\n", csvFile)
		if studies, err = readFile(csvFile); err != nil {
			log.Fatal(err)
		}
	}
	for _, cs := range studies {
		cs.Print(os.Stdout)
	}
}

// ConvergenceStudy holds the density error of one scheme over a sequence of
// grids
type ConvergenceStudy struct {
	title         string
	numPTS        []int
	CFL           float64
	rhoL1, rhoMAX []float64
}

func NewConvergenceStudy(title string, CFL float64) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
		CFL:   CFL,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, rhoL1, rhoMAX float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.rhoL1 = append(cs.rhoL1, rhoL1)
	cs.rhoMAX = append(cs.rhoMAX, rhoMAX)
}

// Orders are the observed orders of accuracy between consecutive grids
func (cs *ConvergenceStudy) Orders() (l1, lMax []float64) {
	order := func(e []float64, i int) float64 {
		return math.Log(e[i-1]/e[i]) / math.Log(float64(cs.numPTS[i])/float64(cs.numPTS[i-1]))
	}
	for i := 1; i < len(cs.numPTS); i++ {
		l1 = append(l1, order(cs.rhoL1, i))
		lMax = append(lMax, order(cs.rhoMAX, i))
	}
	return
}

func (cs *ConvergenceStudy) Print(w io.Writer) {
	l1, lMax := cs.Orders()
	fmt.Fprintf(w, "Title = %s, CFL = %5.2f\n", cs.title, cs.CFL)
	for i := range cs.numPTS {
		if i == 0 {
			fmt.Fprintf(w, "%5d, %10.4e, %10.4e\n", cs.numPTS[i], cs.rhoL1[i], cs.rhoMAX[i])
			continue
		}
		fmt.Fprintf(w, "%5d, %10.4e, %10.4e, order %5.2f, %5.2f\n",
			cs.numPTS[i], cs.rhoL1[i], cs.rhoMAX[i], l1[i-1], lMax[i-1])
	}
}

func parseCells(list string) (numPTS []int, err error) {
	for _, txt := range strings.Split(list, ",") {
		var n int
		if n, err = strconv.Atoi(strings.TrimSpace(txt)); err != nil {
			return nil, fmt.Errorf("cell count [%s]: %w", txt, err)
		}
		numPTS = append(numPTS, n)
	}
	sort.Ints(numPTS)
	return
}

func runAll(list string, CFL float64) (studies []*ConvergenceStudy, err error) {
	var (
		numPTS []int
		cs     *ConvergenceStudy
	)
	if numPTS, err = parseCells(list); err != nil {
		return
	}
	runs := [][2]string{{"firstorder", ""}}
	for _, limiter := range []string{"minmod", "superbee", "vanleer", "vanalbada"} {
		runs = append(runs, [2]string{"rk2", limiter})
	}
	for _, run := range runs {
		if cs, err = RunStudy(run[0], run[1], CFL, numPTS); err != nil {
			return
		}
		studies = append(studies, cs)
	}
	return
}

// RunStudy advects the density wave once through the periodic box on each
// grid, where the exact solution is the initial condition
func RunStudy(scheme, limiter string, CFL float64, numPTS []int) (cs *ConvergenceStudy, err error) {
	title := scheme
	if len(limiter) != 0 {
		title += " " + limiter
	}
	cs = NewConvergenceStudy(title, CFL)
	for _, n := range numPTS {
		ip := InputParameters.Defaults()
		ip.Title = title
		ip.Case, ip.Scheme, ip.Limiter = "densitywave", scheme, limiter
		ip.CFL, ip.N = CFL, n
		ip.XMin, ip.XMax, ip.FinalTime = 0, 1, 1
		ip.Left = InputParameters.PrimitiveState{Rho: 1, U: 1, P: 1}
		ip.LogFrequency = math.MaxInt32
		var c *Euler1D.Euler
		if c, err = Euler1D.NewEuler(ip); err != nil {
			return
		}
		exact := c.Snapshot(0, c.Time)
		if err = c.Run(nil); err != nil {
			return
		}
		s := c.Snapshot(c.Steps, c.Time)
		first, _ := c.Grid.Interior()
		var l1, maxError float64
		for i := range s.Rho {
			e := math.Abs(s.Rho[i] - exact.Rho[i])
			l1 += e * c.Grid.Width(first+i)
			maxError = math.Max(maxError, e)
		}
		log.WithFields(log.Fields{"study": title, "N": n, "L1": l1, "max": maxError}).Info("grid done")
		cs.Add(n, l1, maxError)
	}
	return
}

var header = []string{"Title", "NumPTS", "CFL", "RhoL1", "RhoMAX"}

func writeCSV(w io.Writer, studies []*ConvergenceStudy) (err error) {
	cw := csv.NewWriter(w)
	if err = cw.Write(header); err != nil {
		return
	}
	for _, cs := range studies {
		for i := range cs.numPTS {
			if err = cw.Write([]string{
				cs.title,
				strconv.Itoa(cs.numPTS[i]),
				strconv.FormatFloat(cs.CFL, 'g', -1, 64),
				strconv.FormatFloat(cs.rhoL1[i], 'e', -1, 64),
				strconv.FormatFloat(cs.rhoMAX[i], 'e', -1, 64),
			}); err != nil {
				return
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func readCSV(r io.Reader) (studies []*ConvergenceStudy, err error) {
	var (
		records            [][]string
		npts               int
		cfl, rhoL1, rhoMAX float64
	)
	byTitle := make(map[string]*ConvergenceStudy)
	if records, err = csv.NewReader(bufio.NewReader(r)).ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) != len(header) {
			return nil, fmt.Errorf("line %d: want %d columns, have %d", i+1, len(header), len(rec))
		}
		title := rec[0]
		if npts, err = strconv.Atoi(rec[1]); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		for j, dst := range []*float64{&cfl, &rhoL1, &rhoMAX} {
			if *dst, err = strconv.ParseFloat(rec[2+j], 64); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		}
		cs, ok := byTitle[title]
		if !ok {
			cs = NewConvergenceStudy(title, cfl)
			byTitle[title] = cs
			studies = append(studies, cs)
		}
		cs.Add(npts, rhoL1, rhoMAX)
	}
	return
}

func readFile(name string) (studies []*ConvergenceStudy, err error) {
	var f *os.File
	if f, err = os.Open(name); err != nil {
		return
	}
	defer f.Close()
	return readCSV(f)
}

func writeFile(name string, studies []*ConvergenceStudy) (err error) {
	var f *os.File
	if f, err = os.Create(name); err != nil {
		return
	}
	if err = writeCSV(f, studies); err != nil {
		f.Close()
		return
	}
	return f.Close()
}
