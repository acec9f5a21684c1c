package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

type PrimitiveState struct {
	Rho float64 `json:"Rho"`
	U   float64 `json:"U"`
	P   float64 `json:"P"`
}

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title        string         `json:"Title"`
	Case         string         `json:"Case"`    // "sod" or "densitywave"
	Scheme       string         `json:"Scheme"`  // "firstorder" or "rk2"
	Limiter      string         `json:"Limiter"` // Used by the rk2 scheme
	CFL          float64        `json:"CFL"`
	Epsilon      float64        `json:"Epsilon"` // Harten entropy fix width
	StartTime    float64        `json:"StartTime"`
	FinalTime    float64        `json:"FinalTime"`
	Gamma        float64        `json:"Gamma"`
	N            int            `json:"Cells"` // Interior cells, a bare N key reads as false in YAML 1.1
	XMin         float64        `json:"XMin"`
	XMax         float64        `json:"XMax"`
	Split        float64        `json:"Split"`
	Left         PrimitiveState `json:"Left"`
	Right        PrimitiveState `json:"Right"`
	Amplitude    float64        `json:"Amplitude"`
	BC           string         `json:"BC"`
	PlotSteps    int            `json:"PlotSteps"`
	LogFrequency int            `json:"LogFrequency"`
}

// Defaults is Sod's shock tube run to t = 0.5 with the first order scheme
func Defaults() *InputParameters1D {
	return &InputParameters1D{
		Title:        "Sod Shock Tube",
		Case:         "sod",
		Scheme:       "firstorder",
		Limiter:      "minmod",
		CFL:          0.5,
		Epsilon:      0.15,
		StartTime:    0,
		FinalTime:    0.5,
		Gamma:        1.4,
		N:            100,
		XMin:         -1,
		XMax:         1,
		Split:        0,
		Left:         PrimitiveState{Rho: 1, U: 0, P: 1},
		Right:        PrimitiveState{Rho: 0.1, U: 0, P: 0.1},
		Amplitude:    0.2,
		BC:           "outflow",
		PlotSteps:    25,
		LogFrequency: 50,
	}
}

// Parse overlays the values present in data onto ip
func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Case\n", ip.Case)
	fmt.Printf("[%s]\t\t= Scheme\n", ip.Scheme)
	fmt.Printf("[%s]\t\t\t= Limiter\n", ip.Limiter)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= Epsilon\n", ip.Epsilon)
	fmt.Printf("%8.5f\t\t= StartTime\n", ip.StartTime)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Printf("[%d]\t\t\t\t= Cells\n", ip.N)
	fmt.Printf("[%8.5f,%8.5f]\t= Domain, Split = %8.5f\n", ip.XMin, ip.XMax, ip.Split)
	fmt.Printf("%v\t= Left (Rho, U, P)\n", ip.Left)
	fmt.Printf("%v\t= Right (Rho, U, P)\n", ip.Right)
	fmt.Printf("[%s]\t\t\t= BC\n", ip.BC)
	fmt.Printf("[%d]\t\t\t\t= PlotSteps\n", ip.PlotSteps)
}
