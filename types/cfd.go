package types

import (
	"fmt"
	"strings"
)

// BCFLAG selects how ghost cells at each end of the domain are populated
type BCFLAG uint8

const (
	BC_Out      BCFLAG = iota // zero gradient, open boundary
	BC_Wall                   // reflective, momentum mirrored
	BC_Periodic               // wraps to the opposite end
)

var (
	BCNameMap = map[string]BCFLAG{
		"out":      BC_Out,
		"outflow":  BC_Out,
		"open":     BC_Out,
		"wall":     BC_Wall,
		"reflect":  BC_Wall,
		"periodic": BC_Periodic,
	}
	bcPrintNames = []string{"Outflow", "Wall", "Periodic"}
)

func (bc BCFLAG) String() string {
	if int(bc) < len(bcPrintNames) {
		return bcPrintNames[bc]
	}
	return fmt.Sprintf("BCFLAG(%d)", bc)
}

// NewBCFLAG looks up a boundary condition by name, an empty label is outflow
func NewBCFLAG(label string) (bc BCFLAG, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if len(label) == 0 {
		return BC_Out, nil
	}
	if bc, ok = BCNameMap[label]; !ok {
		err = NewConfigurationError("BC", "unknown boundary condition [%s]", label)
	}
	return
}
