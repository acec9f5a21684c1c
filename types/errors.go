package types

import (
	"errors"
	"fmt"
)

// Error classes for a simulation run. Typed errors below unwrap to one of these
// so callers can test with errors.Is.
var (
	ErrConfiguration    = errors.New("eulerfv: configuration error")
	ErrNonPhysicalState = errors.New("eulerfv: non-physical state")
	ErrDtUnderflow      = errors.New("eulerfv: time step underflow")
)

// ConfigurationError is returned by constructors for malformed inputs.
type ConfigurationError struct {
	Param  string
	Reason string
}

func NewConfigurationError(param, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{
		Param:  param,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// NonPhysicalStateError reports a cell or interface state that cannot be
// evolved: non-positive density or pressure, or a non-finite value.
type NonPhysicalStateError struct {
	Stage  string // "reconstruction", "riemann", "dt", "update"
	Field  string // empty when the state as a whole is at fault
	Index  int
	Rho, P float64
	Value  float64
}

func (e *NonPhysicalStateError) Error() string {
	if len(e.Field) != 0 {
		return fmt.Sprintf("non-physical %s value %g at index %d during %s",
			e.Field, e.Value, e.Index, e.Stage)
	}
	return fmt.Sprintf("non-physical state rho = %g, p = %g at index %d during %s",
		e.Rho, e.P, e.Index, e.Stage)
}

func (e *NonPhysicalStateError) Unwrap() error { return ErrNonPhysicalState }

// DtUnderflowError is returned when the CFL step is not a usable positive number.
type DtUnderflowError struct {
	Dt float64
}

func (e *DtUnderflowError) Error() string {
	return fmt.Sprintf("computed time step %g is not positive and finite", e.Dt)
}

func (e *DtUnderflowError) Unwrap() error { return ErrDtUnderflow }

// RunError wraps a failure of the time march with where it happened.
type RunError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("step %d, time %8.5f: %v", e.Step, e.Time, e.Wrapped)
}

func (e *RunError) Unwrap() error { return e.Wrapped }
