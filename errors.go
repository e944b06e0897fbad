package geopack

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain matches any DomainError via errors.Is.
	ErrDomain = errors.New("geopack: domain error")
	// ErrConvergence matches any ConvergenceError via errors.Is.
	ErrConvergence = errors.New("geopack: convergence error")
	// ErrTraceIncomplete matches any TraceIncomplete via errors.Is.
	ErrTraceIncomplete = errors.New("geopack: trace incomplete")
)

// DomainError is returned when an input lies outside the range a routine supports
// (e.g. a year outside 1901-2099 for the Sun position, or a zero conversion flag).
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Is implements errors.Is.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// ConvergenceError is returned when an iterative routine exceeds its iteration ceiling.
type ConvergenceError struct {
	Op         string
	Iterations int
	Err        error // underlying cause, may be nil
}

func (e *ConvergenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: no convergence after %d iterations: %s", e.Op, e.Iterations, e.Err)
	}
	return fmt.Sprintf("%s: no convergence after %d iterations", e.Op, e.Iterations)
}

// Is implements errors.Is.
func (e *ConvergenceError) Is(target error) bool {
	return target == ErrConvergence
}

// Unwrap returns the underlying cause.
func (e *ConvergenceError) Unwrap() error {
	return e.Err
}

// TraceIncomplete is returned when a field line runs out of its step budget before
// reaching either boundary. The partial line is still returned alongside it.
type TraceIncomplete struct {
	Steps int
	Last  []float64
}

func (e *TraceIncomplete) Error() string {
	return fmt.Sprintf("trace: step budget of %d exhausted at %v", e.Steps, e.Last)
}

// Is implements errors.Is.
func (e *TraceIncomplete) Is(target error) bool {
	return target == ErrTraceIncomplete
}

func domainErr(op, format string, args ...interface{}) error {
	return &DomainError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
