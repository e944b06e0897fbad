package integrator

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultMaxRetries is the number of step halvings after which a step is given up.
	DefaultMaxRetries = 100
	growBelow         = 0.04 // error fraction of the tolerance below which the step grows
	growFactor        = 1.5
	maxGrowStep       = 1.33 // steps at least this long are never grown
)

// ErrMaxRetries is returned when a step could not meet the tolerance within MaxRetries halvings.
var ErrMaxRetries = errors.New("integrator: maximum number of step retries reached")

// Merson defines an adaptive Kutta-Merson stepper: five evaluations per attempt, the local
// error being estimated from the difference of the fourth and fifth order combinations.
type Merson struct {
	Tolerance  float64    // Maximum accepted local error, summed over all components.
	MaxRetries int        // Number of step halvings before giving up.
	Integrator Integrable // What is to be integrated.
}

// NewMerson returns a new Merson stepper instance.
func NewMerson(tolerance float64, maxRetries int, inte Integrable) (m *Merson) {
	if tolerance <= 0 {
		panic("config Tolerance must be positive")
	}
	if maxRetries <= 0 {
		panic("config MaxRetries must be positive")
	}
	if inte == nil {
		panic("config Integrator may not be nil")
	}
	return &Merson{Tolerance: tolerance, MaxRetries: maxRetries, Integrator: inte}
}

// Step advances the state s by a step of nominal length h. The step is halved until the
// estimated error is below the tolerance. Returns the new state, the step to use next
// (grown by 1.5 when the error was well below the tolerance) and the accepted error.
func (m *Merson) Step(s []float64, h float64) (next []float64, hNext, errcur float64, err error) {
	n := len(s)
	tState := make([]float64, n)
	for i := 0; i < m.MaxRetries; i++ {
		h3 := -h / 3
		k1 := m.Integrator.Func(s, h3)
		for j := range s {
			tState[j] = s[j] + k1[j]
		}
		k2 := m.Integrator.Func(tState, h3)
		for j := range s {
			tState[j] = s[j] + 0.5*(k1[j]+k2[j])
		}
		k3 := m.Integrator.Func(tState, h3)
		for j := range s {
			tState[j] = s[j] + 0.375*(k1[j]+3*k3[j])
		}
		k4 := m.Integrator.Func(tState, h3)
		for j := range s {
			tState[j] = s[j] + 1.5*(k1[j]-3*k3[j]+4*k4[j])
		}
		k5 := m.Integrator.Func(tState, h3)

		errcur = 0
		for j := range s {
			errcur += math.Abs(k1[j] - 4.5*k3[j] + 4*k4[j] - 0.5*k5[j])
		}
		if errcur < m.Tolerance {
			next = make([]float64, n)
			for j := range s {
				next[j] = s[j] + 0.5*(k1[j]+4*k4[j]+k5[j])
			}
			if errcur < growBelow*m.Tolerance && math.Abs(h) < maxGrowStep {
				h *= growFactor
			}
			return next, h, errcur, nil
		}
		h *= 0.5
	}
	return nil, h, errcur, fmt.Errorf("%w (%d, last error %g)", ErrMaxRetries, m.MaxRetries, errcur)
}
