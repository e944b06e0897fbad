package integrator

// Integrable defines a direction field which can be followed step by step, e.g. a field line.
// WARNING: Implementation must be safe to call from the stepper with any state it produces.
type Integrable interface {
	// Func returns the increment of length h along the field at state s. A negative h
	// follows the field backwards.
	Func(s []float64, h float64) []float64
}
