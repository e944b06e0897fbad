package geopack

// InternalModel is a model of the field of internal origin, evaluated in GSM (Re, nT).
type InternalModel interface {
	Field(x, y, z float64) (bx, by, bz float64)
}

// ModelOptions are the parameters forwarded to an external field model.
type ModelOptions struct {
	IOpt   int         // model option index, e.g. a Kp interval for T89
	ParMod [10]float64 // model parameters, meaning depends on the model
	Tilt   float64     // dipole tilt in radians, filled in by the tracer
}

// ExternalModel is a model of the field of magnetospheric origin, evaluated in GSM (Re, nT).
type ExternalModel interface {
	Field(x, y, z float64, opts ModelOptions) (bx, by, bz float64)
}

// ExternalFunc adapts an ordinary function to an ExternalModel.
type ExternalFunc func(x, y, z float64, opts ModelOptions) (bx, by, bz float64)

// Field calls f.
func (f ExternalFunc) Field(x, y, z float64, opts ModelOptions) (bx, by, bz float64) {
	return f(x, y, z, opts)
}

// NoExternal is the null external field, used to trace in the internal field alone.
type NoExternal struct{}

// Field implements ExternalModel.
func (NoExternal) Field(x, y, z float64, opts ModelOptions) (bx, by, bz float64) {
	return 0, 0, 0
}

// IGRF is the InternalModel of the full IGRF expansion.
type IGRF struct {
	s *RotationState
	c *Coefficients
}

// NewIGRF returns the IGRF internal model for the state and coefficients returned by Recalc.
func NewIGRF(s *RotationState, c *Coefficients) *IGRF {
	return &IGRF{s, c}
}

// Field implements InternalModel.
func (m *IGRF) Field(x, y, z float64) (bx, by, bz float64) {
	return igrfGSM(m.c, m.s, x, y, z)
}

func (m *IGRF) String() string {
	return "igrf"
}

// Dipole is the InternalModel of the tilted geodipole.
type Dipole struct {
	moment, sps, cps float64
}

// NewDipole returns the dipole internal model, with the moment of c and the tilt of s.
func NewDipole(s *RotationState, c *Coefficients) *Dipole {
	return &Dipole{c.DipoleMoment(), s.sps, s.cps}
}

// Field implements InternalModel.
func (m *Dipole) Field(x, y, z float64) (bx, by, bz float64) {
	return dipole(m.moment, m.sps, m.cps, x, y, z)
}

func (m *Dipole) String() string {
	return "dipole"
}

// NewInternalModel returns the internal model from its name, either "igrf" or "dipole".
func NewInternalModel(name string, s *RotationState, c *Coefficients) (InternalModel, error) {
	switch name {
	case "igrf", "":
		return NewIGRF(s, c), nil
	case "dipole", "dip":
		return NewDipole(s, c), nil
	default:
		return nil, domainErr("model", "unknown internal model %q", name)
	}
}
