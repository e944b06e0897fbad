package geopack

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Direction selects the way of a pairwise transformation.
type Direction int

const (
	// Inverse converts from the second frame of a transformation to the first one.
	Inverse Direction = -1
	// Forward converts from the first frame of a transformation to the second one, e.g. GEO to
	// MAG for GeoMag.
	Forward Direction = 1
)

func (d Direction) String() string {
	switch {
	case d > 0:
		return "forward"
	case d < 0:
		return "inverse"
	default:
		return "invalid"
	}
}

// RotationState holds the rotation matrices and angles linking GEI, GEO, MAG, SM, GSM and GSE
// at a given epoch. It is built by Recalc and never modified afterwards, so it may be shared
// between goroutines. Using it with another epoch is a caller error.
type RotationState struct {
	epoch Epoch
	// Dipole axis in GEO: sin/cos of its colatitude θ0 and longitude λ0 and their products.
	st0, ct0, sl0, cl0     float64
	ctcl, stcl, ctsl, stsl float64
	sfi, cfi               float64 // MAG to SM rotation angle
	sps, cps, ψ            float64 // dipole tilt
	shi, chi, hi           float64 // GSE to GSM rotation angle
	xmut                   float64
	sgst, cgst             float64 // Greenwich sidereal time
	// Rotation matrices of the pairwise transformations, forward direction.
	geomag, geigeo, magsm, smgsm, gsmgse, geogsm *mat.Dense
}

// Epoch returns the epoch this state was built for.
func (s *RotationState) Epoch() Epoch {
	return s.epoch
}

// Tilt returns the geodipole tilt angle ψ in radians, positive when the north magnetic
// pole leans toward the Sun.
func (s *RotationState) Tilt() float64 {
	return s.ψ
}

// TiltSinCos returns sin(ψ) and cos(ψ).
func (s *RotationState) TiltSinCos() (sps, cps float64) {
	return s.sps, s.cps
}

// GseGsmAngle returns the rotation angle from GSE to GSM around the common X axis.
func (s *RotationState) GseGsmAngle() float64 {
	return s.hi
}

// MagSmAngle returns the rotation angle from MAG to SM around the common Z axis.
func (s *RotationState) MagSmAngle() float64 {
	return math.Atan2(s.sfi, s.cfi)
}

// XMUT returns the magnetic local time of the MAG X axis in hours.
func (s *RotationState) XMUT() float64 {
	return s.xmut
}

// SiderealSinCos returns the sine and cosine of the Greenwich sidereal time.
func (s *RotationState) SiderealSinCos() (sgst, cgst float64) {
	return s.sgst, s.cgst
}

// DipoleAxis returns the unit vector of the dipole axis (MAG Z axis) in GEO.
func (s *RotationState) DipoleAxis() []float64 {
	return []float64{s.stcl, s.stsl, s.ct0}
}

// DipoleColatLong returns the GEO colatitude θ0 and east longitude λ0 of the dipole axis.
func (s *RotationState) DipoleColatLong() (θ0, λ0 float64) {
	λ0 = math.Atan2(s.sl0, s.cl0)
	if λ0 < 0 {
		λ0 += twoπ
	}
	return math.Atan2(s.st0, s.ct0), λ0
}

// GeoGsmMatrix returns a copy of the GEO to GSM rotation matrix.
func (s *RotationState) GeoGsmMatrix() *mat.Dense {
	return mat.DenseCopyOf(s.geogsm)
}

// WithTilt returns a copy of this state in which the dipole tilt is forced to ψ. Only the
// quantities which depend on the tilt alone (sin ψ, cos ψ and the SM/GSM rotation) are
// replaced: this is meant to run the dipole and external models at a prescribed tilt.
// The GEO/GSM matrix keeps the tilt of the epoch, so on the copy the direct GeoGsm and the
// chain GeoMag, MagSm, SmGsm no longer agree, and Convert(GEO, GSM) takes the direct edge.
func (s *RotationState) WithTilt(ψ float64) *RotationState {
	c := *s
	c.ψ = ψ
	c.sps, c.cps = math.Sincos(ψ)
	c.smgsm = r2(-c.sps, c.cps)
	return &c
}

// GeoMag converts geographic (GEO) to dipole (MAG) coordinates (Forward) or vice versa.
func (s *RotationState) GeoMag(v []float64, dir Direction) ([]float64, error) {
	return s.apply("geomag", s.geomag, v, dir)
}

// GeiGeo converts equatorial inertial (GEI) to geographic (GEO) coordinates (Forward) or vice versa.
func (s *RotationState) GeiGeo(v []float64, dir Direction) ([]float64, error) {
	return s.apply("geigeo", s.geigeo, v, dir)
}

// MagSm converts dipole (MAG) to solar magnetic (SM) coordinates (Forward) or vice versa.
func (s *RotationState) MagSm(v []float64, dir Direction) ([]float64, error) {
	return s.apply("magsm", s.magsm, v, dir)
}

// SmGsm converts solar magnetic (SM) to GSM coordinates (Forward) or vice versa.
func (s *RotationState) SmGsm(v []float64, dir Direction) ([]float64, error) {
	return s.apply("smgsm", s.smgsm, v, dir)
}

// GsmGse converts GSM to solar ecliptic (GSE) coordinates (Forward) or vice versa.
func (s *RotationState) GsmGse(v []float64, dir Direction) ([]float64, error) {
	return s.apply("gsmgse", s.gsmgse, v, dir)
}

// GeoGsm converts geographic (GEO) to GSM coordinates (Forward) or vice versa.
func (s *RotationState) GeoGsm(v []float64, dir Direction) ([]float64, error) {
	return s.apply("geogsm", s.geogsm, v, dir)
}

func (s *RotationState) apply(op string, m *mat.Dense, v []float64, dir Direction) ([]float64, error) {
	if err := checkVec(op, v, dir); err != nil {
		return nil, err
	}
	return rotate(m, v, dir), nil
}

func checkVec(op string, v []float64, dir Direction) error {
	if dir == 0 {
		return domainErr(op, "invalid conversion flag 0")
	}
	if len(v) != 3 {
		return domainErr(op, "expected a 3 vector, got %d components", len(v))
	}
	return nil
}
