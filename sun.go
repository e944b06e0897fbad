package geopack

import (
	"math"

	"github.com/soniakeys/unit"
)

const (
	rad = 57.295779513 // degrees per radian, truncated as in the Mead polynomials
)

// Sun holds the Sun related quantities needed by the coordinate transformations.
// All angles are in radians.
type Sun struct {
	GST   unit.Angle // Greenwich mean sidereal time
	SLong unit.Angle // ecliptic longitude of the Sun
	SRasn unit.RA    // right ascension of the Sun
	SDec  unit.Angle // declination of the Sun
}

// SunPosition returns the low precision geocentric Sun position and the sidereal time.
// From Russell, C.T., Cosmic Electrodynamics, 1971, v.2, pp.184-196 (G.D. Mead).
// Only valid between 1901 and 2099.
func SunPosition(e Epoch) (Sun, error) {
	if e.Year < 1901 || e.Year > 2099 {
		return Sun{}, domainErr("sun", "year %d outside 1901..2099", e.Year)
	}
	fday := float64(e.daySeconds()) / 86400
	dj := float64(365*(e.Year-1900)+(e.Year-1901)/4+e.Day) - 0.5 + fday
	t := dj / 36525

	vl := math.Mod(279.696678+0.9856473354*dj, 360)
	gst := math.Mod(279.690983+0.9856473354*dj+360*fday+180, 360) / rad
	g := math.Mod(358.475845+0.985600267*dj, 360) / rad
	slong := (vl + (1.91946-0.004789*t)*math.Sin(g) + 0.020094*math.Sin(2*g)) / rad
	if slong > 6.2831853 {
		slong -= 6.2831853
	}
	if slong < 0 {
		slong += 6.2831853
	}
	obliq := (23.45229 - 0.0130125*t) / rad
	sob := math.Sin(obliq)
	// 9.924e-5 corrects the angular aberration due to the orbital motion of Earth.
	slp := slong - 9.924e-5

	sind := sob * math.Sin(slp)
	cosd := math.Sqrt(1 - sind*sind)
	sc := sind / cosd
	sdec := math.Atan(sc)
	srasn := 3.141592654 - math.Atan2(math.Cos(obliq)/sob*sc, -math.Cos(slp)/cosd)
	return Sun{unit.Angle(gst), unit.Angle(slong), unit.RA(srasn), unit.Angle(sdec)}, nil
}

// Direction returns the unit vector from Earth's center to the Sun in GEI.
func (s Sun) Direction() []float64 {
	sδ, cδ := math.Sincos(s.SDec.Rad())
	sα, cα := math.Sincos(float64(s.SRasn))
	return []float64{cα * cδ, sα * cδ, sδ}
}
