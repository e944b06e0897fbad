// Package geopack computes the geomagnetic field and the geometry derived from it: rotations
// between the GEI, GEO, MAG, SM, GSM and GSE frames, the IGRF internal field and its dipole
// approximation, field line tracing and the magnetopause position.
//
// All routines are pure: Recalc returns an explicit RotationState and Coefficients for an
// epoch, which are then handed to every transformation and field evaluation.
// Distances are in Earth radii (1 Re = 6371.2 km), fields in nanotesla, angles in radians.
package geopack

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	// MinCoeffYear and MaxCoeffYear bound the years for which the IGRF coefficients are
	// computed. Years outside are silently clamped to the nearest bound.
	MinCoeffYear = 1965
	MaxCoeffYear = 2010

	nCoeffs   = 105 // degrees 0 to 13
	maxDegree = 13
)

// Coefficients are the Schmidt normalized IGRF coefficients for an epoch, along with the
// recursion factors of the associated Legendre functions. Degree n and order m live at
// index n(n+1)/2+m.
type Coefficients struct {
	G, H, Rec [nCoeffs]float64
}

// DipoleMoment returns the magnitude (in nT at 1 Re) of the first degree terms.
func (c *Coefficients) DipoleMoment() float64 {
	return math.Sqrt(c.G[1]*c.G[1] + c.G[2]*c.G[2] + c.H[2]*c.H[2])
}

// Recalc builds the rotation state and the IGRF coefficients of the provided epoch.
// The year used for the coefficients and for the Sun position is clamped to
// [MinCoeffYear, MaxCoeffYear].
func Recalc(e Epoch) (*RotationState, *Coefficients, error) {
	if err := e.Validate(); err != nil {
		return nil, nil, err
	}
	iy := e.Year
	if iy < MinCoeffYear {
		iy = MinCoeffYear
	} else if iy > MaxCoeffYear {
		iy = MaxCoeffYear
	}
	c := newCoefficients(iy, e.Day)

	g10 := -c.G[1]
	g11 := c.G[2]
	h11 := c.H[2]

	s := &RotationState{epoch: e}
	// Unit vector of the MAG Z axis in GEO: (st0*cl0, st0*sl0, ct0).
	sq := g11*g11 + h11*h11
	sqq := math.Sqrt(sq)
	sqr := math.Sqrt(g10*g10 + sq)
	s.sl0 = -h11 / sqq
	s.cl0 = -g11 / sqq
	s.st0 = sqq / sqr
	s.ct0 = g10 / sqr
	s.stcl = s.st0 * s.cl0
	s.stsl = s.st0 * s.sl0
	s.ctsl = s.ct0 * s.sl0
	s.ctcl = s.ct0 * s.cl0

	clamped := e
	clamped.Year = iy
	sun, err := SunPosition(clamped)
	if err != nil {
		// Unreachable with the clamped year, kept so a future change of bounds fails loudly.
		return nil, nil, err
	}
	// X axis of GSM (and GSE) in GEI, pointing to the Sun.
	xgsm := sun.Direction()
	s.sgst, s.cgst = math.Sincos(sun.GST.Rad())

	// Dipole axis (Z of SM and MAG) in GEI.
	dip := []float64{
		s.stcl*s.cgst - s.stsl*s.sgst,
		s.stcl*s.sgst + s.stsl*s.cgst,
		s.ct0,
	}
	// Y of GSM in GEI is dip x sun, normalized, and Z of GSM completes the triad.
	ygsm := normalize(cross(dip, xgsm))
	zgsm := cross(xgsm, ygsm)

	// Z of GSE in GEI is (0, -sin ε, cos ε) with the time dependent obliquity ε.
	dj := float64(365*(iy-1900)+(iy-1901)/4+e.Day) - 0.5 + float64(e.daySeconds())/86400
	t := dj / 36525
	obliq := (23.45229 - 0.0130125*t) / 57.2957795
	zgse := []float64{0, -math.Sin(obliq), math.Cos(obliq)}
	ygse := cross(zgse, xgsm)

	// GSE/GSM: chi = (Ygsm, Ygse), shi = (Ygsm, Zgse).
	s.chi = dot(ygsm, ygse)
	s.shi = dot(ygsm, zgse)
	s.hi = math.Asin(s.shi)

	// Tilt: ψ = asin(dip . Xgsm).
	s.sps = dot(dip, xgsm)
	s.cps = math.Sqrt(1 - s.sps*s.sps)
	s.ψ = math.Asin(s.sps)

	// MAG/SM: cfi = (Ysm, Ymag), sfi = (Ysm, Xmag), with the MAG axes expressed in GEI.
	exmag := []float64{
		s.ct0 * (s.cl0*s.cgst - s.sl0*s.sgst),
		s.ct0 * (s.cl0*s.sgst + s.sl0*s.cgst),
		-s.st0,
	}
	eymag := []float64{
		-(s.sl0*s.cgst + s.cl0*s.sgst),
		-(s.sl0*s.sgst - s.cl0*s.cgst),
		0,
	}
	s.cfi = ygsm[0]*eymag[0] + ygsm[1]*eymag[1]
	s.sfi = dot(ygsm, exmag)
	s.xmut = (math.Atan2(s.sfi, s.cfi) + 3.1415926536) * 3.8197186342

	// GEO to GSM: scalar products of the GSM axes with the GEO axes, all in GEI, where
	// Xgeo = (cgst, sgst, 0), Ygeo = (-sgst, cgst, 0) and Zgeo = (0, 0, 1).
	a := make([]float64, 9)
	for i, ax := range [][]float64{xgsm, ygsm, zgsm} {
		a[3*i] = ax[0]*s.cgst + ax[1]*s.sgst
		a[3*i+1] = -ax[0]*s.sgst + ax[1]*s.cgst
		a[3*i+2] = ax[2]
	}
	s.geogsm = mat.NewDense(3, 3, a)

	s.geomag = mat.NewDense(3, 3, nil)
	s.geomag.Mul(r2(s.st0, s.ct0), r3(s.sl0, s.cl0))
	s.geigeo = r3(s.sgst, s.cgst)
	s.magsm = r3(-s.sfi, s.cfi)
	s.smgsm = r2(-s.sps, s.cps)
	s.gsmgse = r1(-s.shi, s.chi)
	return s, c, nil
}

// newCoefficients interpolates the IGRF tables to the provided (already clamped) year and
// day, then applies the Schmidt normalization.
func newCoefficients(iy, iday int) *Coefficients {
	c := &Coefficients{}

	// Recursion factors (n-m)(n+m)/((2n+1)(2n-1)) of the associated Legendre functions.
	nn := 0
	for n := 0; n <= maxDegree; n++ {
		n2 := float64((2*n + 1) * (2*n - 1))
		for m := 0; m <= n; m++ {
			c.Rec[nn] = float64((n-m)*(n+m)) / n2
			nn++
		}
	}

	last := igrfTables[len(igrfTables)-1]
	if iy >= last.year {
		// Extrapolate with the secular variation of the last table.
		dt := float64(iy) + float64(iday-1)/365.25 - float64(last.year)
		c.G, c.H = last.g, last.h
		for n := range dg2005 {
			c.G[n] += dg2005[n] * dt
			c.H[n] += dh2005[n] * dt
		}
	} else {
		i := (iy - igrfTables[0].year) / 5
		lo, hi := igrfTables[i], igrfTables[i+1]
		f2 := (float64(iy) + float64(iday-1)/365.25 - float64(lo.year)) / 5
		f1 := 1 - f2
		for n := 0; n < nCoeffs; n++ {
			c.G[n] = lo.g[n]*f1 + hi.g[n]*f2
			c.H[n] = lo.h[n]*f1 + hi.h[n]*f2
		}
	}

	// Schmidt quasi-normalization. The factors are a running product over (n, m) and must be
	// kept in that exact sequence since Rec assumes it.
	s := 1.0
	mn := 1
	for n := 1; n <= maxDegree; n++ {
		s *= float64(2*n-1) / float64(n)
		c.G[mn] *= s
		c.H[mn] *= s
		p := s
		for m := 0; m < n; m++ {
			aa := 1.0
			if m == 0 {
				aa = 2
			}
			p *= math.Sqrt(aa * float64(n-m) / float64(n+m+1))
			mn++
			c.G[mn] *= p
			c.H[mn] *= p
		}
		mn++
	}
	return c
}
