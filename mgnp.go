package geopack

import (
	"math"
)

const (
	// T96 magnetopause parameters at the average pressure of 2 nPa.
	t96A0 = 70.0
	t96S0 = 1.08
	t96X0 = 5.48

	shueMaxIter = 1000
	shueTol     = 1e-4
)

// MagnetopausePoint locates an observation point with respect to a magnetopause model.
type MagnetopausePoint struct {
	Point    []float64 `yaml:"point"`    // GSM position of the boundary point
	Distance float64   `yaml:"distance"` // distance from the observation point to Point, in Re
	Inside   bool      `yaml:"inside"`   // whether the observation point is inside the magnetopause
}

// DynamicPressure returns the solar wind dynamic pressure in nPa. If vel < 0, xnPd is
// already the pressure, otherwise it is the proton number density (per cc) and vel the
// solar wind speed (km/s), assuming 4% of alpha particles.
func DynamicPressure(xnPd, vel float64) float64 {
	if vel < 0 {
		return xnPd
	}
	return 1.94e-6 * xnPd * vel * vel
}

// azimuth returns the angle measured duskward from the noon-midnight meridian, zero on the X axis.
func azimuth(y, z float64) float64 {
	if y == 0 && z == 0 {
		return 0
	}
	return math.Atan2(y, z)
}

// pressure returns the dynamic pressure of xnPd and vel, or a DomainError unless it is positive.
func pressure(op string, xnPd, vel float64) (float64, error) {
	pd := DynamicPressure(xnPd, vel)
	if !(pd > 0) || math.IsInf(pd, 1) {
		return 0, domainErr(op, "dynamic pressure must be positive and finite, got %g nPa", pd)
	}
	return pd, nil
}

// T96Magnetopause returns the point of the T96 magnetopause (Tsyganenko 1995, 1996) with the
// same ellipsoidal τ coordinate as the GSM observation point p. Distance does not strictly
// give the shortest distance to the boundary but tends to it as p nears the magnetopause.
// xnPd and vel are as in DynamicPressure. A DomainError is returned for a non-positive
// pressure or if p is not a 3 vector.
func T96Magnetopause(xnPd, vel float64, p []float64) (MagnetopausePoint, error) {
	if err := checkVec("t96", p, Forward); err != nil {
		return MagnetopausePoint{}, err
	}
	pd, err := pressure("t96", xnPd, vel)
	if err != nil {
		return MagnetopausePoint{}, err
	}
	return t96(pd, p), nil
}

func t96(pd float64, p []float64) MagnetopausePoint {
	rat16 := math.Pow(pd/2, 0.14)
	// X of the seam between the ellipsoid and the cylinder.
	a := t96A0 / rat16
	x0 := t96X0 / rat16
	xm := x0 - a

	x, y, z := p[0], p[1], p[2]
	sφ, cφ := math.Sincos(azimuth(y, z))
	ρ := math.Sqrt(y*y + z*z)

	var mp MagnetopausePoint
	if x < xm {
		ρm := a * math.Sqrt(t96S0*t96S0-1)
		mp.Point = []float64{x, ρm * sφ, ρm * cφ}
		mp.Inside = ρm > ρ
	} else {
		ξ := (x-x0)/a + 1
		ζ := ρ / a
		sq1 := math.Sqrt((1+ξ)*(1+ξ) + ζ*ζ)
		sq2 := math.Sqrt((1-ξ)*(1-ξ) + ζ*ζ)
		σ := 0.5 * (sq1 + sq2)
		τ := 0.5 * (sq1 - sq2)
		arg := (t96S0*t96S0 - 1) * (1 - τ*τ)
		if arg < 0 {
			arg = 0
		}
		ρm := a * math.Sqrt(arg)
		mp.Point = []float64{x0 - a*(1-t96S0*τ), ρm * sφ, ρm * cφ}
		mp.Inside = σ <= t96S0
	}
	mp.Distance = distance(p, mp.Point)
	return mp
}

// ShueMagnetopause returns the point of the Shue et al. (1998) magnetopause nearest to the
// GSM observation point p, for the solar wind conditions xnPd, vel (as in DynamicPressure) and
// the IMF bz (nT). Inputs are checked as in T96Magnetopause. The T96 boundary point seeds a
// Newton search, which returns a ConvergenceError along with its last iterate if it does not
// converge.
func ShueMagnetopause(xnPd, vel, bz float64, p []float64) (MagnetopausePoint, error) {
	if err := checkVec("shue", p, Forward); err != nil {
		return MagnetopausePoint{}, err
	}
	pd, err := pressure("shue", xnPd, vel)
	if err != nil {
		return MagnetopausePoint{}, err
	}
	x, y, z := p[0], p[1], p[2]
	φ := azimuth(y, z)

	r0 := (10.22 + 1.29*math.Tanh(0.184*(bz+8.14))) * math.Pow(pd, -1/6.6)
	α := (0.58 - 0.007*bz) * (1 + 0.024*math.Log(pd))

	var mp MagnetopausePoint
	if r := math.Sqrt(x*x + y*y + z*z); r == 0 {
		mp.Inside = true
	} else {
		mp.Inside = r < r0*math.Pow(2/(1+x/r), α)
	}

	seed := t96(pd, p).Point
	ρ2 := seed[1]*seed[1] + seed[2]*seed[2]
	r := math.Sqrt(ρ2 + seed[0]*seed[0])
	θ := math.Atan2(math.Sqrt(ρ2), seed[0])

	for nit := 1; ; nit++ {
		sθ, cθ := math.Sincos(θ)
		rm := r0 * math.Pow(2/(1+cθ), α)
		f := r - rm
		gradθ := -α / r * rm * sθ / (1 + cθ)
		grad2 := 1 + gradθ*gradθ

		dr := -f / grad2
		dθ := dr / r * gradθ
		r += dr
		θ += dθ
		if math.Sqrt(dr*dr+r*r*dθ*dθ) <= shueTol {
			break
		}
		if nit >= shueMaxIter {
			err = &ConvergenceError{Op: "shue", Iterations: nit}
			break
		}
	}

	sθ, cθ := math.Sincos(θ)
	sφ, cφ := math.Sincos(φ)
	ρ := r * sθ
	mp.Point = []float64{r * cθ, ρ * sφ, ρ * cφ}
	mp.Distance = distance(p, mp.Point)
	return mp, err
}

func distance(a, b []float64) float64 {
	return norm([]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]})
}
