package geopack

import (
	"math"
)

const minSinθ = 1e-5

// truncation returns the maximal degree of the harmonic expansion used at the radial distance r.
func truncation(r float64) int {
	nm := 3 + int(math.Floor(30/(r+2)))
	if nm > maxDegree {
		nm = maxDegree
	}
	return nm
}

// GeoField returns the spherical geographic components of the IGRF field in nT at the
// radial distance r (Re), colatitude θ and east longitude φ (radians): br is positive
// outward, bθ southward and bφ eastward.
func (c *Coefficients) GeoField(r, θ, φ float64) (br, bθ, bφ float64) {
	sθ, cθ := math.Sincos(θ)
	pole := math.Abs(sθ) < minSinθ

	k := truncation(r) + 1
	// a[n] = (1/r)^(n+2) and b[n] = (n+1)(1/r)^(n+2).
	var a, b [maxDegree + 1]float64
	ar := 1 / r
	a[0] = ar * ar
	b[0] = a[0]
	for n := 1; n < k; n++ {
		a[n] = a[n-1] * ar
		b[n] = a[n] * float64(n+1)
	}

	// p and d are P_m,m and its θ derivative.
	p, d := 1.0, 0.0
	l0 := 0
	for m := 0; m < k; m++ {
		smφ, cmφ := math.Sincos(float64(m) * φ)
		if m > 0 {
			l0 += m + 1
		}
		p1, d1, p2, d2 := p, d, 0.0, 0.0
		var tbφ float64
		for n, mn := m, l0; n < k; n++ {
			w := c.G[mn]*cmφ + c.H[mn]*smφ
			br += b[n] * w * p1
			bθ -= a[n] * w * d1
			if m > 0 {
				tp := p1
				if pole {
					tp = d1
				}
				tbφ += a[n] * (c.G[mn]*smφ - c.H[mn]*cmφ) * tp
			}
			xk := c.Rec[mn]
			d0 := cθ*d1 - sθ*p1 - xk*d2
			p0 := cθ*p1 - xk*p2
			d2, p2, d1 = d1, p1, d0
			p1 = p0
			mn += n + 1
		}
		d = sθ*d + cθ*p
		p = sθ * p
		bφ += tbφ * float64(m)
	}

	if pole {
		if cθ < 0 {
			bφ = -bφ
		}
	} else {
		bφ /= sθ
	}
	return
}

// IGRFGSM returns the IGRF field in GSM at the GSM position v.
func IGRFGSM(v []float64, c *Coefficients, s *RotationState) ([]float64, error) {
	if err := checkVec("igrf", v, Forward); err != nil {
		return nil, err
	}
	bx, by, bz := igrfGSM(c, s, v[0], v[1], v[2])
	return []float64{bx, by, bz}, nil
}

func igrfGSM(c *Coefficients, s *RotationState, x, y, z float64) (bx, by, bz float64) {
	geo := rotate(s.geogsm, []float64{x, y, z}, Inverse)
	sph := cartesian2Spherical(geo)
	br, bθ, bφ := c.GeoField(sph[0], sph[1], sph[2])
	gx, gy, gz := BSpCar(sph[1], sph[2], br, bθ, bφ)
	b := rotate(s.geogsm, []float64{gx, gy, gz}, Forward)
	return b[0], b[1], b[2]
}

// DipoleField returns the GSM components of the geodipole field at the GSM position v, using
// the dipole moment of c and the tilt of s.
func DipoleField(v []float64, c *Coefficients, s *RotationState) ([]float64, error) {
	if err := checkVec("dip", v, Forward); err != nil {
		return nil, err
	}
	bx, by, bz := dipole(c.DipoleMoment(), s.sps, s.cps, v[0], v[1], v[2])
	return []float64{bx, by, bz}, nil
}

func dipole(moment, sps, cps, x, y, z float64) (bx, by, bz float64) {
	p := x * x
	u := z * z
	v := 3 * z * x
	t := y * y
	q := moment / math.Pow(math.Sqrt(p+t+u), 5)
	bx = q * ((t+u-2*p)*sps - v*cps)
	by = -3 * y * q * (x*sps + z*cps)
	bz = q * ((p+t-2*u)*cps - v*sps)
	return
}
