package geopack

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	deg2rad = math.Pi / 180
	twoπ    = 2 * math.Pi
)

// norm returns the norm of a given vector which is supposed to be 3x1.
func norm(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// normalize returns the unit vector of a given vector.
func normalize(a []float64) (b []float64) {
	n := norm(a)
	if scalar.EqualWithinAbs(n, 0, 1e-12) {
		return []float64{0, 0, 0}
	}
	b = make([]float64, len(a))
	floats.ScaleTo(b, 1/n, a)
	return
}

// dot performs the inner product.
func dot(a, b []float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// cross performs the cross product.
func cross(a, b []float64) []float64 {
	return []float64{a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0]}
}

// SphCar converts spherical (r, θ, φ) into Cartesian (x, y, z) when dir is Forward, and the
// other way around when dir is Inverse. Angles are in radians, φ is returned in [0, 2π).
// On the polar axis φ is set to zero and θ to 0 (z >= 0) or π (z < 0).
func SphCar(a []float64, dir Direction) ([]float64, error) {
	if err := checkVec("sphcar", a, dir); err != nil {
		return nil, err
	}
	if dir > 0 {
		return spherical2Cartesian(a), nil
	}
	return cartesian2Spherical(a), nil
}

func spherical2Cartesian(a []float64) []float64 {
	sθ, cθ := math.Sincos(a[1])
	sφ, cφ := math.Sincos(a[2])
	sq := a[0] * sθ
	return []float64{sq * cφ, sq * sφ, a[0] * cθ}
}

func cartesian2Spherical(a []float64) []float64 {
	sq := a[0]*a[0] + a[1]*a[1]
	r := math.Sqrt(sq + a[2]*a[2])
	if sq == 0 {
		if a[2] < 0 {
			return []float64{r, math.Pi, 0}
		}
		return []float64{r, 0, 0}
	}
	φ := math.Atan2(a[1], a[0])
	if φ < 0 {
		φ += twoπ
	}
	return []float64{r, math.Atan2(math.Sqrt(sq), a[2]), φ}
}

// BSpCar returns the Cartesian field components from the spherical ones at the point of
// spherical angles θ and φ.
func BSpCar(θ, φ, br, bθ, bφ float64) (bx, by, bz float64) {
	s, c := math.Sincos(θ)
	sf, cf := math.Sincos(φ)
	be := br*s + bθ*c
	bx = be*cf - bφ*sf
	by = be*sf + bφ*cf
	bz = br*c - bθ*s
	return
}

// BCarSp returns the spherical field components from the Cartesian ones at (x, y, z).
// On the polar axis the azimuthal unit vector is taken along +y.
func BCarSp(x, y, z, bx, by, bz float64) (br, bθ, bφ float64) {
	ρ2 := x*x + y*y
	r := math.Sqrt(ρ2 + z*z)
	ρ := math.Sqrt(ρ2)
	cφ, sφ := 1.0, 0.0
	if ρ != 0 {
		cφ = x / ρ
		sφ = y / ρ
	}
	ct := z / r
	st := ρ / r
	br = (x*bx + y*by + z*bz) / r
	bθ = (bx*cφ+by*sφ)*ct - bz*st
	bφ = by*cφ - bx*sφ
	return
}

// Deg2rad converts degrees to radians, and enforced only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, twoπ)
}

// Rad2deg converts radians to degrees, and enforced only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += twoπ
	}
	return math.Mod(a/deg2rad, 360)
}
