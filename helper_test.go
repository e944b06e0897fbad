package geopack

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat/distuv"
)

const eps = 1e-10

// vectorsEqual returns whether two vectors are equal within eps (absolute).
func vectorsEqual(a, b []float64) bool {
	return vectorsEqualWithin(a, b, eps)
}

func vectorsEqualWithin(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := len(a) - 1; i >= 0; i-- {
		if !scalar.EqualWithinAbs(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

// anglesEqual returns whether two angles in radians are equal.
func anglesEqual(a, b float64) (bool, error) {
	diff := math.Abs(a - b)
	if diff < eps || math.Abs(diff-2*math.Pi) < eps {
		return true, nil
	}
	return false, fmt.Errorf("difference of %3.10fπ", diff/math.Pi)
}

// randomPoints returns n points uniformly distributed in the cube [-max, max]³.
func randomPoints(n int, max float64, seed uint64) [][]float64 {
	u := distuv.Uniform{Min: -max, Max: max, Src: rand.NewSource(seed)}
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = []float64{u.Rand(), u.Rand(), u.Rand()}
	}
	return pts
}

// randomEpochs returns n valid epochs between 1965 and 2010.
func randomEpochs(n int, seed uint64) []Epoch {
	src := rand.NewSource(seed)
	year := distuv.Uniform{Min: 1965, Max: 2011, Src: src}
	frac := distuv.Uniform{Min: 0, Max: 1, Src: src}
	out := make([]Epoch, n)
	for i := range out {
		out[i] = Epoch{
			Year:   int(year.Rand()),
			Day:    1 + int(frac.Rand()*365),
			Hour:   int(frac.Rand() * 24),
			Minute: int(frac.Rand() * 60),
			Second: int(frac.Rand() * 60),
		}
	}
	return out
}

func mustRecalc(e Epoch) (*RotationState, *Coefficients) {
	s, c, err := Recalc(e)
	if err != nil {
		panic(err)
	}
	return s, c
}
