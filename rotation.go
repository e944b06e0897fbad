package geopack

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// R1 rotation about the 1st axis.
func R1(x float64) *mat.Dense {
	return r1(math.Sincos(x))
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat.Dense {
	return r2(math.Sincos(x))
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat.Dense {
	return r3(math.Sincos(x))
}

// r1, r2 and r3 build the same rotations from an already known sine and cosine, which keeps
// the matrix entries bit identical to the scalars stored in the rotation state.
func r1(s, c float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

func r2(s, c float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

func r3(s, c float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m mat.Matrix, v []float64) []float64 {
	var rVec mat.VecDense
	rVec.MulVec(m, mat.NewVecDense(3, v))
	return []float64{rVec.AtVec(0), rVec.AtVec(1), rVec.AtVec(2)}
}

// rotate applies m when dir is Forward and its transpose when dir is Inverse.
func rotate(m *mat.Dense, v []float64, dir Direction) []float64 {
	if dir > 0 {
		return MxV33(m, v)
	}
	return MxV33(m.T(), v)
}
