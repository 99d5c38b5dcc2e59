package lpsim

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a 3x3 matrix with a vector.
func MxV33(m *mat64.Dense, v Vector) Vector {
	vVec := mat64.NewVector(3, []float64{v[0], v[1], v[2]})
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return Vector{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}
