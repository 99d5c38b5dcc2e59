package lpsim

import (
	"math"

	"github.com/gonum/floats"
)

const (
	deg2rad = math.Pi / 180
)

// Vector is a Cartesian 3-vector, in meters or meters per second.
type Vector [3]float64

// norm returns the norm of a given vector.
func norm(v Vector) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// unitAtAngle returns the unit vector in the xy plane at the given angle in
// radians from the +x axis.
func unitAtAngle(angle float64) Vector {
	s, c := math.Sincos(angle)
	return Vector{c, s, 0}
}

// cross performs the cross product.
func cross(a, b Vector) Vector {
	return Vector{a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0]}
}

// sign returns the sign of a given number.
func sign(v float64) float64 {
	if floats.EqualWithinAbs(v, 0, 1e-12) {
		return 1
	}
	return v / math.Abs(v)
}

// Deg2rad converts degrees to radians.
func Deg2rad(a float64) float64 {
	return a * deg2rad
}

// Rad2deg converts radians to degrees.
func Rad2deg(a float64) float64 {
	return a / deg2rad
}
