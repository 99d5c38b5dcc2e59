package lpsim

import "math"

// LagrangeLabel identifies one of the five Lagrange points of the
// star-planet system.
type LagrangeLabel string

// The five Lagrange points. L1, L2 and L3 lie on the star-planet line; L4
// and L5 lead and trail the planet by 60 degrees.
const (
	L1 LagrangeLabel = "L1"
	L2 LagrangeLabel = "L2"
	L3 LagrangeLabel = "L3"
	L4 LagrangeLabel = "L4"
	L5 LagrangeLabel = "L5"
)

// LagrangeLabels lists the valid labels.
var LagrangeLabels = []LagrangeLabel{L1, L2, L3, L4, L5}

// Valid returns whether the label is one of the five recognized points.
func (l LagrangeLabel) Valid() bool {
	switch l {
	case L1, L2, L3, L4, L5:
		return true
	}
	return false
}

func (l LagrangeLabel) String() string {
	return string(l)
}

// position returns the unperturbed position of the Lagrange point relative
// to the star, in meters. distance is the star-planet distance in meters.
func (l LagrangeLabel) position(distance, starMass, planetMass float64) (Vector, error) {
	// Hill radius approximation for the collinear points near the planet.
	hillRadius := distance * math.Cbrt(planetMass/(3*starMass))
	switch l {
	case L1:
		return Vector{distance - hillRadius, 0, 0}, nil
	case L2:
		return Vector{distance + hillRadius, 0, 0}, nil
	case L3:
		l3Dist := distance * 7 / 12 * planetMass / starMass
		return Vector{-distance - l3Dist, 0, 0}, nil
	case L4:
		p := unitAtAngle(math.Pi / 3)
		return Vector{distance * p[0], distance * p[1], 0}, nil
	case L5:
		p := unitAtAngle(-math.Pi / 3)
		return Vector{distance * p[0], distance * p[1], 0}, nil
	}
	return Vector{}, &ConfigurationError{Label: l}
}

// defaultPerturbationAngle returns the angle in degrees along which
// perturbations point away from or toward the origin for this label.
func (l LagrangeLabel) defaultPerturbationAngle() float64 {
	switch l {
	case L1, L2:
		return 0
	case L3:
		return 180
	case L4:
		return 60
	case L5:
		return -60
	}
	panic("cannot compute default perturbation angle of unknown Lagrange label")
}
