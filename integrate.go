package lpsim

import "math"

func inverseNormCubed(v Vector) float64 {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	return 1 / (n * n * n)
}

// calcAccelerations returns the gravitational acceleration of each body at
// the given positions. The star and planet pull on each other; the satellite
// is pulled by both but its mass is too small to pull back. gStar and
// gPlanet are G times the respective masses.
//
// There is no guard against vanishing separations: if two bodies meet, the
// inverse-cube terms diverge and Inf/NaN propagate into the trajectory.
func calcAccelerations(gStar, gPlanet float64, starPos, planetPos, satPos Vector) (starAccel, planetAccel, satAccel Vector) {
	var planetToStar, satToStar, satToPlanet Vector
	for j := 0; j < 3; j++ {
		planetToStar[j] = starPos[j] - planetPos[j]
		satToStar[j] = starPos[j] - satPos[j]
		satToPlanet[j] = planetPos[j] - satPos[j]
	}

	dPlanetToStarInvCubed := inverseNormCubed(planetToStar)
	dSatToStarInvCubed := inverseNormCubed(satToStar)
	dSatToPlanetInvCubed := inverseNormCubed(satToPlanet)

	starPlanetCoeff := gPlanet * dPlanetToStarInvCubed
	planetStarCoeff := gStar * dPlanetToStarInvCubed
	satStarCoeff := gStar * dSatToStarInvCubed
	satPlanetCoeff := gPlanet * dSatToPlanetInvCubed

	for j := 0; j < 3; j++ {
		starAccel[j] = -starPlanetCoeff * planetToStar[j]
		// note the lack of negative signs in the following lines
		planetAccel[j] = planetStarCoeff * planetToStar[j]
		satAccel[j] = satStarCoeff*satToStar[j] + satPlanetCoeff*satToPlanet[j]
	}
	return
}

// integrate advances all three bodies from index 0 through numSteps using
// the symplectic position-Verlet scheme: half-step positions, accelerations
// at the half step, full-step velocities, full-step positions. timeStep is
// in seconds and may be negative to integrate backwards in time. Each series
// must have length numSteps+1 with index 0 already holding the initial state.
func integrate(timeStep float64, numSteps int, starMass, planetMass float64,
	starPos, starVel, planetPos, planetVel, satPos, satVel []Vector) {
	halfTimeStep := 0.5 * timeStep

	gStar := G * starMass
	gPlanet := G * planetMass

	for k := 1; k <= numSteps; k++ {
		var starHalfPos, planetHalfPos, satHalfPos Vector
		for j := 0; j < 3; j++ {
			starHalfPos[j] = starPos[k-1][j] + starVel[k-1][j]*halfTimeStep
			planetHalfPos[j] = planetPos[k-1][j] + planetVel[k-1][j]*halfTimeStep
			satHalfPos[j] = satPos[k-1][j] + satVel[k-1][j]*halfTimeStep
		}

		starAccel, planetAccel, satAccel := calcAccelerations(gStar, gPlanet, starHalfPos, planetHalfPos, satHalfPos)

		for j := 0; j < 3; j++ {
			starVel[k][j] = starVel[k-1][j] + starAccel[j]*timeStep
			planetVel[k][j] = planetVel[k-1][j] + planetAccel[j]*timeStep
			satVel[k][j] = satVel[k-1][j] + satAccel[j]*timeStep

			starPos[k][j] = starHalfPos[j] + starVel[k][j]*halfTimeStep
			planetPos[k][j] = planetHalfPos[j] + planetVel[k][j]*halfTimeStep
			satPos[k][j] = satHalfPos[j] + satVel[k][j]*halfTimeStep
		}
	}
}
