package lpsim

// Conserved-quantity diagnostics. These are pure reductions over the
// trajectory, computed on demand and never fed back into the integrator.
// For a stable run they should be approximately constant over time; their
// drift measures the quality of the symplectic integration.

// CalcConservedQuantities returns the total linear momentum, total angular
// momentum and total energy series of the most recent run.
func (s *Simulator) CalcConservedQuantities() (momentum, angularMomentum []Vector, energy []float64) {
	return s.CalcTotalLinearMomentum(), s.CalcTotalAngularMomentum(), s.CalcTotalEnergy()
}

// CalcTotalLinearMomentum returns the sum of mass times velocity over the
// three bodies at every time sample, in kg m/s.
func (s *Simulator) CalcTotalLinearMomentum() []Vector {
	momentum := make([]Vector, len(s.starVel))
	for i := range momentum {
		for j := 0; j < 3; j++ {
			momentum[i][j] = s.starMass*s.starVel[i][j] + s.planetMass*s.planetVel[i][j] + SatMass*s.satVel[i][j]
		}
	}
	return momentum
}

// CalcTotalAngularMomentum returns the sum of r × mv over the three bodies
// at every time sample, in kg m^2/s.
func (s *Simulator) CalcTotalAngularMomentum() []Vector {
	angularMomentum := make([]Vector, len(s.starPos))
	for i := range angularMomentum {
		starL := cross(s.starPos[i], scale(s.starMass, s.starVel[i]))
		planetL := cross(s.planetPos[i], scale(s.planetMass, s.planetVel[i]))
		satL := cross(s.satPos[i], scale(SatMass, s.satVel[i]))
		for j := 0; j < 3; j++ {
			angularMomentum[i][j] = starL[j] + planetL[j] + satL[j]
		}
	}
	return angularMomentum
}

// CalcTotalEnergy returns the kinetic plus pairwise gravitational potential
// energy of the system at every time sample, in joules.
func (s *Simulator) CalcTotalEnergy() []float64 {
	energy := make([]float64, len(s.starPos))
	for i := range energy {
		dPlanetToStar := norm(sub(s.starPos[i], s.planetPos[i]))
		dPlanetToSat := norm(sub(s.satPos[i], s.planetPos[i]))
		dStarToSat := norm(sub(s.satPos[i], s.starPos[i]))

		potential := -G * (s.starMass*s.planetMass/dPlanetToStar +
			SatMass*s.planetMass/dPlanetToSat +
			SatMass*s.starMass/dStarToSat)

		starSpeed := norm(s.starVel[i])
		planetSpeed := norm(s.planetVel[i])
		satSpeed := norm(s.satVel[i])

		kinetic := 0.5 * (s.starMass*starSpeed*starSpeed +
			s.planetMass*planetSpeed*planetSpeed +
			SatMass*satSpeed*satSpeed)

		energy[i] = potential + kinetic
	}
	return energy
}

func scale(f float64, v Vector) Vector {
	return Vector{f * v[0], f * v[1], f * v[2]}
}

func sub(a, b Vector) Vector {
	return Vector{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}
