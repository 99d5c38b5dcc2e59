package lpsim

import (
	"math"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/floats"
)

/* Handles the three-body Lagrange point simulations. */

// Simulator holds the parameters defining a satellite's orbit near a
// Lagrange point of a star-planet system and simulates that orbit. The star
// and planet are initialized in uniform circular motion about their common
// center of mass; the satellite is placed at the requested Lagrange point,
// optionally perturbed.
//
// All parameters are mutated through validated setters, so a Simulator never
// carries a physically nonsensical configuration. Simulate is the only
// method which mutates the trajectory buffers.
type Simulator struct {
	numYears          float64 // duration of simulated time in Julian years
	timeStep          float64 // signed step size in hours
	perturbationSize  float64 // offset from the Lagrange point in AU
	perturbationAngle *float64
	speed             float64 // satellite speed as a factor of the planet's
	velAngle          *float64
	lagrangeLabel     LagrangeLabel
	starMass          float64 // kg
	planetMass        float64 // kg
	planetDistance    float64 // AU

	lagrangePointTrans Vector

	starPos, starVel     []Vector
	planetPos, planetVel []Vector
	satPos, satVel       []Vector

	logger kitlog.Logger
}

// NewSimulator returns a Simulator with the documented defaults: a
// 100 year run at 1 hour steps of an unperturbed satellite at the Sun-Earth
// L4 point, 1 AU from the star.
func NewSimulator() *Simulator {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	return &Simulator{
		numYears:       100,
		timeStep:       1,
		speed:          1,
		lagrangeLabel:  L4,
		starMass:       SunMass,
		planetMass:     EarthMass,
		planetDistance: 1,
		logger:         kitlog.With(klog, "subsys", "sim"),
	}
}

// SetLogger changes the logger used for simulation status reports.
func (s *Simulator) SetLogger(logger kitlog.Logger) {
	s.logger = logger
}

// Float returns a pointer to v, for the optional angle setters.
func Float(v float64) *float64 {
	return &v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SetNumYears sets the duration of simulated time in years. Must be positive.
func (s *Simulator) SetNumYears(v float64) error {
	if !isFinite(v) || v <= 0 {
		return &ValidationError{Field: "num_years", Value: v, Constraint: "positive"}
	}
	s.numYears = v
	return nil
}

// SetTimeStep sets the time between simulation steps in hours. A negative
// value makes the simulation run backwards in time.
func (s *Simulator) SetTimeStep(v float64) error {
	if !isFinite(v) {
		return &ValidationError{Field: "time_step", Value: v, Constraint: "finite"}
	}
	s.timeStep = v
	return nil
}

// SetPerturbationSize sets the size of the satellite's offset from the
// Lagrange point in AU.
func (s *Simulator) SetPerturbationSize(v float64) error {
	if !isFinite(v) {
		return &ValidationError{Field: "perturbation_size", Value: v, Constraint: "finite"}
	}
	s.perturbationSize = v
	return nil
}

// SetPerturbationAngle sets the direction of the perturbation in degrees
// from the +x axis. nil restores the per-label default, which points away
// from or toward the origin.
func (s *Simulator) SetPerturbationAngle(v *float64) error {
	if v != nil && !isFinite(*v) {
		return &ValidationError{Field: "perturbation_angle", Value: *v, Constraint: "finite or nil"}
	}
	s.perturbationAngle = v
	return nil
}

// SetSpeed sets the satellite's initial speed as a factor of the planet's
// orbital speed.
func (s *Simulator) SetSpeed(v float64) error {
	if !isFinite(v) {
		return &ValidationError{Field: "speed", Value: v, Constraint: "finite"}
	}
	s.speed = v
	return nil
}

// SetVelAngle sets the direction of the satellite's initial velocity in
// degrees from the +x axis. nil restores the default, perpendicular to the
// satellite's unperturbed position relative to the star.
func (s *Simulator) SetVelAngle(v *float64) error {
	if v != nil && !isFinite(*v) {
		return &ValidationError{Field: "vel_angle", Value: *v, Constraint: "finite or nil"}
	}
	s.velAngle = v
	return nil
}

// SetLagrangeLabel sets the satellite's unperturbed position.
func (s *Simulator) SetLagrangeLabel(v LagrangeLabel) error {
	if !v.Valid() {
		return &ValidationError{Field: "lagrange_label", Value: string(v), Constraint: "one of L1, L2, L3, L4, L5"}
	}
	s.lagrangeLabel = v
	return nil
}

// SetStarMass sets the mass of the star in kilograms.
func (s *Simulator) SetStarMass(v float64) error {
	if !isFinite(v) || v < 0 {
		return &ValidationError{Field: "star_mass", Value: v, Constraint: "non-negative"}
	}
	s.starMass = v
	return nil
}

// SetPlanetMass sets the mass of the planet in kilograms.
func (s *Simulator) SetPlanetMass(v float64) error {
	if !isFinite(v) || v < 0 {
		return &ValidationError{Field: "planet_mass", Value: v, Constraint: "non-negative"}
	}
	s.planetMass = v
	return nil
}

// SetPlanetDistance sets the distance between the planet and the star in AU.
func (s *Simulator) SetPlanetDistance(v float64) error {
	if !isFinite(v) || v <= 0 {
		return &ValidationError{Field: "planet_distance", Value: v, Constraint: "positive"}
	}
	s.planetDistance = v
	return nil
}

// NumYears returns the duration of simulated time in years.
func (s *Simulator) NumYears() float64 { return s.numYears }

// TimeStep returns the step size in hours.
func (s *Simulator) TimeStep() float64 { return s.timeStep }

// PerturbationSize returns the offset from the Lagrange point in AU.
func (s *Simulator) PerturbationSize() float64 { return s.perturbationSize }

// Speed returns the satellite speed factor.
func (s *Simulator) Speed() float64 { return s.speed }

// LagrangeLabel returns the satellite's unperturbed position label.
func (s *Simulator) LagrangeLabel() LagrangeLabel { return s.lagrangeLabel }

// StarMass returns the mass of the star in kilograms.
func (s *Simulator) StarMass() float64 { return s.starMass }

// PlanetMass returns the mass of the planet in kilograms.
func (s *Simulator) PlanetMass() float64 { return s.planetMass }

// PlanetDistance returns the star-planet distance in AU.
func (s *Simulator) PlanetDistance() float64 { return s.planetDistance }

// SimTime returns the time to simulate in seconds.
func (s *Simulator) SimTime() float64 {
	return s.numYears * Years
}

// TimeStepInSeconds returns the signed step size in seconds.
func (s *Simulator) TimeStepInSeconds() float64 {
	return s.timeStep * Hours
}

// NumSteps returns the number of integration steps. A zero time step is a
// permitted degenerate case yielding a single-point trajectory.
func (s *Simulator) NumSteps() int {
	dt := s.TimeStepInSeconds()
	if dt == 0 {
		return 0
	}
	return int(math.Ceil(math.Abs(s.SimTime() / dt)))
}

// TimePoints returns the simulated times in seconds, starting at zero.
func (s *Simulator) TimePoints() []float64 {
	n := s.NumSteps()
	if n == 0 {
		return []float64{0}
	}
	return floats.Span(make([]float64, n+1), 0, s.SimTime())
}

// TimePointsInYears returns the simulated times in years.
func (s *Simulator) TimePointsInYears() []float64 {
	times := s.TimePoints()
	for i := range times {
		times[i] /= Years
	}
	return times
}

// CalcLagrangePoint returns the position of the configured Lagrange point
// relative to the star, in meters.
func (s *Simulator) CalcLagrangePoint() (Vector, error) {
	return s.lagrangeLabel.position(s.planetDistance*AU, s.starMass, s.planetMass)
}

// LagrangePointTranslated returns the Lagrange point after re-centering on
// the center of mass. It is recomputed by each Simulate call.
func (s *Simulator) LagrangePointTranslated() Vector {
	return s.lagrangePointTrans
}

func (s *Simulator) actualPerturbationAngle() float64 {
	if s.perturbationAngle != nil {
		return *s.perturbationAngle
	}
	return s.lagrangeLabel.defaultPerturbationAngle()
}

func (s *Simulator) actualVelAngle() float64 {
	if s.velAngle != nil {
		return *s.velAngle
	}
	return s.lagrangeLabel.defaultPerturbationAngle() + 90
}

// calcPeriodFromSemiMajorAxis returns the two-body orbital period in seconds
// for the given semi-major axis in meters and masses in kilograms.
func calcPeriodFromSemiMajorAxis(semiMajorAxis, starMass, planetMass float64) float64 {
	periodSquared := 4 * math.Pi * math.Pi * math.Pow(semiMajorAxis, 3) / (G * (starMass + planetMass))
	return math.Sqrt(periodSquared)
}

// OrbitalPeriod returns the period of the planet's orbit in seconds.
func (s *Simulator) OrbitalPeriod() float64 {
	return calcPeriodFromSemiMajorAxis(s.planetDistance*AU, s.starMass, s.planetMass)
}

// AngularSpeed returns the angular speed of the planet's orbit in radians
// per second.
func (s *Simulator) AngularSpeed() float64 {
	return 2 * math.Pi / s.OrbitalPeriod()
}

// CenterOfMass returns the mass-weighted average of the given positions (or
// velocities) of the three bodies.
func (s *Simulator) CenterOfMass(starVec, planetVec, satVec Vector) Vector {
	totalMass := s.starMass + s.planetMass + SatMass
	var cm Vector
	for j := 0; j < 3; j++ {
		cm[j] = (s.starMass*starVec[j] + s.planetMass*planetVec[j] + SatMass*satVec[j]) / totalMass
	}
	return cm
}

// Simulate fills the trajectory buffers with a full run over NumSteps steps.
// It can be called repeatedly with different parameters; buffers are only
// reallocated when the required length changes.
//
// There is no guard against near-collision geometry: if the parameters put
// two bodies too close together the trajectory silently fills with Inf/NaN.
func (s *Simulator) Simulate() error {
	start := time.Now()
	if err := s.initializeArrays(); err != nil {
		return err
	}
	s.logger.Log("level", "info", "status", "starting", "point", s.lagrangeLabel, "steps", s.NumSteps(), "Δt(hr)", s.timeStep)
	integrate(s.TimeStepInSeconds(), s.NumSteps(), s.starMass, s.planetMass,
		s.starPos, s.starVel, s.planetPos, s.planetVel, s.satPos, s.satVel)
	s.logger.Log("level", "info", "status", "finished", "years", s.numYears, "duration", time.Since(start))
	return nil
}

// initializeArrays sets up the six series so that their initial values
// correspond to the input parameters.
func (s *Simulator) initializeArrays() error {
	if len(s.starPos) != s.NumSteps()+1 {
		s.allocateArrays()
	}
	if err := s.initializePositions(); err != nil {
		return err
	}

	// The star and planet undergo circular orbits about the center of mass,
	// so velocities have to be defined relative to the CM.
	initCMPos := s.CenterOfMass(s.starPos[0], s.planetPos[0], s.satPos[0])
	s.initializeVelocities(initCMPos)
	return s.transformToCMRefFrame(initCMPos)
}

func (s *Simulator) allocateArrays() {
	n := s.NumSteps() + 1
	s.starPos = make([]Vector, n)
	s.starVel = make([]Vector, n)
	s.planetPos = make([]Vector, n)
	s.planetVel = make([]Vector, n)
	s.satPos = make([]Vector, n)
	s.satVel = make([]Vector, n)
}

func (s *Simulator) initializePositions() error {
	s.starPos[0] = Vector{}
	s.planetPos[0] = Vector{s.planetDistance * AU, 0, 0}

	lagrangePoint, err := s.CalcLagrangePoint()
	if err != nil {
		return err
	}

	// Perturbation of the satellite's position away from the Lagrange point.
	perturbationSize := s.perturbationSize * AU
	perturbation := unitAtAngle(Deg2rad(s.actualPerturbationAngle()))
	for j := 0; j < 3; j++ {
		s.satPos[0][j] = lagrangePoint[j] + perturbationSize*perturbation[j]
	}
	return nil
}

func (s *Simulator) initializeVelocities(initCMPos Vector) {
	// Orbits are counterclockwise so the angular velocity points in the
	// positive z direction. For a circular orbit v = ω × (r - r_cm).
	angularVel := Vector{0, 0, s.AngularSpeed()}

	var starRel, planetRel Vector
	for j := 0; j < 3; j++ {
		starRel[j] = s.starPos[0][j] - initCMPos[j]
		planetRel[j] = s.planetPos[0][j] - initCMPos[j]
	}
	s.starVel[0] = cross(angularVel, starRel)
	s.planetVel[0] = cross(angularVel, planetRel)

	speed := s.speed * norm(s.planetVel[0])
	velDir := unitAtAngle(Deg2rad(s.actualVelAngle()))
	for j := 0; j < 3; j++ {
		s.satVel[0][j] = speed * velDir[j]
	}
}

func (s *Simulator) transformToCMRefFrame(initCMPos Vector) error {
	for j := 0; j < 3; j++ {
		s.starPos[0][j] -= initCMPos[j]
		s.planetPos[0][j] -= initCMPos[j]
		s.satPos[0][j] -= initCMPos[j]
	}

	lagrangePoint, err := s.CalcLagrangePoint()
	if err != nil {
		return err
	}
	for j := 0; j < 3; j++ {
		s.lagrangePointTrans[j] = lagrangePoint[j] - initCMPos[j]
	}
	return nil
}

// StarPos returns the star position series. The slice is owned by the
// Simulator and is valid until the next Simulate call.
func (s *Simulator) StarPos() []Vector { return s.starPos }

// StarVel returns the star velocity series.
func (s *Simulator) StarVel() []Vector { return s.starVel }

// PlanetPos returns the planet position series.
func (s *Simulator) PlanetPos() []Vector { return s.planetPos }

// PlanetVel returns the planet velocity series.
func (s *Simulator) PlanetVel() []Vector { return s.planetVel }

// SatPos returns the satellite position series.
func (s *Simulator) SatPos() []Vector { return s.satPos }

// SatVel returns the satellite velocity series.
func (s *Simulator) SatVel() []Vector { return s.satVel }
