package lpsim

import (
	"math"
	"testing"
)

// An unperturbed satellite at L4 is in equilibrium: in the co-rotating frame
// it must stay close to the static Lagrange point for the whole run.
func TestL4Equilibrium(t *testing.T) {
	s := newQuietSimulator()
	s.SetNumYears(1)
	if err := s.Simulate(); err != nil {
		t.Fatal(err)
	}
	corotating := s.TransformToCorotating(s.SatPos())
	lp := s.LagrangePointTranslated()

	maxDeviation := 0.0
	for _, p := range corotating {
		dx, dy := p[0]-lp[0], p[1]-lp[1]
		if d := math.Hypot(dx, dy); d > maxDeviation {
			maxDeviation = d
		}
	}
	if maxDeviation > 1e-4*AU {
		t.Fatalf("satellite drifted %e AU from L4 over a year, expected at most 1e-4", maxDeviation/AU)
	}
}

// Position Verlet is time reversible: integrating the final state backwards
// over the same number of steps recovers the initial state.
func TestIntegrateTimeReversal(t *testing.T) {
	s := newQuietSimulator()
	s.SetNumYears(0.01)
	s.SetPerturbationSize(0.01)
	if err := s.Simulate(); err != nil {
		t.Fatal(err)
	}
	n := s.NumSteps()

	alloc := func(init Vector) []Vector {
		series := make([]Vector, n+1)
		series[0] = init
		return series
	}
	starPos, starVel := alloc(s.StarPos()[n]), alloc(s.StarVel()[n])
	planetPos, planetVel := alloc(s.PlanetPos()[n]), alloc(s.PlanetVel()[n])
	satPos, satVel := alloc(s.SatPos()[n]), alloc(s.SatVel()[n])

	integrate(-s.TimeStepInSeconds(), n, s.StarMass(), s.PlanetMass(),
		starPos, starVel, planetPos, planetVel, satPos, satVel)

	for name, pair := range map[string][2]Vector{
		"star_pos":   {starPos[n], s.StarPos()[0]},
		"planet_pos": {planetPos[n], s.PlanetPos()[0]},
		"sat_pos":    {satPos[n], s.SatPos()[0]},
	} {
		if !vectorsEqualWithinAbs(pair[0], pair[1], 1) {
			t.Fatalf("%s did not retrace: %+v vs %+v", name, pair[0], pair[1])
		}
	}
	for name, pair := range map[string][2]Vector{
		"star_vel":   {starVel[n], s.StarVel()[0]},
		"planet_vel": {planetVel[n], s.PlanetVel()[0]},
		"sat_vel":    {satVel[n], s.SatVel()[0]},
	} {
		if !vectorsEqualWithinAbs(pair[0], pair[1], 1e-6) {
			t.Fatalf("%s did not retrace: %+v vs %+v", name, pair[0], pair[1])
		}
	}
}

// A backward run is a legal run in its own right: same lengths, and the
// planet sweeps its orbit clockwise instead.
func TestBackwardRun(t *testing.T) {
	s := newQuietSimulator()
	s.SetNumYears(0.25)
	s.SetTimeStep(-1)
	if err := s.Simulate(); err != nil {
		t.Fatal(err)
	}
	if len(s.PlanetPos()) != s.NumSteps()+1 {
		t.Fatal("backward run has wrong series length")
	}
	// A quarter orbit backwards puts the planet near the -y axis.
	final := s.PlanetPos()[s.NumSteps()]
	if final[1] >= 0 {
		t.Fatalf("backward run should sweep clockwise, final planet y = %e", final[1])
	}
}

// Near-collision geometry is not guarded: degenerate separations poison the
// trajectory with NaN/Inf instead of failing.
func TestCollisionPropagatesNaN(t *testing.T) {
	s := newQuietSimulator()
	s.SetNumYears(0.01)
	s.SetLagrangeLabel(L1)
	// A massless star blows the Hill radius up to +Inf, so L1 sits at -Inf
	// and the whole trajectory turns non-finite from the first sample on.
	s.SetStarMass(0)
	if err := s.Simulate(); err != nil {
		t.Fatalf("degenerate geometry must not error, got %v", err)
	}
	last := s.SatPos()[s.NumSteps()]
	if !math.IsNaN(last[0]) && !math.IsInf(last[0], 0) {
		t.Fatalf("expected NaN/Inf propagation, got %+v", last)
	}
}
