package lpsim

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

// The planet is in uniform circular motion, so in the co-rotating frame it
// must not move. A one year run also exercises the parallel transform path.
func TestPlanetStationaryInCorotatingFrame(t *testing.T) {
	s := newQuietSimulator()
	s.SetNumYears(1)
	if err := s.Simulate(); err != nil {
		t.Fatal(err)
	}
	corotating := s.TransformToCorotating(s.PlanetPos())
	if len(corotating) <= corotatingParallelThreshold {
		t.Fatalf("run too short (%d samples) to exercise the parallel path", len(corotating))
	}
	x0, y0 := corotating[0][0], corotating[0][1]
	for i, p := range corotating {
		if math.Hypot(p[0]-x0, p[1]-y0) > 1e-4*AU {
			t.Fatalf("planet moved in the co-rotating frame at step %d: %+v", i, p)
		}
	}
}

// Reversing the time step reverses the frame rotation as well, so the
// planet stays put in the co-rotating frame of a backward run too.
func TestCorotatingFollowsTimeStepSign(t *testing.T) {
	s := newQuietSimulator()
	s.SetNumYears(0.5)
	s.SetTimeStep(-1)
	if err := s.Simulate(); err != nil {
		t.Fatal(err)
	}
	corotating := s.TransformToCorotating(s.PlanetPos())
	x0, y0 := corotating[0][0], corotating[0][1]
	last := corotating[len(corotating)-1]
	if math.Hypot(last[0]-x0, last[1]-y0) > 1e-4*AU {
		t.Fatalf("planet moved in the backward co-rotating frame: %+v vs (%e, %e)", last, x0, y0)
	}
}

func TestCorotatingFullMatchesProjection(t *testing.T) {
	s := newQuietSimulator()
	s.SetNumYears(0.01)
	if err := s.Simulate(); err != nil {
		t.Fatal(err)
	}
	// Tag each sample with a distinct z to check passthrough.
	tagged := make([]Vector, len(s.SatPos()))
	copy(tagged, s.SatPos())
	for i := range tagged {
		tagged[i][2] = float64(i)
	}

	projected := s.TransformToCorotating(tagged)
	full := s.TransformToCorotatingFull(tagged)
	if len(full) != len(projected) {
		t.Fatal("transform variants disagree on length")
	}
	for i := range full {
		if !floats.EqualWithinAbs(full[i][0], projected[i][0], 1e-2) ||
			!floats.EqualWithinAbs(full[i][1], projected[i][1], 1e-2) {
			t.Fatalf("transform variants disagree at step %d: %+v vs %+v", i, full[i], projected[i])
		}
		if full[i][2] != float64(i) {
			t.Fatalf("z component must pass through unchanged, got %e at step %d", full[i][2], i)
		}
	}
}

func TestTransformKernelSerialParallelAgree(t *testing.T) {
	n := corotatingParallelThreshold + 100
	pos := make([]Vector, n)
	times := make([]float64, n)
	for i := range pos {
		pos[i] = Vector{AU * math.Cos(float64(i)), AU * math.Sin(float64(i)), 0}
		times[i] = float64(i) * 3600
	}
	const omega = 2e-7
	parallel := transformToCorotating(pos, times, omega)

	for i := range pos {
		angle := -omega * times[i]
		sin, cos := math.Sincos(angle)
		wantX := cos*pos[i][0] - sin*pos[i][1]
		wantY := sin*pos[i][0] + cos*pos[i][1]
		if parallel[i][0] != wantX || parallel[i][1] != wantY {
			t.Fatalf("parallel transform differs from the serial formula at %d", i)
		}
	}
}
