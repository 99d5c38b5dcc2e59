package lpsim

import (
	"math"
	"runtime"
	"sync"
)

// Below this many samples the serial loop beats the goroutine fan-out.
const corotatingParallelThreshold = 4096

// TransformToCorotating rotates a series of positions, measured relative to
// the center of mass, into the frame co-rotating with the planet's orbit.
// The rotation direction follows the sign of the time step so that backward
// runs co-rotate the right way. Only the x and y components are returned;
// use TransformToCorotatingFull to keep z.
func (s *Simulator) TransformToCorotating(posTrans []Vector) [][2]float64 {
	angularSpeed := s.AngularSpeed() * sign(s.TimeStepInSeconds())
	return transformToCorotating(posTrans, s.TimePoints(), angularSpeed)
}

// transformToCorotating applies the inverse of the rotating-basis transform:
// at each time t the position is rotated by R3 with angle -ω·t about z.
// Samples are independent, so large series are split across GOMAXPROCS
// goroutines.
func transformToCorotating(posTrans []Vector, times []float64, angularSpeed float64) [][2]float64 {
	posCorotating := make([][2]float64, len(posTrans))
	if len(posTrans) < corotatingParallelThreshold {
		rotateChunk(posCorotating, posTrans, times, angularSpeed, 0, len(posTrans))
		return posCorotating
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(posTrans) + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < len(posTrans); lo += chunk {
		hi := lo + chunk
		if hi > len(posTrans) {
			hi = len(posTrans)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			rotateChunk(posCorotating, posTrans, times, angularSpeed, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
	return posCorotating
}

func rotateChunk(dst [][2]float64, posTrans []Vector, times []float64, angularSpeed float64, lo, hi int) {
	for i := lo; i < hi; i++ {
		angle := -angularSpeed * times[i]
		sin, cos := math.Sincos(angle)
		x, y := posTrans[i][0], posTrans[i][1]
		dst[i][0] = cos*x - sin*y
		dst[i][1] = sin*x + cos*y
	}
}

// TransformToCorotatingFull is TransformToCorotating for consumers which
// need full 3-vectors; the z component passes through unchanged.
func (s *Simulator) TransformToCorotatingFull(posTrans []Vector) []Vector {
	angularSpeed := s.AngularSpeed() * sign(s.TimeStepInSeconds())
	times := s.TimePoints()
	posCorotating := make([]Vector, len(posTrans))
	for i := range posTrans {
		// R3(ω·t) is the inverse of the rotating-basis change R3(-ω·t).
		posCorotating[i] = MxV33(R3(angularSpeed*times[i]), posTrans[i])
	}
	return posCorotating
}
