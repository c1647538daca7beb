package core

import (
	"math"
)

// Sine-hash constants. These are the usual shader-toy coefficients; they
// decorrelate well enough for Monte Carlo sampling at image resolutions.
const (
	hashCoeffX = 12.9898
	hashCoeffY = 78.233
	hashScale  = 43758.5453
)

// Sampler produces a deterministic pseudo-random scalar stream for one
// pixel invocation. The pixel coordinate is fixed for the lifetime of the
// sampler; the seed advances by exactly 1 per draw, so no value is reused
// within a pixel and the stream is reproducible from (seed, pixel).
//
// A Sampler is owned by a single invocation and must not be shared across
// goroutines.
type Sampler struct {
	seed           float64
	pixelX, pixelY float64
}

// NewSampler creates a sampler for the given seed base and pixel coordinate
func NewSampler(seed, pixelX, pixelY float64) *Sampler {
	return &Sampler{seed: seed, pixelX: pixelX, pixelY: pixelY}
}

// Draw returns the next pseudo-random scalar in [0,1) and advances the seed
func (s *Sampler) Draw() float64 {
	v := math.Sin(s.seed/100.0*(s.pixelX*hashCoeffX+s.pixelY*hashCoeffY)) * hashScale
	s.seed += 1.0
	return v - math.Floor(v)
}

// Seed returns the current seed value
func (s *Sampler) Seed() float64 {
	return s.seed
}
