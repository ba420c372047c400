package memerun

import "math/rand"

// RNG is the random source the engine draws from. Spawn sequences are fully
// determined by the RNG, so a seeded source makes a session reproducible.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// NewRNG returns a seeded pseudo-random source.
func NewRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}

// between returns a uniform value in [lo, hi). Degenerate ranges return lo.
func between(rng RNG, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// signed returns a uniform value in [-r, r).
func signed(rng RNG, r float64) float64 {
	return (rng.Float64()*2 - 1) * r
}
