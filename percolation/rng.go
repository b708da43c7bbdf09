package percolation

import "math/rand"

// RNG is the injected uniform-integer source Stats depends on. Any
// process-wide mutable state (a shared *rand.Rand, a seed) is the
// provider's concern, not this package's — Stats only ever calls
// UniformInt.
type RNG interface {
	// UniformInt returns an integer drawn uniformly from [min, max],
	// inclusive on both ends.
	UniformInt(min, max int) int
}

// MathRandRNG adapts *rand.Rand to RNG.
type MathRandRNG struct {
	R *rand.Rand
}

// NewMathRandRNG builds a MathRandRNG seeded with seed.
func NewMathRandRNG(seed int64) MathRandRNG {
	return MathRandRNG{R: rand.New(rand.NewSource(seed))}
}

// UniformInt returns an integer drawn uniformly from [min, max].
func (m MathRandRNG) UniformInt(min, max int) int {
	return min + m.R.Intn(max-min+1)
}
