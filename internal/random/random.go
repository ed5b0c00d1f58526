// Package random provides the integer source used for mine placement.
package random

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Source produces uniformly distributed integers.
type Source interface {
	// Uniform returns an integer in [min, max], both ends inclusive.
	Uniform(min, max int) int
}

// Rand is a Source backed by a PCG generator that is seeded exactly once.
type Rand struct {
	seed int64
	rng  *rand.Rand
}

// New creates a Rand seeded with the given value.
// The same seed always yields the same sequence.
func New(seed int64) *Rand {
	return &Rand{
		seed: seed,
		rng:  rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// TimeSeed returns a seed taken from the wall clock. It is never 0.
func TimeSeed() int64 {
	if seed := time.Now().UnixNano(); seed != 0 {
		return seed
	}
	return 1
}

// Seed returns the value the generator was seeded with.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Uniform returns an integer in [min, max]. Panics if min > max.
func (r *Rand) Uniform(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("random: empty range [%d, %d]", min, max))
	}
	return min + r.rng.IntN(max-min+1)
}

var _ Source = (*Rand)(nil)
