// Package rng wraps a seeded pseudo-random source with the bounded draws
// the placement generator needs.
package rng

import (
	"math/rand"
	"time"
)

type Source struct {
	r    *rand.Rand
	seed int64
}

// New returns a source seeded with seed, or with the wall clock when seed
// is zero.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{r: rand.New(rand.NewSource(seed)), seed: seed}
}

func (s *Source) Seed() int64 { return s.seed }

// IntRange returns a uniformly distributed integer in [min, max].
// It panics if max < min.
func (s *Source) IntRange(min, max int) int {
	if max < min {
		panic("rng: IntRange called with max < min")
	}
	return s.r.Intn(max-min+1) + min
}

// FloatRange returns IntRange(min, max) as a float64.
func (s *Source) FloatRange(min, max int) float64 {
	return float64(s.IntRange(min, max))
}
