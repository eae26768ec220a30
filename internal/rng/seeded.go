package rng

import "math/rand"

// Seeded is a deterministic generator for replayable shuffles and tests
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a Seeded generator for the given seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a random number from 0 < n
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}
