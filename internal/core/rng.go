package core

import "math/rand/v2"

// RNG is the seeded source behind scattered layouts. Equal seeds give equal
// maps on every platform.
type RNG struct {
	r *rand.Rand
}

// NewRNG seeds a PCG generator.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool { return r.r.Float64() < p }

// Variant picks a wall value in 1..n, or Empty when n <= 0.
func (r *RNG) Variant(n int) Cell {
	if n <= 0 {
		return Empty
	}
	return Cell(1 + r.r.IntN(n))
}
