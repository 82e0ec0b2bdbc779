package core

import "math/rand/v2"

// RNG wraps math/rand/v2 with deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// FillBinary sets each cell live with probability density.
func FillBinary(r *RNG, buf []uint8, density float64) {
	for i := range buf {
		buf[i] = 0
		if r.Chance(density) {
			buf[i] = 1
		}
	}
}
