package core

import "math/rand/v2"

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// FillRandom marks each cell alive with probability density. Cells that are
// already alive stay alive.
func FillRandom(g *Grid, r *rand.Rand, density float64) {
	if density <= 0 {
		return
	}
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Columns(); x++ {
			if r.Float64() < density {
				g.Set(x, y)
			}
		}
	}
}
