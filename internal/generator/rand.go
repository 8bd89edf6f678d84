package generator

import "math/rand/v2"

// pcgStream decorrelates the second PCG word from the seed.
const pcgStream = 0x9e3779b97f4a7c15

// NewRand returns a deterministic random source for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^pcgStream))
}
