package markov

import "math/rand/v2"

// Source is the pseudo-random generator a Model samples from. IntN must return
// a uniformly distributed integer in [0, n) and may panic if n <= 0; the model
// never calls it with n < 1.
//
// *rand.Rand from math/rand/v2 satisfies Source.
type Source interface {
	IntN(n int) int
}

// NewSource returns the default Source for a seed: a PCG generator from
// math/rand/v2 with both state words derived from seed. Its output sequence
// for a given seed is stable across Go releases.
func NewSource(seed int64) Source {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s))
}
