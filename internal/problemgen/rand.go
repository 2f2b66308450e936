package problemgen

import "math/rand/v2"

// Rand is the randomness a generator draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewSeededRand returns a deterministic source for reproducible problems.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// globalRand draws from the process-wide math/rand/v2 source, which is
// safe for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int                     { return rand.IntN(n) }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// between returns a uniform integer in [lo, hi].
func between(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// pick returns a uniformly chosen element of items.
func pick[T any](r Rand, items []T) T {
	return items[r.IntN(len(items))]
}

// sign returns +1 or -1 with equal probability.
func sign(r Rand) int {
	if r.IntN(2) == 0 {
		return 1
	}
	return -1
}

// pow10 returns 10^n for small non-negative n.
func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
