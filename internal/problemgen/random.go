package problemgen

import (
	"math/rand/v2"
	"sync"
)

// Source supplies the uniform draws used by every generator.
// Production code uses NewRandomSource; tests pass a seeded source from
// NewSource so that generated quizzes are reproducible.
type Source interface {
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int

	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// pcgSource is a mutex-guarded PCG generator. One Engine is shared by the
// HTTP server and the Telegram bot, so draws must be serialized.
type pcgSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSource returns a deterministic Source for the given seed.
func NewSource(seed uint64) Source {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomSource returns a Source seeded from the runtime's entropy.
func NewRandomSource() Source {
	return &pcgSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (s *pcgSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

func (s *pcgSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// Shuffle permutes xs in place (Fisher-Yates). Every permutation is
// equally likely given a uniform src.
func Shuffle[T any](src Source, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// pick returns a uniformly chosen element of xs, which must be non-empty.
func pick[T any](src Source, xs []T) T {
	return xs[src.IntN(len(xs))]
}

// sample draws k distinct elements of xs without replacement using a
// partial Fisher-Yates pass over a copy. xs is left untouched.
func sample[T any](src Source, xs []T, k int) []T {
	pool := make([]T, len(xs))
	copy(pool, xs)
	if k > len(pool) {
		k = len(pool)
	}
	for i := 0; i < k; i++ {
		j := i + src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
