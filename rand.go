package textcluster

import (
	"math/rand/v2"
	"sync"
)

// NewRandSource returns a RandSource seeded with seed, for reproducible runs.
// It is safe for concurrent use.
func NewRandSource(seed uint64) RandSource {
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed))}
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}
