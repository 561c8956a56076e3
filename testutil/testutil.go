package testutil

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/hupe1980/textcluster/internal/demo"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// TopicCorpus generates num documents of wordsPerDoc tokens, each drawn from a
// single randomly chosen topic.
func (r *RNG) TopicCorpus(topics [][]string, num, wordsPerDoc int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs := make([]string, num)
	words := make([]string, wordsPerDoc)
	for i := range num {
		topic := topics[r.rand.Intn(len(topics))]
		for j := range words {
			words[j] = topic[r.rand.Intn(len(topic))]
		}
		docs[i] = strings.Join(words, " ")
	}
	return docs
}

// Sequence replays a fixed list of draws, cycling when exhausted.
// Draws are reduced modulo n. It is thread-safe.
type Sequence struct {
	mu    sync.Mutex
	draws []int
	pos   int
	calls int
}

// NewSequence creates a Sequence over the given draws.
func NewSequence(draws ...int) *Sequence {
	if len(draws) == 0 {
		draws = []int{0}
	}
	return &Sequence{draws: draws}
}

// Intn returns the next scripted draw modulo n.
func (s *Sequence) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.draws[s.pos] % n
	s.pos = (s.pos + 1) % len(s.draws)
	s.calls++
	return v
}

// Calls returns how many draws have been made.
func (s *Sequence) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// DemoCorpus returns the eleven-summary corpus used throughout the docs.
func DemoCorpus() []string {
	return demo.Corpus()
}

// Topics is a small set of disjoint vocabularies for TopicCorpus.
var Topics = [][]string{
	{"software", "computer", "programming", "development", "application"},
	{"health", "medical", "doctor", "hospital", "treatment"},
	{"finance", "money", "investment", "market", "profit"},
}
