package kmeans

import (
	"github.com/hupe1980/textcluster/vector"
)

// RandSource is the random source used for centroid seeding.
type RandSource interface {
	// Intn returns a pseudo-random number in [0,n).
	Intn(n int) int
}

// Seed returns k dense centroids, each a copy of a document vector drawn
// uniformly with replacement. Two centroids may therefore be identical.
func Seed(corpus *vector.Corpus, k int, rng RandSource) ([]vector.Dense, error) {
	n := corpus.Len()
	if n == 0 {
		return nil, ErrEmptyCorpus
	}
	if k < 1 {
		return nil, ErrInvalidK
	}

	dim := corpus.Vocabulary.Len()
	centroids := make([]vector.Dense, k)
	for i := range k {
		centroids[i] = vector.NewDense(dim)
	}

	samples := make([]int, k)
	for i := range k {
		samples[i] = rng.Intn(n)
	}

	for i, idx := range samples {
		centroids[i].AddSparse(corpus.Vectors[idx])
	}

	return centroids, nil
}
