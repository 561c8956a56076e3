package kmeans

import (
	"context"
	"math/rand/v2"

	"github.com/hupe1980/textcluster/distance"
	"github.com/hupe1980/textcluster/vector"
)

// Unassigned marks a document that has not been through an assignment pass.
const Unassigned = -1

// DefaultMaxAttempts bounds the degenerate-cluster retry loop when
// Config.MaxAttempts is zero.
const DefaultMaxAttempts = 100

// Observer receives progress callbacks. All methods are optional no-ops when
// Config.Observer is nil.
type Observer interface {
	OnPass(attempt, pass, reassigned int)
	OnAttempt(attempt, passes, nonEmpty int, converged bool)
}

// Config controls a training run.
type Config struct {
	// K is the number of clusters.
	K int
	// Iterations is the pass budget. Zero runs until no document is reassigned.
	Iterations int
	Metric     distance.Metric
	Direction  distance.Direction
	// MaxAttempts bounds the restarts after a degenerate partition.
	MaxAttempts int
	Rand        RandSource
	Observer    Observer
}

// Model is the accepted partition of a training run.
type Model struct {
	Corpus *vector.Corpus
	// Assignment is parallel to Corpus.Documents.
	Assignment []int
	Centroids  []vector.Dense
	K          int
	Attempts   int
	// Passes is the number of passes of the accepted attempt.
	Passes    int
	Converged bool
}

// Cluster returns the cluster of a normalized document.
func (m *Model) Cluster(doc string) (int, bool) {
	i, ok := m.Corpus.Index(doc)
	if !ok {
		return Unassigned, false
	}
	return m.Assignment[i], true
}

// Train clusters docs into cfg.K groups. Each attempt rebuilds the corpus,
// reseeds the centroids and runs Lloyd passes. An attempt that leaves a
// cluster empty is discarded; after MaxAttempts such attempts Train returns an
// *UnsatisfiableError.
func Train(ctx context.Context, docs []string, cfg Config) (*Model, error) {
	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}
	if cfg.K < 1 {
		return nil, ErrInvalidK
	}

	score, err := distance.Provider(cfg.Metric)
	if err != nil {
		return nil, err
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	rng := cfg.Rand
	if rng == nil {
		rng = globalRand{}
	}

	var nonEmpty int
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		corpus := vector.Vectorize(docs)

		centroids, err := Seed(corpus, cfg.K, rng)
		if err != nil {
			return nil, err
		}

		onPass := func(pass, reassigned int) {
			if cfg.Observer != nil {
				cfg.Observer.OnPass(attempt, pass, reassigned)
			}
		}

		assignment, passes, converged, err := Lloyd(ctx, corpus, centroids, score, cfg.Direction, cfg.Iterations, onPass)
		if err != nil {
			return nil, err
		}

		nonEmpty = NonEmpty(assignment, cfg.K)
		if cfg.Observer != nil {
			cfg.Observer.OnAttempt(attempt, passes, nonEmpty, converged)
		}
		if nonEmpty < cfg.K {
			continue
		}

		return &Model{
			Corpus:     corpus,
			Assignment: assignment,
			Centroids:  centroids,
			K:          cfg.K,
			Attempts:   attempt,
			Passes:     passes,
			Converged:  converged,
		}, nil
	}

	return nil, &UnsatisfiableError{K: cfg.K, NonEmpty: nonEmpty, Attempts: maxAttempts}
}

// Lloyd runs assignment/update passes on centroids in place.
//
// With iterations > 0 exactly that many passes run regardless of convergence.
// With iterations == 0 passes run until one reassigns no document. converged
// reports whether the final pass reassigned nothing.
func Lloyd(ctx context.Context, corpus *vector.Corpus, centroids []vector.Dense, score distance.Func, dir distance.Direction, iterations int, onPass func(pass, reassigned int)) ([]int, int, bool, error) {
	assignment := make([]int, corpus.Len())
	for i := range assignment {
		assignment[i] = Unassigned
	}

	passes := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, passes, false, err
		}

		changed := Assign(corpus, centroids, score, dir, assignment)
		Update(corpus, centroids, assignment)
		passes++

		if onPass != nil {
			onPass(passes, changed)
		}

		if iterations > 0 {
			if passes >= iterations {
				return assignment, passes, changed == 0, nil
			}
			continue
		}
		if changed == 0 {
			return assignment, passes, true, nil
		}
	}
}

// Assign moves every document to its best-scoring centroid and returns the
// number of documents whose cluster changed. Only a strictly better score
// replaces the running best, so ties keep the lowest centroid index.
func Assign(corpus *vector.Corpus, centroids []vector.Dense, score distance.Func, dir distance.Direction, assignment []int) int {
	changed := 0
	for i, vec := range corpus.Vectors {
		best := 0
		bestScore := score(vec, centroids[0])
		for j := 1; j < len(centroids); j++ {
			s := score(vec, centroids[j])
			if distance.Better(dir, s, bestScore) {
				best = j
				bestScore = s
			}
		}

		if assignment[i] != best {
			assignment[i] = best
			changed++
		}
	}
	return changed
}

// Update recomputes every centroid as the mean of its members over the full
// vocabulary. Centroids without members keep their previous values.
func Update(corpus *vector.Corpus, centroids []vector.Dense, assignment []int) {
	k := len(centroids)
	dim := corpus.Vocabulary.Len()

	counts := make([]int, k)
	sums := make([]vector.Dense, k)
	for i, cluster := range assignment {
		if cluster < 0 {
			continue
		}
		if sums[cluster] == nil {
			sums[cluster] = vector.NewDense(dim)
		}
		sums[cluster].AddSparse(corpus.Vectors[i])
		counts[cluster]++
	}

	for j := range k {
		if counts[j] == 0 {
			continue
		}
		scale := 1.0 / float64(counts[j])
		for d := range dim {
			centroids[j][d] = sums[j][d] * scale
		}
	}
}

// NonEmpty returns the number of cluster indices in [0,k) with at least one
// member.
func NonEmpty(assignment []int, k int) int {
	seen := make([]bool, k)
	count := 0
	for _, c := range assignment {
		if c < 0 || c >= k || seen[c] {
			continue
		}
		seen[c] = true
		count++
	}
	return count
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.IntN(n) }
