package kmeans

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/textcluster/distance"
	"github.com/hupe1980/textcluster/testutil"
	"github.com/hupe1980/textcluster/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// separable has two obvious groups: term "a" and term "b".
var separable = []string{"a a", "a", "b b", "b"}

type recorder struct {
	passes   []int
	attempts []int
}

func (r *recorder) OnPass(_, _, reassigned int) { r.passes = append(r.passes, reassigned) }
func (r *recorder) OnAttempt(_, _, nonEmpty int, _ bool) {
	r.attempts = append(r.attempts, nonEmpty)
}

func TestSeed(t *testing.T) {
	corpus := vector.Vectorize([]string{"a b", "c", "a a"})

	centroids, err := Seed(corpus, 2, testutil.NewSequence(2, 0))
	require.NoError(t, err)
	require.Len(t, centroids, 2)

	assert.Equal(t, vector.Dense{2, 0, 0}, centroids[0])
	assert.Equal(t, vector.Dense{1, 1, 0}, centroids[1])
}

func TestSeed_DenseOverVocabulary(t *testing.T) {
	corpus := vector.Vectorize(testutil.DemoCorpus())

	centroids, err := Seed(corpus, 4, testutil.NewRNG(7))
	require.NoError(t, err)
	for _, c := range centroids {
		assert.Len(t, c, corpus.Vocabulary.Len())
	}
}

func TestSeed_WithReplacement(t *testing.T) {
	corpus := vector.Vectorize([]string{"x", "y"})

	centroids, err := Seed(corpus, 2, testutil.NewSequence(1, 1))
	require.NoError(t, err)
	assert.Equal(t, centroids[0], centroids[1])
}

func TestSeed_Errors(t *testing.T) {
	_, err := Seed(vector.Vectorize(nil), 1, testutil.NewRNG(1))
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	_, err = Seed(vector.Vectorize([]string{"x"}), 0, testutil.NewRNG(1))
	assert.ErrorIs(t, err, ErrInvalidK)
}

func TestAssign_TiesKeepEarliest(t *testing.T) {
	corpus := vector.Vectorize(separable)
	centroids := []vector.Dense{{1, 0}, {1, 0}}
	assignment := []int{Unassigned, Unassigned, Unassigned, Unassigned}

	changed := Assign(corpus, centroids, distance.Cosine, distance.Maximize, assignment)

	assert.Equal(t, 4, changed)
	assert.Equal(t, []int{0, 0, 0, 0}, assignment)

	changed = Assign(corpus, centroids, distance.Cosine, distance.Maximize, assignment)
	assert.Zero(t, changed)
}

func TestAssign_EuclideanPolarity(t *testing.T) {
	corpus := vector.Vectorize([]string{"a a"})
	centroids := []vector.Dense{{2, 0}, {0, 2}}

	nearest := []int{Unassigned}
	Assign(corpus, centroids, distance.Euclidean, distance.Minimize, nearest)
	assert.Equal(t, []int{0}, nearest)

	farthest := []int{Unassigned}
	Assign(corpus, centroids, distance.Euclidean, distance.Maximize, farthest)
	assert.Equal(t, []int{1}, farthest)
}

func TestUpdate(t *testing.T) {
	corpus := vector.Vectorize([]string{"a b", "c", "a a"})
	centroids := []vector.Dense{{0, 0, 0}, {0, 0, 0}, {9, 9, 9}}

	Update(corpus, centroids, []int{0, 1, 0})

	assert.InDeltaSlice(t, []float64{1.5, 0.5, 0}, centroids[0], 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0, 1}, centroids[1], 1e-12)
	assert.Equal(t, vector.Dense{9, 9, 9}, centroids[2], "empty cluster must be left unchanged")
}

func TestLloyd_FixedBudget(t *testing.T) {
	corpus := vector.Vectorize(separable)
	centroids := []vector.Dense{{2, 0}, {0, 2}}

	var calls int
	assignment, passes, converged, err := Lloyd(context.Background(), corpus, centroids, distance.Cosine, distance.Maximize, 3, func(int, int) { calls++ })
	require.NoError(t, err)

	assert.Equal(t, 3, passes)
	assert.Equal(t, 3, calls)
	assert.True(t, converged)
	assert.Equal(t, []int{0, 0, 1, 1}, assignment)
}

func TestLloyd_Convergence(t *testing.T) {
	corpus := vector.Vectorize(separable)
	centroids := []vector.Dense{{2, 0}, {0, 2}}

	var reassigned []int
	assignment, passes, converged, err := Lloyd(context.Background(), corpus, centroids, distance.Cosine, distance.Maximize, 0, func(_, n int) {
		reassigned = append(reassigned, n)
	})
	require.NoError(t, err)

	assert.Equal(t, 2, passes)
	assert.True(t, converged)
	assert.Equal(t, []int{4, 0}, reassigned)
	assert.Equal(t, []int{0, 0, 1, 1}, assignment)
	assert.InDeltaSlice(t, []float64{1.5, 0}, centroids[0], 1e-12)
	assert.InDeltaSlice(t, []float64{0, 1.5}, centroids[1], 1e-12)
}

func TestLloyd_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	corpus := vector.Vectorize(separable)
	_, _, _, err := Lloyd(ctx, corpus, []vector.Dense{{1, 0}}, distance.Cosine, distance.Maximize, 0, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNonEmpty(t *testing.T) {
	assert.Equal(t, 2, NonEmpty([]int{0, 2, 2, 0}, 3))
	assert.Equal(t, 0, NonEmpty([]int{Unassigned}, 2))
	assert.Equal(t, 0, NonEmpty(nil, 2))
}

func TestTrain_RepairsDegeneratePartition(t *testing.T) {
	rec := &recorder{}
	model, err := Train(context.Background(), separable, Config{
		K:          2,
		Iterations: 1,
		Metric:     distance.MetricCosine,
		Direction:  distance.Maximize,
		// First attempt seeds both centroids from "a a"; the second from "a a" and "b b".
		Rand:     testutil.NewSequence(0, 0, 0, 2),
		Observer: rec,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, model.Attempts)
	assert.Equal(t, []int{1, 2}, rec.attempts)
	assert.Equal(t, []int{0, 0, 1, 1}, model.Assignment)

	c, ok := model.Cluster("b b")
	assert.True(t, ok)
	assert.Equal(t, 1, c)
	_, ok = model.Cluster("zzz")
	assert.False(t, ok)
}

func TestTrain_Unsatisfiable(t *testing.T) {
	rec := &recorder{}
	_, err := Train(context.Background(), []string{"same", "same"}, Config{
		K:           2,
		Iterations:  0,
		Metric:      distance.MetricCosine,
		MaxAttempts: 5,
		Rand:        testutil.NewRNG(1),
		Observer:    rec,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsatisfiable)

	var ue *UnsatisfiableError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, 5, ue.Attempts)
	assert.Equal(t, 1, ue.NonEmpty)
	assert.Equal(t, 2, ue.K)
	assert.Len(t, rec.attempts, 5)
}

func TestTrain_DemoCorpus(t *testing.T) {
	docs := testutil.DemoCorpus()

	for _, metric := range []distance.Metric{distance.MetricCosine, distance.MetricEuclidean} {
		t.Run(metric.String(), func(t *testing.T) {
			model, err := Train(context.Background(), docs, Config{
				K:          2,
				Iterations: 10,
				Metric:     metric,
				Direction:  metric.Direction(),
				Rand:       testutil.NewRNG(42),
			})
			require.NoError(t, err)

			assert.Equal(t, len(docs), model.Corpus.Len())
			for _, c := range model.Assignment {
				assert.GreaterOrEqual(t, c, 0)
				assert.Less(t, c, 2)
			}
			assert.Equal(t, 2, NonEmpty(model.Assignment, 2))
			assert.Equal(t, 10, model.Passes)
			for _, c := range model.Centroids {
				assert.Len(t, c, model.Corpus.Vocabulary.Len())
			}
		})
	}
}

func TestTrain_InvalidInput(t *testing.T) {
	ctx := context.Background()

	_, err := Train(ctx, nil, Config{K: 1})
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	_, err = Train(ctx, []string{"x"}, Config{K: 0})
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = Train(ctx, []string{"x"}, Config{K: 1, Metric: distance.Metric(999)})
	assert.Error(t, err)
}

func TestTrain_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Train(ctx, separable, Config{K: 2, Rand: testutil.NewRNG(1)})
	assert.ErrorIs(t, err, context.Canceled)
}
