package distance

import (
	"fmt"
	"math"
	"strings"

	"github.com/hupe1980/textcluster/vector"
)

// Cosine returns the cosine similarity between sample and centroid.
// The dot product only visits the sample's terms; the centroid norm spans the
// full vocabulary. Returns 0 if either vector has zero norm.
func Cosine(sample vector.Sparse, centroid vector.Dense) float64 {
	sn := sample.Norm()
	cn := centroid.Norm()
	if sn == 0 || cn == 0 {
		return 0
	}

	var dot float64
	for _, e := range sample {
		dot += float64(e.Count) * centroid[e.ID]
	}
	return dot / (sn * cn)
}

// Euclidean returns the Euclidean distance between sample and centroid,
// computed only over the sample's terms. Vocabulary terms absent from the
// sample contribute nothing, so this is a partial distance.
func Euclidean(sample vector.Sparse, centroid vector.Dense) float64 {
	var sum float64
	for _, e := range sample {
		diff := float64(e.Count) - centroid[e.ID]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

// Metric represents the scoring function used for assignment.
type Metric int

const (
	MetricCosine Metric = iota
	MetricEuclidean
)

func (m Metric) String() string {
	switch m {
	case MetricCosine:
		return "Cosine"
	case MetricEuclidean:
		return "Euclidean"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Direction returns the natural optimization direction of the metric.
func (m Metric) Direction() Direction {
	if m == MetricEuclidean {
		return Minimize
	}
	return Maximize
}

// Valid reports whether m is a supported metric.
func (m Metric) Valid() bool {
	return m == MetricCosine || m == MetricEuclidean
}

// ParseMetric parses a metric name (case-insensitive).
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cosine":
		return MetricCosine, nil
	case "euclidean", "euclidian", "l2":
		return MetricEuclidean, nil
	default:
		return 0, fmt.Errorf("unsupported metric: %q", s)
	}
}

// Direction tells whether higher or lower scores are better.
type Direction int

const (
	Maximize Direction = iota
	Minimize
)

func (d Direction) String() string {
	if d == Minimize {
		return "Minimize"
	}
	return "Maximize"
}

// Better reports whether candidate strictly beats best under d.
// Ties are never better, so the earliest candidate wins.
func Better(d Direction, candidate, best float64) bool {
	if d == Minimize {
		return candidate < best
	}
	return candidate > best
}

// Func scores a sparse sample against a dense centroid.
type Func func(sample vector.Sparse, centroid vector.Dense) float64

// Provider returns the scoring function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricCosine:
		return Cosine, nil
	case MetricEuclidean:
		return Euclidean, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
