package textcluster

import (
	"errors"
	"fmt"

	"github.com/hupe1980/textcluster/internal/kmeans"
)

var (
	// ErrEmptyCorpus is returned when no documents are supplied.
	ErrEmptyCorpus = errors.New("empty corpus")
	// ErrDegenerateK is returned when the corpus is too small for one cluster.
	ErrDegenerateK = errors.New("corpus too small: cluster count is zero")
	// ErrUnsatisfiableClusterCount is returned when every attempt left at least
	// one cluster empty.
	ErrUnsatisfiableClusterCount = errors.New("unsatisfiable cluster count")
	// ErrInvalidMetric is returned for an unsupported similarity metric.
	ErrInvalidMetric = errors.New("invalid metric")
	// ErrInvalidIterations is returned for a negative iteration budget.
	ErrInvalidIterations = errors.New("iterations must not be negative")
	// ErrInvalidMaxAttempts is returned for a non-positive attempt limit.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")
	// ErrUnboundedLegacyPolarity is returned when legacy Euclidean polarity is
	// combined with an iteration budget of zero. Farthest-centroid assignment
	// does not settle, so such a run would never finish.
	ErrUnboundedLegacyPolarity = errors.New("legacy euclidean polarity requires a positive iteration budget")
)

// ErrTooFewDocuments indicates that the derived cluster count is zero.
type ErrTooFewDocuments struct {
	Documents int
}

func (e *ErrTooFewDocuments) Error() string {
	return fmt.Sprintf("%d documents yield zero clusters", e.Documents)
}

func (e *ErrTooFewDocuments) Unwrap() error { return ErrDegenerateK }

// ErrUnsatisfiable reports the outcome of the last failed attempt.
//
// It matches ErrUnsatisfiableClusterCount and the engine error via errors.Is.
type ErrUnsatisfiable struct {
	K        int
	NonEmpty int
	Attempts int
	cause    error
}

func (e *ErrUnsatisfiable) Error() string {
	return fmt.Sprintf("unsatisfiable cluster count: %d of %d clusters non-empty after %d attempts", e.NonEmpty, e.K, e.Attempts)
}

func (e *ErrUnsatisfiable) Unwrap() []error {
	return []error{ErrUnsatisfiableClusterCount, e.cause}
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ue *kmeans.UnsatisfiableError
	if errors.As(err, &ue) {
		return &ErrUnsatisfiable{K: ue.K, NonEmpty: ue.NonEmpty, Attempts: ue.Attempts, cause: err}
	}
	if errors.Is(err, kmeans.ErrEmptyCorpus) {
		return fmt.Errorf("%w: %w", ErrEmptyCorpus, err)
	}
	if errors.Is(err, kmeans.ErrInvalidK) {
		return fmt.Errorf("%w: %w", ErrDegenerateK, err)
	}

	return err
}
