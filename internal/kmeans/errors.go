package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCorpus is returned when there is nothing to cluster.
	ErrEmptyCorpus = errors.New("kmeans: empty corpus")
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("kmeans: k must be positive")
	// ErrUnsatisfiable is returned when no attempt produced k non-empty clusters.
	ErrUnsatisfiable = errors.New("kmeans: cluster count not satisfiable")
)

// UnsatisfiableError carries the state of the last failed attempt.
type UnsatisfiableError struct {
	K        int
	NonEmpty int
	Attempts int
}

func (e *UnsatisfiableError) Error() string {
	return fmt.Sprintf("kmeans: %d of %d clusters non-empty after %d attempts", e.NonEmpty, e.K, e.Attempts)
}

func (e *UnsatisfiableError) Unwrap() error { return ErrUnsatisfiable }
