package alfpy

import (
	"errors"
	"fmt"

	"github.com/anorak94/alfpy/distance"
	"github.com/anorak94/alfpy/pairwise"
	"github.com/anorak94/alfpy/resource"
	"github.com/anorak94/alfpy/seqrecords"
	"github.com/anorak94/alfpy/wordpattern"
	"github.com/anorak94/alfpy/wordvector"
)

var (
	// ErrEmptyInput is returned when a request carries no sequences.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidParameter is returned for an out-of-range word size, vector
	// kind, sequence length or metric parameter.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnknownMetric is returned when the metric name is not registered.
	ErrUnknownMetric = errors.New("unknown metric")

	// ErrMemoryBudget is returned when the vectors and matrix of a request do
	// not fit the resource controller's memory limit.
	ErrMemoryBudget = errors.New("memory budget exceeded")
)

// ErrDimensionMismatch indicates vectors of different lengths.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Empty input unification.
	if errors.Is(err, wordpattern.ErrNoSequences) ||
		errors.Is(err, pairwise.ErrNoVectors) ||
		errors.Is(err, seqrecords.ErrEmpty) {
		return fmt.Errorf("%w: %w", ErrEmptyInput, err)
	}

	var um *distance.ErrUnknownMetric
	if errors.As(err, &um) {
		return fmt.Errorf("%w: %w", ErrUnknownMetric, err)
	}

	// Argument normalization.
	var ip *distance.ErrInvalidParameter
	if errors.As(err, &ip) {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	var lm *wordvector.ErrLengthMismatch
	if errors.As(err, &lm) {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	if errors.Is(err, wordpattern.ErrInvalidWordSize) ||
		errors.Is(err, wordvector.ErrUnknownKind) ||
		errors.Is(err, wordvector.ErrInvalidLength) ||
		errors.Is(err, pairwise.ErrIDCount) {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	var dm *distance.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}

	if errors.Is(err, resource.ErrMemoryBudget) {
		return fmt.Errorf("%w: %w", ErrMemoryBudget, err)
	}

	return err
}
