package alfpy

import (
	"context"
	"time"

	"github.com/anorak94/alfpy/distance"
	"github.com/anorak94/alfpy/distmatrix"
	"github.com/anorak94/alfpy/pairwise"
	"github.com/anorak94/alfpy/seqrecords"
	"github.com/anorak94/alfpy/wordpattern"
	"github.com/anorak94/alfpy/wordvector"
)

// DefaultWordSize is the word length the calcword command uses when -k is
// not given.
const DefaultWordSize = 2

// Request describes one distance matrix computation.
type Request struct {
	// Records are the sequences to compare.
	Records *seqrecords.Records

	// WordSize is the word length k. Values below 1 fail with
	// ErrInvalidParameter.
	WordSize int

	// Vector selects raw counts or length-normalised frequencies.
	Vector wordvector.Kind

	// Metric is a registered distance name (see distance.Names).
	Metric string

	// MetricOptions parameterise the metric, e.g. distance.WithP.
	MetricOptions []distance.Option
}

// Calculator turns sequences into distance matrices.
// It is safe for concurrent use.
type Calculator struct {
	opts options
}

// New creates a Calculator.
func New(optFns ...Option) *Calculator {
	return &Calculator{opts: applyOptions(optFns)}
}

// Compute builds the distance matrix for req.
//
// Errors are unified under ErrEmptyInput, ErrInvalidParameter,
// ErrUnknownMetric, ErrMemoryBudget and *ErrDimensionMismatch; the
// originating package error stays reachable through errors.As.
func (c *Calculator) Compute(ctx context.Context, req Request) (m *distmatrix.Matrix, err error) {
	start := time.Now()
	n := 0
	if req.Records != nil {
		n = req.Records.Len()
	}

	k := req.WordSize
	logger := c.opts.logger.WithMetric(req.Metric).WithWordSize(k)

	defer func() {
		err = translateError(err)
		logger.LogCompute(ctx, n, time.Since(start), err)
	}()

	if n == 0 {
		return nil, ErrEmptyInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Resolve the metric first so a bad name fails before any allocation.
	fn, err := distance.Lookup(req.Metric, req.MetricOptions...)
	if err != nil {
		return nil, err
	}

	t := time.Now()
	pattern, err := wordpattern.Create(req.Records.Seqs, k)
	words := 0
	if err == nil {
		words = pattern.Dim()
	}
	c.opts.metricsCollector.RecordPattern(words, time.Since(t), err)
	if err != nil {
		return nil, err
	}
	logger.LogStage(ctx, "word pattern", time.Since(t), "words", words)

	release, err := c.opts.controller.Reserve(EstimateBytes(n, words))
	if err != nil {
		return nil, err
	}
	defer release()

	t = time.Now()
	vectors, err := wordvector.New(req.Vector, req.Records.Lengths, pattern)
	c.opts.metricsCollector.RecordVectors(n, words, time.Since(t), err)
	if err != nil {
		return nil, err
	}
	logger.LogStage(ctx, "word vectors", time.Since(t), "kind", vectors.Kind(), "density", vectors.Density())

	t = time.Now()
	m, err = pairwise.Build(ctx, req.Records.IDs, vectors, fn,
		pairwise.WithWorkers(c.opts.workers),
		pairwise.WithSparse(c.opts.sparse),
		pairwise.WithResourceController(c.opts.controller),
		pairwise.WithLogger(logger.Logger),
	)
	c.opts.metricsCollector.RecordMatrix(n, time.Since(t), err)
	if err != nil {
		return nil, err
	}
	logger.LogStage(ctx, "distance matrix", time.Since(t))

	return m, nil
}

// EstimateBytes returns the memory Compute reserves for n sequences over d
// distinct words: the vector table plus the n×n matrix.
func EstimateBytes(n, d int) int64 {
	return wordvector.EstimateBytes(n, d) + int64(n)*int64(n)*8
}
