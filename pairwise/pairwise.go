package pairwise

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/anorak94/alfpy/distance"
	"github.com/anorak94/alfpy/distmatrix"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNoVectors is returned when the source is empty.
	ErrNoVectors = errors.New("no vectors")

	// ErrIDCount is returned when the number of identifiers differs from
	// the number of vectors.
	ErrIDCount = errors.New("identifier count does not match vector count")
)

// Source provides the vectors to compare.
type Source interface {
	Len() int
	Row(i int) []float64
	SeqLength(i int) int
}

// SparseSource is a Source that knows the non-zero columns of every row.
type SparseSource interface {
	Source
	Presence(i int) *roaring.Bitmap
	Density() float64
}

// Dense is a Source over plain rows.
type Dense struct {
	Rows    [][]float64
	Lengths []int
}

func (d Dense) Len() int            { return len(d.Rows) }
func (d Dense) Row(i int) []float64 { return d.Rows[i] }

// SeqLength returns Lengths[i], or 0 when no lengths were given.
func (d Dense) SeqLength(i int) int {
	if i < len(d.Lengths) {
		return d.Lengths[i]
	}
	return 0
}

// Build evaluates fn on every pair i<j of src.
func Build(ctx context.Context, ids []string, src Source, fn distance.Func, optFns ...Option) (*distmatrix.Matrix, error) {
	o := applyOptions(optFns)

	n := src.Len()
	if n == 0 {
		return nil, ErrNoVectors
	}
	if len(ids) != n {
		return nil, fmt.Errorf("%w: %d ids, %d vectors", ErrIDCount, len(ids), n)
	}
	dim := len(src.Row(0))
	for i := 1; i < n; i++ {
		if d := len(src.Row(i)); d != dim {
			return nil, &distance.ErrDimensionMismatch{Expected: dim, Actual: d}
		}
	}

	sparse, useSparse := src.(SparseSource)
	switch o.sparse {
	case SparseOff:
		useSparse = false
	case SparseAuto:
		useSparse = useSparse && sparse.Density() < o.threshold
	}

	o.logger.DebugContext(ctx, "pairwise build started",
		"sequences", n,
		"dimension", dim,
		"workers", o.workers,
		"sparse", useSparse,
	)

	data := make([]float64, n*n)
	total := int64(n) * int64(n-1) / 2
	var done atomic.Int64
	progress := rate.Sometimes{Interval: time.Second}

	row := func(i int) {
		a := src.Row(i)
		for j := i + 1; j < n; j++ {
			p := distance.Pair{
				A:    a,
				B:    src.Row(j),
				LenA: src.SeqLength(i),
				LenB: src.SeqLength(j),
			}
			if useSparse {
				p.Support = roaring.Or(sparse.Presence(i), sparse.Presence(j)).ToArray()
			}
			data[i*n+j] = fn(p)
		}

		cells := done.Add(int64(n - 1 - i))
		progress.Do(func() {
			o.logger.DebugContext(ctx, "pairwise progress", "cells", cells, "total", total)
		})
	}

	if err := run(ctx, n, o, row); err != nil {
		return nil, err
	}

	return distmatrix.New(ids, mat.NewSymDense(n, data))
}

// run calls row for 0 <= i < n-1 on up to o.workers goroutines.
func run(ctx context.Context, n int, o options, row func(i int)) error {
	if o.workers == 1 && o.controller == nil {
		for i := 0; i < n-1; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			row(i)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := 0; i < n-1; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if o.controller != nil {
				if err := o.controller.AcquireWorker(gctx); err != nil {
					return err
				}
				defer o.controller.ReleaseWorker()
			}
			row(i)
			return nil
		})
	}
	return g.Wait()
}
