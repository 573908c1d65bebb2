package alfpy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/anorak94/alfpy/distance"
	"github.com/anorak94/alfpy/pairwise"
	"github.com/anorak94/alfpy/resource"
	"github.com/anorak94/alfpy/seqrecords"
	"github.com/anorak94/alfpy/testutil"
	"github.com/anorak94/alfpy/wordvector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceRecords(t *testing.T) *seqrecords.Records {
	t.Helper()
	ref := testutil.Reference()
	r, err := seqrecords.New(ref.IDs, ref.Seqs)
	require.NoError(t, err)
	return r
}

// matrix3 renders the reference matrix from its three off-diagonal cells.
func matrix3(d12, d13, d23 string) string {
	return "   3\n" +
		fmt.Sprintf("%-10s 0.0000000 %s %s\n", "seq1", d12, d13) +
		fmt.Sprintf("%-10s %s 0.0000000 %s\n", "seq2", d12, d23) +
		fmt.Sprintf("%-10s %s %s 0.0000000\n", "seq3", d13, d23)
}

func TestComputeReference(t *testing.T) {
	tests := []struct {
		metric string
		kind   wordvector.Kind
		want   string
	}{
		{distance.EuclidSquared, wordvector.Counts, matrix3("57.0000000", "30.0000000", "19.0000000")},
		{distance.EuclidSquared, wordvector.Freqs, matrix3("0.1416402", "0.0641298", "0.0677565")},
		{distance.EuclidNorm, wordvector.Counts, matrix3("7.5498344", "5.4772256", "4.3588989")},
		{distance.EuclidNorm, wordvector.Freqs, matrix3("0.3763512", "0.2532387", "0.2603008")},
		{distance.AngleCosDiss, wordvector.Counts, matrix3("0.2797355", "0.1500672", "0.1261027")},
		{distance.AngleCosDiss, wordvector.Freqs, matrix3("0.2797355", "0.1500672", "0.1261027")},
		{distance.AngleCosEvol, wordvector.Counts, matrix3("0.3281368", "0.1625980", "0.1347925")},
		{distance.AngleCosEvol, wordvector.Freqs, matrix3("0.3281368", "0.1625980", "0.1347925")},
		{distance.Google, wordvector.Counts, matrix3("0.5609756", "0.4210526", "0.4193548")},
		{distance.Google, wordvector.Freqs, matrix3("0.6078431", "0.3809524", "0.3949580")},
		{distance.DiffAbsAdd, wordvector.Counts, matrix3("1.5333333", "1.0666667", "0.8666667")},
		{distance.DiffAbsAdd, wordvector.Freqs, matrix3("0.0810458", "0.0507937", "0.0526611")},
		{distance.EuclidSeqLen1, wordvector.Counts, matrix3("2.6511628", "1.5000000", "1.1515152")},
		{distance.EuclidSeqLen1, wordvector.Freqs, matrix3("0.0065879", "0.0032065", "0.0041065")},
		{distance.EuclidSeqLen2, wordvector.Freqs, matrix3("0.0072101", "0.0038263", "0.0039866")},
		{distance.DiffAbsMult1, wordvector.Freqs, matrix3("0.0621975", "0.0501075", "0.0955847")},
		{distance.DiffAbsMult2, wordvector.Freqs, matrix3("0.0621975", "0.0404611", "0.0531478")},
	}

	calc := New()
	records := referenceRecords(t)
	for _, tt := range tests {
		t.Run(tt.metric+"/"+tt.kind.String(), func(t *testing.T) {
			m, err := calc.Compute(context.Background(), Request{
				Records:  records,
				WordSize: 2,
				Vector:   tt.kind,
				Metric:   tt.metric,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Format())
		})
	}
}

func TestComputeErrors(t *testing.T) {
	ctx := context.Background()
	calc := New()
	records := referenceRecords(t)

	t.Run("EmptyInput", func(t *testing.T) {
		_, err := calc.Compute(ctx, Request{Metric: distance.Google})
		assert.ErrorIs(t, err, ErrEmptyInput)
		_, err = calc.Compute(ctx, Request{Records: &seqrecords.Records{}, Metric: distance.Google})
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("UnknownMetric", func(t *testing.T) {
		_, err := calc.Compute(ctx, Request{Records: records, Metric: "hamming"})
		assert.ErrorIs(t, err, ErrUnknownMetric)
		var um *distance.ErrUnknownMetric
		require.ErrorAs(t, err, &um)
		assert.Equal(t, "hamming", um.Name)
	})

	t.Run("InvalidMinkowskiP", func(t *testing.T) {
		_, err := calc.Compute(ctx, Request{
			Records:       records,
			Metric:        distance.Minkowski,
			MetricOptions: []distance.Option{distance.WithP(0.2)},
		})
		assert.ErrorIs(t, err, ErrInvalidParameter)
		assert.Contains(t, err.Error(), "p must be at least 1")
	})

	t.Run("InvalidWordSize", func(t *testing.T) {
		for _, k := range []int{0, -1} {
			_, err := calc.Compute(ctx, Request{Records: records, WordSize: k, Metric: distance.Google})
			assert.ErrorIs(t, err, ErrInvalidParameter, "k=%d", k)
		}
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := calc.Compute(ctx, Request{Records: records, WordSize: 2, Vector: wordvector.Kind(9), Metric: distance.Google})
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("Canceled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := calc.Compute(cctx, Request{Records: records, Metric: distance.Google})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestComputeMemoryBudget(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 64})
	_, err := New(WithResourceController(rc)).Compute(context.Background(), Request{
		Records:  referenceRecords(t),
		WordSize: 2,
		Metric:   distance.Google,
	})
	assert.ErrorIs(t, err, ErrMemoryBudget)
	assert.Equal(t, int64(0), rc.MemoryUsage())
}

func TestComputeReleasesMemory(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 20, MaxWorkers: 2})
	calc := New(WithResourceController(rc), WithWorkers(2))

	_, err := calc.Compute(context.Background(), Request{
		Records:  referenceRecords(t),
		WordSize: 2,
		Metric:   distance.JSD,
		Vector:   wordvector.Freqs,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), rc.MemoryUsage())
}

func TestComputeSparseModesAgree(t *testing.T) {
	rng := testutil.NewRNG(99)
	seqs := rng.Sequences(25, 10, 60, testutil.Protein)
	ids := make([]string, len(seqs))
	for i := range ids {
		ids[i] = fmt.Sprintf("p%02d", i)
	}
	records, err := seqrecords.New(ids, seqs)
	require.NoError(t, err)

	for _, name := range distance.Names() {
		t.Run(name, func(t *testing.T) {
			req := Request{Records: records, WordSize: 3, Vector: wordvector.Freqs, Metric: name}

			dense, err := New(WithSparse(pairwise.SparseOff), WithWorkers(1)).Compute(context.Background(), req)
			require.NoError(t, err)
			sparse, err := New(WithSparse(pairwise.SparseOn), WithWorkers(4)).Compute(context.Background(), req)
			require.NoError(t, err)

			assert.Equal(t, dense.Format(), sparse.Format())
		})
	}
}

func TestComputeMetrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	calc := New(WithMetricsCollector(metrics))
	records := referenceRecords(t)

	_, err := calc.Compute(context.Background(), Request{Records: records, WordSize: 2, Metric: distance.Google})
	require.NoError(t, err)
	_, err = calc.Compute(context.Background(), Request{Records: records, WordSize: -3, Metric: distance.Google})
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.PatternCount)
	assert.Equal(t, int64(1), stats.PatternErrors)
	assert.Equal(t, int64(1), stats.VectorCount)
	assert.Equal(t, int64(1), stats.MatrixCount)
	assert.Equal(t, int64(3), stats.MatrixCells)
	assert.Equal(t, int64(0), stats.MatrixErrors)
	assert.Positive(t, stats.PatternWords)
}

func TestComputeLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	calc := New(WithLogger(logger))

	_, err := calc.Compute(context.Background(), Request{Records: referenceRecords(t), WordSize: 2, Metric: distance.Canberra})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "compute completed")
	assert.Contains(t, out, "metric=canberra")
	assert.Contains(t, out, "k=2")
	assert.Contains(t, out, "word pattern completed")
	assert.Contains(t, out, "pairwise build started")

	buf.Reset()
	_, err = calc.Compute(context.Background(), Request{Records: referenceRecords(t), Metric: "nope"})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "compute failed")
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	other := errors.New("other")
	assert.Equal(t, other, translateError(other))

	err := translateError(&distance.ErrDimensionMismatch{Expected: 4, Actual: 3})
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 4, dm.Expected)
	assert.Equal(t, 3, dm.Actual)
	var inner *distance.ErrDimensionMismatch
	assert.ErrorAs(t, err, &inner)

	assert.ErrorIs(t, translateError(resource.ErrMemoryBudget), ErrMemoryBudget)
	assert.ErrorIs(t, translateError(pairwise.ErrIDCount), ErrInvalidParameter)
	assert.ErrorIs(t, translateError(&wordvector.ErrLengthMismatch{Sequences: 2, Lengths: 1}), ErrInvalidParameter)
}

func TestEstimateBytes(t *testing.T) {
	assert.Equal(t, int64(3*10*8+3*3*8), EstimateBytes(3, 10))
}
