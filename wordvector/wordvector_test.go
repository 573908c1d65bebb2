package wordvector

import (
	"testing"

	"github.com/anorak94/alfpy/testutil"
	"github.com/anorak94/alfpy/wordpattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referencePattern(t *testing.T) (testutil.Dataset, *wordpattern.Pattern) {
	t.Helper()
	ref := testutil.Reference()
	p, err := wordpattern.Create(ref.Seqs, 2)
	require.NoError(t, err)
	return ref, p
}

func TestCounts(t *testing.T) {
	ref, p := referencePattern(t)

	v, err := NewCounts(ref.Lengths(), p)
	require.NoError(t, err)

	assert.Equal(t, Counts, v.Kind())
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 15, v.Dim())
	assert.Equal(t, []float64{2, 4, 3, 3, 3, 2, 1, 1, 1, 1, 1, 1, 1, 0, 0}, v.Row(0))
	assert.Equal(t, []float64{0, 1, 0, 0, 3, 0, 0, 1, 1, 0, 1, 2, 4, 3, 1}, v.Row(1))
	assert.Equal(t, 18, v.SeqLength(1))
}

func TestFreqs(t *testing.T) {
	ref, p := referencePattern(t)

	v, err := NewFreqs(ref.Lengths(), p)
	require.NoError(t, err)

	assert.InDelta(t, 4.0/24, v.Row(0)[1], 1e-15)
	assert.InDelta(t, 4.0/17, v.Row(1)[12], 1e-15)
	for i := range v.Len() {
		sum := 0.0
		for _, x := range v.Row(i) {
			sum += x
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "row %d", i)
	}
}

func TestFreqsWithoutWindows(t *testing.T) {
	seqs := []string{"A", "", "ACGT"}
	p, err := wordpattern.Create(seqs, 3)
	require.NoError(t, err)

	v, err := NewFreqs([]int{1, 0, 4}, p)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0}, v.Row(0))
	assert.Equal(t, []float64{0, 0}, v.Row(1))
	assert.Equal(t, []float64{0.5, 0.5}, v.Row(2))
}

func TestFreqsShortLengthClearsCounts(t *testing.T) {
	p, err := wordpattern.Create([]string{"ACGT", "AC"}, 2)
	require.NoError(t, err)

	// The caller-supplied length leaves no 2-windows for the second
	// sequence even though the pattern counted "AC" for it.
	v, err := NewFreqs([]int{4, 1}, p)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0, 0}, v.Row(1))
	assert.InDelta(t, 1.0/3, v.Row(0)[0], 1e-15)

	counts, err := NewCounts([]int{4, 1}, p)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0}, counts.Row(1))
}

func TestNewErrors(t *testing.T) {
	_, p := referencePattern(t)

	_, err := NewCounts([]int{25, 18}, p)
	var lm *ErrLengthMismatch
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, 3, lm.Sequences)
	assert.Equal(t, 2, lm.Lengths)

	_, err = NewFreqs([]int{25, -1, 15}, p)
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = New(Kind(7), []int{25, 18, 15}, p)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("counts")
	require.NoError(t, err)
	assert.Equal(t, Counts, k)

	k, err = ParseKind("freqs")
	require.NoError(t, err)
	assert.Equal(t, Freqs, k)
	assert.Equal(t, "freqs", k.String())

	_, err = ParseKind("tfidf")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDensityAndPresence(t *testing.T) {
	ref, p := referencePattern(t)

	v, err := NewCounts(ref.Lengths(), p)
	require.NoError(t, err)

	// 13 + 9 + 10 non-zero cells out of 3*15.
	assert.InDelta(t, 32.0/45, v.Density(), 1e-15)
	assert.Equal(t, int64(45*8), v.SizeBytes())
	assert.Equal(t, int64(45*8), EstimateBytes(3, 15))

	for i := range v.Len() {
		bm := v.Presence(i)
		for c, x := range v.Row(i) {
			assert.Equal(t, x != 0, bm.Contains(uint32(c)))
		}
	}
}

func TestWindows(t *testing.T) {
	assert.Equal(t, 24, Windows(25, 2))
	assert.Equal(t, 0, Windows(1, 2))
	assert.Equal(t, 0, Windows(0, 5))
}
