package distmatrix

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func reference(t *testing.T) *Matrix {
	t.Helper()
	m, err := FromRows([]string{"seq1", "seq2", "seq3"}, [][]float64{
		{0, 57, 30},
		{57, 0, 19},
		{30, 19, 0},
	})
	require.NoError(t, err)
	return m
}

const referenceText = "   3\n" +
	"seq1       0.0000000 57.0000000 30.0000000\n" +
	"seq2       57.0000000 0.0000000 19.0000000\n" +
	"seq3       30.0000000 19.0000000 0.0000000\n"

func TestFormat(t *testing.T) {
	assert.Equal(t, referenceText, reference(t).Format())
}

func TestFormatLongID(t *testing.T) {
	m, err := FromRows([]string{"a_very_long_identifier"}, [][]float64{{0}})
	require.NoError(t, err)

	assert.Equal(t, "   1\na_very_long_identifier 0.0000000\n", m.Format())
}

func TestFormatDecimals(t *testing.T) {
	m, err := FromRows([]string{"a", "b"}, [][]float64{{0, 0.123456789}, {0.123456789, 0}})
	require.NoError(t, err)

	assert.Equal(t, "   2\na          0.000 0.123\nb          0.123 0.000\n", m.FormatDecimals(3))
	assert.Contains(t, m.Format(), "0.1234568")
}

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := reference(t).WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(referenceText)), n)
	assert.Equal(t, referenceText, buf.String())
}

func TestFormatPairwise(t *testing.T) {
	assert.Equal(t,
		"seq1\tseq2\t57.0000000\nseq1\tseq3\t30.0000000\nseq2\tseq3\t19.0000000\n",
		reference(t).FormatPairwise())
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, mat.NewSymDense(1, nil))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = New([]string{"a"}, mat.NewSymDense(2, nil))
	var shape *ErrShape
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, 1, shape.IDs)
	assert.Equal(t, 2, shape.Order)

	_, err = FromRows(nil, nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = FromRows([]string{"a", "b"}, [][]float64{{0, 1}, {1}})
	assert.Error(t, err)
}

func TestNewZeroesDiagonal(t *testing.T) {
	s := mat.NewSymDense(2, []float64{5, 1, 1, 5})
	m, err := New([]string{"a", "b"}, s)
	require.NoError(t, err)

	assert.Equal(t, 0.0, m.At(0, 0))
	assert.Equal(t, 0.0, m.At(1, 1))
	assert.Equal(t, 1.0, m.At(1, 0))
}

func TestMinMaxNormalize(t *testing.T) {
	m := reference(t)

	assert.Equal(t, 19.0, m.Min())
	assert.Equal(t, 57.0, m.Max())

	norm := m.Normalize()
	assert.Equal(t, 1.0, norm.At(0, 1))
	assert.InDelta(t, 30.0/57, norm.At(2, 0), 1e-15)
	assert.Equal(t, 0.0, norm.At(1, 1))

	// The original is untouched.
	assert.Equal(t, 57.0, m.At(0, 1))

	single, err := FromRows([]string{"x"}, [][]float64{{0}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, single.Max())
	assert.Equal(t, 0.0, single.Normalize().At(0, 0))
}

func TestParseRoundTrip(t *testing.T) {
	m, err := FromRows([]string{"s1", "s2", "s3", "s4"}, [][]float64{
		{0, 0.1415926535, 2.718281828, 1e-3},
		{0.1415926535, 0, 42, 0.5},
		{2.718281828, 42, 0, 7.25},
		{1e-3, 0.5, 7.25, 0},
	})
	require.NoError(t, err)

	got, err := Parse(strings.NewReader(m.Format()))
	require.NoError(t, err)

	assert.Equal(t, m.IDs(), got.IDs())
	for i := range m.Len() {
		for j := range m.Len() {
			assert.InDelta(t, m.At(i, j), got.At(i, j), 5e-8)
		}
	}
	assert.Equal(t, m.Format(), got.Format())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"BadCount", "x\n"},
		{"ZeroCount", "0\n"},
		{"MissingRow", "   2\na 0.0 1.0\n"},
		{"ShortRow", "   2\na 0.0\nb 1.0 0.0\n"},
		{"BadValue", "   2\na 0.0 one\nb 1.0 0.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}

	_, err := Parse(strings.NewReader("\n\n"))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestIDsIsCopy(t *testing.T) {
	m := reference(t)
	ids := m.IDs()
	ids[0] = "changed"
	assert.Equal(t, "seq1", m.IDs()[0])
}
