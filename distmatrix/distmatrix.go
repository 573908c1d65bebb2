package distmatrix

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// DefaultDecimals is the number of decimals written by Format.
const DefaultDecimals = 7

var (
	// ErrEmpty is returned for a matrix without sequences.
	ErrEmpty = errors.New("distance matrix is empty")

	// ErrMalformed is returned by Parse for text that is not a phylip matrix.
	ErrMalformed = errors.New("malformed distance matrix")
)

// ErrShape indicates that identifiers and matrix order disagree.
type ErrShape struct {
	IDs   int
	Order int
}

func (e *ErrShape) Error() string {
	return fmt.Sprintf("distance matrix shape: %d ids for order %d", e.IDs, e.Order)
}

// Matrix is an immutable N×N symmetric matrix with a zero diagonal and one
// identifier per row.
type Matrix struct {
	ids []string
	m   *mat.SymDense
}

// New wraps m. The diagonal is forced to zero. m is owned by the Matrix
// afterwards.
func New(ids []string, m *mat.SymDense) (*Matrix, error) {
	if m == nil || len(ids) == 0 {
		return nil, ErrEmpty
	}
	if n := m.SymmetricDim(); n != len(ids) {
		return nil, &ErrShape{IDs: len(ids), Order: n}
	}
	for i := range ids {
		m.SetSym(i, i, 0)
	}
	return &Matrix{ids: slices.Clone(ids), m: m}, nil
}

// FromRows builds a matrix from the upper triangle of a square table.
func FromRows(ids []string, rows [][]float64) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmpty
	}
	m := mat.NewSymDense(n, nil)
	for i, row := range rows {
		if len(row) != n {
			return nil, &ErrShape{IDs: len(row), Order: n}
		}
		for j := i + 1; j < n; j++ {
			m.SetSym(i, j, row[j])
		}
	}
	return New(ids, m)
}

// Len returns the number of sequences.
func (m *Matrix) Len() int {
	return len(m.ids)
}

// IDs returns the row identifiers.
func (m *Matrix) IDs() []string {
	return slices.Clone(m.ids)
}

// At returns the distance between sequences i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.m.At(i, j)
}

// Sym returns a copy of the underlying gonum matrix.
func (m *Matrix) Sym() *mat.SymDense {
	out := mat.NewSymDense(m.Len(), nil)
	out.CopySym(m.m)
	return out
}

// Min returns the smallest off-diagonal value, or 0 for a 1×1 matrix.
func (m *Matrix) Min() float64 {
	return m.reduce(math.Inf(1), math.Min)
}

// Max returns the largest off-diagonal value, or 0 for a 1×1 matrix.
func (m *Matrix) Max() float64 {
	return m.reduce(math.Inf(-1), math.Max)
}

func (m *Matrix) reduce(init float64, fn func(a, b float64) float64) float64 {
	n := m.Len()
	if n < 2 {
		return 0
	}
	acc := init
	for i := range n {
		for j := i + 1; j < n; j++ {
			acc = fn(acc, m.m.At(i, j))
		}
	}
	return acc
}

// Normalize returns a copy scaled so that the largest value is 1. A matrix
// whose values are all zero is returned unchanged.
func (m *Matrix) Normalize() *Matrix {
	out := m.Sym()
	if hi := m.Max(); hi > 0 {
		n := m.Len()
		for i := range n {
			for j := i + 1; j < n; j++ {
				out.SetSym(i, j, out.At(i, j)/hi)
			}
		}
	}
	return &Matrix{ids: slices.Clone(m.ids), m: out}
}

// Format returns the phylip layout with DefaultDecimals decimals.
func (m *Matrix) Format() string {
	return m.FormatDecimals(DefaultDecimals)
}

// FormatDecimals returns the phylip layout with the given number of decimals.
func (m *Matrix) FormatDecimals(decimals int) string {
	var sb strings.Builder
	_, _ = m.write(&sb, decimals)
	return sb.String()
}

// WriteTo writes the phylip layout to w.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	return m.write(w, DefaultDecimals)
}

func (m *Matrix) write(w io.Writer, decimals int) (int64, error) {
	n := m.Len()
	buf := make([]byte, 0, 64+n*(12+n*(decimals+4)))
	buf = fmt.Appendf(buf, "%4d\n", n)
	for i, id := range m.ids {
		buf = fmt.Appendf(buf, "%-10s", id)
		for j := range n {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, m.m.At(i, j), 'f', decimals, 64)
		}
		buf = append(buf, '\n')
	}
	written, err := w.Write(buf)
	return int64(written), err
}

// FormatPairwise returns one "id1<TAB>id2<TAB>value" line per unordered pair.
func (m *Matrix) FormatPairwise() string {
	var sb strings.Builder
	n := m.Len()
	for i := range n {
		for j := i + 1; j < n; j++ {
			fmt.Fprintf(&sb, "%s\t%s\t%.*f\n", m.ids[i], m.ids[j], DefaultDecimals, m.m.At(i, j))
		}
	}
	return sb.String()
}
