package wordvector

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/anorak94/alfpy/wordpattern"
)

// Kind selects the vectorization.
type Kind int

const (
	Counts Kind = iota
	Freqs
)

func (k Kind) String() string {
	switch k {
	case Counts:
		return "counts"
	case Freqs:
		return "freqs"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// ParseKind returns the Kind named s ("counts" or "freqs").
func ParseKind(s string) (Kind, error) {
	switch s {
	case "counts":
		return Counts, nil
	case "freqs":
		return Freqs, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

var (
	// ErrUnknownKind is returned by ParseKind and New for an unsupported vectorization.
	ErrUnknownKind = errors.New("unknown vector kind")

	// ErrInvalidLength is returned for a negative sequence length.
	ErrInvalidLength = errors.New("sequence length must not be negative")
)

// ErrLengthMismatch indicates that the length list does not cover the
// sequences of the pattern.
type ErrLengthMismatch struct {
	Sequences int
	Lengths   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: %d sequences, %d lengths", e.Sequences, e.Lengths)
}

// Vectors holds one dense row per sequence.
type Vectors struct {
	kind    Kind
	k       int
	dim     int
	data    []float64
	rows    [][]float64
	lengths []int
	pattern *wordpattern.Pattern
}

// New builds vectors of the given kind.
func New(kind Kind, lengths []int, p *wordpattern.Pattern) (*Vectors, error) {
	switch kind {
	case Counts, Freqs:
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}

	if len(lengths) != p.Len() {
		return nil, &ErrLengthMismatch{Sequences: p.Len(), Lengths: len(lengths)}
	}
	for i, l := range lengths {
		if l < 0 {
			return nil, fmt.Errorf("%w: sequence %d has length %d", ErrInvalidLength, i, l)
		}
	}

	n, d := p.Len(), p.Dim()
	v := &Vectors{
		kind:    kind,
		k:       p.K(),
		dim:     d,
		data:    make([]float64, n*d),
		rows:    make([][]float64, n),
		lengths: append([]int(nil), lengths...),
		pattern: p,
	}

	for i := range n {
		row := v.data[i*d : (i+1)*d]
		for _, e := range p.Entries(i) {
			row[e.Col] = float64(e.Count)
		}
		if kind == Freqs {
			total := Windows(lengths[i], p.K())
			if total == 0 {
				// A sequence shorter than k has no frequencies, whatever
				// the pattern recorded for it.
				clear(row)
			} else {
				inv := float64(total)
				for _, e := range p.Entries(i) {
					row[e.Col] /= inv
				}
			}
		}
		v.rows[i] = row
	}

	return v, nil
}

// NewCounts builds count vectors.
func NewCounts(lengths []int, p *wordpattern.Pattern) (*Vectors, error) {
	return New(Counts, lengths, p)
}

// NewFreqs builds frequency vectors.
func NewFreqs(lengths []int, p *wordpattern.Pattern) (*Vectors, error) {
	return New(Freqs, lengths, p)
}

// Windows returns the number of k-symbol windows of a sequence of length l.
func Windows(l, k int) int {
	return max(l-k+1, 0)
}

// Kind returns the vectorization.
func (v *Vectors) Kind() Kind {
	return v.kind
}

// Len returns the number of vectors.
func (v *Vectors) Len() int {
	return len(v.rows)
}

// Dim returns the vector dimension.
func (v *Vectors) Dim() int {
	return v.dim
}

// Row returns vector i. The slice must not be modified.
func (v *Vectors) Row(i int) []float64 {
	return v.rows[i]
}

// Rows returns all vectors. The slices must not be modified.
func (v *Vectors) Rows() [][]float64 {
	return v.rows
}

// SeqLength returns the source length of sequence i.
func (v *Vectors) SeqLength(i int) int {
	return v.lengths[i]
}

// Presence returns the non-zero columns of vector i.
// The bitmap is shared and must not be modified.
func (v *Vectors) Presence(i int) *roaring.Bitmap {
	return v.pattern.Presence(i)
}

// Density returns the fraction of non-zero cells.
func (v *Vectors) Density() float64 {
	cells := len(v.data)
	if cells == 0 {
		return 0
	}
	return float64(v.pattern.Occupancy()) / float64(cells)
}

// SizeBytes returns the memory held by the dense rows.
func (v *Vectors) SizeBytes() int64 {
	return int64(len(v.data)) * 8
}

// EstimateBytes returns the memory New would allocate for n sequences over
// d columns.
func EstimateBytes(n, d int) int64 {
	return int64(n) * int64(d) * 8
}
