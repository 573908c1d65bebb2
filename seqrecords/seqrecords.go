package seqrecords

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrEmpty is returned when no sequences are given.
	ErrEmpty = errors.New("no sequences")

	// ErrEmptyID is returned for a sequence without identifier.
	ErrEmptyID = errors.New("empty sequence identifier")

	// ErrCountMismatch is returned when ids and seqs differ in length.
	ErrCountMismatch = errors.New("identifier count does not match sequence count")
)

// DuplicateIDError reports an identifier used by more than one sequence.
type DuplicateIDError struct {
	ID    string
	First int
	Index int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate sequence id %q at %d (first seen at %d)", e.ID, e.Index, e.First)
}

// Records is an ordered list of named sequences.
type Records struct {
	IDs     []string
	Seqs    []string
	Lengths []int
}

// New validates ids and seqs and returns normalised records. Lengths are
// counted in symbols, not bytes.
func New(ids, seqs []string) (*Records, error) {
	if len(ids) != len(seqs) {
		return nil, fmt.Errorf("%w: %d ids, %d sequences", ErrCountMismatch, len(ids), len(seqs))
	}
	if len(ids) == 0 {
		return nil, ErrEmpty
	}

	r := &Records{
		IDs:     make([]string, len(ids)),
		Seqs:    make([]string, len(seqs)),
		Lengths: make([]int, len(seqs)),
	}
	seen := make(map[string]int, len(ids))
	for i, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("%w at %d", ErrEmptyID, i)
		}
		if first, ok := seen[id]; ok {
			return nil, &DuplicateIDError{ID: id, First: first, Index: i}
		}
		seen[id] = i

		s := Normalize(seqs[i])
		r.IDs[i] = id
		r.Seqs[i] = s
		// Counted on the normalised text so lengths agree with the words
		// later cut from it.
		r.Lengths[i] = utf8.RuneCountInString(s)
	}
	return r, nil
}

// Normalize returns s in NFC form, upper-cased.
func Normalize(s string) string {
	if !norm.NFC.IsNormalString(s) {
		s = norm.NFC.String(s)
	}
	return strings.ToUpper(s)
}

// Len returns the number of sequences.
func (r *Records) Len() int {
	return len(r.IDs)
}

// Subset returns the records at the given indices, in that order.
func (r *Records) Subset(idx []int) (*Records, error) {
	ids := make([]string, len(idx))
	seqs := make([]string, len(idx))
	for i, j := range idx {
		if j < 0 || j >= r.Len() {
			return nil, fmt.Errorf("seqrecords: index %d out of range [0,%d)", j, r.Len())
		}
		ids[i] = r.IDs[j]
		seqs[i] = r.Seqs[j]
	}
	return New(ids, seqs)
}
