package wordpattern

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/anorak94/alfpy/internal/conv"
)

var (
	// ErrInvalidWordSize is returned when the word size is less than 1.
	ErrInvalidWordSize = errors.New("word size must be at least 1")

	// ErrNoSequences is returned when the sequence list is empty.
	ErrNoSequences = errors.New("no sequences")
)

// Entry is the occurrence count of one column in one sequence.
type Entry struct {
	Col   uint32
	Count int
}

// Pattern is the word column space of a sequence list together with the
// per-sequence word counts. It is immutable after Create.
type Pattern struct {
	k        int
	words    []string
	index    map[string]int
	entries  [][]Entry
	windows  []int
	presence []*roaring.Bitmap
}

// Create scans every sequence with a window of k symbols.
func Create(seqs []string, k int) (*Pattern, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWordSize, k)
	}
	if len(seqs) == 0 {
		return nil, ErrNoSequences
	}

	p := &Pattern{
		k:        k,
		index:    make(map[string]int),
		entries:  make([][]Entry, len(seqs)),
		windows:  make([]int, len(seqs)),
		presence: make([]*roaring.Bitmap, len(seqs)),
	}

	for i, s := range seqs {
		counts := make(map[uint32]int)
		var convErr error
		p.windows[i] = eachWord(strings.ToUpper(s), k, func(w string) {
			col, ok := p.index[w]
			if !ok {
				col = len(p.words)
				w = strings.Clone(w)
				p.index[w] = col
				p.words = append(p.words, w)
			}
			c, err := conv.IntToUint32(col)
			if err != nil {
				convErr = err
				return
			}
			counts[c]++
		})
		if convErr != nil {
			return nil, fmt.Errorf("word pattern: %w", convErr)
		}

		entries := make([]Entry, 0, len(counts))
		bm := roaring.New()
		for col, n := range counts {
			entries = append(entries, Entry{Col: col, Count: n})
			bm.Add(col)
		}
		slices.SortFunc(entries, func(a, b Entry) int {
			return int(a.Col) - int(b.Col)
		})
		bm.RunOptimize()

		p.entries[i] = entries
		p.presence[i] = bm
	}

	return p, nil
}

// eachWord calls fn for every overlapping k-symbol window of s and returns
// the number of windows.
func eachWord(s string, k int, fn func(w string)) int {
	if isASCII(s) {
		n := len(s) - k + 1
		for i := 0; i < n; i++ {
			fn(s[i : i+k])
		}
		return max(n, 0)
	}

	// Byte offset of every rune start, plus len(s).
	offs := make([]int, 0, len(s)+1)
	for i := range s {
		offs = append(offs, i)
	}
	runes := len(offs)
	offs = append(offs, len(s))

	n := runes - k + 1
	for i := 0; i < n; i++ {
		fn(s[offs[i]:offs[i+k]])
	}
	return max(n, 0)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// K returns the word size.
func (p *Pattern) K() int {
	return p.k
}

// Len returns the number of sequences.
func (p *Pattern) Len() int {
	return len(p.entries)
}

// Dim returns the number of distinct words (columns).
func (p *Pattern) Dim() int {
	return len(p.words)
}

// Words returns the column words in first-seen order.
func (p *Pattern) Words() []string {
	return slices.Clone(p.words)
}

// Word returns the word of column c.
func (p *Pattern) Word(c int) string {
	return p.words[c]
}

// Index returns the column of word w. Lookup is case-insensitive.
func (p *Pattern) Index(w string) (int, bool) {
	c, ok := p.index[strings.ToUpper(w)]
	return c, ok
}

// Entries returns the non-zero counts of sequence i in ascending column
// order. The slice must not be modified.
func (p *Pattern) Entries(i int) []Entry {
	return p.entries[i]
}

// Counts returns the word counts of sequence i keyed by word.
func (p *Pattern) Counts(i int) map[string]int {
	out := make(map[string]int, len(p.entries[i]))
	for _, e := range p.entries[i] {
		out[p.words[e.Col]] = e.Count
	}
	return out
}

// Windows returns the number of windows sequence i contributed.
func (p *Pattern) Windows(i int) int {
	return p.windows[i]
}

// Presence returns the set of columns present in sequence i.
// The bitmap is shared and must not be modified.
func (p *Pattern) Presence(i int) *roaring.Bitmap {
	return p.presence[i]
}

// Occupancy returns the number of (sequence, column) pairs with a
// non-zero count.
func (p *Pattern) Occupancy() int {
	n := 0
	for _, e := range p.entries {
		n += len(e)
	}
	return n
}
