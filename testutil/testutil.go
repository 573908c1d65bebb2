package testutil

import (
	"math"
	"math/rand"
	"strings"
	"sync"
)

// Alphabets for random sequence generation.
const (
	DNA     = "ACGT"
	Protein = "ACDEFGHIKLMNPQRSTVWY"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Sequence returns a random string of length n over alphabet.
func (r *RNG) Sequence(n int, alphabet string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sequenceLocked(n, alphabet)
}

func (r *RNG) sequenceLocked(n int, alphabet string) string {
	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(alphabet[r.rand.Intn(len(alphabet))])
	}
	return sb.String()
}

// Sequences returns num random sequences with lengths in [minLen, maxLen].
func (r *RNG) Sequences(num, minLen, maxLen int, alphabet string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, num)
	for i := range out {
		n := minLen
		if maxLen > minLen {
			n += r.rand.Intn(maxLen - minLen + 1)
		}
		out[i] = r.sequenceLocked(n, alphabet)
	}
	return out
}

// SkewedSequence returns a sequence whose symbol composition follows a
// Zipf law with exponent s over alphabet. s=0 is uniform.
func (r *RNG) SkewedSequence(n int, alphabet string, s float64) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(alphabet[r.zipfLocked(len(alphabet), s)])
	}
	return sb.String()
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}

	return n - 1
}

// SparseVectors generates non-negative vectors where each entry is non-zero
// with probability density. Non-zero entries are small integer counts.
// Uses a single backing array for efficiency.
func (r *RNG) SparseVectors(num, dim int, density float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	vectors := make([][]float64, num)
	for i := range num {
		vec := data[i*dim : (i+1)*dim]
		for j := range vec {
			if r.rand.Float64() < density {
				vec[j] = float64(1 + r.rand.Intn(9))
			}
		}
		vectors[i] = vec
	}
	return vectors
}

// Support returns the ascending columns where a or b is non-zero.
func Support(a, b []float64) []uint32 {
	out := make([]uint32, 0)
	for i := range a {
		if a[i] != 0 || b[i] != 0 {
			out = append(out, uint32(i))
		}
	}
	return out
}

// Dataset is a small ordered list of identified sequences.
type Dataset struct {
	IDs  []string
	Seqs []string
}

// Lengths returns the symbol count of each sequence.
func (d Dataset) Lengths() []int {
	out := make([]int, len(d.Seqs))
	for i, s := range d.Seqs {
		out[i] = len(s)
	}
	return out
}

// Reference returns the three-sequence dataset whose distance matrices are
// pinned in package tests. The second sequence is lower case on purpose.
func Reference() Dataset {
	return Dataset{
		IDs: []string{"seq1", "seq2", "seq3"},
		Seqs: []string{
			"AACGTACCATTGAACGTACCGTAGG",
			"ctaggggacttatctagg",
			"CTAGGGAACATACCA",
		},
	}
}
