package seqrecords

import (
	"context"
	"strings"
	"testing"

	"github.com/anorak94/alfpy/blobstore"
	"github.com/anorak94/alfpy/internal/compress"
	"github.com/anorak94/alfpy/resource"
	"github.com/anorak94/alfpy/testutil"
	"github.com/anorak94/alfpy/wordpattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceFasta = ">seq1\n" +
	"AACGTACCATTGAACG\n" +
	"TACCGTAGG\n" +
	">seq2\n" +
	"ctaggggacttatctagg\n" +
	">seq3\n" +
	"CTAGGGAACATACCA\n"

func TestNew(t *testing.T) {
	ref := testutil.Reference()
	r, err := New(ref.IDs, ref.Seqs)
	require.NoError(t, err)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"seq1", "seq2", "seq3"}, r.IDs)
	assert.Equal(t, "CTAGGGGACTTATCTAGG", r.Seqs[1])
	assert.Equal(t, []int{25, 18, 15}, r.Lengths)
}

func TestNewErrors(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = New([]string{"a"}, []string{"A", "C"})
	assert.ErrorIs(t, err, ErrCountMismatch)

	_, err = New([]string{"a", ""}, []string{"A", "C"})
	assert.ErrorIs(t, err, ErrEmptyID)

	_, err = New([]string{"a", "b", "a"}, []string{"A", "C", "G"})
	var dup *DuplicateIDError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.ID)
	assert.Equal(t, 0, dup.First)
	assert.Equal(t, 2, dup.Index)
}

func TestNormalize(t *testing.T) {
	// Decomposed e + combining acute becomes the single precomposed rune.
	assert.Equal(t, "\u00c9A", Normalize("e\u0301a"))
	assert.Equal(t, "ΑΒΓ", Normalize("αβγ"))

	r, err := New([]string{"greek"}, []string{"αβγ"})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, r.Lengths)
}

func TestLengthsFollowNormalisedText(t *testing.T) {
	// Three runes, two symbols after composition.
	r, err := New([]string{"acute"}, []string{"e\u0301a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"\u00c9A"}, r.Seqs)
	assert.Equal(t, []int{2}, r.Lengths)

	// The length leaves exactly one 2-window, matching the single word.
	p, err := wordpattern.Create(r.Seqs, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Dim())
}

func TestSubset(t *testing.T) {
	ref := testutil.Reference()
	r, err := New(ref.IDs, ref.Seqs)
	require.NoError(t, err)

	sub, err := r.Subset([]int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"seq3", "seq1"}, sub.IDs)
	assert.Equal(t, []int{15, 25}, sub.Lengths)

	_, err = r.Subset([]int{3})
	assert.Error(t, err)
}

func TestReadFasta(t *testing.T) {
	r, err := ReadFasta(strings.NewReader(referenceFasta))
	require.NoError(t, err)

	ref := testutil.Reference()
	assert.Equal(t, ref.IDs, r.IDs)
	assert.Equal(t, []string{
		"AACGTACCATTGAACGTACCGTAGG",
		"CTAGGGGACTTATCTAGG",
		"CTAGGGAACATACCA",
	}, r.Seqs)
	assert.Equal(t, []int{25, 18, 15}, r.Lengths)
}

func TestReadFastaEmpty(t *testing.T) {
	_, err := ReadFasta(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	for _, c := range []compress.Codec{compress.None, compress.Gzip, compress.Zstd, compress.LZ4} {
		t.Run(c.String(), func(t *testing.T) {
			data, err := compress.Encode([]byte(referenceFasta), c)
			require.NoError(t, err)
			name := "ref.fasta" + c.Extension()
			require.NoError(t, store.Put(ctx, name, data))

			r, err := Load(ctx, store, name)
			require.NoError(t, err)
			assert.Equal(t, []string{"seq1", "seq2", "seq3"}, r.IDs)
			assert.Equal(t, "CTAGGGGACTTATCTAGG", r.Seqs[1])
		})
	}
}

func TestLoadRateLimited(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewLocalStore(t.TempDir())
	require.NoError(t, store.Put(ctx, "ref.fasta", []byte(referenceFasta)))

	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 1 << 20})
	r, err := Load(ctx, store, "ref.fasta", WithResourceController(rc))
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(context.Background(), blobstore.NewMemoryStore(), "missing.fasta")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
