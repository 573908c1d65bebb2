package seqrecords

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/anorak94/alfpy/blobstore"
	"github.com/anorak94/alfpy/internal/compress"
	"github.com/anorak94/alfpy/resource"
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// ReadFasta parses every record of a FASTA stream. The identifier is the
// first word of the header line.
func ReadFasta(r io.Reader) (*Records, error) {
	in := fasta.NewReader(r, linear.NewSeq("", nil, alphabet.Protein))

	var ids, seqs []string
	for {
		s, err := in.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("seqrecords: read fasta: %w", err)
		}
		ls, ok := s.(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("seqrecords: unexpected sequence type %T", s)
		}
		ids = append(ids, headerID(ls.Name()))
		seqs = append(seqs, letters(ls.Seq))
	}
	return New(ids, seqs)
}

func headerID(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return ""
}

func letters(l alphabet.Letters) string {
	b := make([]byte, len(l))
	for i, c := range l {
		b[i] = byte(c)
	}
	return string(b)
}

type loadOptions struct {
	controller *resource.Controller
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithResourceController throttles blob reads through rc's IO limit.
func WithResourceController(rc *resource.Controller) LoadOption {
	return func(o *loadOptions) {
		o.controller = rc
	}
}

// Load reads the named FASTA blob from store. gzip, zstd and lz4 inputs are
// detected from their magic bytes and decompressed.
func Load(ctx context.Context, store blobstore.BlobStore, name string, optFns ...LoadOption) (*Records, error) {
	var o loadOptions
	for _, fn := range optFns {
		fn(&o)
	}

	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("seqrecords: open %s: %w", name, err)
	}
	defer func() { _ = b.Close() }()

	raw, err := io.ReadAll(resource.NewRateLimitedReader(ctx, blobstore.NewReader(ctx, b), o.controller))
	if err != nil {
		return nil, fmt.Errorf("seqrecords: read %s: %w", name, err)
	}

	data, _, err := compress.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("seqrecords: decompress %s: %w", name, err)
	}

	return ReadFasta(bytes.NewReader(data))
}
