package compress

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fasta = ">seq1\nAACGTACCATTGAACGTACCGTAGG\n>seq2\nctaggggacttatctagg\n"

func TestRoundTrip(t *testing.T) {
	payload := []byte(strings.Repeat(fasta, 50))

	for _, c := range []Codec{None, Gzip, Zstd, LZ4} {
		t.Run(c.String(), func(t *testing.T) {
			enc, err := Encode(payload, c)
			require.NoError(t, err)
			assert.Equal(t, c, Detect(enc))
			if c != None {
				assert.Less(t, len(enc), len(payload))
			}

			dec, got, err := Decode(enc)
			require.NoError(t, err)
			assert.Equal(t, c, got)
			assert.Equal(t, payload, dec)

			r, err := NewReader(bytes.NewReader(enc), c)
			require.NoError(t, err)
			streamed, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			assert.Equal(t, payload, streamed)
		})
	}
}

func TestDetectPlainText(t *testing.T) {
	assert.Equal(t, None, Detect([]byte(fasta)))
	assert.Equal(t, None, Detect(nil))
	assert.Equal(t, None, Detect([]byte{0x1f}))
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want Codec
	}{
		{"seqs.fasta", None},
		{"seqs.fa.gz", Gzip},
		{"seqs.fa.GZ", Gzip},
		{"seqs.fa.zst", Zstd},
		{"out/matrix.txt.lz4", LZ4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromName(tt.name), tt.name)
	}
}

func TestExtension(t *testing.T) {
	for _, c := range []Codec{Gzip, Zstd, LZ4} {
		assert.Equal(t, c, FromName("x"+c.Extension()))
	}
	assert.Equal(t, "", None.Extension())
}

func TestUnknownCodec(t *testing.T) {
	_, err := NewWriter(io.Discard, Codec(9))
	assert.ErrorIs(t, err, ErrUnknownCodec)

	_, err = NewReader(strings.NewReader(""), Codec(9))
	assert.ErrorIs(t, err, ErrUnknownCodec)
	assert.Equal(t, "Unknown(9)", Codec(9).String())
}

func TestDecodeCorrupt(t *testing.T) {
	data := append([]byte{0x28, 0xb5, 0x2f, 0xfd}, []byte("not a frame")...)
	_, _, err := Decode(data)
	assert.Error(t, err)
}
