// Command calcword computes a word-based distance matrix for the sequences
// of a FASTA file.
//
//	calcword -fasta seqs.fasta -k 2 -vector counts -distance google
//	calcword -store s3 -bucket genomes -prefix fasta/ -fasta proteins.fasta.zst -out dist.txt.gz
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/anorak94/alfpy"
	"github.com/anorak94/alfpy/blobstore"
	minioblob "github.com/anorak94/alfpy/blobstore/minio"
	s3blob "github.com/anorak94/alfpy/blobstore/s3"
	"github.com/anorak94/alfpy/distance"
	"github.com/anorak94/alfpy/distmatrix"
	"github.com/anorak94/alfpy/internal/compress"
	"github.com/anorak94/alfpy/pairwise"
	"github.com/anorak94/alfpy/resource"
	"github.com/anorak94/alfpy/seqrecords"
	"github.com/anorak94/alfpy/wordvector"
)

type config struct {
	fasta     string
	k         int
	vector    string
	metric    string
	p         float64
	outfmt    string
	out       string
	workers   int
	sparse    string
	memLimit  int64
	ioLimit   int64
	logLevel  string
	logJSON   bool
	store     string
	bucket    string
	prefix    string
	endpoint  string
	region    string
	pathStyle bool
	insecure  bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("calcword", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&c.fasta, "fasta", "", "FASTA input (file path, or blob name with -store s3|minio); '-' reads stdin")
	fs.IntVar(&c.k, "k", alfpy.DefaultWordSize, "word size")
	fs.StringVar(&c.vector, "vector", "counts", "word vector: counts|freqs")
	fs.StringVar(&c.metric, "distance", distance.Google, "distance metric: "+strings.Join(distance.Names(), "|"))
	fs.Float64Var(&c.p, "p", distance.DefaultMinkowskiP, "minkowski exponent")
	fs.StringVar(&c.outfmt, "outfmt", "phylip", "output format: phylip|pairwise")
	fs.StringVar(&c.out, "out", "", "output file (stdout if empty); .gz, .zst and .lz4 compress")
	fs.IntVar(&c.workers, "workers", 0, "matrix workers (0 = GOMAXPROCS)")
	fs.StringVar(&c.sparse, "sparse", "auto", "sparse evaluation: auto|on|off")
	fs.Int64Var(&c.memLimit, "mem-limit", 0, "memory budget in bytes (0 = unlimited)")
	fs.Int64Var(&c.ioLimit, "io-limit", 0, "input and output throughput limit in bytes per second (0 = unlimited)")
	fs.StringVar(&c.logLevel, "log-level", "warn", "log level: debug|info|warn|error")
	fs.BoolVar(&c.logJSON, "log-json", false, "emit JSON logs")
	fs.StringVar(&c.store, "store", "local", "input store: local|s3|minio")
	fs.StringVar(&c.bucket, "bucket", "", "bucket for -store s3|minio")
	fs.StringVar(&c.prefix, "prefix", "", "key prefix for -store s3|minio")
	fs.StringVar(&c.endpoint, "endpoint", "", "custom endpoint (required for minio)")
	fs.StringVar(&c.region, "region", "", "AWS region override")
	fs.BoolVar(&c.pathStyle, "path-style", false, "path-style S3 addressing")
	fs.BoolVar(&c.insecure, "insecure", false, "plain HTTP for minio")

	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if c.fasta == "" {
		return c, errors.New("-fasta is required")
	}
	return c, nil
}

func newLogger(c config, stderr io.Writer) (*alfpy.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q: %w", c.logLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.logJSON {
		return alfpy.NewLogger(slog.NewJSONHandler(stderr, opts)), nil
	}
	return alfpy.NewLogger(slog.NewTextHandler(stderr, opts)), nil
}

func parseSparse(s string) (pairwise.SparseMode, error) {
	for _, m := range []pairwise.SparseMode{pairwise.SparseAuto, pairwise.SparseOn, pairwise.SparseOff} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid -sparse %q", s)
}

// openStore returns the store holding the input and the blob name within it.
func openStore(ctx context.Context, c config) (blobstore.BlobStore, string, error) {
	switch c.store {
	case "local":
		abs, err := filepath.Abs(c.fasta)
		if err != nil {
			return nil, "", err
		}
		return blobstore.NewLocalStore(filepath.Dir(abs)), filepath.Base(abs), nil
	case "s3":
		if c.bucket == "" {
			return nil, "", errors.New("-bucket is required for -store s3")
		}
		var opts []s3blob.Option
		opts = append(opts, s3blob.WithPrefix(c.prefix), s3blob.WithPathStyle(c.pathStyle))
		if c.region != "" {
			opts = append(opts, s3blob.WithRegion(c.region))
		}
		if c.endpoint != "" {
			opts = append(opts, s3blob.WithEndpoint(c.endpoint))
		}
		st, err := s3blob.New(ctx, c.bucket, opts...)
		return st, c.fasta, err
	case "minio":
		if c.bucket == "" || c.endpoint == "" {
			return nil, "", errors.New("-bucket and -endpoint are required for -store minio")
		}
		st, err := minioblob.New(c.endpoint,
			os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"),
			!c.insecure, c.bucket, c.prefix)
		return st, c.fasta, err
	default:
		return nil, "", fmt.Errorf("invalid -store %q", c.store)
	}
}

func loadRecords(ctx context.Context, c config, rc *resource.Controller, stdin io.Reader) (*seqrecords.Records, error) {
	if c.fasta == "-" {
		data, err := io.ReadAll(resource.NewRateLimitedReader(ctx, stdin, rc))
		if err != nil {
			return nil, err
		}
		data, _, err = compress.Decode(data)
		if err != nil {
			return nil, err
		}
		return seqrecords.ReadFasta(bytes.NewReader(data))
	}

	store, name, err := openStore(ctx, c)
	if err != nil {
		return nil, err
	}
	return seqrecords.Load(ctx, store, name, seqrecords.WithResourceController(rc))
}

func render(m *distmatrix.Matrix, outfmt string) ([]byte, error) {
	switch outfmt {
	case "phylip":
		return []byte(m.Format()), nil
	case "pairwise":
		return []byte(m.FormatPairwise()), nil
	default:
		return nil, fmt.Errorf("invalid -outfmt %q", outfmt)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	c, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger, err := newLogger(c, stderr)
	if err != nil {
		return err
	}
	kind, err := wordvector.ParseKind(c.vector)
	if err != nil {
		return err
	}
	sparse, err := parseSparse(c.sparse)
	if err != nil {
		return err
	}

	slots := c.workers
	if slots < 1 {
		slots = runtime.GOMAXPROCS(0)
	}
	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:   c.memLimit,
		MaxWorkers:         int64(slots),
		IOLimitBytesPerSec: c.ioLimit,
	})

	records, err := loadRecords(ctx, c, rc, stdin)
	logger.LogLoad(ctx, c.fasta, recordCount(records), err)
	if err != nil {
		return err
	}

	calc := alfpy.New(
		alfpy.WithLogger(logger),
		alfpy.WithWorkers(slots),
		alfpy.WithSparse(sparse),
		alfpy.WithResourceController(rc),
	)

	req := alfpy.Request{
		Records:  records,
		WordSize: c.k,
		Vector:   kind,
		Metric:   c.metric,
	}
	if c.metric == distance.Minkowski {
		req.MetricOptions = []distance.Option{distance.WithP(c.p)}
	}

	m, err := calc.Compute(ctx, req)
	if err != nil {
		return err
	}

	text, err := render(m, c.outfmt)
	if err != nil {
		return err
	}

	if c.out == "" {
		_, err = resource.NewRateLimitedWriter(ctx, stdout, rc).Write(text)
		return err
	}

	data, err := compress.Encode(text, compress.FromName(c.out))
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(c.out)
	if err != nil {
		return err
	}
	store := blobstore.NewLocalStore(filepath.Dir(abs), blobstore.WithRateLimit(rc))
	err = store.Put(ctx, filepath.Base(abs), data)
	logger.LogWrite(ctx, c.out, len(data), err)
	return err
}

func recordCount(r *seqrecords.Records) int {
	if r == nil {
		return 0
	}
	return r.Len()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "calcword: %v\n", err)
		os.Exit(1)
	}
}
