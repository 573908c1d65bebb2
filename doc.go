// Package alfpy computes alignment-free distances between biological
// sequences from their k-mer (word) composition.
//
// A Calculator runs the whole pipeline: words of length k are collected from
// all sequences in first-seen order, each sequence becomes a vector of word
// counts or frequencies, and a named distance metric is evaluated for every
// pair of vectors. The result is a symmetric matrix with a zero diagonal that
// can be written in PHYLIP-like text form.
//
// # Quick Start
//
//	records, _ := seqrecords.New(
//	    []string{"seq1", "seq2", "seq3"},
//	    []string{"AACGTACCATTGAACGTACCGTAGG", "CTAGGGGACTTATCTAGG", "CTAGGGAACATACCA"},
//	)
//	calc := alfpy.New()
//	m, _ := calc.Compute(ctx, alfpy.Request{
//	    Records:  records,
//	    WordSize: 2,
//	    Vector:   wordvector.Counts,
//	    Metric:   distance.EuclidSquared,
//	})
//	fmt.Print(m.Format())
//
// # Loading Sequences
//
// FASTA input is read through any blobstore.BlobStore, so local files, S3
// and MinIO buckets are handled the same way. Compressed inputs (gzip, zstd,
// lz4) are detected automatically:
//
//	s3Store, _ := s3.New(ctx, "genomes", s3.WithPrefix("fasta/"))
//	records, _ := seqrecords.Load(ctx, s3Store, "proteins.fasta.zst")
//
// # Metrics
//
// distance.Names lists every registered metric. Minkowski takes its exponent
// through MetricOptions:
//
//	alfpy.Request{WordSize: 2, Metric: distance.Minkowski, MetricOptions: []distance.Option{distance.WithP(3)}}
//
// # Resources
//
// WithResourceController bounds the memory reserved for vectors and the
// matrix, the number of matrix rows evaluated at once and the input read
// rate. Without it a Calculator uses GOMAXPROCS workers and no limits.
package alfpy
