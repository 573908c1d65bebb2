// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("alfpy/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//	records, err := seqrecords.Load(ctx, store, "genomes.fasta.zst")
//
// # Features
//
//   - Range reads, one request per chunk
//   - Multipart uploads with CRC32C checksums for large outputs
//   - Automatic pagination for listing
//   - Custom endpoints for S3-compatible services
package s3
