// Package blobstore provides storage for sequence inputs and matrix outputs.
//
// BlobStore is the interface for reading and writing named blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, reads are memory mapped
//   - MemoryStore: in-process map, for tests
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Reading
//
//	blob, err := store.Open(ctx, "genomes.fasta.zst")
//	if err != nil { ... }
//	defer blob.Close()
//	data, err := blobstore.ReadAll(ctx, blob)
package blobstore
