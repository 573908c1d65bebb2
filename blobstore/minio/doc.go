// Package minio provides a BlobStore implementation using the MinIO client.
//
// It works with MinIO and other S3-compatible systems (Ceph, SeaweedFS,
// Garage) without the AWS SDK.
//
// # Basic Usage
//
//	store, err := minioblob.New("localhost:9000", "minioadmin", "minioadmin", false, "genomes", "fasta/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	records, err := seqrecords.Load(ctx, store, "proteins.fasta.gz")
//
// A preconfigured client can be passed to NewStore instead:
//
//	client, _ := minio.New("s3.example.com:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
//	    Secure: true,
//	    Region: "us-east-1",
//	})
//	store := minioblob.NewStore(client, "genomes", "fasta/")
package minio
