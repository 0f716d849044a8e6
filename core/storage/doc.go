// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide the few operations the checker needs:
// reading orthology mapping files addressed as "s3://bucket/key" and publishing
// rendered reports. It supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates the report bucket if needed.
//   - PutObject: Uploads content (with size and options).
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	bucket, key, ok := storage.ParseURI("s3://mappings/split1.tsv")
//	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
package storage
