// Package storage provides an abstraction layer for the object storage the
// portfolio site is published to.
//
// It wraps the MinIO Go client, which speaks to both AWS S3 and self-hosted MinIO.
// The Client interface keeps the publisher and the integrity checks testable with
// the testify mock in core/storage/mocks.
//
// # Operations
//
//   - BucketExists / MakeBucket: ensure the target bucket.
//   - PutObject: upload a site file.
//   - GetObject: read back the published gallery index.
//   - ListObjects: list published objects under a prefix.
//   - RemoveObjects: batch delete objects that no longer exist locally.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
