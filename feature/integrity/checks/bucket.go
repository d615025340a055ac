package checks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"model-portfolio/core/storage"

	"github.com/minio/minio-go/v7"
)

// BucketReport describes the published copy of the site in object storage.
type BucketReport struct {
	Bucket string `json:"bucket"`
	// Missing lists the required keys or prefixes with no object.
	Missing []string `json:"missing"`
	// Stale is set when the published gallery differs from the local one.
	Stale bool `json:"stale"`
}

// CheckBucket verifies that galleryKey and at least one object under assetPrefix
// are published in bucket. When local is not nil the published gallery is
// compared with it.
func CheckBucket(ctx context.Context, client storage.Client, bucket, galleryKey, assetPrefix string, local []byte) (*BucketReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	report := &BucketReport{Bucket: bucket, Missing: []string{}}

	obj, galleryFound, err := firstObject(ctx, client, bucket, minio.ListObjectsOptions{Prefix: galleryKey, MaxKeys: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", galleryKey, err)
	}
	galleryFound = galleryFound && obj.Key == galleryKey
	if !galleryFound {
		report.Missing = append(report.Missing, galleryKey)
	}

	prefix := strings.TrimSuffix(assetPrefix, "/") + "/"
	_, assetsFound, err := firstObject(ctx, client, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true, MaxKeys: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", prefix, err)
	}
	if !assetsFound {
		report.Missing = append(report.Missing, prefix)
	}

	if galleryFound && local != nil {
		rc, err := client.GetObject(ctx, bucket, galleryKey, minio.GetObjectOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", galleryKey, err)
		}
		defer rc.Close()

		remote, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", galleryKey, err)
		}
		report.Stale = !bytes.Equal(remote, local)
	}

	return report, nil
}

// firstObject returns the first listed object, stopping the listing early.
func firstObject(ctx context.Context, client storage.Client, bucket string, opts minio.ListObjectsOptions) (minio.ObjectInfo, bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return obj, false, obj.Err
		}
		return obj, true, nil
	}
	return minio.ObjectInfo{}, false, nil
}
