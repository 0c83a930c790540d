// Package service opens the blob buckets that hold envelope files.
package service

import (
	"context"
	"fmt"

	"gocloud.dev/blob"

	// Register the local blob drivers
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// BucketService opens blob buckets by URL.
type BucketService interface {
	// OpenBucket opens the bucket for bucketURL.
	// Supports: file:///path?create_dir=true, file://./relative?metadata=skip, mem://
	OpenBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error)
}

// bucketService implements BucketService using gocloud.dev/blob.
type bucketService struct{}

// NewBucketService creates a new bucket service instance.
func NewBucketService() BucketService {
	return &bucketService{}
}

// OpenBucket opens a *blob.Bucket. The caller must Close it.
func (b *bucketService) OpenBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open secrets bucket: %w", err)
	}
	return bucket, nil
}
