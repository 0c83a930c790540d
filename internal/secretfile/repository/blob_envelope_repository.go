// Package repository stores envelope strings as objects in a blob bucket.
package repository

import (
	"context"
	"fmt"
	"strings"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	secretfileDomain "github.com/allisson/gitops-secrets/internal/secretfile/domain"
)

// BlobEnvelopeRepository reads and writes envelope files in a gocloud.dev bucket.
type BlobEnvelopeRepository struct {
	bucket *blob.Bucket
}

// NewBlobEnvelopeRepository creates a repository over bucket. The caller owns the bucket.
func NewBlobEnvelopeRepository(bucket *blob.Bucket) *BlobEnvelopeRepository {
	return &BlobEnvelopeRepository{bucket: bucket}
}

// Write stores envelope under key, replacing any existing object.
func (b *BlobEnvelopeRepository) Write(ctx context.Context, key, envelope string) error {
	opts := &blob.WriterOptions{ContentType: "text/plain; charset=utf-8"}
	if err := b.bucket.WriteAll(ctx, key, []byte(envelope), opts); err != nil {
		return fmt.Errorf("failed to write envelope file %s: %w", key, err)
	}
	return nil
}

// Read returns the envelope stored under key with surrounding whitespace removed.
// Returns ErrEnvelopeNotFound if the object does not exist.
func (b *BlobEnvelopeRepository) Read(ctx context.Context, key string) (string, error) {
	data, err := b.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", fmt.Errorf("%w: %s", secretfileDomain.ErrEnvelopeNotFound, key)
		}
		return "", fmt.Errorf("failed to read envelope file %s: %w", key, err)
	}
	return strings.TrimSpace(string(data)), nil
}
