package app

import (
	"context"
	"fmt"

	"gocloud.dev/blob"

	secretfileRepository "github.com/allisson/gitops-secrets/internal/secretfile/repository"
	secretfileService "github.com/allisson/gitops-secrets/internal/secretfile/service"
	secretfileUseCase "github.com/allisson/gitops-secrets/internal/secretfile/usecase"
)

// BucketService returns the blob bucket opener.
func (c *Container) BucketService() secretfileService.BucketService {
	c.bucketServiceInit.Do(func() {
		c.bucketService = secretfileService.NewBucketService()
	})
	return c.bucketService
}

// Bucket returns the bucket holding envelope files. Shutdown closes it.
func (c *Container) Bucket(ctx context.Context) (*blob.Bucket, error) {
	var err error
	c.bucketInit.Do(func() {
		var bucket *blob.Bucket
		bucket, err = c.BucketService().OpenBucket(ctx, c.config.SecretsBucketURL)
		if err != nil {
			c.setInitError("bucket", err)
			return
		}
		c.mu.Lock()
		c.bucket = bucket
		c.mu.Unlock()
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("bucket"); storedErr != nil {
		return nil, storedErr
	}
	return c.bucket, nil
}

// EnvelopeRepository returns the blob backed envelope repository.
func (c *Container) EnvelopeRepository(ctx context.Context) (secretfileUseCase.EnvelopeRepository, error) {
	var err error
	c.envelopeRepositoryInit.Do(func() {
		c.envelopeRepository, err = c.initEnvelopeRepository(ctx)
		if err != nil {
			c.setInitError("envelopeRepository", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("envelopeRepository"); storedErr != nil {
		return nil, storedErr
	}
	return c.envelopeRepository, nil
}

// SecretFileUseCase returns the use case reading and writing envelope files.
func (c *Container) SecretFileUseCase(ctx context.Context) (secretfileUseCase.SecretFileUseCase, error) {
	var err error
	c.secretFileUseCaseInit.Do(func() {
		c.secretFileUseCase, err = c.initSecretFileUseCase(ctx)
		if err != nil {
			c.setInitError("secretFileUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("secretFileUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.secretFileUseCase, nil
}

// initEnvelopeRepository creates the repository over the configured bucket.
func (c *Container) initEnvelopeRepository(ctx context.Context) (secretfileUseCase.EnvelopeRepository, error) {
	bucket, err := c.Bucket(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket for envelope repository: %w", err)
	}
	return secretfileRepository.NewBlobEnvelopeRepository(bucket), nil
}

// initSecretFileUseCase creates the secret file use case with all its dependencies.
func (c *Container) initSecretFileUseCase(ctx context.Context) (secretfileUseCase.SecretFileUseCase, error) {
	repo, err := c.EnvelopeRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get envelope repository for secret file use case: %w", err)
	}

	encoder, err := c.EnvelopeUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get envelope use case for secret file use case: %w", err)
	}

	secretStore, err := c.SecretStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret store for secret file use case: %w", err)
	}

	return secretfileUseCase.NewSecretFileUseCase(repo, encoder, secretStore, c.Logger()), nil
}
