// Package usecase encrypts secret sets to envelope files and reads them back
// through the secret store.
package usecase

import (
	"context"

	envelopeDomain "github.com/allisson/gitops-secrets/internal/envelope/domain"
	"github.com/allisson/gitops-secrets/internal/store"
)

// EnvelopeRepository persists envelope strings by key.
type EnvelopeRepository interface {
	Write(ctx context.Context, key, envelope string) error
	Read(ctx context.Context, key string) (string, error)
}

// Encoder produces envelopes.
type Encoder interface {
	Encode(ctx context.Context, set envelopeDomain.SecretSet) (string, error)
	Seal(ctx context.Context, plaintext []byte) (string, error)
}

// Loader decodes envelopes with caching and environment population.
type Loader interface {
	Load(ctx context.Context, envelope string, opts store.LoadOptions) (envelopeDomain.SecretSet, error)
}

// SecretFileUseCase stores and loads envelope files.
type SecretFileUseCase interface {
	// EncryptToFile encodes set and writes the envelope under key.
	EncryptToFile(ctx context.Context, key string, set envelopeDomain.SecretSet) (string, error)

	// SealToFile seals a raw payload and writes the envelope under key.
	SealToFile(ctx context.Context, key string, payload []byte) (string, error)

	// DecryptFromFile reads the envelope under key and loads it through the store.
	DecryptFromFile(ctx context.Context, key string, opts store.LoadOptions) (envelopeDomain.SecretSet, error)

	// ReadEnvelope returns the envelope under key without decrypting it.
	ReadEnvelope(ctx context.Context, key string) (string, error)
}
