package usecase

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	cryptoDomain "github.com/allisson/gitops-secrets/internal/crypto/domain"
	cryptoService "github.com/allisson/gitops-secrets/internal/crypto/service"
	envelopeDomain "github.com/allisson/gitops-secrets/internal/envelope/domain"
	envelopeUsecase "github.com/allisson/gitops-secrets/internal/envelope/usecase"
	apperrors "github.com/allisson/gitops-secrets/internal/errors"
	secretfileDomain "github.com/allisson/gitops-secrets/internal/secretfile/domain"
	"github.com/allisson/gitops-secrets/internal/secretfile/repository"
	"github.com/allisson/gitops-secrets/internal/store"
)

type fixture struct {
	useCase SecretFileUseCase
	repo    *repository.BlobEnvelopeRepository
	env     map[string]string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() {
		assert.NoError(t, bucket.Close())
	})

	codec, err := envelopeUsecase.NewEnvelopeUseCase(
		cryptoService.NewPBKDF2KeyDeriver(cryptoDomain.StaticMasterKey("1e18cc54-1d77-45a1-ae46-fecebce35ae2")),
		cryptoService.NewAEADManager(),
		envelopeUsecase.Config{Rounds: 1000, KeyLength: 32},
	)
	require.NoError(t, err)

	f := &fixture{
		repo: repository.NewBlobEnvelopeRepository(bucket),
		env:  map[string]string{},
	}
	logger := slog.New(slog.DiscardHandler)
	secretStore := store.NewSecretStore(codec, func(key, value string) error {
		f.env[key] = value
		return nil
	}, logger)
	f.useCase = NewSecretFileUseCase(f.repo, codec, secretStore, logger)
	return f
}

func TestSecretFileUseCase_EncryptToFile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	set := envelopeDomain.SecretSet{"API_KEY": "dfa64ad2-462e-4751-b46e-3660c91f1811"}

	envelope, err := f.useCase.EncryptToFile(ctx, "", set)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(envelope, "base64:1000:32:"))

	stored, err := f.repo.Read(ctx, secretfileDomain.DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, envelope, stored)

	decoded, err := f.useCase.DecryptFromFile(ctx, "", store.LoadOptions{Cache: true})
	require.NoError(t, err)
	assert.Equal(t, set, decoded)
	assert.Empty(t, f.env)
}

func TestSecretFileUseCase_DecryptFromFile_PopulateEnv(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.useCase.EncryptToFile(ctx, "prod.enc", envelopeDomain.SecretSet{"API_KEY": "v", "DEBUG": "0"})
	require.NoError(t, err)

	_, err = f.useCase.DecryptFromFile(ctx, "prod.enc", store.LoadOptions{Cache: true, PopulateEnv: true})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"API_KEY": "v", "DEBUG": "0"}, f.env)
}

func TestSecretFileUseCase_SealToFile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.useCase.SealToFile(ctx, ".env.enc", []byte("API_KEY=value\n"))
	require.NoError(t, err)

	envelope, err := f.useCase.ReadEnvelope(ctx, ".env.enc")
	require.NoError(t, err)
	assert.True(t, envelopeDomain.IsEnvelope(envelope))

	_, err = f.useCase.DecryptFromFile(ctx, ".env.enc", store.LoadOptions{})
	assert.ErrorIs(t, err, apperrors.ErrFormat)
}

func TestSecretFileUseCase_DecryptFromFile_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.useCase.DecryptFromFile(context.Background(), "missing.enc", store.LoadOptions{})
	assert.ErrorIs(t, err, secretfileDomain.ErrEnvelopeNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, secretfileDomain.DefaultKey, secretfileDomain.NormalizeKey("  "))
	assert.Equal(t, "app.enc", secretfileDomain.NormalizeKey(" app.enc "))
}
