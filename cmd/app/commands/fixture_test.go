package commands

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	cryptoDomain "github.com/allisson/gitops-secrets/internal/crypto/domain"
	cryptoService "github.com/allisson/gitops-secrets/internal/crypto/service"
	envelopeUseCase "github.com/allisson/gitops-secrets/internal/envelope/usecase"
	secretfileRepository "github.com/allisson/gitops-secrets/internal/secretfile/repository"
	secretfileUseCase "github.com/allisson/gitops-secrets/internal/secretfile/usecase"
	"github.com/allisson/gitops-secrets/internal/store"
)

const testMasterKey = "1e18cc54-1d77-45a1-ae46-fecebce35ae2"

var testLogger = slog.New(slog.DiscardHandler)

// commandFixture wires the real codec, store and a memory bucket.
type commandFixture struct {
	codec envelopeUseCase.EnvelopeUseCase
	files secretfileUseCase.SecretFileUseCase
	store *store.SecretStore
}

func newCommandFixture(t *testing.T) *commandFixture {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() {
		assert.NoError(t, bucket.Close())
	})

	codec, err := envelopeUseCase.NewEnvelopeUseCase(
		cryptoService.NewPBKDF2KeyDeriver(cryptoDomain.StaticMasterKey(testMasterKey)),
		cryptoService.NewAEADManager(),
		envelopeUseCase.Config{Rounds: 1000, KeyLength: 32},
	)
	require.NoError(t, err)

	secretStore := store.NewSecretStore(codec, nil, testLogger)
	files := secretfileUseCase.NewSecretFileUseCase(
		secretfileRepository.NewBlobEnvelopeRepository(bucket),
		codec,
		secretStore,
		testLogger,
	)

	return &commandFixture{codec: codec, files: files, store: secretStore}
}
