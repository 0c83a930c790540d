package usecase

import (
	"context"
	"log/slog"

	envelopeDomain "github.com/allisson/gitops-secrets/internal/envelope/domain"
	secretfileDomain "github.com/allisson/gitops-secrets/internal/secretfile/domain"
	"github.com/allisson/gitops-secrets/internal/store"
)

// secretFileUseCase implements SecretFileUseCase.
type secretFileUseCase struct {
	repo    EnvelopeRepository
	encoder Encoder
	loader  Loader
	logger  *slog.Logger
}

// EncryptToFile encodes set and writes it. Returns the written envelope.
func (s *secretFileUseCase) EncryptToFile(
	ctx context.Context,
	key string,
	set envelopeDomain.SecretSet,
) (string, error) {
	envelope, err := s.encoder.Encode(ctx, set)
	if err != nil {
		return "", err
	}
	return envelope, s.write(ctx, key, envelope)
}

// SealToFile seals payload and writes it. Returns the written envelope.
func (s *secretFileUseCase) SealToFile(ctx context.Context, key string, payload []byte) (string, error) {
	envelope, err := s.encoder.Seal(ctx, payload)
	if err != nil {
		return "", err
	}
	return envelope, s.write(ctx, key, envelope)
}

// DecryptFromFile reads and decodes the envelope stored under key.
func (s *secretFileUseCase) DecryptFromFile(
	ctx context.Context,
	key string,
	opts store.LoadOptions,
) (envelopeDomain.SecretSet, error) {
	envelope, err := s.ReadEnvelope(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.loader.Load(ctx, envelope, opts)
}

// ReadEnvelope returns the raw envelope stored under key.
func (s *secretFileUseCase) ReadEnvelope(ctx context.Context, key string) (string, error) {
	key = secretfileDomain.NormalizeKey(key)
	s.logger.Debug("reading secrets file", slog.String("key", key))
	return s.repo.Read(ctx, key)
}

func (s *secretFileUseCase) write(ctx context.Context, key, envelope string) error {
	key = secretfileDomain.NormalizeKey(key)
	if err := s.repo.Write(ctx, key, envelope); err != nil {
		return err
	}
	s.logger.Debug("secrets file written", slog.String("key", key))
	return nil
}

// NewSecretFileUseCase creates a new SecretFileUseCase.
func NewSecretFileUseCase(
	repo EnvelopeRepository,
	encoder Encoder,
	loader Loader,
	logger *slog.Logger,
) SecretFileUseCase {
	return &secretFileUseCase{
		repo:    repo,
		encoder: encoder,
		loader:  loader,
		logger:  logger,
	}
}
