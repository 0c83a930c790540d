package usecase

import (
	"context"
	"crypto/rand"
	"fmt"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/gitops-secrets/internal/crypto/domain"
	cryptoService "github.com/allisson/gitops-secrets/internal/crypto/service"
	envelopeDomain "github.com/allisson/gitops-secrets/internal/envelope/domain"
	customValidation "github.com/allisson/gitops-secrets/internal/validation"
)

// Config holds the key derivation parameters used for new envelopes.
// Existing envelopes always decode with the parameters embedded in them.
type Config struct {
	Rounds    int
	KeyLength int
}

// DefaultConfig returns the parameters used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Rounds:    cryptoDomain.DefaultKDFRounds,
		KeyLength: cryptoDomain.DefaultKeyLength,
	}
}

// Validate checks the parameters can be used for encryption.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Rounds, validation.Required, validation.Min(1)),
		validation.Field(&c.KeyLength, validation.Required, customValidation.KeyLength),
	)
	return customValidation.WrapValidationError(err)
}

// envelopeUseCase implements EnvelopeUseCase with PBKDF2 and AES-GCM.
type envelopeUseCase struct {
	keyDeriver  cryptoService.KeyDeriver
	aeadManager cryptoService.AEADManager
	config      Config
}

// Encode serializes set as canonical JSON and seals it.
func (e *envelopeUseCase) Encode(ctx context.Context, set envelopeDomain.SecretSet) (string, error) {
	plaintext, err := set.MarshalCanonical()
	if err != nil {
		return "", fmt.Errorf("%w: %v", envelopeDomain.ErrInvalidPayload, err)
	}
	defer cryptoDomain.Zero(plaintext)

	return e.Seal(ctx, plaintext)
}

// Decode opens the envelope and parses the plaintext into a SecretSet.
func (e *envelopeUseCase) Decode(ctx context.Context, envelope string) (envelopeDomain.SecretSet, error) {
	plaintext, err := e.Open(ctx, envelope)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(plaintext)

	return envelopeDomain.ParseSecretSet(plaintext)
}

// Seal encrypts plaintext under a key derived from a fresh salt.
//
// Salt and nonce are generated on every call, so sealing the same plaintext
// twice never yields the same envelope.
func (e *envelopeUseCase) Seal(ctx context.Context, plaintext []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	salt := make([]byte, cryptoDomain.SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := e.keyDeriver.DeriveKey(salt, e.config.Rounds, e.config.KeyLength)
	if err != nil {
		return "", err
	}
	defer cryptoDomain.Zero(key)

	cipher, err := e.aeadManager.CreateCipher(key, cryptoDomain.AESGCM)
	if err != nil {
		return "", err
	}

	data, nonce, err := cipher.Encrypt(plaintext, nil)
	if err != nil {
		return "", err
	}

	env := envelopeDomain.Envelope{
		Version:   envelopeDomain.VersionCurrent,
		Rounds:    e.config.Rounds,
		KeyLength: e.config.KeyLength,
		Salt:      salt,
		Nonce:     nonce,
		Data:      data,
	}
	return env.String(), nil
}

// Open parses the envelope and decrypts it with the parameters it carries.
//
// The envelope is fully parsed before the master key is touched, so malformed
// input fails with a format error without paying for key derivation.
func (e *envelopeUseCase) Open(ctx context.Context, envelope string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	env, err := envelopeDomain.ParseEnvelope(envelope)
	if err != nil {
		return nil, err
	}

	key, err := e.keyDeriver.DeriveKey(env.Salt, env.Rounds, env.KeyLength)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	cipher, err := e.aeadManager.CreateCipher(key, cryptoDomain.AESGCM)
	if err != nil {
		return nil, err
	}

	return cipher.Decrypt(env.Data, env.Nonce, nil)
}

// NewEnvelopeUseCase creates a new EnvelopeUseCase.
//
// Returns ErrInvalidInput if config cannot be used for new envelopes.
func NewEnvelopeUseCase(
	keyDeriver cryptoService.KeyDeriver,
	aeadManager cryptoService.AEADManager,
	config Config,
) (EnvelopeUseCase, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &envelopeUseCase{
		keyDeriver:  keyDeriver,
		aeadManager: aeadManager,
		config:      config,
	}, nil
}
