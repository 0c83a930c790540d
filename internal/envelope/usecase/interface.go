// Package usecase implements the envelope codec: turning a secret set into a
// self-describing encrypted string and back.
package usecase

import (
	"context"

	envelopeDomain "github.com/allisson/gitops-secrets/internal/envelope/domain"
)

// EnvelopeUseCase encodes and decodes envelopes.
//
// Every envelope produced by Encode or Seal decodes with Decode or Open on any
// codec that has access to the same master key, whatever its own defaults are.
type EnvelopeUseCase interface {
	// Encode serializes set as canonical JSON and seals it into an envelope.
	Encode(ctx context.Context, set envelopeDomain.SecretSet) (string, error)

	// Decode opens an envelope and parses the plaintext as a JSON object of strings.
	Decode(ctx context.Context, envelope string) (envelopeDomain.SecretSet, error)

	// Seal encrypts an arbitrary payload into an envelope.
	Seal(ctx context.Context, plaintext []byte) (string, error)

	// Open decrypts an envelope and returns the raw payload.
	//
	// Security Note: callers MUST zero the returned slice after use by calling
	// cryptoDomain.Zero.
	Open(ctx context.Context, envelope string) ([]byte, error)
}
