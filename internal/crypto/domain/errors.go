package domain

import (
	"github.com/allisson/gitops-secrets/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap the sentinels from internal/errors so callers
// can tell configuration problems from corrupted or forged data with errors.Is.
// None of them ever carries key material or plaintext.
var (
	// ErrMasterKeyNotSet indicates the master key variable is empty or absent.
	ErrMasterKeyNotSet = errors.Wrap(errors.ErrConfiguration, "master key not set")

	// ErrMasterKeyTooShort indicates the master key has fewer than MinMasterKeyLength characters.
	ErrMasterKeyTooShort = errors.Wrap(errors.ErrConfiguration, "master key too short")

	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKDFParams indicates the iteration count or key length cannot be used.
	//
	// Both values come from the envelope on decode, so this is a format problem
	// rather than a caller mistake.
	ErrInvalidKDFParams = errors.Wrap(errors.ErrFormat, "invalid key derivation parameters")

	// ErrInvalidKeySize indicates a derived key does not have a valid AES key length.
	ErrInvalidKeySize = errors.Wrap(errors.ErrFormat, "invalid key size")

	// ErrDecryptionFailed indicates the authentication tag did not verify.
	//
	// This error can occur due to:
	//   - Wrong master key
	//   - Ciphertext or tag has been tampered with
	//   - Corrupted salt or nonce
	//
	// The specific cause is not disclosed and no plaintext is returned.
	ErrDecryptionFailed = errors.Wrap(errors.ErrAuthentication, "decryption failed")
)
