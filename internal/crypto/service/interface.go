// Package service provides the cryptographic primitives behind envelopes:
// password-based key derivation and the AES-GCM AEAD cipher.
package service

import (
	cryptoDomain "github.com/allisson/gitops-secrets/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext (tag appended) and a fresh nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt verifies and decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KeyDeriver stretches the master key into a symmetric key.
type KeyDeriver interface {
	// DeriveKey derives keyLength bytes from the current master key and salt
	// using rounds iterations. Identical inputs always produce identical output.
	DeriveKey(salt []byte, rounds, keyLength int) ([]byte, error)
}
