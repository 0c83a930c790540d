package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/allisson/gitops-secrets/internal/crypto/domain"
)

// AESGCMCipher implements the AEAD interface using AES-GCM.
//
// Security properties:
//   - 128, 192 or 256-bit key, chosen by the envelope's key length
//   - 12-byte nonce, randomly generated inside every Encrypt call
//   - 16-byte authentication tag, appended to the ciphertext
//
// Nonces are never accepted from callers on encryption, so a nonce cannot be
// reused under the same key by mistake.
//
// Thread safety:
//
//	The cipher instance is stateless and safe for concurrent use from multiple
//	goroutines.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates a new AES-GCM cipher instance.
//
// The key must be 16, 24 or 32 bytes. Any other length returns ErrInvalidKeySize.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if !cryptoDomain.ValidKeyLength(len(key)) {
		return nil, fmt.Errorf("%w: got %d bytes", cryptoDomain.ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Encrypt encrypts plaintext using AES-GCM with optional additional authenticated data.
//
// A unique 12-byte nonce is drawn from crypto/rand for each call and returned
// alongside the ciphertext. The returned ciphertext has the 16-byte tag appended.
func (a *AESGCMCipher) Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, a.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext = a.aead.Seal(nil, nonce, plaintext, aad)
	return ciphertext, nonce, nil
}

// Decrypt verifies the authentication tag and decrypts ciphertext.
//
// Verification happens before any plaintext is released. On failure it returns
// ErrDecryptionFailed and a nil slice.
func (a *AESGCMCipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	if len(nonce) != a.aead.NonceSize() {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	plaintext, err := a.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}
