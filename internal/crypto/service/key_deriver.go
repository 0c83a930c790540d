package service

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/allisson/gitops-secrets/internal/crypto/domain"
)

// PBKDF2KeyDeriver derives keys with PBKDF2-HMAC-SHA256 from the master key.
//
// The master key is requested from the source on every call and validated each
// time. Derivation takes about a second at production iteration counts.
type PBKDF2KeyDeriver struct {
	source cryptoDomain.MasterKeySource
}

// NewPBKDF2KeyDeriver creates a key deriver reading the master key from source.
func NewPBKDF2KeyDeriver(source cryptoDomain.MasterKeySource) *PBKDF2KeyDeriver {
	return &PBKDF2KeyDeriver{source: source}
}

// DeriveKey returns exactly keyLength bytes derived from the master key and salt.
//
// Returns:
//   - ErrMasterKeyNotSet / ErrMasterKeyTooShort when the master key is unusable
//   - ErrInvalidKDFParams when rounds is not positive or keyLength is not an AES key size
func (d *PBKDF2KeyDeriver) DeriveKey(salt []byte, rounds, keyLength int) ([]byte, error) {
	if rounds <= 0 {
		return nil, fmt.Errorf("%w: rounds must be positive, got %d", cryptoDomain.ErrInvalidKDFParams, rounds)
	}
	if !cryptoDomain.ValidKeyLength(keyLength) {
		return nil, fmt.Errorf(
			"%w: key length must be 16, 24 or 32 bytes, got %d",
			cryptoDomain.ErrInvalidKDFParams,
			keyLength,
		)
	}

	masterKey, err := d.source.MasterKey()
	if err != nil {
		return nil, err
	}

	return pbkdf2.Key([]byte(masterKey), salt, rounds, keyLength, sha256.New), nil
}
