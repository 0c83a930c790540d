package domain

// Algorithm represents the AEAD algorithm used to seal an envelope.
//
// Only AES-GCM is written to envelopes. The envelope format tag identifies it
// implicitly, so the algorithm never travels inside the envelope text.
type Algorithm string

const (
	// AESGCM represents the AES-GCM authenticated encryption algorithm.
	//
	// Key features:
	//   - 128, 192 or 256-bit key (256-bit by default)
	//   - 12-byte nonce (96 bits)
	//   - 16-byte authentication tag appended to the ciphertext
	AESGCM Algorithm = "aes-gcm"
)

// Key derivation and AEAD sizing.
const (
	// MinMasterKeyLength is the minimum number of characters accepted for a master key.
	MinMasterKeyLength = 16

	// DefaultKDFRounds is the PBKDF2 iteration count for new envelopes when no override is configured.
	DefaultKDFRounds = 1_000_000

	// DefaultKeyLength is the derived key length in bytes for new envelopes (AES-256).
	DefaultKeyLength = 32

	// SaltSize is the number of random salt bytes generated per encryption.
	SaltSize = 8

	// NonceSize is the GCM nonce size in bytes.
	NonceSize = 12

	// TagSize is the GCM authentication tag size in bytes.
	TagSize = 16
)

// ValidKeyLength reports whether n is a key length AES accepts.
func ValidKeyLength(n int) bool {
	switch n {
	case 16, 24, 32:
		return true
	default:
		return false
	}
}
