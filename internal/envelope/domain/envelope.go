package domain

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	cryptoDomain "github.com/allisson/gitops-secrets/internal/crypto/domain"
)

// Envelope is the parsed form of an encrypted secret set.
//
// It is self-contained: the KDF parameters used to seal it travel with it, so
// changing the process defaults never breaks envelopes written earlier. The
// master key never travels with it.
//
// Fields:
//   - Version: the layout the envelope was parsed from (VersionCurrent for new envelopes)
//   - Rounds: PBKDF2 iteration count used for this envelope
//   - KeyLength: derived key length in bytes used for this envelope
//   - Salt: random bytes, unique per encryption
//   - Nonce: random GCM nonce, unique per encryption
//   - Data: ciphertext with the 16-byte authentication tag appended
type Envelope struct {
	Version   Version
	Rounds    int
	KeyLength int
	Salt      []byte
	Nonce     []byte
	Data      []byte
}

// ParseEnvelope parses an envelope string.
//
// The parser is strict: a missing tag, a field count that does not match the
// detected version, non-numeric KDF fields or invalid base64 are all rejected.
// Truncated envelopes are never padded.
//
// Returns:
//   - ErrUnknownFormatTag if the "base64:" prefix is missing
//   - ErrInvalidFieldCount if the number of fields is wrong
//   - ErrInvalidKDFField if rounds or key length cannot be used
//   - ErrInvalidBase64 if a binary field does not decode
//   - ErrInvalidSalt, ErrInvalidNonce, ErrTruncatedCiphertext for bad binary fields
func ParseEnvelope(content string) (Envelope, error) {
	body, ok := strings.CutPrefix(strings.TrimSpace(content), FormatTag+Delimiter)
	if !ok {
		return Envelope{}, ErrUnknownFormatTag
	}

	env := Envelope{KeyLength: LegacyKeyLength, Rounds: LegacyRounds}

	var parts []string
	if strings.Contains(body, Delimiter) {
		env.Version = VersionCurrent
		parts = strings.Split(body, Delimiter)
	} else {
		parts = strings.Split(body, LegacyDelimiter)
		switch len(parts) {
		case VersionLegacyImplicit.fieldCount():
			env.Version = VersionLegacyImplicit
		case VersionLegacyRounds.fieldCount():
			env.Version = VersionLegacyRounds
		default:
			return Envelope{}, fmt.Errorf(
				"%w: expected %d or %d legacy fields, got %d",
				ErrInvalidFieldCount,
				VersionLegacyImplicit.fieldCount(),
				VersionLegacyRounds.fieldCount(),
				len(parts),
			)
		}
	}

	if want := env.Version.fieldCount(); len(parts) != want {
		return Envelope{}, fmt.Errorf(
			"%w: expected %d fields, got %d",
			ErrInvalidFieldCount,
			want,
			len(parts),
		)
	}

	var err error
	switch env.Version {
	case VersionCurrent:
		if env.Rounds, err = parsePositiveInt(parts[0], "rounds"); err != nil {
			return Envelope{}, err
		}
		if env.KeyLength, err = parsePositiveInt(parts[1], "key length"); err != nil {
			return Envelope{}, err
		}
		parts = parts[2:]
	case VersionLegacyRounds:
		if env.Rounds, err = parsePositiveInt(parts[0], "rounds"); err != nil {
			return Envelope{}, err
		}
		parts = parts[1:]
	}

	if !cryptoDomain.ValidKeyLength(env.KeyLength) {
		return Envelope{}, fmt.Errorf("%w: unsupported key length %d", ErrInvalidKDFField, env.KeyLength)
	}

	if env.Salt, err = decodeField(parts[0], "salt"); err != nil {
		return Envelope{}, err
	}
	if env.Nonce, err = decodeField(parts[1], "nonce"); err != nil {
		return Envelope{}, err
	}
	if env.Data, err = decodeField(parts[2], "data"); err != nil {
		return Envelope{}, err
	}

	if len(env.Salt) == 0 {
		return Envelope{}, ErrInvalidSalt
	}
	if len(env.Nonce) != cryptoDomain.NonceSize {
		return Envelope{}, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrInvalidNonce,
			cryptoDomain.NonceSize,
			len(env.Nonce),
		)
	}
	if len(env.Data) < cryptoDomain.TagSize {
		return Envelope{}, fmt.Errorf(
			"%w: expected at least %d bytes, got %d",
			ErrTruncatedCiphertext,
			cryptoDomain.TagSize,
			len(env.Data),
		)
	}

	return env, nil
}

// Ciphertext returns the encrypted bytes without the authentication tag.
func (e Envelope) Ciphertext() []byte {
	if len(e.Data) < cryptoDomain.TagSize {
		return nil
	}
	return e.Data[:len(e.Data)-cryptoDomain.TagSize]
}

// Tag returns the trailing authentication tag.
func (e Envelope) Tag() []byte {
	if len(e.Data) < cryptoDomain.TagSize {
		return nil
	}
	return e.Data[len(e.Data)-cryptoDomain.TagSize:]
}

// String serializes the envelope in the current format, whatever layout it was
// parsed from.
func (e Envelope) String() string {
	return strings.Join([]string{
		FormatTag,
		strconv.Itoa(e.Rounds),
		strconv.Itoa(e.KeyLength),
		base64.StdEncoding.EncodeToString(e.Salt),
		base64.StdEncoding.EncodeToString(e.Nonce),
		base64.StdEncoding.EncodeToString(e.Data),
	}, Delimiter)
}

// IsEnvelope reports whether content carries the envelope format tag.
// It does not validate the rest of the string.
func IsEnvelope(content string) bool {
	return strings.HasPrefix(strings.TrimSpace(content), FormatTag+Delimiter)
}

func parsePositiveInt(field, name string) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an integer", ErrInvalidKDFField, name)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrInvalidKDFField, name)
	}
	return n, nil
}

func decodeField(field, name string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(field)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBase64, name)
	}
	return b, nil
}
