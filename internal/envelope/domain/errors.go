package domain

import (
	"github.com/allisson/gitops-secrets/internal/errors"
)

// Envelope and payload error definitions.
//
// All of them wrap errors.ErrFormat (or errors.ErrInvalidInput for caller
// mistakes) so a caller can classify failures with errors.Is. Messages never
// contain envelope contents or plaintext.
var (
	// ErrUnknownFormatTag indicates the string does not start with a recognized format tag.
	ErrUnknownFormatTag = errors.Wrap(errors.ErrFormat, "unknown envelope format tag")

	// ErrInvalidFieldCount indicates the envelope has the wrong number of fields for its version.
	ErrInvalidFieldCount = errors.Wrap(errors.ErrFormat, "invalid envelope field count")

	// ErrInvalidKDFField indicates the rounds or key length field is not a usable integer.
	ErrInvalidKDFField = errors.Wrap(errors.ErrFormat, "invalid envelope key derivation field")

	// ErrInvalidBase64 indicates a binary field is not valid standard base64.
	ErrInvalidBase64 = errors.Wrap(errors.ErrFormat, "invalid envelope base64 field")

	// ErrInvalidSalt indicates the salt field is empty.
	ErrInvalidSalt = errors.Wrap(errors.ErrFormat, "invalid envelope salt")

	// ErrInvalidNonce indicates the nonce does not have the GCM nonce size.
	ErrInvalidNonce = errors.Wrap(errors.ErrFormat, "invalid envelope nonce")

	// ErrTruncatedCiphertext indicates the data field is shorter than an authentication tag.
	ErrTruncatedCiphertext = errors.Wrap(errors.ErrFormat, "truncated envelope ciphertext")

	// ErrInvalidPayload indicates decrypted or provided data is not a JSON object of strings.
	ErrInvalidPayload = errors.Wrap(errors.ErrFormat, "invalid secrets payload")

	// ErrUnsupportedPayloadFormat indicates a payload format that cannot be parsed into a SecretSet.
	ErrUnsupportedPayloadFormat = errors.Wrap(errors.ErrInvalidInput, "unsupported payload format")
)
