package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/joho/godotenv"
)

// SecretSet maps variable names to secret values. Keys are unique and carry no order.
type SecretSet map[string]string

// PayloadFormat names a textual representation of a SecretSet.
type PayloadFormat string

const (
	// PayloadJSON is a JSON object of strings.
	PayloadJSON PayloadFormat = "json"
	// PayloadEnv is dotenv text with quoted values.
	PayloadEnv PayloadFormat = "env"
	// PayloadEnvNoQuotes is dotenv text without quotes.
	PayloadEnvNoQuotes PayloadFormat = "env-no-quotes"
	// PayloadDocker is the docker --env-file layout.
	PayloadDocker PayloadFormat = "docker"
)

// Clone returns an independent copy. A nil set clones to an empty set.
func (s SecretSet) Clone() SecretSet {
	if s == nil {
		return SecretSet{}
	}
	return maps.Clone(s)
}

// Keys returns the variable names in sorted order.
func (s SecretSet) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// MarshalCanonical encodes the set as JSON with sorted keys. A nil set encodes as {}.
func (s SecretSet) MarshalCanonical() ([]byte, error) {
	if s == nil {
		s = SecretSet{}
	}
	// encoding/json sorts map keys, which makes the output canonical.
	return json.Marshal(map[string]string(s))
}

// MarshalEnv renders the set as dotenv text with sorted keys.
func (s SecretSet) MarshalEnv() (string, error) {
	return godotenv.Marshal(map[string]string(s.Clone()))
}

// ParseSecretSet decodes a JSON object of strings.
//
// Anything else (invalid JSON, null, arrays, non-string values) returns
// ErrInvalidPayload. The payload content is never included in the error.
func ParseSecretSet(payload []byte) (SecretSet, error) {
	var set SecretSet
	decoder := json.NewDecoder(bytes.NewReader(payload))
	if err := decoder.Decode(&set); err != nil {
		return nil, fmt.Errorf("%w: not a JSON object of strings", ErrInvalidPayload)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON object", ErrInvalidPayload)
	}
	if set == nil {
		return nil, fmt.Errorf("%w: null payload", ErrInvalidPayload)
	}
	return set, nil
}

// ParsePayload decodes a provider or user payload of the given format into a SecretSet.
//
// JSON payloads go through ParseSecretSet; env, env-no-quotes and docker payloads
// are parsed as dotenv text. YAML is not supported.
func ParsePayload(payload []byte, format PayloadFormat) (SecretSet, error) {
	switch format {
	case PayloadJSON, "":
		return ParseSecretSet(payload)
	case PayloadEnv, PayloadEnvNoQuotes, PayloadDocker:
		values, err := godotenv.UnmarshalBytes(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid dotenv text", ErrInvalidPayload)
		}
		return SecretSet(values), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPayloadFormat, format)
	}
}
