package domain

import (
	"fmt"

	"github.com/allisson/gitops-secrets/internal/errors"
)

// Provider retrieval error definitions.
var (
	// ErrInvalidFormat indicates an output format the provider does not support.
	ErrInvalidFormat = errors.Wrap(errors.ErrInvalidInput, "invalid provider format")

	// ErrCredentialNotSet indicates the remote API token is not configured.
	ErrCredentialNotSet = errors.Wrap(errors.ErrConfiguration, "provider token not set")

	// ErrAgentUnavailable indicates the local agent is missing or not authenticated.
	ErrAgentUnavailable = errors.Wrap(errors.ErrProvider, "local agent unavailable")

	// ErrAgentFailed indicates the local agent ran but could not download secrets.
	ErrAgentFailed = errors.Wrap(errors.ErrProvider, "local agent download failed")

	// ErrPayloadTooLarge indicates a response body over the download size limit.
	ErrPayloadTooLarge = errors.Wrap(errors.ErrProvider, "provider payload too large")

	// ErrNoProvider indicates no strategy was able to produce a payload.
	ErrNoProvider = errors.Wrap(errors.ErrProvider, "no secrets provider available")
)

// ProviderError is a non-success response from the remote API.
type ProviderError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider API error: %s", e.Message)
}

// Unwrap lets errors.Is match errors.ErrProvider.
func (e *ProviderError) Unwrap() error {
	return errors.ErrProvider
}
