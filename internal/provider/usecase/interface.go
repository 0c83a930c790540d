// Package usecase runs the secrets provider fallback: an optional local
// strategy first, then the authoritative remote one.
package usecase

import (
	"context"

	envelopeDomain "github.com/allisson/gitops-secrets/internal/envelope/domain"
	providerDomain "github.com/allisson/gitops-secrets/internal/provider/domain"
)

// RetrievalUseCase fetches raw secrets from the configured provider.
type RetrievalUseCase interface {
	// Fetch returns the first applicable payload in the requested format.
	Fetch(ctx context.Context, format providerDomain.Format) (*providerDomain.Retrieval, error)

	// FetchSecretSet fetches the json format and parses it into a SecretSet.
	FetchSecretSet(ctx context.Context) (envelopeDomain.SecretSet, error)
}
