package usecase

import (
	"context"
	"time"

	envelopeDomain "github.com/allisson/gitops-secrets/internal/envelope/domain"
	"github.com/allisson/gitops-secrets/internal/metrics"
	providerDomain "github.com/allisson/gitops-secrets/internal/provider/domain"
)

// retrievalUseCaseWithMetrics decorates RetrievalUseCase with metrics instrumentation.
type retrievalUseCaseWithMetrics struct {
	next    RetrievalUseCase
	metrics metrics.BusinessMetrics
}

// NewRetrievalUseCaseWithMetrics wraps a RetrievalUseCase with metrics recording.
func NewRetrievalUseCaseWithMetrics(useCase RetrievalUseCase, m metrics.BusinessMetrics) RetrievalUseCase {
	return &retrievalUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Fetch records metrics for provider retrievals.
func (r *retrievalUseCaseWithMetrics) Fetch(
	ctx context.Context,
	format providerDomain.Format,
) (*providerDomain.Retrieval, error) {
	start := time.Now()
	retrieval, err := r.next.Fetch(ctx, format)
	metrics.Observe(ctx, r.metrics, metrics.DomainProvider, "provider_fetch", start, err)
	return retrieval, err
}

// FetchSecretSet records metrics for provider retrievals parsed into a SecretSet.
func (r *retrievalUseCaseWithMetrics) FetchSecretSet(ctx context.Context) (envelopeDomain.SecretSet, error) {
	start := time.Now()
	set, err := r.next.FetchSecretSet(ctx)
	metrics.Observe(ctx, r.metrics, metrics.DomainProvider, "provider_fetch_secret_set", start, err)
	return set, err
}
