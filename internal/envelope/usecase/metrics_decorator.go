package usecase

import (
	"context"
	"time"

	envelopeDomain "github.com/allisson/gitops-secrets/internal/envelope/domain"
	"github.com/allisson/gitops-secrets/internal/metrics"
)

// envelopeUseCaseWithMetrics decorates EnvelopeUseCase with metrics instrumentation.
type envelopeUseCaseWithMetrics struct {
	next    EnvelopeUseCase
	metrics metrics.BusinessMetrics
}

// NewEnvelopeUseCaseWithMetrics wraps an EnvelopeUseCase with metrics recording.
func NewEnvelopeUseCaseWithMetrics(useCase EnvelopeUseCase, m metrics.BusinessMetrics) EnvelopeUseCase {
	return &envelopeUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Encode records metrics for envelope encoding.
func (e *envelopeUseCaseWithMetrics) Encode(
	ctx context.Context,
	set envelopeDomain.SecretSet,
) (string, error) {
	start := time.Now()
	envelope, err := e.next.Encode(ctx, set)
	metrics.Observe(ctx, e.metrics, metrics.DomainEnvelope, "envelope_encode", start, err)
	return envelope, err
}

// Decode records metrics for envelope decoding.
func (e *envelopeUseCaseWithMetrics) Decode(
	ctx context.Context,
	envelope string,
) (envelopeDomain.SecretSet, error) {
	start := time.Now()
	set, err := e.next.Decode(ctx, envelope)
	metrics.Observe(ctx, e.metrics, metrics.DomainEnvelope, "envelope_decode", start, err)
	return set, err
}

// Seal records metrics for raw payload sealing.
func (e *envelopeUseCaseWithMetrics) Seal(ctx context.Context, plaintext []byte) (string, error) {
	start := time.Now()
	envelope, err := e.next.Seal(ctx, plaintext)
	metrics.Observe(ctx, e.metrics, metrics.DomainEnvelope, "envelope_seal", start, err)
	return envelope, err
}

// Open records metrics for raw payload opening.
func (e *envelopeUseCaseWithMetrics) Open(ctx context.Context, envelope string) ([]byte, error) {
	start := time.Now()
	plaintext, err := e.next.Open(ctx, envelope)
	metrics.Observe(ctx, e.metrics, metrics.DomainEnvelope, "envelope_open", start, err)
	return plaintext, err
}
