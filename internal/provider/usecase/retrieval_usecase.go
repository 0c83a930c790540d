package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	envelopeDomain "github.com/allisson/gitops-secrets/internal/envelope/domain"
	providerDomain "github.com/allisson/gitops-secrets/internal/provider/domain"
	providerService "github.com/allisson/gitops-secrets/internal/provider/service"
)

// Step is one entry of the fallback order.
//
// A failure of an optional step is recorded and the next step is tried. A
// failure of a non-optional step ends the retrieval with that error.
type Step struct {
	Strategy providerService.Strategy
	Optional bool
}

// retrievalUseCase implements RetrievalUseCase over an ordered list of steps.
type retrievalUseCase struct {
	steps  []Step
	logger *slog.Logger
}

// Fetch evaluates the steps in order, one at a time, and stops at the first
// applicable one.
func (r *retrievalUseCase) Fetch(
	ctx context.Context,
	format providerDomain.Format,
) (*providerDomain.Retrieval, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	retrieval := &providerDomain.Retrieval{
		ID:     uuid.Must(uuid.NewV7()),
		Format: format,
	}
	logger := r.logger.With(slog.String("retrieval_id", retrieval.ID.String()))

	for _, step := range r.steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		attempt := step.Strategy.Download(ctx, format)
		retrieval.Attempts = append(retrieval.Attempts, attempt)

		attrs := []any{
			slog.String("strategy", attempt.Strategy),
			slog.String("outcome", attempt.Outcome.String()),
		}
		if attempt.Err != nil {
			attrs = append(attrs, slog.String("reason", attempt.Err.Error()))
		}
		logger.Debug("provider strategy attempted", attrs...)

		switch attempt.Outcome {
		case providerDomain.Applicable:
			retrieval.Source = attempt.Strategy
			retrieval.Payload = attempt.Payload
			logger.Debug("secrets fetched", slog.String("source", retrieval.Source))
			return retrieval, nil
		case providerDomain.Failed:
			if !step.Optional {
				return nil, attempt.Err
			}
		}
	}

	return nil, providerDomain.ErrNoProvider
}

// FetchSecretSet fetches the json format and parses it.
func (r *retrievalUseCase) FetchSecretSet(ctx context.Context) (envelopeDomain.SecretSet, error) {
	retrieval, err := r.Fetch(ctx, providerDomain.FormatJSON)
	if err != nil {
		return nil, err
	}
	return envelopeDomain.ParseSecretSet(retrieval.Payload)
}

// NewRetrievalUseCase creates a RetrievalUseCase evaluating steps in order.
func NewRetrievalUseCase(steps []Step, logger *slog.Logger) RetrievalUseCase {
	return &retrievalUseCase{
		steps:  steps,
		logger: logger,
	}
}

// DefaultSteps returns the standard order: the local agent as an optional
// step, then the remote API as the authoritative one.
func DefaultSteps(local, remote providerService.Strategy) []Step {
	return []Step{
		{Strategy: local, Optional: true},
		{Strategy: remote, Optional: false},
	}
}
