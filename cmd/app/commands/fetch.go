package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	providerUseCase "github.com/allisson/gitops-secrets/internal/provider/usecase"
)

// RunFetch downloads secrets from the provider and writes the payload unchanged.
// The attempt trail is logged so a fallback to the remote API can be explained.
func RunFetch(
	ctx context.Context,
	retrieval providerUseCase.RetrievalUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	f, err := parseProviderFormat(format)
	if err != nil {
		return err
	}

	result, err := retrieval.Fetch(ctx, f)
	if err != nil {
		return fmt.Errorf("failed to fetch secrets: %w", err)
	}

	logger.Info("secrets fetched",
		slog.String("retrieval_id", result.ID.String()),
		slog.String("source", result.Source),
		slog.Int("attempts", len(result.Attempts)),
	)

	_, err = writer.Write(result.Payload)
	return err
}
