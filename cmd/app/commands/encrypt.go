package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	envelopeDomain "github.com/allisson/gitops-secrets/internal/envelope/domain"
	envelopeUseCase "github.com/allisson/gitops-secrets/internal/envelope/usecase"
	providerUseCase "github.com/allisson/gitops-secrets/internal/provider/usecase"
	secretfileUseCase "github.com/allisson/gitops-secrets/internal/secretfile/usecase"
)

// EncryptOptions holds the flags of the encrypt command.
type EncryptOptions struct {
	// InputPath is a local file to read. Empty or "-" reads the command input.
	InputPath string
	// InputFormat is json, env, env-no-quotes, docker or raw.
	InputFormat string
	// FromProvider fetches the secrets from the provider instead of reading input.
	FromProvider bool
	// OutputKey stores the envelope in the secrets bucket. Empty prints it.
	OutputKey string
}

// RunEncrypt encrypts secrets into an envelope.
//
// files is only used when opts.OutputKey is set and retrieval only when
// opts.FromProvider is set, so either may be nil otherwise. Only the number of
// keys is logged, never their values.
func RunEncrypt(
	ctx context.Context,
	codec envelopeUseCase.EnvelopeUseCase,
	files secretfileUseCase.SecretFileUseCase,
	retrieval providerUseCase.RetrievalUseCase,
	logger *slog.Logger,
	stdio IOTuple,
	opts EncryptOptions,
) error {
	payloadFormat, raw, err := parseInputFormat(opts.InputFormat)
	if err != nil {
		return err
	}
	if raw && opts.FromProvider {
		return fmt.Errorf("--from-provider cannot be combined with --input-format raw")
	}

	var (
		set     envelopeDomain.SecretSet
		payload []byte
	)
	switch {
	case opts.FromProvider:
		set, err = retrieval.FetchSecretSet(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch secrets from provider: %w", err)
		}
	default:
		payload, err = readInput(stdio.Reader, opts.InputPath)
		if err != nil {
			return err
		}
		if !raw {
			set, err = envelopeDomain.ParsePayload(payload, payloadFormat)
			if err != nil {
				return fmt.Errorf("failed to parse input: %w", err)
			}
		}
	}

	var envelope string
	switch {
	case opts.OutputKey != "" && raw:
		envelope, err = files.SealToFile(ctx, opts.OutputKey, payload)
	case opts.OutputKey != "":
		envelope, err = files.EncryptToFile(ctx, opts.OutputKey, set)
	case raw:
		envelope, err = codec.Seal(ctx, payload)
	default:
		envelope, err = codec.Encode(ctx, set)
	}
	if err != nil {
		return fmt.Errorf("failed to encrypt secrets: %w", err)
	}

	if opts.OutputKey != "" {
		logger.Info("secrets encrypted to file",
			slog.String("key", opts.OutputKey),
			slog.Int("secret_count", len(set)),
		)
		return nil
	}

	logger.Debug("secrets encrypted", slog.Int("secret_count", len(set)))
	_, err = fmt.Fprintln(stdio.Writer, envelope)
	return err
}

// readInput reads path, or r when path is empty or "-".
func readInput(r io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}
