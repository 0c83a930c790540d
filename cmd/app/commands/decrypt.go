package commands

import (
	"context"
	"fmt"
	"log/slog"

	cryptoDomain "github.com/allisson/gitops-secrets/internal/crypto/domain"
	envelopeDomain "github.com/allisson/gitops-secrets/internal/envelope/domain"
	envelopeUseCase "github.com/allisson/gitops-secrets/internal/envelope/usecase"
	secretfileUseCase "github.com/allisson/gitops-secrets/internal/secretfile/usecase"
)

// RunDecrypt decrypts an envelope and writes the secrets to stdio.Writer.
//
// The envelope is read from the secrets bucket under inputKey, or from
// stdio.Reader when inputKey is empty. format is json, env or raw.
func RunDecrypt(
	ctx context.Context,
	codec envelopeUseCase.EnvelopeUseCase,
	files secretfileUseCase.SecretFileUseCase,
	logger *slog.Logger,
	stdio IOTuple,
	inputKey string,
	format string,
) error {
	if format != "json" && format != "env" && format != FormatRaw {
		return fmt.Errorf("invalid format: %s (valid options: json, env, raw)", format)
	}

	var (
		envelope string
		err      error
	)
	if inputKey != "" {
		envelope, err = files.ReadEnvelope(ctx, inputKey)
	} else {
		envelope, err = readEnvelope(stdio.Reader)
	}
	if err != nil {
		return err
	}

	if format == FormatRaw {
		plaintext, err := codec.Open(ctx, envelope)
		if err != nil {
			return fmt.Errorf("failed to decrypt envelope: %w", err)
		}
		defer cryptoDomain.Zero(plaintext)
		_, err = stdio.Writer.Write(plaintext)
		return err
	}

	set, err := codec.Decode(ctx, envelope)
	if err != nil {
		return fmt.Errorf("failed to decrypt envelope: %w", err)
	}
	logger.Debug("secrets decrypted", slog.Int("secret_count", len(set)))

	output, err := renderSecretSet(set, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdio.Writer, output)
	return err
}

// renderSecretSet formats set as canonical JSON or dotenv text.
func renderSecretSet(set envelopeDomain.SecretSet, format string) (string, error) {
	if format == "env" {
		output, err := set.MarshalEnv()
		if err != nil {
			return "", fmt.Errorf("failed to render secrets: %w", err)
		}
		return output, nil
	}

	output, err := set.MarshalCanonical()
	if err != nil {
		return "", fmt.Errorf("failed to render secrets: %w", err)
	}
	return string(output), nil
}
