// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/allisson/gitops-secrets/internal/app"
	envelopeDomain "github.com/allisson/gitops-secrets/internal/envelope/domain"
	providerDomain "github.com/allisson/gitops-secrets/internal/provider/domain"
)

// FormatRaw selects an opaque payload sealed and opened without JSON parsing.
const FormatRaw = "raw"

// IOTuple holds reader and writers for commands, allowing for testing.
type IOTuple struct {
	Reader    io.Reader
	Writer    io.Writer
	ErrWriter io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin, os.Stdout and os.Stderr.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader:    os.Stdin,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}
}

// CloseContainer closes all resources in the container and logs any errors.
func CloseContainer(ctx context.Context, container *app.Container) {
	if err := container.Shutdown(ctx); err != nil {
		container.Logger().Error("failed to shutdown container", slog.Any("error", err))
	}
}

// parseInputFormat converts an --input-format value. raw is reported separately
// because it bypasses SecretSet parsing.
func parseInputFormat(format string) (envelopeDomain.PayloadFormat, bool, error) {
	switch format {
	case FormatRaw:
		return "", true, nil
	case "json", "":
		return envelopeDomain.PayloadJSON, false, nil
	case "env":
		return envelopeDomain.PayloadEnv, false, nil
	case "env-no-quotes":
		return envelopeDomain.PayloadEnvNoQuotes, false, nil
	case "docker":
		return envelopeDomain.PayloadDocker, false, nil
	default:
		return "", false, fmt.Errorf(
			"invalid input format: %s (valid options: json, env, env-no-quotes, docker, raw)",
			format,
		)
	}
}

// parseProviderFormat converts a --format value for the fetch command.
func parseProviderFormat(format string) (providerDomain.Format, error) {
	f := providerDomain.Format(format)
	if err := f.Validate(); err != nil {
		names := make([]string, 0, len(providerDomain.Formats))
		for _, known := range providerDomain.Formats {
			names = append(names, string(known))
		}
		return "", fmt.Errorf("%w (valid options: %s)", err, strings.Join(names, ", "))
	}
	return f, nil
}

// readEnvelope reads an envelope from r, trimming surrounding whitespace.
func readEnvelope(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read envelope: %w", err)
	}
	envelope := strings.TrimSpace(string(data))
	if envelope == "" {
		return "", fmt.Errorf("no envelope provided on standard input")
	}
	return envelope, nil
}
