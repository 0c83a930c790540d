package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/allisson/gitops-secrets/internal/crypto/domain"
)

// masterKeyBytes is the amount of randomness behind a generated master key.
const masterKeyBytes = 32

// RunCreateMasterKey generates a cryptographically secure master key and prints
// it as an environment variable assignment. Key material is zeroed from memory
// after encoding.
//
// Output format:
//   - GITOPS_SECRETS_MASTER_KEY="<base64-encoded-32-bytes>"
//
// The key is a 44 character string, well above the 16 character minimum.
func RunCreateMasterKey(logger *slog.Logger, writer io.Writer) error {
	masterKey := make([]byte, masterKeyBytes)
	if _, err := rand.Read(masterKey); err != nil {
		return fmt.Errorf("failed to generate master key: %w", err)
	}
	defer cryptoDomain.Zero(masterKey)

	encodedKey := base64.StdEncoding.EncodeToString(masterKey)

	_, _ = fmt.Fprintln(writer, "# Master Key Configuration")
	_, _ = fmt.Fprintln(writer, "# Store this value in your CI secrets or deployment environment, never in git")
	_, _ = fmt.Fprintln(writer)
	if _, err := fmt.Fprintf(writer, "%s=\"%s\"\n", cryptoDomain.DefaultMasterKeyEnv, encodedKey); err != nil {
		return fmt.Errorf("failed to write master key: %w", err)
	}

	logger.Debug("master key generated")
	return nil
}
