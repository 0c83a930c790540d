package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	secretfileUseCase "github.com/allisson/gitops-secrets/internal/secretfile/usecase"
	"github.com/allisson/gitops-secrets/internal/store"
)

// RunWithSecrets decrypts the envelope file under inputKey, merges the secrets
// into the process environment once, then runs args with that environment.
//
// The child inherits stdio and the command's exit status is reported as an error.
func RunWithSecrets(
	ctx context.Context,
	files secretfileUseCase.SecretFileUseCase,
	logger *slog.Logger,
	stdio IOTuple,
	inputKey string,
	args []string,
) error {
	if len(args) == 0 {
		return fmt.Errorf("no command given (usage: run [--input key] -- command [args...])")
	}

	set, err := files.DecryptFromFile(ctx, inputKey, store.LoadOptions{Cache: true, PopulateEnv: true})
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	logger.Debug("environment populated",
		slog.Int("secret_count", len(set)),
		slog.String("command", args[0]),
	)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = stdio.Reader
	cmd.Stdout = stdio.Writer
	cmd.Stderr = stdio.ErrWriter

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %s failed: %w", args[0], err)
	}
	return nil
}
