package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	providerDomain "github.com/allisson/gitops-secrets/internal/provider/domain"
)

// DefaultAgentPath is the agent binary looked up on PATH when none is configured.
const DefaultAgentPath = "doppler"

// LocalAgent downloads secrets through the provider's command line agent.
//
// The agent is probed first by running it without arguments. A missing binary
// or a non-zero exit makes the strategy inapplicable rather than failed, since
// most environments (CI, production) do not have it.
type LocalAgent struct {
	path   string
	runner CommandRunner
	logger *slog.Logger
}

// NewLocalAgent creates a LocalAgent. An empty path uses DefaultAgentPath.
func NewLocalAgent(path string, runner CommandRunner, logger *slog.Logger) *LocalAgent {
	if path == "" {
		path = DefaultAgentPath
	}
	return &LocalAgent{
		path:   path,
		runner: runner,
		logger: logger,
	}
}

// Name returns the strategy name.
func (a *LocalAgent) Name() string {
	return providerDomain.StrategyLocalAgent
}

// Download runs `<agent> secrets download --format <format> --no-file`.
func (a *LocalAgent) Download(ctx context.Context, format providerDomain.Format) providerDomain.Attempt {
	if err := format.Validate(); err != nil {
		return providerDomain.NewFailed(a.Name(), err)
	}

	if _, _, err := a.runner.Run(ctx, a.path); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return providerDomain.NewFailed(a.Name(), ctxErr)
		}
		a.logger.Debug("local agent not available", slog.String("path", a.path))
		return providerDomain.NewInapplicable(a.Name(), fmt.Errorf("%w: %v", providerDomain.ErrAgentUnavailable, err))
	}

	a.logger.Debug("fetching secrets from local agent", slog.String("format", string(format)))

	stdout, stderr, err := a.runner.Run(ctx, a.path, "secrets", "download", "--format", string(format), "--no-file")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return providerDomain.NewFailed(a.Name(), ctxErr)
		}
		msg := strings.TrimSpace(string(stderr))
		if msg == "" {
			msg = err.Error()
		}
		return providerDomain.NewFailed(a.Name(), fmt.Errorf("%w: %s", providerDomain.ErrAgentFailed, msg))
	}

	if len(bytes.TrimSpace(stdout)) == 0 {
		return providerDomain.NewInapplicable(
			a.Name(),
			fmt.Errorf("%w: empty output", providerDomain.ErrAgentUnavailable),
		)
	}

	return providerDomain.NewApplicable(a.Name(), stdout)
}
