// Package service implements the secrets provider retrieval strategies: the
// locally installed agent and the remote HTTPS API.
package service

import (
	"context"

	providerDomain "github.com/allisson/gitops-secrets/internal/provider/domain"
)

// Strategy retrieves a raw provider payload in a given format.
//
// Download never returns a Go error. Every result, including failures, is an
// Attempt so the caller can decide whether to fall back.
type Strategy interface {
	Name() string
	Download(ctx context.Context, format providerDomain.Format) providerDomain.Attempt
}

// CommandRunner runs an external command and captures its output.
type CommandRunner interface {
	// Run executes name with args. A non-nil error means the command could not
	// start or exited with a non-zero status.
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}
