package service

import (
	"bytes"
	"context"
	"os/exec"
)

// ExecCommandRunner runs commands with os/exec, inheriting the process environment.
type ExecCommandRunner struct{}

// NewExecCommandRunner creates a CommandRunner backed by os/exec.
func NewExecCommandRunner() *ExecCommandRunner {
	return &ExecCommandRunner{}
}

// Run executes the command and waits for it. The process is killed when ctx is done.
func (r *ExecCommandRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
