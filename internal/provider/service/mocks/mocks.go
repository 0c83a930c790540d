// Package mocks provides testify mocks for the provider service interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	providerDomain "github.com/allisson/gitops-secrets/internal/provider/domain"
)

// MockStrategy is a mock implementation of Strategy for testing.
type MockStrategy struct {
	mock.Mock
}

// Name mocks the Name method of Strategy.
func (m *MockStrategy) Name() string {
	args := m.Called()
	return args.String(0)
}

// Download mocks the Download method of Strategy.
func (m *MockStrategy) Download(ctx context.Context, format providerDomain.Format) providerDomain.Attempt {
	args := m.Called(ctx, format)
	return args.Get(0).(providerDomain.Attempt)
}

// MockCommandRunner is a mock implementation of CommandRunner for testing.
type MockCommandRunner struct {
	mock.Mock
}

// Run mocks the Run method of CommandRunner.
func (m *MockCommandRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	callArgs := m.Called(ctx, name, args)
	var stdout, stderr []byte
	if v := callArgs.Get(0); v != nil {
		stdout = v.([]byte)
	}
	if v := callArgs.Get(1); v != nil {
		stderr = v.([]byte)
	}
	return stdout, stderr, callArgs.Error(2)
}
