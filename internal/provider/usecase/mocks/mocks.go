// Package mocks provides testify mocks for the provider use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	envelopeDomain "github.com/allisson/gitops-secrets/internal/envelope/domain"
	providerDomain "github.com/allisson/gitops-secrets/internal/provider/domain"
)

// MockRetrievalUseCase is a mock implementation of RetrievalUseCase for testing.
type MockRetrievalUseCase struct {
	mock.Mock
}

// NewMockRetrievalUseCase creates a mock and registers expectation checks on cleanup.
func NewMockRetrievalUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRetrievalUseCase {
	m := &MockRetrievalUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Fetch mocks the Fetch method.
func (m *MockRetrievalUseCase) Fetch(
	ctx context.Context,
	format providerDomain.Format,
) (*providerDomain.Retrieval, error) {
	args := m.Called(ctx, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*providerDomain.Retrieval), args.Error(1)
}

// FetchSecretSet mocks the FetchSecretSet method.
func (m *MockRetrievalUseCase) FetchSecretSet(ctx context.Context) (envelopeDomain.SecretSet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(envelopeDomain.SecretSet), args.Error(1)
}
