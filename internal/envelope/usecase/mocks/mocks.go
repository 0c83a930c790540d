// Package mocks provides testify mocks for the envelope use case.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	envelopeDomain "github.com/allisson/gitops-secrets/internal/envelope/domain"
)

// MockEnvelopeUseCase is a mock implementation of EnvelopeUseCase for testing.
type MockEnvelopeUseCase struct {
	mock.Mock
}

// NewMockEnvelopeUseCase creates a mock and registers expectation checks on cleanup.
func NewMockEnvelopeUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEnvelopeUseCase {
	m := &MockEnvelopeUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Encode mocks the Encode method.
func (m *MockEnvelopeUseCase) Encode(ctx context.Context, set envelopeDomain.SecretSet) (string, error) {
	args := m.Called(ctx, set)
	return args.String(0), args.Error(1)
}

// Decode mocks the Decode method.
func (m *MockEnvelopeUseCase) Decode(ctx context.Context, envelope string) (envelopeDomain.SecretSet, error) {
	args := m.Called(ctx, envelope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(envelopeDomain.SecretSet), args.Error(1)
}

// Seal mocks the Seal method.
func (m *MockEnvelopeUseCase) Seal(ctx context.Context, plaintext []byte) (string, error) {
	args := m.Called(ctx, plaintext)
	return args.String(0), args.Error(1)
}

// Open mocks the Open method.
func (m *MockEnvelopeUseCase) Open(ctx context.Context, envelope string) ([]byte, error) {
	args := m.Called(ctx, envelope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
