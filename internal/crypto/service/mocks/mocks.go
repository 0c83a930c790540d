// Package mocks provides testify mocks for the crypto service interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/allisson/gitops-secrets/internal/crypto/domain"
	cryptoService "github.com/allisson/gitops-secrets/internal/crypto/service"
)

// MockKeyDeriver is a mock implementation of KeyDeriver for testing.
type MockKeyDeriver struct {
	mock.Mock
}

// DeriveKey mocks the DeriveKey method of KeyDeriver.
func (m *MockKeyDeriver) DeriveKey(salt []byte, rounds, keyLength int) ([]byte, error) {
	args := m.Called(salt, rounds, keyLength)
	if rf, ok := args.Get(0).(func([]byte, int, int) ([]byte, error)); ok {
		return rf(salt, rounds, keyLength)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockAEADManager is a mock implementation of AEADManager for testing.
type MockAEADManager struct {
	mock.Mock
}

// CreateCipher mocks the CreateCipher method of AEADManager.
func (m *MockAEADManager) CreateCipher(key []byte, alg cryptoDomain.Algorithm) (cryptoService.AEAD, error) {
	args := m.Called(key, alg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(cryptoService.AEAD), args.Error(1)
}

var (
	_ cryptoService.KeyDeriver  = (*MockKeyDeriver)(nil)
	_ cryptoService.AEADManager = (*MockAEADManager)(nil)
)
