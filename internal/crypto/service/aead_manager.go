package service

import (
	cryptoDomain "github.com/allisson/gitops-secrets/internal/crypto/domain"
)

// AEADManagerService implements the AEADManager interface for creating AEAD cipher instances.
type AEADManagerService struct{}

// NewAEADManager creates a new AEADManagerService.
func NewAEADManager() *AEADManagerService {
	return &AEADManagerService{}
}

// CreateCipher creates an AEAD cipher instance for the specified algorithm.
// Returns ErrInvalidKeySize if the key is not a valid AES key or ErrUnsupportedAlgorithm
// if the algorithm is unknown.
func (am *AEADManagerService) CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error) {
	switch alg {
	case cryptoDomain.AESGCM:
		return NewAESGCM(key)
	default:
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}
}
