package app

import (
	"fmt"

	envelopeUseCase "github.com/allisson/gitops-secrets/internal/envelope/usecase"
	"github.com/allisson/gitops-secrets/internal/store"
)

// EnvelopeUseCase returns the envelope codec, instrumented when metrics are enabled.
func (c *Container) EnvelopeUseCase() (envelopeUseCase.EnvelopeUseCase, error) {
	var err error
	c.envelopeUseCaseInit.Do(func() {
		c.envelopeUseCase, err = c.initEnvelopeUseCase()
		if err != nil {
			c.setInitError("envelopeUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("envelopeUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.envelopeUseCase, nil
}

// SecretStore returns the process wide secret cache.
func (c *Container) SecretStore() (*store.SecretStore, error) {
	var err error
	c.secretStoreInit.Do(func() {
		c.secretStore, err = c.initSecretStore()
		if err != nil {
			c.setInitError("secretStore", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("secretStore"); storedErr != nil {
		return nil, storedErr
	}
	return c.secretStore, nil
}

// initEnvelopeUseCase creates the envelope codec with its dependencies.
func (c *Container) initEnvelopeUseCase() (envelopeUseCase.EnvelopeUseCase, error) {
	useCase, err := envelopeUseCase.NewEnvelopeUseCase(
		c.KeyDeriver(),
		c.AEADManager(),
		envelopeUseCase.Config{
			Rounds:    c.config.KDFRounds,
			KeyLength: c.config.KDFKeyLength,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create envelope use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for envelope use case: %w", err)
	}

	if c.config.MetricsEnabled {
		return envelopeUseCase.NewEnvelopeUseCaseWithMetrics(useCase, businessMetrics), nil
	}
	return useCase, nil
}

// initSecretStore creates the secret store writing with os.Setenv.
func (c *Container) initSecretStore() (*store.SecretStore, error) {
	useCase, err := c.EnvelopeUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get envelope use case for secret store: %w", err)
	}
	return store.NewSecretStore(useCase, nil, c.Logger()), nil
}
