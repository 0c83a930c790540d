package app

import (
	"fmt"

	providerService "github.com/allisson/gitops-secrets/internal/provider/service"
	providerUseCase "github.com/allisson/gitops-secrets/internal/provider/usecase"
)

// CommandRunner returns the runner used to invoke the local agent.
func (c *Container) CommandRunner() providerService.CommandRunner {
	c.commandRunnerInit.Do(func() {
		c.commandRunner = providerService.NewExecCommandRunner()
	})
	return c.commandRunner
}

// LocalAgent returns the local CLI agent strategy.
func (c *Container) LocalAgent() providerService.Strategy {
	c.localAgentInit.Do(func() {
		c.localAgent = providerService.NewLocalAgent(
			c.config.ProviderCLIPath,
			c.CommandRunner(),
			c.Logger(),
		)
	})
	return c.localAgent
}

// RemoteAPI returns the remote HTTPS API strategy.
func (c *Container) RemoteAPI() providerService.Strategy {
	c.remoteAPIInit.Do(func() {
		c.remoteAPI = providerService.NewRemoteAPI(
			c.config.ProviderAPIURL,
			c.config.ProviderToken,
			c.config.ProviderTimeout,
			c.Logger(),
		)
	})
	return c.remoteAPI
}

// RetrievalUseCase returns the provider fallback chain, instrumented when metrics are enabled.
func (c *Container) RetrievalUseCase() (providerUseCase.RetrievalUseCase, error) {
	var err error
	c.retrievalUseCaseInit.Do(func() {
		c.retrievalUseCase, err = c.initRetrievalUseCase()
		if err != nil {
			c.setInitError("retrievalUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("retrievalUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.retrievalUseCase, nil
}

// initRetrievalUseCase creates the retrieval use case over the default steps.
func (c *Container) initRetrievalUseCase() (providerUseCase.RetrievalUseCase, error) {
	steps := providerUseCase.DefaultSteps(c.LocalAgent(), c.RemoteAPI())
	useCase := providerUseCase.NewRetrievalUseCase(steps, c.Logger())

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for retrieval use case: %w", err)
	}

	if c.config.MetricsEnabled {
		return providerUseCase.NewRetrievalUseCaseWithMetrics(useCase, businessMetrics), nil
	}
	return useCase, nil
}
