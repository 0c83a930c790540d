// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"gocloud.dev/blob"

	"github.com/allisson/gitops-secrets/internal/config"
	cryptoService "github.com/allisson/gitops-secrets/internal/crypto/service"
	envelopeUseCase "github.com/allisson/gitops-secrets/internal/envelope/usecase"
	"github.com/allisson/gitops-secrets/internal/metrics"
	providerService "github.com/allisson/gitops-secrets/internal/provider/service"
	providerUseCase "github.com/allisson/gitops-secrets/internal/provider/usecase"
	secretfileService "github.com/allisson/gitops-secrets/internal/secretfile/service"
	secretfileUseCase "github.com/allisson/gitops-secrets/internal/secretfile/usecase"
	"github.com/allisson/gitops-secrets/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	logOutput       io.Writer
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	bucket          *blob.Bucket

	// Services
	keyDeriver    cryptoService.KeyDeriver
	aeadManager   cryptoService.AEADManager
	commandRunner providerService.CommandRunner
	localAgent    providerService.Strategy
	remoteAPI     providerService.Strategy
	bucketService secretfileService.BucketService

	// Stores and repositories
	secretStore        *store.SecretStore
	envelopeRepository secretfileUseCase.EnvelopeRepository

	// Use Cases
	envelopeUseCase   envelopeUseCase.EnvelopeUseCase
	retrievalUseCase  providerUseCase.RetrievalUseCase
	secretFileUseCase secretfileUseCase.SecretFileUseCase

	// Initialization flags and mutex for thread-safety
	mu                     sync.Mutex
	loggerInit             sync.Once
	metricsProviderInit    sync.Once
	businessMetricsInit    sync.Once
	bucketInit             sync.Once
	keyDeriverInit         sync.Once
	aeadManagerInit        sync.Once
	commandRunnerInit      sync.Once
	localAgentInit         sync.Once
	remoteAPIInit          sync.Once
	bucketServiceInit      sync.Once
	secretStoreInit        sync.Once
	envelopeRepositoryInit sync.Once
	envelopeUseCaseInit    sync.Once
	retrievalUseCaseInit   sync.Once
	secretFileUseCaseInit  sync.Once
	initErrors             map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
// Logs are written to stderr because stdout carries decrypted payloads.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		logOutput:  os.Stderr,
		initErrors: make(map[string]error),
	}
}

// WithLogOutput redirects the logger. It must be called before Logger.
func (c *Container) WithLogOutput(w io.Writer) *Container {
	c.logOutput = w
	return c
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.setInitError("metricsProvider", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("metricsProvider"); storedErr != nil {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// A no-op implementation is returned when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.setInitError("businessMetrics", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("businessMetrics"); storedErr != nil {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// Shutdown performs cleanup of all initialized resources.
// It writes the metrics textfile when one is configured, then closes the
// metrics provider and the secrets bucket.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		if c.config.MetricsTextfile != "" {
			if err := c.metricsProvider.WriteTextfile(c.config.MetricsTextfile); err != nil {
				shutdownErrors = append(shutdownErrors, err)
			}
		}
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.bucket != nil {
		if err := c.bucket.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("secrets bucket close: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// setInitError records the first failure of a component.
func (c *Container) setInitError(name string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[name] = err
}

// initError returns the recorded failure of a component.
func (c *Container) initError(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(c.logOutput, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initMetricsProvider creates the OpenTelemetry provider when metrics are enabled.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}
	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}
