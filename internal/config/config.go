// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	secretfileDomain "github.com/allisson/gitops-secrets/internal/secretfile/domain"
	customValidation "github.com/allisson/gitops-secrets/internal/validation"
)

// DebugNamespace enables debug logging when it appears in the DEBUG variable.
const DebugNamespace = "gitops-secrets"

// Config holds all application configuration.
//
// The master key is not part of Config. It is read from
// GITOPS_SECRETS_MASTER_KEY at every key derivation, never at load time.
type Config struct {
	// KDFRounds is the PBKDF2 iteration count for new envelopes.
	KDFRounds int
	// KDFKeyLength is the derived key length in bytes for new envelopes.
	KDFKeyLength int

	// ProviderToken is the remote API service token.
	ProviderToken string
	// ProviderAPIURL is the remote API base URL.
	ProviderAPIURL string
	// ProviderCLIPath is the local agent binary.
	ProviderCLIPath string
	// ProviderTimeout bounds each remote API request.
	ProviderTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsTextfile is where metrics are written on exit. Empty disables the dump.
	MetricsTextfile string

	// SecretsBucketURL is the gocloud.dev blob URL holding envelope files.
	SecretsBucketURL string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	cfg := &Config{
		// Key derivation for new envelopes
		KDFRounds:    env.GetInt("GITOPS_SECRETS_PBKDF2_ROUNDS", 1000000),
		KDFKeyLength: env.GetInt("GITOPS_SECRETS_PBKDF2_KEYLEN", 32),

		// Secrets provider
		ProviderToken:   env.GetString("DOPPLER_TOKEN", ""),
		ProviderAPIURL:  env.GetString("PROVIDER_API_URL", "https://api.doppler.com"),
		ProviderCLIPath: env.GetString("PROVIDER_CLI_PATH", "doppler"),
		ProviderTimeout: env.GetDuration("PROVIDER_TIMEOUT_SECONDS", 30, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "gitops_secrets"),
		MetricsTextfile:  env.GetString("METRICS_TEXTFILE", ""),

		// Envelope files
		SecretsBucketURL: env.GetString("SECRETS_BUCKET_URL", secretfileDomain.DefaultBucketURL),
	}

	if strings.Contains(env.GetString("DEBUG", ""), DebugNamespace) {
		cfg.LogLevel = "debug"
	}

	return cfg
}

// Validate checks value ranges. It never inspects the master key or the token.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.KDFRounds, validation.Required, validation.Min(1)),
		validation.Field(&c.KDFKeyLength, validation.Required, customValidation.KeyLength),
		validation.Field(&c.ProviderAPIURL, validation.Required, customValidation.HTTPURL),
		validation.Field(&c.ProviderCLIPath, validation.Required),
		validation.Field(&c.ProviderTimeout, validation.Min(time.Duration(0))),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.MetricsNamespace, validation.When(c.MetricsEnabled, validation.Required)),
		validation.Field(&c.SecretsBucketURL, validation.Required),
	)
	return customValidation.WrapValidationError(err)
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
