// Package domain defines the secrets provider retrieval model: output formats,
// strategy attempts and their outcomes.
package domain

import (
	"fmt"

	validation "github.com/jellydator/validation"
)

// Format is a provider output format.
type Format string

// Supported output formats.
const (
	FormatJSON        Format = "json"
	FormatEnv         Format = "env"
	FormatYAML        Format = "yaml"
	FormatDocker      Format = "docker"
	FormatEnvNoQuotes Format = "env-no-quotes"
)

// Formats lists every supported output format in documentation order.
var Formats = []Format{FormatJSON, FormatEnv, FormatYAML, FormatDocker, FormatEnvNoQuotes}

// Validate checks that f is a supported format.
func (f Format) Validate() error {
	allowed := make([]interface{}, 0, len(Formats))
	for _, format := range Formats {
		allowed = append(allowed, string(format))
	}
	err := validation.Validate(string(f),
		validation.Required,
		validation.In(allowed...).Error("must be one of json, env, yaml, docker, env-no-quotes"),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}

// Strategy names used in attempts, logs and metrics.
const (
	StrategyLocalAgent = "local_agent"
	StrategyRemoteAPI  = "remote_api"
)

// Outcome is the result class of a single strategy attempt.
type Outcome int

const (
	// Applicable means the strategy produced a payload.
	Applicable Outcome = iota + 1
	// Inapplicable means the strategy cannot run here and the next one should be tried.
	Inapplicable
	// Failed means the strategy ran and failed.
	Failed
)

// String returns the outcome name used in logs.
func (o Outcome) String() string {
	switch o {
	case Applicable:
		return "applicable"
	case Inapplicable:
		return "inapplicable"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
