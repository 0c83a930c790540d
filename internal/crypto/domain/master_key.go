package domain

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// DefaultMasterKeyEnv is the environment variable holding the master key.
const DefaultMasterKeyEnv = "GITOPS_SECRETS_MASTER_KEY"

// MasterKeySource supplies the master key passphrase at the moment a key is derived.
//
// The master key is never cached by callers: every derivation asks the source
// again, so a key that is missing or too short fails at the first cryptographic
// operation rather than at process start.
type MasterKeySource interface {
	MasterKey() (string, error)
}

// EnvMasterKey reads the master key from an environment variable on every call.
type EnvMasterKey struct {
	// Name is the environment variable to read. Empty means DefaultMasterKeyEnv.
	Name string
}

// NewEnvMasterKey creates a MasterKeySource bound to the given variable name.
func NewEnvMasterKey(name string) *EnvMasterKey {
	return &EnvMasterKey{Name: name}
}

// MasterKey returns the validated master key from the environment.
func (e *EnvMasterKey) MasterKey() (string, error) {
	name := e.Name
	if name == "" {
		name = DefaultMasterKeyEnv
	}
	key, err := ValidateMasterKey(os.Getenv(name))
	if err != nil {
		return "", fmt.Errorf("%w: %s must be set to a string of %d characters or more",
			err, name, MinMasterKeyLength)
	}
	return key, nil
}

// StaticMasterKey is a MasterKeySource with a fixed value, used by tests and
// programmatic callers that already hold the key.
type StaticMasterKey string

// MasterKey returns the validated static key.
func (s StaticMasterKey) MasterKey() (string, error) {
	return ValidateMasterKey(string(s))
}

// ValidateMasterKey checks presence and minimum length. The key itself never
// appears in the returned error.
func ValidateMasterKey(key string) (string, error) {
	if key == "" {
		return "", ErrMasterKeyNotSet
	}
	if utf8.RuneCountInString(key) < MinMasterKeyLength {
		return "", ErrMasterKeyTooShort
	}
	return key, nil
}

// Zero securely overwrites a byte slice with zeros to clear sensitive data from memory.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
