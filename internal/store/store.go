// Package store owns the decrypted secret cache and every write to the process
// environment made on behalf of decrypted secrets.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/sync/singleflight"

	envelopeDomain "github.com/allisson/gitops-secrets/internal/envelope/domain"
)

// Decoder turns an envelope into a secret set.
type Decoder interface {
	Decode(ctx context.Context, envelope string) (envelopeDomain.SecretSet, error)
}

// EnvironmentSetter writes one variable into the process environment.
type EnvironmentSetter func(key, value string) error

// LoadOptions controls caching and environment population for Load.
type LoadOptions struct {
	// Cache reuses the entry for the same envelope and stores fresh results.
	Cache bool
	// PopulateEnv merges the set into the environment. With Cache it happens
	// at most once per cache entry.
	PopulateEnv bool
}

// entry is the single cached decode result.
type entry struct {
	envelope  string
	set       envelopeDomain.SecretSet
	populated bool
}

// SecretStore caches the most recently decoded secret set.
//
// The entry lives until Invalidate is called or a different envelope is
// loaded with caching enabled. There is no time based expiry. Concurrent cold
// loads of the same envelope share one decode.
type SecretStore struct {
	decoder Decoder
	setenv  EnvironmentSetter
	logger  *slog.Logger

	mu    sync.Mutex
	entry *entry
	group singleflight.Group
}

// NewSecretStore creates a SecretStore. A nil setenv writes with os.Setenv.
func NewSecretStore(decoder Decoder, setenv EnvironmentSetter, logger *slog.Logger) *SecretStore {
	if setenv == nil {
		setenv = os.Setenv
	}
	return &SecretStore{
		decoder: decoder,
		setenv:  setenv,
		logger:  logger,
	}
}

// Load decodes envelope, consulting and updating the cache when opts.Cache is set.
//
// A cache hit returns a copy of the cached set without deriving a key. With
// Cache unset the envelope is always decoded and the cache is left untouched.
func (s *SecretStore) Load(
	ctx context.Context,
	envelope string,
	opts LoadOptions,
) (envelopeDomain.SecretSet, error) {
	if !opts.Cache {
		set, err := s.decoder.Decode(ctx, envelope)
		if err != nil {
			return nil, err
		}
		if opts.PopulateEnv {
			if err := s.PopulateEnvironment(set); err != nil {
				return nil, err
			}
		}
		return set, nil
	}

	v, err, shared := s.group.Do(envelope, func() (any, error) {
		if e := s.lookup(envelope); e != nil {
			s.logger.Debug("secrets loaded from cache", slog.Int("keys", len(e.set)))
			return e, nil
		}

		set, err := s.decoder.Decode(ctx, envelope)
		if err != nil {
			return nil, err
		}

		e := &entry{envelope: envelope, set: set}
		s.mu.Lock()
		s.entry = e
		s.mu.Unlock()

		s.logger.Debug("secrets decoded and cached", slog.Int("keys", len(set)))
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("concurrent load shared a single decode")
	}

	e := v.(*entry)

	s.mu.Lock()
	defer s.mu.Unlock()

	if opts.PopulateEnv && !e.populated {
		if err := s.populateLocked(e.set); err != nil {
			return nil, err
		}
		e.populated = true
	}

	return e.set.Clone(), nil
}

// PopulateEnvironment merges set into the process environment. Keys in set
// overwrite existing variables of the same name.
func (s *SecretStore) PopulateEnvironment(set envelopeDomain.SecretSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.populateLocked(set)
}

// Invalidate drops the cached entry. The next cached Load decodes again and
// may populate the environment again.
func (s *SecretStore) Invalidate() {
	s.mu.Lock()
	s.entry = nil
	s.mu.Unlock()
}

func (s *SecretStore) lookup(envelope string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entry != nil && s.entry.envelope == envelope {
		return s.entry
	}
	return nil
}

// populateLocked requires s.mu to be held.
func (s *SecretStore) populateLocked(set envelopeDomain.SecretSet) error {
	for _, key := range set.Keys() {
		if err := s.setenv(key, set[key]); err != nil {
			return fmt.Errorf("failed to set environment variable %s: %w", key, err)
		}
	}
	s.logger.Debug("environment populated", slog.Int("keys", len(set)))
	return nil
}
