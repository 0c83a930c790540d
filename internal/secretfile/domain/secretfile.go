// Package domain defines envelope file storage errors and defaults.
package domain

import (
	"strings"

	"github.com/allisson/gitops-secrets/internal/errors"
)

// DefaultKey is the object key used when none is given.
const DefaultKey = ".secrets.enc.json"

// DefaultBucketURL stores envelope files under ./.secrets relative to the
// working directory. metadata=skip keeps fileblob from writing .attrs sidecars
// next to files that get committed.
const DefaultBucketURL = "file://./.secrets?create_dir=true&metadata=skip"

// ErrEnvelopeNotFound indicates no envelope is stored under the key.
var ErrEnvelopeNotFound = errors.Wrap(errors.ErrNotFound, "envelope file not found")

// NormalizeKey trims the key and falls back to DefaultKey when it is empty.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return DefaultKey
	}
	return key
}
