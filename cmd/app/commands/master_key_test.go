package commands

import (
	"bytes"
	"encoding/base64"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/gitops-secrets/internal/crypto/domain"
)

func TestRunCreateMasterKey(t *testing.T) {
	pattern := regexp.MustCompile(`GITOPS_SECRETS_MASTER_KEY="([A-Za-z0-9+/=]+)"`)

	t.Run("success", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RunCreateMasterKey(testLogger, &out))

		match := pattern.FindStringSubmatch(out.String())
		require.Len(t, match, 2)

		raw, err := base64.StdEncoding.DecodeString(match[1])
		require.NoError(t, err)
		assert.Len(t, raw, 32)

		_, err = cryptoDomain.ValidateMasterKey(match[1])
		assert.NoError(t, err)
	})

	t.Run("unique", func(t *testing.T) {
		var first, second bytes.Buffer
		require.NoError(t, RunCreateMasterKey(testLogger, &first))
		require.NoError(t, RunCreateMasterKey(testLogger, &second))
		assert.NotEqual(t, first.String(), second.String())
	})
}
