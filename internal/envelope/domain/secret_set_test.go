package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/gitops-secrets/internal/errors"
)

func TestSecretSet_MarshalCanonical(t *testing.T) {
	t.Run("keys are sorted", func(t *testing.T) {
		data, err := SecretSet{"B": "2", "A": "1"}.MarshalCanonical()
		require.NoError(t, err)
		assert.Equal(t, `{"A":"1","B":"2"}`, string(data))
	})

	t.Run("nil set encodes as empty object", func(t *testing.T) {
		var set SecretSet
		data, err := set.MarshalCanonical()
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
	})
}

func TestSecretSet_Clone(t *testing.T) {
	original := SecretSet{"A": "1"}
	clone := original.Clone()
	clone["A"] = "changed"
	assert.Equal(t, "1", original["A"])

	var nilSet SecretSet
	assert.Equal(t, SecretSet{}, nilSet.Clone())
}

func TestSecretSet_Keys(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, SecretSet{"C": "", "A": "", "B": ""}.Keys())
}

func TestSecretSet_MarshalEnv(t *testing.T) {
	out, err := SecretSet{"B": "two words", "A": "1"}.MarshalEnv()
	require.NoError(t, err)
	assert.Equal(t, "A=1\nB=\"two words\"", out)
}

func TestParseSecretSet(t *testing.T) {
	t.Run("object of strings", func(t *testing.T) {
		set, err := ParseSecretSet([]byte(`{ "API_KEY": "dfa64ad2-462e-4751-b46e-3660c91f1811" }`))
		require.NoError(t, err)
		assert.Equal(t, SecretSet{"API_KEY": "dfa64ad2-462e-4751-b46e-3660c91f1811"}, set)
	})

	t.Run("empty object", func(t *testing.T) {
		set, err := ParseSecretSet([]byte(`{}`))
		require.NoError(t, err)
		assert.NotNil(t, set)
		assert.Empty(t, set)
	})

	t.Run("non ascii values", func(t *testing.T) {
		set, err := ParseSecretSet([]byte(`{"GREETING":"héllo wörld ✓ 你好"}`))
		require.NoError(t, err)
		assert.Equal(t, "héllo wörld ✓ 你好", set["GREETING"])
	})

	t.Run("TrailingWhitespace", func(t *testing.T) {
		set, err := ParseSecretSet([]byte("{\"A\":\"1\"}\n \t"))
		require.NoError(t, err)
		assert.Equal(t, SecretSet{"A": "1"}, set)
	})

	invalid := map[string]string{
		"empty":          ``,
		"malformed":      `{"A":`,
		"null":           `null`,
		"array":          `["A"]`,
		"number value":   `{"A":1}`,
		"trailing data":  `{"A":"1"} {"B":"2"}`,
		"trailing brace": `{"A":"1"}}`,
		"trailing brack": `{"A":"1"}]`,
		"trailing text":  `{"A":"1"} x`,
		"plain env text": `A=B`,
	}
	for name, payload := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSecretSet([]byte(payload))
			assert.ErrorIs(t, err, ErrInvalidPayload)
			assert.ErrorIs(t, err, apperrors.ErrFormat)
		})
	}
}

func TestParsePayload(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		set, err := ParsePayload([]byte(`{"A":"1"}`), PayloadJSON)
		require.NoError(t, err)
		assert.Equal(t, SecretSet{"A": "1"}, set)
	})

	t.Run("env", func(t *testing.T) {
		set, err := ParsePayload([]byte("API_KEY=\"dfa64ad2\"\nDEBUG=false\n"), PayloadEnv)
		require.NoError(t, err)
		assert.Equal(t, SecretSet{"API_KEY": "dfa64ad2", "DEBUG": "false"}, set)
	})

	t.Run("env-no-quotes", func(t *testing.T) {
		set, err := ParsePayload([]byte("API_KEY=dfa64ad2\n"), PayloadEnvNoQuotes)
		require.NoError(t, err)
		assert.Equal(t, SecretSet{"API_KEY": "dfa64ad2"}, set)
	})

	t.Run("yaml is not supported", func(t *testing.T) {
		_, err := ParsePayload([]byte("A: 1"), PayloadFormat("yaml"))
		assert.ErrorIs(t, err, ErrUnsupportedPayloadFormat)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
