package service

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	apperrors "github.com/allisson/gitops-secrets/internal/errors"
	providerDomain "github.com/allisson/gitops-secrets/internal/provider/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testToken = "dp.st.dev.abc123"

func TestRemoteAPI_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ReturnsBody", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, DownloadPath, r.URL.Path)
			assert.Equal(t, "env", r.URL.Query().Get("format"))

			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, testToken, user)
			assert.Empty(t, pass)

			_, _ = w.Write([]byte("API_KEY=\"value\"\n"))
		}))
		defer server.Close()

		api := NewRemoteAPI(server.URL+"/", testToken, time.Second, discardLogger())
		attempt := api.Download(ctx, providerDomain.FormatEnv)

		require.NoError(t, attempt.Err)
		assert.Equal(t, providerDomain.Applicable, attempt.Outcome)
		assert.Equal(t, providerDomain.StrategyRemoteAPI, attempt.Strategy)
		assert.Equal(t, "API_KEY=\"value\"\n", string(attempt.Payload))
	})

	t.Run("Failed_WithoutToken", func(t *testing.T) {
		api := NewRemoteAPI("http://127.0.0.1:1", "", time.Second, discardLogger())
		attempt := api.Download(ctx, providerDomain.FormatJSON)

		assert.Equal(t, providerDomain.Failed, attempt.Outcome)
		assert.ErrorIs(t, attempt.Err, providerDomain.ErrCredentialNotSet)
		assert.ErrorIs(t, attempt.Err, apperrors.ErrConfiguration)
	})

	t.Run("Failed_InvalidFormat", func(t *testing.T) {
		api := NewRemoteAPI("http://127.0.0.1:1", testToken, time.Second, discardLogger())
		attempt := api.Download(ctx, providerDomain.Format("toml"))

		assert.Equal(t, providerDomain.Failed, attempt.Outcome)
		assert.ErrorIs(t, attempt.Err, providerDomain.ErrInvalidFormat)
	})

	t.Run("Failed_PayloadOverLimit", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(bytes.Repeat([]byte("A"), maxPayloadSize+1))
		}))
		defer server.Close()

		attempt := NewRemoteAPI(server.URL, testToken, time.Second, discardLogger()).
			Download(ctx, providerDomain.FormatEnv)

		assert.Equal(t, providerDomain.Failed, attempt.Outcome)
		assert.ErrorIs(t, attempt.Err, providerDomain.ErrPayloadTooLarge)
		assert.ErrorIs(t, attempt.Err, apperrors.ErrProvider)
		assert.Nil(t, attempt.Payload)
	})

	t.Run("Success_PayloadAtLimit", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(bytes.Repeat([]byte("A"), maxPayloadSize))
		}))
		defer server.Close()

		attempt := NewRemoteAPI(server.URL, testToken, time.Second, discardLogger()).
			Download(ctx, providerDomain.FormatEnv)

		require.NoError(t, attempt.Err)
		assert.Len(t, attempt.Payload, maxPayloadSize)
	})

	t.Run("Failed_ProviderMessages", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"messages":["Invalid Service token","Token expired"],"success":false}`))
		}))
		defer server.Close()

		attempt := NewRemoteAPI(server.URL, testToken, time.Second, discardLogger()).
			Download(ctx, providerDomain.FormatJSON)

		assert.Equal(t, providerDomain.Failed, attempt.Outcome)
		assert.ErrorIs(t, attempt.Err, apperrors.ErrProvider)

		var providerErr *providerDomain.ProviderError
		require.ErrorAs(t, attempt.Err, &providerErr)
		assert.Equal(t, http.StatusUnauthorized, providerErr.StatusCode)
		assert.Equal(t, "Invalid Service token, Token expired", providerErr.Message)
		assert.NotContains(t, attempt.Err.Error(), testToken)
	})

	t.Run("Failed_NonJSONErrorBody", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}))
		defer server.Close()

		attempt := NewRemoteAPI(server.URL, testToken, time.Second, discardLogger()).
			Download(ctx, providerDomain.FormatJSON)

		var providerErr *providerDomain.ProviderError
		require.ErrorAs(t, attempt.Err, &providerErr)
		assert.Equal(t, http.StatusBadGateway, providerErr.StatusCode)
		assert.Equal(t, "502 Bad Gateway", providerErr.Message)
	})

	t.Run("Failed_EmptyMessages", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"messages":[]}`))
		}))
		defer server.Close()

		attempt := NewRemoteAPI(server.URL, testToken, time.Second, discardLogger()).
			Download(ctx, providerDomain.FormatJSON)

		var providerErr *providerDomain.ProviderError
		require.ErrorAs(t, attempt.Err, &providerErr)
		assert.Equal(t, "400 Bad Request", providerErr.Message)
	})

	t.Run("Failed_TransportError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		attempt := NewRemoteAPI(url, testToken, time.Second, discardLogger()).
			Download(ctx, providerDomain.FormatJSON)

		assert.Equal(t, providerDomain.Failed, attempt.Outcome)
		assert.ErrorIs(t, attempt.Err, apperrors.ErrNetwork)
	})

	t.Run("Failed_ContextCanceled", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		attempt := NewRemoteAPI(server.URL, testToken, time.Second, discardLogger()).
			Download(canceled, providerDomain.FormatJSON)

		assert.Equal(t, providerDomain.Failed, attempt.Outcome)
		assert.ErrorIs(t, attempt.Err, apperrors.ErrNetwork)
		assert.ErrorIs(t, attempt.Err, context.Canceled)
	})

	t.Run("Failed_Timeout", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		attempt := NewRemoteAPI(server.URL, testToken, 50*time.Millisecond, discardLogger()).
			Download(ctx, providerDomain.FormatJSON)

		assert.Equal(t, providerDomain.Failed, attempt.Outcome)
		assert.ErrorIs(t, attempt.Err, apperrors.ErrNetwork)
	})
}

func TestNewRemoteAPI_Defaults(t *testing.T) {
	api := NewRemoteAPI("", testToken, 0, discardLogger())
	assert.Equal(t, DefaultAPIURL, api.baseURL)
	assert.Equal(t, providerDomain.StrategyRemoteAPI, api.Name())
}
