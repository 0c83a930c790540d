package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	apperrors "github.com/allisson/gitops-secrets/internal/errors"
	providerDomain "github.com/allisson/gitops-secrets/internal/provider/domain"
)

const (
	// DefaultAPIURL is the provider API base URL.
	DefaultAPIURL = "https://api.doppler.com"

	// DownloadPath is the secrets download endpoint relative to the base URL.
	DownloadPath = "/v3/configs/config/secrets/download"

	// maxPayloadSize bounds the response body read into memory.
	maxPayloadSize = 10 << 20
)

// RemoteAPI downloads secrets from the provider's HTTPS API.
//
// The token is sent as the basic auth user name with an empty password.
type RemoteAPI struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *slog.Logger
}

// NewRemoteAPI creates a RemoteAPI with a cleanhttp client that does not keep
// idle connections around.
// An empty baseURL uses DefaultAPIURL. A zero timeout leaves only the caller's context.
func NewRemoteAPI(baseURL, token string, timeout time.Duration, logger *slog.Logger) *RemoteAPI {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	client := cleanhttp.DefaultClient()
	client.Timeout = timeout

	return &RemoteAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  client,
		logger:  logger,
	}
}

// Name returns the strategy name.
func (r *RemoteAPI) Name() string {
	return providerDomain.StrategyRemoteAPI
}

// Download performs GET <base>/v3/configs/config/secrets/download?format=<format>.
func (r *RemoteAPI) Download(ctx context.Context, format providerDomain.Format) providerDomain.Attempt {
	payload, err := r.download(ctx, format)
	if err != nil {
		return providerDomain.NewFailed(r.Name(), err)
	}
	return providerDomain.NewApplicable(r.Name(), payload)
}

func (r *RemoteAPI) download(ctx context.Context, format providerDomain.Format) ([]byte, error) {
	if r.token == "" {
		return nil, providerDomain.ErrCredentialNotSet
	}
	if err := format.Validate(); err != nil {
		return nil, err
	}

	endpoint := r.baseURL + DownloadPath + "?" + url.Values{"format": {string(format)}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrConfiguration, "invalid provider API URL")
	}
	req.SetBasicAuth(r.token, "")
	req.Header.Set("Accept", "application/json")

	r.logger.Debug("fetching secrets from API", slog.String("format", string(format)))

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrNetwork, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrNetwork, err)
	}
	if len(body) > maxPayloadSize {
		r.logger.Debug("provider API response exceeds size limit", slog.Int("limit", maxPayloadSize))
		return nil, providerDomain.ErrPayloadTooLarge
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Debug("provider API returned an error", slog.Int("status_code", resp.StatusCode))
		return nil, newProviderError(resp.StatusCode, body)
	}

	r.logger.Debug("secrets fetched from API")
	return body, nil
}

// newProviderError builds a ProviderError from an error response. The body's
// messages are joined with ", "; without them the status line is used.
func newProviderError(statusCode int, body []byte) *providerDomain.ProviderError {
	var errorBody struct {
		Messages []string `json:"messages"`
	}
	if err := json.Unmarshal(body, &errorBody); err == nil && len(errorBody.Messages) > 0 {
		return &providerDomain.ProviderError{StatusCode: statusCode, Message: strings.Join(errorBody.Messages, ", ")}
	}
	return &providerDomain.ProviderError{
		StatusCode: statusCode,
		Message:    strconv.Itoa(statusCode) + " " + http.StatusText(statusCode),
	}
}
