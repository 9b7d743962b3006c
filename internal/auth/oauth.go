package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/smc-io/smc-client/pkg/smc"
)

// TokenManager manages access tokens for API requests.
type TokenManager interface {
	// GetToken returns the held token, fetching one first if none is held.
	GetToken(ctx context.Context) (string, error)
	// RefreshToken unconditionally fetches a fresh token and replaces the
	// held one. No expiry reasoning is applied.
	RefreshToken(ctx context.Context) error
	// SetCredentials replaces the grant parameters used for subsequent
	// fetches. The held token is untouched.
	SetCredentials(credentials smc.Credentials)
}

// ClientCredentialsTokenManager fetches tokens via the client_credentials
// grant: a form-encoded POST of the credentials to the token endpoint.
type ClientCredentialsTokenManager struct {
	tokenURL    string
	credentials smc.Credentials
	httpClient  *http.Client
	store       *TokenStore
}

// NewClientCredentialsTokenManager creates a token manager posting to
// "<authURL>/v2/token".
func NewClientCredentialsTokenManager(authURL string, credentials smc.Credentials, timeout time.Duration) *ClientCredentialsTokenManager {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0 // single attempt, failures propagate to the caller
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = timeout

	return &ClientCredentialsTokenManager{
		tokenURL:    strings.TrimSuffix(authURL, "/") + "/v2/token",
		credentials: credentials,
		httpClient:  retryClient.StandardClient(),
		store:       NewTokenStore(),
	}
}

// GetToken implements TokenManager.GetToken.
func (m *ClientCredentialsTokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if token != nil && token.AccessToken != "" {
		return token.AccessToken, nil
	}

	err := m.RefreshToken(ctx)
	if err != nil {
		return "", err
	}

	return m.store.Get().AccessToken, nil
}

// RefreshToken implements TokenManager.RefreshToken.
func (m *ClientCredentialsTokenManager) RefreshToken(ctx context.Context) error {
	token, err := m.requestToken(ctx)
	if err != nil {
		return err
	}

	m.store.Set(token)

	return nil
}

// SetCredentials implements TokenManager.SetCredentials.
func (m *ClientCredentialsTokenManager) SetCredentials(credentials smc.Credentials) {
	m.credentials = credentials
}

// requestToken posts the credentials to the token endpoint and decodes the
// response. A response without an access_token, whatever its status code,
// is an authentication failure.
func (m *ClientCredentialsTokenManager) requestToken(ctx context.Context) (*Token, error) {
	body := m.credentials.Values().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.tokenURL, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting token: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	var token Token

	err = json.Unmarshal(respBody, &token)
	if err != nil || token.AccessToken == "" {
		return nil, &smc.AuthenticationError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	token.FetchedAt = time.Now()

	return &token, nil
}
