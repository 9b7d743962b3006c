// Package client contains the concrete implementation of the smc.Client
// interface: construction with a blocking initial token fetch, the raw Get
// operation, and the rowset resource clients.
package client

import (
	"context"
	"fmt"

	"github.com/smc-io/smc-client/internal/auth"
	"github.com/smc-io/smc-client/internal/constants"
	"github.com/smc-io/smc-client/internal/http"
	"github.com/smc-io/smc-client/pkg/smc"
)

// Client implements the smc.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	authURL      string
	logger       smc.Logger
	credentials  smc.Credentials
	table        string

	// Resource clients
	customObjects  smc.CustomObjectsClient
	dataExtensions smc.DataExtensionsClient
}

// New creates a new client. The data-API base URL is derived from the auth
// URL unless config.BaseURL overrides it, and a blocking token fetch is
// performed before the client is returned: a token endpoint response without
// an access token fails construction with an smc.AuthenticationError.
func New(ctx context.Context, config *smc.Config) (*Client, error) {
	if config.AuthURL == "" {
		return nil, smc.ErrAuthURLRequired
	}

	err := config.Credentials.Validate()
	if err != nil {
		return nil, err
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = smc.DeriveRestURL(config.AuthURL)
	}

	timeout := config.HTTPTimeout
	if timeout == 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	tokenManager := auth.NewClientCredentialsTokenManager(config.AuthURL, config.Credentials, timeout)
	httpClient := http.NewClient(baseURL, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		authURL:      config.AuthURL,
		logger:       config.Logger,
		credentials:  config.Credentials,
		table:        config.Table,
	}

	client.customObjects = NewCustomObjectsClient(httpClient, tokenManager)
	client.dataExtensions = NewDataExtensionsClient(httpClient, tokenManager, config.DataExtensions)

	err = tokenManager.RefreshToken(ctx)
	if err != nil {
		return nil, err
	}

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *smc.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// Get implements smc.Client.Get.
func (c *Client) Get(ctx context.Context, endpoint string) (*smc.Response, error) {
	resp, err := c.httpClient.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", endpoint, err)
	}

	return &smc.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}, nil
}

// SetCredentials implements smc.Client.SetCredentials. The held token stays
// in place until RefreshToken is called.
func (c *Client) SetCredentials(credentials smc.Credentials) {
	c.credentials = credentials
	c.tokenManager.SetCredentials(credentials)
}

// SetBaseURL implements smc.Client.SetBaseURL. The URL is used verbatim;
// no auth-to-rest segment rewriting happens at this call site.
func (c *Client) SetBaseURL(baseURL string) {
	c.httpClient.SetBaseURL(baseURL)
}

// RefreshToken implements smc.Client.RefreshToken.
func (c *Client) RefreshToken(ctx context.Context) error {
	if c.tokenManager == nil {
		return smc.ErrNoTokenManagerConfigured
	}

	err := c.tokenManager.RefreshToken(ctx)
	if err != nil {
		return fmt.Errorf("refreshing token: %w", err)
	}

	return nil
}

// CustomObjects implements smc.Client.CustomObjects.
func (c *Client) CustomObjects() smc.CustomObjectsClient {
	return c.customObjects
}

// DataExtensions implements smc.Client.DataExtensions.
func (c *Client) DataExtensions() smc.DataExtensionsClient {
	return c.dataExtensions
}

// ClientID implements smc.Client.ClientID.
func (c *Client) ClientID() string {
	return c.credentials.ClientID
}

// BaseURL implements smc.Client.BaseURL.
func (c *Client) BaseURL() string {
	return c.httpClient.BaseURL()
}

// AuthURL implements smc.Client.AuthURL.
func (c *Client) AuthURL() string {
	return c.authURL
}

// Table implements smc.Client.Table.
func (c *Client) Table() string {
	return c.table
}

// GetToken returns the current access token from the token manager.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", smc.ErrNoTokenManagerConfigured
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// loggerAdapter adapts smc.Logger to http.Logger.
type loggerAdapter struct {
	logger smc.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
