// Package smcclient provides the main entry point for creating Marketing
// Cloud API clients.
package smcclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/smc-io/smc-client/internal/client"
	"github.com/smc-io/smc-client/pkg/smc"
)

// New creates a new Marketing Cloud API client. The data-API base URL is
// derived from the tenant auth URL by swapping the host segment "auth" for
// "rest" unless config.BaseURL overrides it. Construction performs a
// blocking token fetch; a token endpoint response without an access token
// fails with an smc.AuthenticationError.
func New(ctx context.Context, config *smc.Config) (smc.Client, error) {
	if config == nil {
		return nil, smc.ErrConfigRequired
	}

	if config.AuthURL == "" {
		return nil, smc.ErrAuthURLRequired
	}

	// Normalize auth URL
	authURL := strings.TrimSuffix(config.AuthURL, "/")
	if !strings.HasPrefix(authURL, "http://") && !strings.HasPrefix(authURL, "https://") {
		authURL = "https://" + authURL
	}

	config.AuthURL = authURL

	if config.Credentials.GrantType == "" {
		config.Credentials.GrantType = "client_credentials"
	}

	cli, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// NewWithClientCredentials creates a new client from a tenant auth URL and
// an installed package's client ID and secret.
func NewWithClientCredentials(ctx context.Context, authURL, clientID, clientSecret string) (smc.Client, error) {
	return New(ctx, &smc.Config{
		AuthURL:     authURL,
		Credentials: smc.ClientCredentials(clientID, clientSecret),
	})
}

// NewWithCredentials creates a new client from fully specified credentials,
// including an optional business unit MID.
func NewWithCredentials(ctx context.Context, authURL string, credentials smc.Credentials) (smc.Client, error) {
	return New(ctx, &smc.Config{
		AuthURL:     authURL,
		Credentials: credentials,
	})
}
