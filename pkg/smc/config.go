package smc

import (
	"net/url"
	"strings"
	"time"
)

// Credentials holds the client-credentials grant parameters. They are
// forwarded verbatim as a form-encoded body to the token endpoint.
type Credentials struct {
	// GrantType: OAuth2 grant, "client_credentials" for server-to-server use.
	GrantType string `json:"grant_type"    yaml:"grant_type"`
	// ClientID: installed-package client ID.
	ClientID string `json:"client_id"     yaml:"client_id"`
	// ClientSecret: installed-package client secret.
	ClientSecret string `json:"client_secret" yaml:"client_secret"`
	// AccountID: optional business unit MID. When set it is forwarded as
	// account_id so the token is scoped to that business unit.
	AccountID string `json:"account_id,omitempty" yaml:"account_id,omitempty"`
}

// ClientCredentials builds Credentials for the client_credentials grant.
func ClientCredentials(clientID, clientSecret string) Credentials {
	return Credentials{
		GrantType:    "client_credentials",
		ClientID:     clientID,
		ClientSecret: clientSecret,
	}
}

// Validate checks that all required grant parameters are present.
func (c Credentials) Validate() error {
	if c.GrantType == "" {
		return ErrGrantTypeRequired
	}

	if c.ClientID == "" {
		return ErrClientIDRequired
	}

	if c.ClientSecret == "" {
		return ErrClientSecretRequired
	}

	return nil
}

// Values encodes the credentials as the token endpoint's form body.
func (c Credentials) Values() url.Values {
	values := url.Values{
		"grant_type":    []string{c.GrantType},
		"client_id":     []string{c.ClientID},
		"client_secret": []string{c.ClientSecret},
	}

	if c.AccountID != "" {
		values.Set("account_id", c.AccountID)
	}

	return values
}

// Config represents client configuration for building an smc.Client.
//
// AuthURL is the tenant-specific authentication base URL. The data-API base
// URL is derived from it by swapping the host segment "auth" for "rest"
// (see DeriveRestURL) unless BaseURL overrides it explicitly.
type Config struct {
	// Required fields
	// AuthURL: tenant authentication base URL
	// (e.g. "https://mc563885gzs27c5t9-63k636ttgm.auth.marketingcloudapis.com").
	AuthURL string

	// Credentials: client-credentials grant parameters. Validated during
	// client construction.
	Credentials Credentials

	// Optional configurations
	// BaseURL: overrides the derived data-API base URL.
	BaseURL string
	// DataExtensions: optional allow-list of data extension names. When
	// non-empty, the data extensions client rejects keys outside the list.
	DataExtensions []string
	// Table: optional label for the table this client primarily works with.
	Table string
	// HTTPTimeout: timeout applied to the underlying HTTP client.
	HTTPTimeout time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// DeriveRestURL derives the data-API base URL from an auth URL by replacing
// the dot-separated segment "auth" with "rest". All other segments are left
// unchanged; a URL without an "auth" segment is returned as-is.
func DeriveRestURL(authURL string) string {
	segments := strings.Split(authURL, ".")
	for i, segment := range segments {
		if segment == "auth" {
			segments[i] = "rest"
		}
	}

	return strings.Join(segments, ".")
}
