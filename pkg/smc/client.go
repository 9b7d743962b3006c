package smc

import (
	"context"
)

// CustomObjectsClient provides access to the custom-object rowset endpoints.
type CustomObjectsClient interface {
	// GetPage fetches one numbered page of the named object's rowset.
	GetPage(ctx context.Context, objectKey string, page int) (*RowsetResponse, error)
	// GetPageByLink follows a server-supplied continuation link.
	GetPageByLink(ctx context.Context, link string) (*RowsetResponse, error)
	// RefreshToken re-executes the token fetch, replacing the held token.
	RefreshToken(ctx context.Context) error
}

// DataExtensionsClient provides access to data extension rowsets, optionally
// restricted to the names configured at construction.
type DataExtensionsClient interface {
	// Names returns the configured data extension names.
	Names() []string
	// Has reports whether name is in the configured list. It returns true
	// for every name when no list was configured.
	Has(name string) bool
	// GetPage fetches one numbered rowset page for the data extension key.
	GetPage(ctx context.Context, key string, page int) (*RowsetResponse, error)
	// GetPageByLink follows a server-supplied continuation link.
	GetPageByLink(ctx context.Context, link string) (*RowsetResponse, error)
	// RefreshToken re-executes the token fetch, replacing the held token.
	RefreshToken(ctx context.Context) error
}

// Client is the top-level Marketing Cloud REST API client. A client instance
// owns its credentials and token exclusively and is intended for
// single-goroutine use; wrap calls with external synchronization when
// sharing one across goroutines.
type Client interface {
	// Get issues a bearer-authenticated GET. A relative endpoint is joined
	// to the base URL; an endpoint that already starts with the base URL is
	// used verbatim. The response is returned raw, whatever its status code.
	Get(ctx context.Context, endpoint string) (*Response, error)
	// SetCredentials replaces the stored credentials. The held token is
	// unchanged until RefreshToken is called.
	SetCredentials(credentials Credentials)
	// SetBaseURL replaces the data-API base URL verbatim. Unlike
	// construction, no auth-to-rest segment rewriting happens here.
	SetBaseURL(baseURL string)
	// RefreshToken re-executes the token fetch against the auth URL.
	RefreshToken(ctx context.Context) error

	CustomObjects() CustomObjectsClient
	DataExtensions() DataExtensionsClient

	// ClientID returns the client ID of the current credentials.
	ClientID() string
	// BaseURL returns the current data-API base URL.
	BaseURL() string
	// AuthURL returns the authentication base URL.
	AuthURL() string
	// Table returns the optional table label from the configuration.
	Table() string
}
