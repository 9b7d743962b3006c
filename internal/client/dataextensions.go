package client

import (
	"context"
	"fmt"

	"github.com/smc-io/smc-client/internal/auth"
	"github.com/smc-io/smc-client/internal/http"
	"github.com/smc-io/smc-client/pkg/smc"
)

// DataExtensionsClient implements smc.DataExtensionsClient. Data extension
// rowsets share the custom-object data endpoint; the extra layer enforces
// the name allow-list from the configuration when one is present.
type DataExtensionsClient struct {
	rowsets *CustomObjectsClient
	names   []string
}

// NewDataExtensionsClient creates a new data extensions client.
func NewDataExtensionsClient(httpClient *http.Client, tokenManager auth.TokenManager, names []string) *DataExtensionsClient {
	return &DataExtensionsClient{
		rowsets: NewCustomObjectsClient(httpClient, tokenManager),
		names:   append([]string(nil), names...),
	}
}

// Names implements smc.DataExtensionsClient.Names.
func (c *DataExtensionsClient) Names() []string {
	return append([]string(nil), c.names...)
}

// Has implements smc.DataExtensionsClient.Has.
func (c *DataExtensionsClient) Has(name string) bool {
	if len(c.names) == 0 {
		return true
	}

	for _, candidate := range c.names {
		if candidate == name {
			return true
		}
	}

	return false
}

// GetPage implements smc.DataExtensionsClient.GetPage.
func (c *DataExtensionsClient) GetPage(ctx context.Context, key string, page int) (*smc.RowsetResponse, error) {
	if !c.Has(key) {
		return nil, fmt.Errorf("%w: %s", smc.ErrUnknownDataExtension, key)
	}

	return c.rowsets.GetPage(ctx, key, page)
}

// GetPageByLink implements smc.DataExtensionsClient.GetPageByLink.
func (c *DataExtensionsClient) GetPageByLink(ctx context.Context, link string) (*smc.RowsetResponse, error) {
	return c.rowsets.GetPageByLink(ctx, link)
}

// RefreshToken implements smc.DataExtensionsClient.RefreshToken.
func (c *DataExtensionsClient) RefreshToken(ctx context.Context) error {
	return c.rowsets.RefreshToken(ctx)
}
