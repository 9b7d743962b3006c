package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/smc-io/smc-client/internal/auth"
	"github.com/smc-io/smc-client/internal/constants"
	"github.com/smc-io/smc-client/internal/http"
	"github.com/smc-io/smc-client/pkg/smc"
)

// CustomObjectsClient implements smc.CustomObjectsClient.
type CustomObjectsClient struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
}

// NewCustomObjectsClient creates a new custom objects client.
func NewCustomObjectsClient(httpClient *http.Client, tokenManager auth.TokenManager) *CustomObjectsClient {
	return &CustomObjectsClient{
		httpClient:   httpClient,
		tokenManager: tokenManager,
	}
}

// GetPage implements smc.CustomObjectsClient.GetPage.
func (c *CustomObjectsClient) GetPage(ctx context.Context, objectKey string, page int) (*smc.RowsetResponse, error) {
	if objectKey == "" {
		return nil, smc.ErrObjectKeyRequired
	}

	if page < constants.DefaultStartingPage {
		page = constants.DefaultStartingPage
	}

	path := "data/v1/customobjectdata/key/" + objectKey + "/rowset"
	query := url.Values{"$page": []string{strconv.Itoa(page)}}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting rowset page: %w", err)
	}

	return decodeRowset(resp)
}

// GetPageByLink implements smc.CustomObjectsClient.GetPageByLink.
func (c *CustomObjectsClient) GetPageByLink(ctx context.Context, link string) (*smc.RowsetResponse, error) {
	resp, err := c.httpClient.Get(ctx, link, nil)
	if err != nil {
		return nil, fmt.Errorf("following rowset link: %w", err)
	}

	return decodeRowset(resp)
}

// RefreshToken implements smc.CustomObjectsClient.RefreshToken.
func (c *CustomObjectsClient) RefreshToken(ctx context.Context) error {
	err := c.tokenManager.RefreshToken(ctx)
	if err != nil {
		return fmt.Errorf("refreshing token: %w", err)
	}

	return nil
}

// decodeRowset parses a rowset body. A body without an items key is rejected
// with a typed error rather than silently yielding an empty rowset; an empty
// page still carries "items": [].
func decodeRowset(resp *http.Response) (*smc.RowsetResponse, error) {
	var rowset smc.RowsetResponse

	err := json.Unmarshal(resp.Body, &rowset)
	if err != nil {
		return nil, fmt.Errorf("parsing rowset response: %w", err)
	}

	if rowset.Items == nil {
		return nil, &smc.MalformedResponseError{Field: "items"}
	}

	return &rowset, nil
}
