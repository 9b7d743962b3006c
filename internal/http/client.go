// Package http provides the HTTP transport used by the Marketing Cloud
// client: bearer-token injection, endpoint URL construction, and optional
// debug logging. Responses are returned whatever their status code; callers
// interpret them.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// TokenManager supplies bearer tokens for outgoing requests.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) error
}

// Logger interface for HTTP-level logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an HTTP request to the API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents the raw result of an HTTP request.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP transport for the API.
type Client struct {
	baseURL      string
	tokenManager TokenManager
	httpClient   *http.Client
	logger       Logger
	debug        bool
	userAgent    string
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPTimeout sets the timeout of the underlying HTTP client.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

const defaultUserAgent = "smc-client/1.0"

// NewClient creates a new HTTP client for the given base URL. A nil token
// manager sends requests without an Authorization header.
func NewClient(baseURL string, tokenManager TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0 // transient failures propagate, callers own retry policy
	retryClient.Logger = nil

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		httpClient:   retryClient.StandardClient(),
		userAgent:    defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetBaseURL replaces the base URL verbatim.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
}

// buildURL joins path to the base URL, trimming redundant slashes. A path
// that already starts with the base URL is passed through unmodified so
// callers can hand over fully-qualified URLs such as server-supplied
// continuation links.
func (c *Client) buildURL(path string, query url.Values) string {
	full := path
	if !strings.HasPrefix(path, c.baseURL) {
		full = c.baseURL + "/" + strings.Trim(path, "/")
	}

	if len(query) > 0 {
		separator := "?"
		if strings.Contains(full, "?") {
			separator = "&"
		}

		full += separator + query.Encode()
	}

	return full
}

// Do executes the request and returns the raw response. Only transport-level
// failures produce an error; the status code is never interpreted.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.buildURL(req.Path, req.Query)

	var bodyReader io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"bytes":  len(respBody),
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}
