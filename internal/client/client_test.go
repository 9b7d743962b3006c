package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smc-io/smc-client/internal/client"
	"github.com/smc-io/smc-client/pkg/smc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAuthServer serves v2/token with the given access token; an empty token
// produces a response without an access_token key.
func newAuthServer(t *testing.T, accessToken string, tokenRequests *int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/token" {
			http.NotFound(w, r)

			return
		}

		if tokenRequests != nil {
			*tokenRequests++
		}

		if accessToken == "" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_client"})

			return
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": accessToken,
			"token_type":   "Bearer",
			"expires_in":   1079,
		})
	}))
}

func newTestClient(t *testing.T, config *smc.Config) *client.Client {
	t.Helper()

	cli, err := client.New(context.Background(), config)
	require.NoError(t, err)

	return cli
}

func TestNew(t *testing.T) {
	t.Run("authenticates during construction", func(t *testing.T) {
		tokenRequests := 0
		authServer := newAuthServer(t, "initial-token", &tokenRequests)
		defer authServer.Close()

		cli := newTestClient(t, &smc.Config{
			AuthURL:     authServer.URL,
			Credentials: smc.ClientCredentials("client-id", "client-secret"),
		})

		assert.Equal(t, 1, tokenRequests)

		token, err := cli.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "initial-token", token)
	})

	t.Run("fails before any data call when authentication fails", func(t *testing.T) {
		authServer := newAuthServer(t, "", nil)
		defer authServer.Close()

		dataCalls := 0
		dataServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			dataCalls++
		}))
		defer dataServer.Close()

		_, err := client.New(context.Background(), &smc.Config{
			AuthURL:     authServer.URL,
			BaseURL:     dataServer.URL,
			Credentials: smc.ClientCredentials("bad", "bad"),
		})

		require.Error(t, err)
		assert.True(t, smc.IsAuthenticationError(err))
		assert.Zero(t, dataCalls)
	})

	t.Run("derives the base URL from the auth URL", func(t *testing.T) {
		authServer := newAuthServer(t, "token", nil)
		defer authServer.Close()

		cli := newTestClient(t, &smc.Config{
			AuthURL:     authServer.URL,
			BaseURL:     "https://tenant.rest.marketingcloudapis.com",
			Credentials: smc.ClientCredentials("client-id", "client-secret"),
		})

		assert.Equal(t, "https://tenant.rest.marketingcloudapis.com", cli.BaseURL())
		assert.Equal(t, authServer.URL, cli.AuthURL())
	})

	t.Run("rejects incomplete credentials", func(t *testing.T) {
		_, err := client.New(context.Background(), &smc.Config{
			AuthURL:     "https://tenant.auth.example.com",
			Credentials: smc.Credentials{GrantType: "client_credentials"},
		})
		assert.ErrorIs(t, err, smc.ErrClientIDRequired)
	})

	t.Run("requires an auth URL", func(t *testing.T) {
		_, err := client.New(context.Background(), &smc.Config{
			Credentials: smc.ClientCredentials("client-id", "client-secret"),
		})
		assert.ErrorIs(t, err, smc.ErrAuthURLRequired)
	})
}

func TestClient_Get(t *testing.T) {
	t.Run("returns the raw response whatever the status", func(t *testing.T) {
		authServer := newAuthServer(t, "bearer-token", nil)
		defer authServer.Close()

		dataServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer bearer-token", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "/hub/v1/campaigns", r.URL.Path)

			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"Not Authorized"}`))
		}))
		defer dataServer.Close()

		cli := newTestClient(t, &smc.Config{
			AuthURL:     authServer.URL,
			BaseURL:     dataServer.URL,
			Credentials: smc.ClientCredentials("client-id", "client-secret"),
		})

		resp, err := cli.Get(context.Background(), "hub/v1/campaigns")
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.JSONEq(t, `{"message":"Not Authorized"}`, string(resp.Body))
	})
}

func TestClient_SetCredentials(t *testing.T) {
	t.Run("token is unchanged until refresh", func(t *testing.T) {
		requests := 0
		authServer := newAuthServer(t, "token-one", &requests)
		defer authServer.Close()

		cli := newTestClient(t, &smc.Config{
			AuthURL:     authServer.URL,
			Credentials: smc.ClientCredentials("first", "secret"),
		})

		cli.SetCredentials(smc.ClientCredentials("second", "secret"))
		assert.Equal(t, "second", cli.ClientID())

		token, err := cli.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "token-one", token)
		assert.Equal(t, 1, requests)

		require.NoError(t, cli.RefreshToken(context.Background()))
		assert.Equal(t, 2, requests)
	})
}

func TestClient_SetBaseURL(t *testing.T) {
	t.Run("replaces the base URL verbatim", func(t *testing.T) {
		authServer := newAuthServer(t, "token", nil)
		defer authServer.Close()

		cli := newTestClient(t, &smc.Config{
			AuthURL:     authServer.URL,
			Credentials: smc.ClientCredentials("client-id", "client-secret"),
		})

		// An auth-looking URL is intentionally not rewritten here.
		cli.SetBaseURL("https://other.auth.example.com")
		assert.Equal(t, "https://other.auth.example.com", cli.BaseURL())
	})
}

func TestClient_Accessors(t *testing.T) {
	authServer := newAuthServer(t, "token", nil)
	defer authServer.Close()

	cli := newTestClient(t, &smc.Config{
		AuthURL:        authServer.URL,
		Credentials:    smc.ClientCredentials("client-id", "client-secret"),
		Table:          "orders",
		DataExtensions: []string{"Subscribers", "Orders"},
	})

	assert.Equal(t, "client-id", cli.ClientID())
	assert.Equal(t, "orders", cli.Table())
	assert.Equal(t, []string{"Subscribers", "Orders"}, cli.DataExtensions().Names())
	assert.NotNil(t, cli.CustomObjects())
}
