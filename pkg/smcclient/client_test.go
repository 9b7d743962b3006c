package smcclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smc-io/smc-client/pkg/smc"
	"github.com/smc-io/smc-client/pkg/smcclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/token", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "token",
			"token_type":   "Bearer",
			"expires_in":   1079,
		})
	}))
	t.Cleanup(server.Close)

	return server
}

func TestNew(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := smcclient.New(context.Background(), nil)
		assert.ErrorIs(t, err, smc.ErrConfigRequired)
	})

	t.Run("missing auth URL", func(t *testing.T) {
		_, err := smcclient.New(context.Background(), &smc.Config{
			Credentials: smc.ClientCredentials("client-id", "client-secret"),
		})
		assert.ErrorIs(t, err, smc.ErrAuthURLRequired)
	})

	t.Run("strips trailing slash from auth URL", func(t *testing.T) {
		server := newTokenServer(t)

		cli, err := smcclient.New(context.Background(), &smc.Config{
			AuthURL:     server.URL + "/",
			BaseURL:     server.URL,
			Credentials: smc.ClientCredentials("client-id", "client-secret"),
		})
		require.NoError(t, err)
		assert.Equal(t, server.URL, cli.AuthURL())
	})

	t.Run("defaults the grant type", func(t *testing.T) {
		server := newTokenServer(t)

		config := &smc.Config{
			AuthURL:     server.URL,
			BaseURL:     server.URL,
			Credentials: smc.Credentials{ClientID: "client-id", ClientSecret: "client-secret"},
		}

		_, err := smcclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, "client_credentials", config.Credentials.GrantType)
	})

	t.Run("schemeless auth URL gets https", func(t *testing.T) {
		config := &smc.Config{
			AuthURL:     "mc123.auth.invalid",
			Credentials: smc.ClientCredentials("client-id", "client-secret"),
		}

		// Construction fails without a reachable token endpoint; the
		// normalization still happens first.
		_, err := smcclient.New(context.Background(), config)
		require.Error(t, err)
		assert.Equal(t, "https://mc123.auth.invalid", config.AuthURL)
		assert.False(t, smc.IsAuthenticationError(err))
	})
}

func TestNewWithClientCredentials(t *testing.T) {
	server := newTokenServer(t)

	cli, err := smcclient.NewWithClientCredentials(context.Background(), server.URL, "client-id", "client-secret")
	require.NoError(t, err)
	assert.Equal(t, "client-id", cli.ClientID())
}

func TestNewWithCredentials(t *testing.T) {
	server := newTokenServer(t)

	cli, err := smcclient.NewWithCredentials(context.Background(), server.URL, smc.Credentials{
		GrantType:    "client_credentials",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		AccountID:    "510001234",
	})
	require.NoError(t, err)
	assert.Equal(t, "client-id", cli.ClientID())
}
