package client_test

import (
	"context"
	"testing"

	"github.com/smc-io/smc-client/internal/client"
	"github.com/smc-io/smc-client/pkg/smc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataExtensionsClient_AllowList(t *testing.T) {
	t.Run("allows any key when no names are configured", func(t *testing.T) {
		fixture := newRowsetFixture(t, "Order_Events")
		cli := fixture.client(t)

		assert.Empty(t, cli.DataExtensions().Names())
		assert.True(t, cli.DataExtensions().Has("Order_Events"))
		assert.True(t, cli.DataExtensions().Has("anything_else"))

		rowset, err := cli.DataExtensions().GetPage(context.Background(), "Order_Events", 1)
		require.NoError(t, err)
		assert.Len(t, rowset.Items, 2)
	})

	t.Run("rejects keys outside the configured list", func(t *testing.T) {
		fixture := newRowsetFixture(t, "Order_Events")

		cli, err := client.New(context.Background(), &smc.Config{
			AuthURL:        fixture.server.URL,
			BaseURL:        fixture.server.URL,
			Credentials:    smc.ClientCredentials("client-id", "client-secret"),
			DataExtensions: []string{"Order_Events"},
		})
		require.NoError(t, err)

		assert.True(t, cli.DataExtensions().Has("Order_Events"))
		assert.False(t, cli.DataExtensions().Has("Subscriber_Log"))

		_, err = cli.DataExtensions().GetPage(context.Background(), "Subscriber_Log", 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, smc.ErrUnknownDataExtension)
		assert.Contains(t, err.Error(), "Subscriber_Log")
		assert.Empty(t, fixture.pageRequests)

		_, err = cli.DataExtensions().GetPage(context.Background(), "Order_Events", 1)
		require.NoError(t, err)
	})

	t.Run("returned names are a copy", func(t *testing.T) {
		fixture := newRowsetFixture(t, "Order_Events")

		cli, err := client.New(context.Background(), &smc.Config{
			AuthURL:        fixture.server.URL,
			BaseURL:        fixture.server.URL,
			Credentials:    smc.ClientCredentials("client-id", "client-secret"),
			DataExtensions: []string{"Order_Events"},
		})
		require.NoError(t, err)

		names := cli.DataExtensions().Names()
		names[0] = "mutated"
		assert.Equal(t, []string{"Order_Events"}, cli.DataExtensions().Names())
	})
}
