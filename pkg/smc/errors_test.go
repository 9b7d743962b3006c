package smc_test

import (
	"fmt"
	"testing"

	"github.com/smc-io/smc-client/pkg/smc"
	"github.com/stretchr/testify/assert"
)

func TestAuthenticationError_Error(t *testing.T) {
	t.Parallel()

	t.Run("with body", func(t *testing.T) {
		t.Parallel()

		err := &smc.AuthenticationError{StatusCode: 401, Body: `{"error":"invalid_client"}`}
		assert.Contains(t, err.Error(), "401")
		assert.Contains(t, err.Error(), "invalid_client")
	})

	t.Run("without body", func(t *testing.T) {
		t.Parallel()

		err := &smc.AuthenticationError{StatusCode: 200}
		assert.Contains(t, err.Error(), "missing access_token")
	})
}

func TestIsAuthenticationError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("refreshing token: %w", &smc.AuthenticationError{StatusCode: 401})
	assert.True(t, smc.IsAuthenticationError(wrapped))
	assert.False(t, smc.IsAuthenticationError(smc.ErrNoMoreItems))
	assert.False(t, smc.IsAuthenticationError(nil))
}

func TestIsMalformedResponse(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("getting rowset page: %w", &smc.MalformedResponseError{Field: "items"})
	assert.True(t, smc.IsMalformedResponse(wrapped))
	assert.Contains(t, wrapped.Error(), `missing "items"`)
	assert.False(t, smc.IsMalformedResponse(smc.ErrObjectKeyRequired))
}
