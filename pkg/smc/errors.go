package smc

import (
	"errors"
	"fmt"
)

// AuthenticationError indicates the token endpoint did not return a usable
// access token.
type AuthenticationError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("authentication failed (status: %d): token response missing access_token", e.StatusCode)
	}

	return fmt.Sprintf("authentication failed (status: %d): %s", e.StatusCode, e.Body)
}

// MalformedResponseError indicates a rowset response is missing a field the
// pagination helpers depend on.
type MalformedResponseError struct {
	Field string
}

// Error implements the error interface for MalformedResponseError.
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed rowset response: missing %q", e.Field)
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired           = errors.New("config is required")
	ErrAuthURLRequired          = errors.New("auth URL is required")
	ErrGrantTypeRequired        = errors.New("grant type is required")
	ErrClientIDRequired         = errors.New("client ID is required")
	ErrClientSecretRequired     = errors.New("client secret is required")
	ErrObjectKeyRequired        = errors.New("custom object key is required")
	ErrUnknownDataExtension     = errors.New("data extension is not in the configured list")
	ErrNoMoreItems              = errors.New("no more items")
	ErrNoTokenManagerConfigured = errors.New("no token manager configured")
)

// IsAuthenticationError checks if the error is an authentication error.
func IsAuthenticationError(err error) bool {
	authErr := &AuthenticationError{}

	return errors.As(err, &authErr)
}

// IsMalformedResponse checks if the error is a malformed response error.
func IsMalformedResponse(err error) bool {
	malformedErr := &MalformedResponseError{}

	return errors.As(err, &malformedErr)
}
