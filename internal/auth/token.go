package auth

import (
	"sync"
	"time"
)

// Token represents the v2/token endpoint response. Expiry fields are carried
// for observability but never drive behavior: the session token is replaced
// by explicit refresh, not by expiry tracking.
type Token struct {
	AccessToken     string `json:"access_token"`
	TokenType       string `json:"token_type"`
	ExpiresIn       int64  `json:"expires_in"`
	Scope           string `json:"scope,omitempty"`
	RestInstanceURL string `json:"rest_instance_url,omitempty"`
	SoapInstanceURL string `json:"soap_instance_url,omitempty"`

	FetchedAt time.Time `json:"-"`
}

// TokenStore holds the most recently fetched token.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored token, or nil when none has been fetched.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set replaces the stored token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Clear discards the stored token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
}
