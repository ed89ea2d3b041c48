package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// Static errors for err113 compliance.
var (
	ErrNoToken           = errors.New("no valid credentials available")
	ErrNoTokenSource     = errors.New("token source is nil")
	ErrNoConfigPersister = errors.New("no config persister configured")
)

// expiryBuffer treats tokens this close to expiry as already expired.
const expiryBuffer = 30 * time.Second

// TokenManager supplies the bearer token for outgoing requests.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// Token is an access token with its refresh data.
type Token struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresIn    int       `json:"expires_in,omitempty"`
	ExpiresAt    time.Time `json:"-"`
}

// Valid reports whether the token can still be used.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(expiryBuffer).Before(t.ExpiresAt)
}

func fromOAuth2(token *oauth2.Token) *Token {
	return &Token{
		AccessToken:  token.AccessToken,
		TokenType:    token.Type(),
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
	}
}

// TokenStore holds the current token and is safe for concurrent use.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored token, or nil.
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

// Clear removes the stored token.
func (s *TokenStore) Clear() {
	s.Set(nil)
}

// StaticTokenManager always returns the same token.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager creates a manager for a fixed access token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken implements TokenManager.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	if m.token == "" {
		return "", ErrNoToken
	}

	return m.token, nil
}

// TokenSourceManager adapts an oauth2.TokenSource. The source decides when
// to refresh; the last token it returned is kept in the store.
type TokenSourceManager struct {
	source oauth2.TokenSource
	store  *TokenStore
}

// NewTokenSourceManager wraps source with oauth2.ReuseTokenSource so a valid
// token is not fetched twice.
func NewTokenSourceManager(source oauth2.TokenSource) *TokenSourceManager {
	if source != nil {
		source = oauth2.ReuseTokenSource(nil, source)
	}

	return &TokenSourceManager{source: source, store: NewTokenStore()}
}

// GetToken implements TokenManager.
func (m *TokenSourceManager) GetToken(ctx context.Context) (string, error) {
	if m.source == nil {
		return "", ErrNoTokenSource
	}

	token, err := m.source.Token()
	if err != nil {
		return "", fmt.Errorf("failed to obtain token: %w", err)
	}

	if token.AccessToken == "" {
		return "", ErrNoToken
	}

	m.store.Set(fromOAuth2(token))

	return token.AccessToken, nil
}

// Current returns the last token obtained, or nil.
func (m *TokenSourceManager) Current() *Token {
	return m.store.Get()
}
