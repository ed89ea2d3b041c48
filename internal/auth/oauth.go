package auth

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// DefaultTokenURL is the Webex OAuth2 token endpoint.
const DefaultTokenURL = "https://webexapis.com/v1/access_token"

// OAuth2Config describes a Webex integration able to refresh its tokens.
type OAuth2Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	// TokenURL defaults to DefaultTokenURL.
	TokenURL string
	Scopes   []string
	// AccessToken and ExpiresAt seed the source so no refresh happens while
	// the token is still valid.
	AccessToken string
	ExpiresAt   time.Time
}

// NewRefreshTokenSource returns a token source that refreshes through the
// Webex token endpoint. Refresh is entirely delegated to x/oauth2.
func NewRefreshTokenSource(ctx context.Context, config *OAuth2Config) oauth2.TokenSource {
	tokenURL := config.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}

	oauthConfig := &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Scopes:       config.Scopes,
		Endpoint: oauth2.Endpoint{
			TokenURL:  strings.TrimSuffix(tokenURL, "/"),
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	return oauthConfig.TokenSource(ctx, &oauth2.Token{
		AccessToken:  config.AccessToken,
		RefreshToken: config.RefreshToken,
		Expiry:       config.ExpiresAt,
	})
}

// ConfigPersister saves refreshed tokens.
type ConfigPersister interface {
	UpdateToken(token string, expiresAt time.Time, refreshToken string) error
}

// ConfigTokenManager wraps a TokenSourceManager and persists every token
// that differs from the last one seen.
type ConfigTokenManager struct {
	manager   *TokenSourceManager
	persister ConfigPersister
	mutex     sync.Mutex
	lastToken string
}

// NewConfigTokenManager creates a config-persisting token manager.
func NewConfigTokenManager(source oauth2.TokenSource, persister ConfigPersister, initialToken string) *ConfigTokenManager {
	return &ConfigTokenManager{
		manager:   NewTokenSourceManager(source),
		persister: persister,
		lastToken: initialToken,
	}
}

// GetToken implements TokenManager.
func (m *ConfigTokenManager) GetToken(ctx context.Context) (string, error) {
	token, err := m.manager.GetToken(ctx)
	if err != nil {
		return "", err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if token != m.lastToken {
		current := m.manager.Current()

		persistErr := m.persistToken(current)
		if persistErr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to persist refreshed token: %v\n", persistErr)
		}

		m.lastToken = token
	}

	return token, nil
}

func (m *ConfigTokenManager) persistToken(token *Token) error {
	if m.persister == nil {
		return ErrNoConfigPersister
	}

	if token == nil {
		return ErrNoToken
	}

	err := m.persister.UpdateToken(token.AccessToken, token.ExpiresAt, token.RefreshToken)
	if err != nil {
		return fmt.Errorf("failed to update token: %w", err)
	}

	return nil
}
