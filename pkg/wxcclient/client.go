// Package wxcclient provides the main entry point for creating Webex API clients
package wxcclient

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2"

	"github.com/fivetwenty-io/wxc/internal/auth"
	"github.com/fivetwenty-io/wxc/internal/client"
	"github.com/fivetwenty-io/wxc/internal/constants"
	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// New creates a new Webex API client. An empty APIEndpoint selects the public
// Webex API.
func New(config *webex.Config) (webex.Client, error) {
	if config == nil {
		return nil, webex.ErrConfigRequired
	}

	normalized := *config
	normalized.APIEndpoint = normalizeEndpoint(config.APIEndpoint)

	client, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// normalizeEndpoint defaults the endpoint, adds a scheme and trims the
// trailing slash.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return constants.DefaultAPIEndpoint
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return strings.TrimSuffix(endpoint, "/")
}

// NewWithToken creates a new client with an API endpoint and access token.
func NewWithToken(endpoint, token string) (webex.Client, error) {
	return New(&webex.Config{
		APIEndpoint: endpoint,
		AccessToken: token,
	})
}

// NewWithTokenSource creates a new client that asks source for a token before
// each request.
func NewWithTokenSource(endpoint string, source oauth2.TokenSource) (webex.Client, error) {
	return New(&webex.Config{
		APIEndpoint: endpoint,
		TokenSource: source,
	})
}

// NewWithRefreshToken creates a new client for an integration, exchanging
// refreshToken for access tokens at the Webex token endpoint as they expire.
// Refreshes run under ctx.
func NewWithRefreshToken(ctx context.Context, endpoint, clientID, clientSecret, refreshToken string) (webex.Client, error) {
	source := auth.NewRefreshTokenSource(ctx, &auth.OAuth2Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RefreshToken: refreshToken,
	})

	return NewWithTokenSource(endpoint, source)
}
