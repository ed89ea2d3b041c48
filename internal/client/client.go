package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fivetwenty-io/wxc/internal/auth"
	"github.com/fivetwenty-io/wxc/internal/constants"
	"github.com/fivetwenty-io/wxc/internal/http"
	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// Static errors for err113 compliance.
var (
	ErrAPIEndpointRequired      = errors.New("API endpoint is required")
	ErrNoTokenManagerConfigured = errors.New("no token manager configured")
)

// Client implements the webex.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       webex.Logger
	endpoints    *endpoints

	locations           webex.LocationsClient
	callQueues          webex.CallQueuesClient
	autoAttendants      webex.AutoAttendantsClient
	translationPatterns webex.TranslationPatternsClient
	meetings            webex.MeetingsClient
}

// createTokenManager picks the token manager for config. TokenSource wins
// over AccessToken; no credentials means no Authorization header.
func createTokenManager(config *webex.Config) auth.TokenManager {
	if config.TokenSource != nil {
		return auth.NewTokenSourceManager(config.TokenSource)
	}

	if config.AccessToken != "" {
		return auth.NewStaticTokenManager(config.AccessToken)
	}

	return nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *webex.Config) []http.Option {
	var httpOpts []http.Option

	// First, so the options below apply to the replacement client.
	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.RetryMax > 0 {
		retryWaitMin := 1 * time.Second
		retryWaitMax := constants.ExtendedRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new Webex API client.
func New(config *webex.Config) (*Client, error) {
	if config == nil {
		return nil, webex.ErrConfigRequired
	}

	return NewWithTokenManager(config, createTokenManager(config))
}

// NewWithTokenManager creates a new Webex API client with a custom token
// manager.
func NewWithTokenManager(config *webex.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, webex.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	catalog := config.Catalog
	if catalog == nil {
		var err error

		catalog, err = webex.DefaultCatalog()
		if err != nil {
			return nil, fmt.Errorf("loading endpoint catalog: %w", err)
		}
	}

	baseURL := strings.TrimSuffix(config.APIEndpoint, "/")
	httpClient := http.NewClient(baseURL, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      baseURL,
		logger:       config.Logger,
		endpoints:    &endpoints{transport: httpClient, catalog: catalog},
	}

	client.initializeResourceClients()

	return client, nil
}

// GetToken returns the current access token from the token manager.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", ErrNoTokenManagerConfigured
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Transport implements webex.Client.
func (c *Client) Transport() webex.Transport {
	return c.httpClient
}

// Catalog implements webex.Client.
func (c *Client) Catalog() *webex.Catalog {
	return c.endpoints.catalog
}

// Locations implements webex.Client.
func (c *Client) Locations() webex.LocationsClient {
	return c.locations
}

// CallQueues implements webex.Client.
func (c *Client) CallQueues() webex.CallQueuesClient {
	return c.callQueues
}

// AutoAttendants implements webex.Client.
func (c *Client) AutoAttendants() webex.AutoAttendantsClient {
	return c.autoAttendants
}

// TranslationPatterns implements webex.Client.
func (c *Client) TranslationPatterns() webex.TranslationPatternsClient {
	return c.translationPatterns
}

// Meetings implements webex.Client.
func (c *Client) Meetings() webex.MeetingsClient {
	return c.meetings
}

func (c *Client) initializeResourceClients() {
	transport, catalog := c.endpoints.transport, c.endpoints.catalog

	c.locations = NewLocationsClient(transport, catalog)
	c.callQueues = NewCallQueuesClient(transport, catalog)
	c.autoAttendants = NewAutoAttendantsClient(transport, catalog)
	c.translationPatterns = NewTranslationPatternsClient(transport, catalog)
	c.meetings = NewMeetingsClient(transport, catalog)
}
