package webex

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// TelephonyClients provides access to Webex Calling configuration clients.
type TelephonyClients interface {
	CallQueues() CallQueuesClient
	AutoAttendants() AutoAttendantsClient
	TranslationPatterns() TranslationPatternsClient
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	TelephonyClients
	Locations() LocationsClient
	Meetings() MeetingsClient
}

// Call carries the caller inputs for a catalog endpoint.
type Call struct {
	PathParams PathParams
	Query      *QueryParams
	Body       any
	// Pagination applies to paginated endpoints only.
	Pagination *PaginationOptions
}

// CatalogClient executes endpoints by catalog name.
type CatalogClient interface {
	Catalog() *Catalog
	// Invoke builds, sends and decodes the named endpoint. The result is
	// shaped by the endpoint's declared response: an object, a list (a
	// paginated listing is drained), a scalar, or nil.
	Invoke(ctx context.Context, name string, call *Call) (any, error)
}

// Client is the Webex API client.
type Client interface {
	ResourceClients
	CatalogClient
	Transport() Transport
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a webex.Client.
//
// # Authentication
//
// TokenSource takes precedence over AccessToken. Token refresh is left to the
// token source; the client only attaches the current token to each request.
//
// # Timeouts and retries
//
// Retries for 429, 5xx and connection errors are done by the HTTP transport.
// The request, decode and pagination layers never retry.
type Config struct {
	// APIEndpoint: base URL, "https://webexapis.com/v1" when empty.
	APIEndpoint string
	// AccessToken: static bearer token.
	AccessToken string
	// TokenSource: OAuth2 token source, used instead of AccessToken when set.
	TokenSource oauth2.TokenSource

	// HTTPClient replaces the underlying http.Client, for custom TLS or
	// proxies. HTTPTimeout still applies to it.
	HTTPClient   *http.Client
	HTTPTimeout  time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug: logs every request and response at debug level.
	Debug  bool
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Interceptors run once per request, outside the transport retry loop.
	Interceptors *InterceptorChain
	// Catalog replaces the built-in endpoint catalog.
	Catalog *Catalog
}
