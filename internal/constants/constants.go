package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API endpoints.
const (
	// DefaultAPIEndpoint is the public Webex REST API base URL.
	DefaultAPIEndpoint = "https://webexapis.com/v1"

	// DefaultUserAgent is sent when the caller does not configure one.
	DefaultUserAgent = "wxc-go"

	// TrackingIDHeader carries the per-request id Webex support uses to find a call.
	TrackingIDHeader = "TrackingID"
	// TrackingIDPrefix prefixes the TrackingID header sent with every request.
	TrackingIDPrefix = "WXC_"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ExtendedHTTPTimeout is used for longer operations.
	ExtendedHTTPTimeout = 45 * time.Second
)

// Retry limits. Retries belong to the transport only.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 5

	// LowRetryMax is used for operations that should retry fewer times.
	LowRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second

	// ExtendedRetryWaitMax is used for operations that need longer waits.
	ExtendedRetryWaitMax = 30 * time.Second
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusMultipleChoices is the first non-success status.
	HTTPStatusMultipleChoices = 300
)

// Pagination.
const (
	// DefaultNextURLKey is the envelope field carrying a next-page URL when the
	// server does not send a Link header.
	DefaultNextURLKey = "nextUrl"

	// MaxPageSizeParam is the query parameter carrying the page size.
	MaxPageSizeParam = "max"

	// StartParam is the query parameter carrying the start offset.
	StartParam = "start"

	// OrgIDParam is the query parameter selecting the organization.
	OrgIDParam = "orgId"

	// StreamBufferSize is the buffer of StreamPages result channels.
	StreamBufferSize = 1
)

// Output formats and display.
const (
	// FormatJSON is the json output format.
	FormatJSON = "json"

	// FormatYAML is the yaml output format.
	FormatYAML = "yaml"

	// FormatTable is the table output format.
	FormatTable = "table"

	// JSONIndentSize is the indent used for json output.
	JSONIndentSize = 2

	// NotAvailable is shown for absent values.
	NotAvailable = "N/A"

	// MaskedSecret replaces secrets in output.
	MaskedSecret = "***"

	// BooleanTrue is the string form of true.
	BooleanTrue = "true"

	// BooleanFalse is the string form of false.
	BooleanFalse = "false"

	// MinimumTokenLength is the shortest token that is partially revealed.
	MinimumTokenLength = 12

	// RevealedTokenChars is the number of token characters shown on each side.
	RevealedTokenChars = 4
)
