package webex

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Static errors for err113 compliance. The typed errors below wrap one of these
// so callers can branch with errors.Is.
var (
	ErrMissingPathParam  = errors.New("missing required path parameter")
	ErrInvalidPath       = errors.New("invalid path template")
	ErrInvalidQueryParam = errors.New("invalid query parameter")
	ErrInvalidBody       = errors.New("invalid request body")
	ErrInvalidMethod     = errors.New("invalid HTTP method")
	ErrMissingField      = errors.New("missing field in response")
	ErrInvalidJSON       = errors.New("invalid JSON")
	ErrTypeMismatch      = errors.New("JSON type mismatch")
	ErrHTTPStatus        = errors.New("unexpected HTTP status")
	ErrNetwork           = errors.New("network failure")
	ErrNoMoreItems       = errors.New("no more items")
	ErrConfigRequired    = errors.New("config is required")
	ErrTransportRequired = errors.New("transport is required")
	ErrDuplicateEndpoint = errors.New("duplicate endpoint name")
	ErrInvalidShape      = errors.New("invalid response shape")
	ErrUnknownEndpoint   = errors.New("unknown endpoint")
)

// ConfigurationError is returned by the request builder when the caller did
// not supply what the request needs. It is never produced by the server.
type ConfigurationError struct {
	Param  string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("configuration error: %s", e.Reason)
	}

	return fmt.Sprintf("configuration error: %s %q", e.Reason, e.Param)
}

// Unwrap returns the sentinel the error wraps.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// TransportError reports a network failure or a non-2xx status. StatusCode is 0
// when no response was received.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Message    string
	TrackingID string
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}

	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}

	if e.TrackingID != "" {
		return fmt.Sprintf("%s %s: %d %s (tracking id: %s)", e.Method, e.URL, e.StatusCode, msg, e.TrackingID)
	}

	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, msg)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewStatusError builds a TransportError for a non-2xx response, pulling the
// message and tracking id out of the Webex error envelope when present.
func NewStatusError(method, url string, statusCode int, body []byte) *TransportError {
	transportErr := &TransportError{
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Body:       body,
		Err:        ErrHTTPStatus,
	}

	errBody, err := ParseErrorBody(body)
	if err == nil {
		transportErr.Message = errBody.Summary()
		transportErr.TrackingID = errBody.TrackingID
	}

	return transportErr
}

// DecodeError reports a response body that does not fit the declared shape.
type DecodeError struct {
	Key    string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("decode error: %s", e.Reason)
	}

	return fmt.Sprintf("decode error at %q: %s", e.Key, e.Reason)
}

// Unwrap returns the sentinel or the json error the decode error wraps.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ErrorDetail is one entry of the errors array in a Webex error response.
type ErrorDetail struct {
	Description string `json:"description" yaml:"description"`
	Code        string `json:"code,omitempty" yaml:"code,omitempty"`
}

// ErrorBody is the error envelope returned by the Webex API.
type ErrorBody struct {
	Message    string        `json:"message"    yaml:"message"`
	Errors     []ErrorDetail `json:"errors"     yaml:"errors"`
	TrackingID string        `json:"trackingId" yaml:"trackingId"`
}

// Summary joins the message and error descriptions.
func (b *ErrorBody) Summary() string {
	parts := make([]string, 0, len(b.Errors)+1)
	if b.Message != "" {
		parts = append(parts, b.Message)
	}

	for _, detail := range b.Errors {
		if detail.Description != "" && detail.Description != b.Message {
			parts = append(parts, detail.Description)
		}
	}

	return strings.Join(parts, "; ")
}

// ParseErrorBody parses an error response from JSON.
func ParseErrorBody(data []byte) (*ErrorBody, error) {
	var errBody ErrorBody

	err := json.Unmarshal(data, &errBody)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal error body: %w", err)
	}

	return &errBody, nil
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	transportErr := &TransportError{}
	if errors.As(err, &transportErr) {
		return transportErr.StatusCode
	}

	return 0
}

// TrackingIDOf returns the TrackingID carried by err, or "".
func TrackingIDOf(err error) string {
	transportErr := &TransportError{}
	if errors.As(err, &transportErr) {
		return transportErr.TrackingID
	}

	return ""
}

// IsNotFound checks if the error is a 404.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is a 401.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a 403.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

// IsRateLimited checks if the error is a 429.
func IsRateLimited(err error) bool {
	return StatusCode(err) == http.StatusTooManyRequests
}
