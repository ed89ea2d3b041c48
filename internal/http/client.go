package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/wxc/internal/auth"
	"github.com/fivetwenty-io/wxc/internal/constants"
	"github.com/fivetwenty-io/wxc/pkg/webex"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

// Static errors for err113 compliance.
var (
	ErrInvalidBaseURL = errors.New("invalid base URL")
)

// Request is an HTTP request relative to the client's base URL. Path may also
// be an absolute URL, as handed out by Link headers.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the Webex HTTP transport. Retries and backoff happen here and
// nowhere else.
type Client struct {
	baseURL      string
	tokenManager auth.TokenManager
	httpClient   *retryablehttp.Client
	logger       webex.Logger
	debug        bool
	userAgent    string
	interceptors *webex.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger webex.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRetryConfig sets the retry limits. 429 responses honour Retry-After.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithInterceptors runs chain around every request.
func WithInterceptors(chain *webex.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithHTTPClient replaces the underlying http.Client, for custom TLS or proxies.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// NewClient creates a new HTTP client. A nil tokenManager sends requests
// without an Authorization header.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.CheckRetry = retryablehttp.DefaultRetryPolicy
	retryClient.Backoff = retryablehttp.DefaultBackoff
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		httpClient:   retryClient,
		userAgent:    constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient.RequestLogHook = client.logRetry

	return client
}

// BaseURL returns the base URL requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes req. On a non-2xx status both the response and a
// *webex.TransportError are returned.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL, err := c.resolveURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	bodyBytes, err := encodeBody(req.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	intercepted := &webex.Request{
		Method:  req.Method,
		URL:     fullURL,
		Path:    c.apiPath(fullURL),
		Headers: make(http.Header),
		Body:    bodyBytes,
	}

	err = c.prepareHeaders(ctx, intercepted, req.Headers, bodyBytes != nil)
	if err != nil {
		return nil, err
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
		if err != nil {
			return nil, err
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":      intercepted.Method,
			"url":         intercepted.URL,
			"tracking_id": intercepted.Headers.Get(constants.TrackingIDHeader),
		})
	}

	resp, sendErr := c.send(ctx, intercepted)

	if c.interceptors != nil {
		hookResp := &webex.Response{Error: sendErr}
		if resp != nil {
			hookResp.StatusCode = resp.StatusCode
			hookResp.Headers = resp.Headers
			hookResp.Body = resp.Body
		}

		err = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, hookResp)
		if err != nil && sendErr == nil {
			sendErr = err
		}
	}

	return resp, sendErr
}

func (c *Client) send(ctx context.Context, req *webex.Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header = req.Headers

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &webex.TransportError{
			Method:     req.Method,
			URL:        req.URL,
			TrackingID: req.Headers.Get(constants.TrackingIDHeader),
			Message:    err.Error(),
			Err:        errors.Join(webex.ErrNetwork, err),
		}
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &webex.TransportError{
			Method:     req.Method,
			URL:        req.URL,
			StatusCode: httpResp.StatusCode,
			Message:    "failed to read response body",
			Err:        errors.Join(webex.ErrNetwork, err),
		}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   httpResp.StatusCode,
			"duration": time.Since(start).String(),
			"size":     len(respBody),
		})
	}

	if httpResp.StatusCode < constants.HTTPStatusOK || httpResp.StatusCode >= constants.HTTPStatusMultipleChoices {
		statusErr := webex.NewStatusError(req.Method, req.URL, httpResp.StatusCode, respBody)
		if statusErr.TrackingID == "" {
			statusErr.TrackingID = httpResp.Header.Get("Trackingid")
		}

		return resp, statusErr
	}

	return resp, nil
}

// Send implements webex.Transport.
func (c *Client) Send(ctx context.Context, req *webex.RequestDescriptor) (*webex.Response, error) {
	var body interface{}
	if req.Body != nil {
		body = json.RawMessage(req.Body)
	}

	resp, err := c.Do(ctx, &Request{
		Method:  req.Method,
		Path:    req.Path,
		Query:   req.Query,
		Body:    body,
		Headers: req.Headers,
	})
	if resp == nil {
		return nil, err
	}

	return &webex.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Error:      err,
	}, err
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) resolveURL(path string, query url.Values) (string, error) {
	var target string

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		target = path
	} else {
		if c.baseURL == "" {
			return "", fmt.Errorf("%w: relative path %q without base URL", ErrInvalidBaseURL, path)
		}

		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}

		target = c.baseURL + path
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	if len(query) > 0 {
		merged := parsed.Query()
		for name, values := range query {
			merged[name] = values
		}

		parsed.RawQuery = merged.Encode()
	}

	return parsed.String(), nil
}

// apiPath returns the path of target below the base URL, without its query.
// Next-page URLs on the same host therefore map to the listing's path.
func (c *Client) apiPath(target string) string {
	parsed, err := url.Parse(target)
	if err != nil {
		return target
	}

	path := parsed.Path

	base, err := url.Parse(c.baseURL)
	if err == nil && base.Host == parsed.Host {
		trimmed, ok := strings.CutPrefix(path, strings.TrimSuffix(base.Path, "/"))
		if ok && (trimmed == "" || strings.HasPrefix(trimmed, "/")) {
			path = trimmed
		}
	}

	if path == "" {
		return "/"
	}

	return path
}

func (c *Client) prepareHeaders(ctx context.Context, req *webex.Request, extra map[string]string, hasBody bool) error {
	req.Headers.Set("Accept", "application/json")
	req.Headers.Set("User-Agent", c.userAgent)
	req.Headers.Set(constants.TrackingIDHeader, constants.TrackingIDPrefix+uuid.NewString())

	if hasBody {
		req.Headers.Set("Content-Type", "application/json")
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("failed to get auth token: %w", err)
		}

		req.Headers.Set("Authorization", "Bearer "+token)
	}

	for key, value := range extra {
		req.Headers.Set(key, value)
	}

	return nil
}

func (c *Client) logRetry(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 || c.logger == nil {
		return
	}

	c.logger.Warn("Retrying HTTP request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"attempt": attempt,
	})
}

func encodeBody(body interface{}) ([]byte, error) {
	switch typed := body.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		return typed, nil
	case []byte:
		return typed, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding body: %w", err)
	}

	return data, nil
}
