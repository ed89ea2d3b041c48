package webex

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/fivetwenty-io/wxc/internal/constants"
)

// Request is an outgoing call as interceptors see it. URL is the resolved
// URL including its query. Path is the API path below the base URL without
// the query, so every page of one listing shares it.
type Request struct {
	Method   string
	URL      string
	Path     string
	Headers  http.Header
	Body     []byte
	Metadata map[string]interface{}
}

// Endpoint names the request as "METHOD path".
func (r *Request) Endpoint() string {
	return r.Method + " " + r.Path
}

// TrackingID returns the TrackingID header set by the transport.
func (r *Request) TrackingID() string {
	if r.Headers == nil {
		return ""
	}

	return r.Headers.Get(constants.TrackingIDHeader)
}

// RequestInterceptor runs before a request is sent. An error aborts the call.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor runs once the call has finished, successfully or not.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain holds the interceptors a transport runs around each
// request. Retries happen inside one round of the chain.
type InterceptorChain struct {
	onRequest  []RequestInterceptor
	onResponse []ResponseInterceptor
}

// NewInterceptorChain returns an empty chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor appends interceptor and returns the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) *InterceptorChain {
	c.onRequest = append(c.onRequest, interceptor)

	return c
}

// AddResponseInterceptor appends interceptor and returns the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) *InterceptorChain {
	c.onResponse = append(c.onResponse, interceptor)

	return c
}

// ExecuteRequestInterceptors runs the request interceptors in order and stops
// at the first error.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	for _, interceptor := range c.onRequest {
		if err := interceptor(ctx, req); err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs the response interceptors in order and
// stops at the first error.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	for _, interceptor := range c.onResponse {
		if err := interceptor(ctx, req, resp); err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// LoggingInterceptor logs each outgoing call at debug level with its
// TrackingID.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		logger.Debug("Webex request", map[string]interface{}{
			"method":      req.Method,
			"url":         req.URL,
			"tracking_id": req.TrackingID(),
		})

		return nil
	}
}

// LoggingResponseInterceptor logs each finished call. Failures are logged at
// error level with the TrackingID Webex reported, or the one that was sent.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(_ context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"endpoint":    req.Endpoint(),
			"status":      resp.StatusCode,
			"tracking_id": req.TrackingID(),
		}

		if resp.Error == nil {
			logger.Debug("Webex response", fields)

			return nil
		}

		if trackingID := TrackingIDOf(resp.Error); trackingID != "" {
			fields["tracking_id"] = trackingID
		}

		fields["error"] = resp.Error.Error()
		logger.Error("Webex request failed", fields)

		return nil
	}
}

// HeaderInterceptor sets fixed headers on every request.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		for key, value := range headers {
			req.Headers.Set(key, value)
		}

		return nil
	}
}

// Metrics holds the counters of one endpoint.
type Metrics struct {
	TotalRequests   int64
	TotalErrors     int64
	TotalLatency    time.Duration
	AverageLatency  time.Duration
	LastRequestTime time.Time
}

// MetricsCollector counts calls per "METHOD path". It is safe for concurrent
// use.
type MetricsCollector struct {
	mu       sync.Mutex
	byPath   map[string]*Metrics
	onChange func(endpoint string, metrics Metrics)
}

// NewMetricsCollector returns an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{byPath: make(map[string]*Metrics)}
}

// SetOnChange registers fn to receive a snapshot after every recorded call.
func (m *MetricsCollector) SetOnChange(fn func(endpoint string, metrics Metrics)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onChange = fn
}

// GetMetrics returns a snapshot for endpoint, or nil if it was never called.
func (m *MetricsCollector) GetMetrics(endpoint string) *Metrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	metrics, ok := m.byPath[endpoint]
	if !ok {
		return nil
	}

	snapshot := *metrics

	return &snapshot
}

// Endpoints returns the recorded endpoints in sorted order.
func (m *MetricsCollector) Endpoints() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Sorted(maps.Keys(m.byPath))
}

// Record adds one call to endpoint. A zero latency leaves the latency totals
// unchanged.
func (m *MetricsCollector) Record(endpoint string, latency time.Duration, failed bool) {
	m.mu.Lock()

	metrics, ok := m.byPath[endpoint]
	if !ok {
		metrics = &Metrics{}
		m.byPath[endpoint] = metrics
	}

	metrics.TotalRequests++
	metrics.LastRequestTime = time.Now()

	if latency > 0 {
		metrics.TotalLatency += latency
		metrics.AverageLatency = metrics.TotalLatency / time.Duration(metrics.TotalRequests)
	}

	if failed {
		metrics.TotalErrors++
	}

	snapshot := *metrics
	onChange := m.onChange

	m.mu.Unlock()

	if onChange != nil {
		onChange(endpoint, snapshot)
	}
}

const metricsStartKey = "metrics.start"

// MetricsRequestInterceptor stamps the request with its start time.
func MetricsRequestInterceptor(_ *MetricsCollector) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata[metricsStartKey] = time.Now()

		return nil
	}
}

// MetricsResponseInterceptor records the call under req.Endpoint(). Transport
// errors and statuses of 400 and above count as errors.
func MetricsResponseInterceptor(collector *MetricsCollector) ResponseInterceptor {
	return func(_ context.Context, req *Request, resp *Response) error {
		var latency time.Duration
		if start, ok := req.Metadata[metricsStartKey].(time.Time); ok {
			latency = time.Since(start)
		}

		collector.Record(req.Endpoint(), latency, resp.Error != nil || resp.StatusCode >= http.StatusBadRequest)

		return nil
	}
}
