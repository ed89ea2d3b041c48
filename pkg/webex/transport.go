package webex

import (
	"context"
	"net/http"
)

// Transport sends a built request. Implementations must return a
// *TransportError for network failures and non-2xx statuses and own any retry
// or timeout policy; the core never retries.
type Transport interface {
	Send(ctx context.Context, req *RequestDescriptor) (*Response, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, req *RequestDescriptor) (*Response, error)

// Send implements Transport.
func (f TransportFunc) Send(ctx context.Context, req *RequestDescriptor) (*Response, error) {
	return f(ctx, req)
}

// Response is a raw HTTP response, also handed to response interceptors.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}
