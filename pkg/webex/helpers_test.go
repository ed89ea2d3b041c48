package webex_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// fakeTransport answers requests from a script, one response per call, and
// records what it was sent.
type fakeTransport struct {
	t         *testing.T
	mu        sync.Mutex
	responses []fakeResponse
	requests  []*webex.RequestDescriptor
}

type fakeResponse struct {
	status  int
	body    any
	headers http.Header
}

func newFakeTransport(t *testing.T, responses ...fakeResponse) *fakeTransport {
	t.Helper()

	return &fakeTransport{t: t, responses: responses}
}

func (f *fakeTransport) Send(_ context.Context, req *webex.RequestDescriptor) (*webex.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, req)

	index := len(f.requests) - 1
	if index >= len(f.responses) {
		f.t.Errorf("unexpected request %d: %s %s", index+1, req.Method, req.URL())

		return nil, webex.NewStatusError(req.Method, req.URL(), http.StatusNotFound, nil)
	}

	scripted := f.responses[index]

	var body []byte

	switch typed := scripted.body.(type) {
	case nil:
	case string:
		body = []byte(typed)
	default:
		data, err := json.Marshal(typed)
		if err != nil {
			f.t.Fatalf("encoding scripted body: %v", err)
		}

		body = data
	}

	status := scripted.status
	if status == 0 {
		status = http.StatusOK
	}

	if status >= http.StatusBadRequest {
		return nil, webex.NewStatusError(req.Method, req.URL(), status, body)
	}

	return &webex.Response{StatusCode: status, Headers: scripted.headers, Body: body}, nil
}

func (f *fakeTransport) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.requests)
}

func (f *fakeTransport) request(i int) *webex.RequestDescriptor {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.requests[i]
}

func page(items ...map[string]any) map[string]any {
	return map[string]any{"items": items}
}

func linkNext(url string) http.Header {
	return http.Header{"Link": []string{`<` + url + `>; rel="next"`}}
}
