package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// NewTestClient creates a client against baseURL with a fixed token.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&webex.Config{
		APIEndpoint: baseURL,
		AccessToken: "test-token",
		RetryMax:    1,
	})
	require.NoError(t, err)

	return client
}

// TestPage is one scripted page of a listing.
type TestPage struct {
	Items []map[string]interface{}
	// Status overrides 200 when set.
	Status int
}

// PagedServer serves pages under itemKey, linking each page to the next with
// a Link header. It counts the requests it receives.
type PagedServer struct {
	*httptest.Server

	Requests atomic.Int32
	Queries  chan string
}

// NewPagedServer starts a server for pages at path.
func NewPagedServer(t *testing.T, path, itemKey string, pages []TestPage) *PagedServer {
	t.Helper()

	paged := &PagedServer{Queries: make(chan string, len(pages)+1)}

	paged.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		index := int(paged.Requests.Add(1)) - 1

		if request.URL.Path != path || index >= len(pages) {
			writer.WriteHeader(http.StatusNotFound)

			return
		}

		paged.Queries <- request.URL.RawQuery

		page := pages[index]
		if page.Status != 0 && page.Status != http.StatusOK {
			writer.WriteHeader(page.Status)
			_, _ = fmt.Fprintf(writer, `{"message":"page %d failed","trackingId":"TEST_%d"}`, index+1, index+1)

			return
		}

		if index+1 < len(pages) {
			writer.Header().Set("Link", fmt.Sprintf(`<%s%s?cursor=%d>; rel="next"`, paged.URL, path, index+1))
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{itemKey: page.Items})
	}))

	t.Cleanup(paged.Close)

	return paged
}

// JSONHandler answers every request with status and body after running check.
func JSONHandler(t *testing.T, check func(*http.Request), status int, body interface{}) http.HandlerFunc {
	t.Helper()

	return func(writer http.ResponseWriter, request *http.Request) {
		if check != nil {
			check(request)
		}

		if body == nil {
			writer.WriteHeader(status)

			return
		}

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_ = json.NewEncoder(writer).Encode(body)
	}
}
