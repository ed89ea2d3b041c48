package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	wxchttp "github.com/fivetwenty-io/wxc/internal/http"
	"github.com/fivetwenty-io/wxc/pkg/webex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTokenUnavailable = errors.New("token unavailable")

// MockTokenManager for testing.
type MockTokenManager struct {
	token string
	err   error
}

func (m *MockTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, m.err
}

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/locations", request.URL.Path)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "wxc-go", request.Header.Get("User-Agent"))
			assert.True(t, strings.HasPrefix(request.Header.Get("TrackingID"), "WXC_"))

			_ = json.NewEncoder(writer).Encode(map[string]string{"id": "loc-1", "name": "HQ"})
		}))
		defer server.Close()

		client := wxchttp.NewClient(server.URL+"/v1/", &MockTokenManager{token: "test-token"})

		resp, err := client.Do(context.Background(), &wxchttp.Request{Method: http.MethodGet, Path: "/locations"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "loc-1", result["id"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "max=2&orgId=o1", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := wxchttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/locations", url.Values{"orgId": {"o1"}, "max": {"2"}})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("absolute next link is used verbatim", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/locations", request.URL.Path)
			assert.Equal(t, "cursor=abc&max=2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := wxchttp.NewClient("https://webexapis.invalid/v1", nil)

		_, err := client.Get(context.Background(), server.URL+"/v1/locations?cursor=abc&max=2", nil)
		require.NoError(t, err)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "Sales", body["name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := wxchttp.NewClient(server.URL, nil)

		resp, err := client.Post(context.Background(), "/telephony/config/locations/L1/queues", map[string]string{"name": "Sales"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"message":"Location not found","errors":[{"description":"Location not found"}],"trackingId":"ROUTER_123"}`))
		}))
		defer server.Close()

		client := wxchttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/locations/missing", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		transportErr := &webex.TransportError{}
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, "Location not found", transportErr.Message)
		assert.Equal(t, "ROUTER_123", transportErr.TrackingID)
		assert.Contains(t, string(transportErr.Body), "Location not found")
		require.ErrorIs(t, err, webex.ErrHTTPStatus)
		assert.True(t, webex.IsNotFound(err))
	})

	t.Run("network failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		serverURL := server.URL
		server.Close()

		client := wxchttp.NewClient(serverURL, nil, wxchttp.WithRetryConfig(0, time.Millisecond, time.Millisecond))

		resp, err := client.Get(context.Background(), "/locations", nil)
		require.Error(t, err)
		assert.Nil(t, resp)
		require.ErrorIs(t, err, webex.ErrNetwork)
		assert.Equal(t, 0, webex.StatusCode(err))
	})

	t.Run("token failure", func(t *testing.T) {
		t.Parallel()

		client := wxchttp.NewClient("https://webexapis.invalid/v1", &MockTokenManager{err: errTokenUnavailable})

		_, err := client.Get(context.Background(), "/locations", nil)
		require.ErrorIs(t, err, errTokenUnavailable)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "custom-agent", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := wxchttp.NewClient(server.URL, nil, wxchttp.WithUserAgent("custom-agent"))

		resp, err := client.Do(context.Background(), &wxchttp.Request{
			Method:  http.MethodGet,
			Path:    "/locations",
			Headers: map[string]string{"X-Custom-Header": "custom-value"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := wxchttp.NewClient(server.URL, nil, wxchttp.WithLogger(logger), wxchttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/locations", nil)
		require.NoError(t, err)

		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*wxchttp.Client, context.Context) (*wxchttp.Response, error)
	}{
		{
			name:   "GET",
			method: http.MethodGet,
			fn: func(c *wxchttp.Client, ctx context.Context) (*wxchttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: http.MethodPost,
			fn: func(c *wxchttp.Client, ctx context.Context) (*wxchttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: http.MethodPut,
			fn: func(c *wxchttp.Client, ctx context.Context) (*wxchttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: http.MethodPatch,
			fn: func(c *wxchttp.Client, ctx context.Context) (*wxchttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: http.MethodDelete,
			fn: func(c *wxchttp.Client, ctx context.Context) (*wxchttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := wxchttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

func TestClient_Send(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPut, request.Method)
		assert.Equal(t, "/telephony/config/locations/L%201/queues/Q1", request.URL.EscapedPath())
		assert.Equal(t, "orgId=o1", request.URL.RawQuery)

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, map[string]interface{}{"name": "Support"}, body)

		writer.Header().Set("Link", `<https://next.invalid/page2>; rel="next"`)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := wxchttp.NewClient(server.URL, nil)

	req, err := webex.BuildRequest(http.MethodPut, "/telephony/config/locations/{locationId}/queues/{queueId}",
		webex.PathParams{"locationId": "L 1", "queueId": "Q1"},
		webex.NewQueryParams().WithOrgID("o1"),
		map[string]string{"name": "Support"})
	require.NoError(t, err)

	resp, err := client.Send(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, `<https://next.invalid/page2>; rel="next"`, resp.Headers.Get("Link"))
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	var sentTrackingIDs []string

	var mu sync.Mutex

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "value", request.Header.Get("X-Extra"))

		mu.Lock()
		sentTrackingIDs = append(sentTrackingIDs, request.Header.Get("TrackingID"))
		mu.Unlock()

		if request.URL.Query().Get("cursor") == "b" {
			writer.WriteHeader(http.StatusBadRequest)

			return
		}

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	logger := &MockLogger{}
	collector := webex.NewMetricsCollector()
	chain := webex.NewInterceptorChain().
		AddRequestInterceptor(webex.HeaderInterceptor(map[string]string{"X-Extra": "value"})).
		AddRequestInterceptor(webex.LoggingInterceptor(logger)).
		AddRequestInterceptor(webex.MetricsRequestInterceptor(collector)).
		AddResponseInterceptor(webex.MetricsResponseInterceptor(collector)).
		AddResponseInterceptor(webex.LoggingResponseInterceptor(logger))

	client := wxchttp.NewClient(server.URL+"/v1", nil, wxchttp.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/locations", url.Values{"cursor": {"a"}})
	require.NoError(t, err)

	// A next-page URL as returned in a Link header.
	_, err = client.Get(context.Background(), server.URL+"/v1/locations?cursor=b", nil)
	require.Error(t, err)

	assert.Equal(t, []string{"GET /locations"}, collector.Endpoints())

	metrics := collector.GetMetrics("GET /locations")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, sentTrackingIDs, 2)
	require.Len(t, logger.logs, 4)
	assert.Equal(t, sentTrackingIDs[0], logger.logs[0]["fields"].(map[string]interface{})["tracking_id"])
	assert.Equal(t, "error", logger.logs[3]["level"])
	assert.Equal(t, "GET /locations", logger.logs[3]["fields"].(map[string]interface{})["endpoint"])
	assert.Equal(t, sentTrackingIDs[1], logger.logs[3]["fields"].(map[string]interface{})["tracking_id"])
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := wxchttp.NewClient(server.URL, nil,
			wxchttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond),
			wxchttp.WithLogger(logger))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), attempts.Load())
		assert.Len(t, logger.logs, 2)
	})

	t.Run("retries on rate limiting", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 2 {
				writer.Header().Set("Retry-After", "0")
				writer.WriteHeader(http.StatusTooManyRequests)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := wxchttp.NewClient(server.URL, nil, wxchttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(2), attempts.Load())
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := wxchttp.NewClient(server.URL, nil, wxchttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})
}
