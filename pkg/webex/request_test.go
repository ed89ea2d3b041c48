package webex_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/wxc/pkg/webex"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestBuildRequest(t *testing.T) {
	t.Parallel()

	t.Run("substitutes and escapes path parameters", func(t *testing.T) {
		t.Parallel()

		req, err := webex.BuildRequest(http.MethodGet, "/locations/{locationId}/queues/{queueId}",
			webex.PathParams{"locationId": "L 1/2", "queueId": "Q1"}, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, "/locations/L%201%2F2/queues/Q1", req.Path)
		assert.Empty(t, req.Query)
		assert.Nil(t, req.Body)
	})

	t.Run("omits absent query parameters", func(t *testing.T) {
		t.Parallel()

		query := webex.NewQueryParams().
			Set("locationId", "L1").
			WithOrgID("")

		req, err := webex.BuildRequest(http.MethodGet, "/widgets", nil, query, nil)
		require.NoError(t, err)

		assert.Equal(t, url.Values{"locationId": []string{"L1"}}, req.Query)
		assert.Equal(t, "/widgets?locationId=L1", req.URL())
	})

	t.Run("missing path parameter", func(t *testing.T) {
		t.Parallel()

		_, err := webex.BuildRequest(http.MethodGet, "/locations/{locationId}", webex.PathParams{"locationId": ""}, nil, nil)

		configErr := &webex.ConfigurationError{}
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "locationId", configErr.Param)
		require.ErrorIs(t, err, webex.ErrMissingPathParam)
	})

	t.Run("invalid method", func(t *testing.T) {
		t.Parallel()

		_, err := webex.BuildRequest("FETCH", "/locations", nil, nil, nil)
		require.ErrorIs(t, err, webex.ErrInvalidMethod)
	})

	t.Run("unclosed placeholder", func(t *testing.T) {
		t.Parallel()

		_, err := webex.BuildRequest(http.MethodGet, "/locations/{locationId", webex.PathParams{"locationId": "L1"}, nil, nil)
		require.ErrorIs(t, err, webex.ErrInvalidPath)
	})

	t.Run("model body uses wire names", func(t *testing.T) {
		t.Parallel()

		req, err := webex.BuildRequest(http.MethodPost, "/telephony/config/locations/{locationId}/queues",
			webex.PathParams{"locationId": "L1"}, nil, &webex.CallQueueDetail{
				Name:    webex.Some("Sales"),
				Enabled: webex.Some(false),
			})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Sales","enabled":false}`, string(req.Body))
	})

	t.Run("list body", func(t *testing.T) {
		t.Parallel()

		req, err := webex.BuildRequest(http.MethodPut, "/agents", nil, nil, []webex.CallQueueAgent{
			{ID: webex.Some("A1")},
			{ID: webex.Some("A2"), Weight: webex.Some(10)},
		})
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"A1"},{"id":"A2","weight":10}]`, string(req.Body))
	})

	t.Run("raw body must be valid JSON", func(t *testing.T) {
		t.Parallel()

		_, err := webex.BuildRequest(http.MethodPost, "/widgets", nil, nil, json.RawMessage(`{"broken"`))
		require.ErrorIs(t, err, webex.ErrInvalidBody)

		req, err := webex.BuildRequest(http.MethodPost, "/widgets", nil, nil, json.RawMessage(`{"ok":true}`))
		require.NoError(t, err)
		assert.Equal(t, `{"ok":true}`, string(req.Body))
	})

	t.Run("nil model pointer sends no body", func(t *testing.T) {
		t.Parallel()

		var detail *webex.CallQueueDetail

		req, err := webex.BuildRequest(http.MethodPut, "/widgets", nil, nil, detail)
		require.NoError(t, err)
		assert.Nil(t, req.Body)
	})

	t.Run("unencodable body", func(t *testing.T) {
		t.Parallel()

		_, err := webex.BuildRequest(http.MethodPost, "/widgets", nil, nil, map[string]any{"f": func() {}})
		require.ErrorIs(t, err, webex.ErrInvalidBody)
	})
}

func TestExpandPathPositional(t *testing.T) {
	t.Parallel()

	path, err := webex.ExpandPathPositional("/locations/{locationId}/autoAttendants/{autoAttendantId}", "L1", "AA1")
	require.NoError(t, err)
	assert.Equal(t, "/locations/L1/autoAttendants/AA1", path)

	_, err = webex.ExpandPathPositional("/locations/{locationId}/autoAttendants/{autoAttendantId}", "L1")
	require.ErrorIs(t, err, webex.ErrMissingPathParam)

	assert.Equal(t, []string{"locationId", "autoAttendantId"},
		webex.Placeholders("/locations/{locationId}/autoAttendants/{autoAttendantId}"))
	assert.Empty(t, webex.Placeholders("/meetings"))
}

func TestRequestDescriptor_URL(t *testing.T) {
	t.Parallel()

	req := &webex.RequestDescriptor{
		Path:  "https://webexapis.com/v1/locations?cursor=abc",
		Query: url.Values{"max": []string{"10"}},
	}

	assert.Equal(t, "https://webexapis.com/v1/locations?cursor=abc&max=10", req.URL())
}
