package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/wxc/pkg/webex"
)

func TestTranslationPatternsClient_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		locationID string
		method     string
		call       func(*Client) error
		wantPath   string
	}{
		{
			name:     "get organization level",
			method:   http.MethodGet,
			wantPath: "/telephony/config/callRouting/translationPatterns/T1",
			call: func(c *Client) error {
				_, err := c.TranslationPatterns().Get(context.Background(), "T1", "", "")

				return err
			},
		},
		{
			name:     "get location level",
			method:   http.MethodGet,
			wantPath: "/telephony/config/callRouting/location/L1/translationPatterns/T1",
			call: func(c *Client) error {
				_, err := c.TranslationPatterns().Get(context.Background(), "T1", "L1", "")

				return err
			},
		},
		{
			name:     "update location level",
			method:   http.MethodPut,
			wantPath: "/telephony/config/callRouting/location/L1/translationPatterns/T1",
			call: func(c *Client) error {
				return c.TranslationPatterns().Update(context.Background(), "T1",
					&webex.TranslationPattern{Name: webex.Some("p")}, "L1", "")
			},
		},
		{
			name:     "delete organization level",
			method:   http.MethodDelete,
			wantPath: "/telephony/config/callRouting/translationPatterns/T1",
			call: func(c *Client) error {
				return c.TranslationPatterns().Delete(context.Background(), "T1", "", "")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(JSONHandler(t, func(r *http.Request) {
				assert.Equal(t, tt.method, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
			}, http.StatusOK, map[string]string{"id": "T1", "level": "Location"}))
			defer server.Close()

			require.NoError(t, tt.call(NewTestClient(t, server.URL)))
		})
	}
}

func TestTranslationPatternsClient_CreateAndList(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(JSONHandler(t, func(r *http.Request) {
		assert.Equal(t, "/telephony/config/callRouting/location/L1/translationPatterns", r.URL.Path)
	}, http.StatusCreated, map[string]string{"id": "T7"}))
	defer server.Close()

	id, err := NewTestClient(t, server.URL).TranslationPatterns().Create(context.Background(),
		&webex.TranslationPattern{MatchingPattern: webex.Some("+91XXX"), ReplacementPattern: webex.Some("+91234")}, "L1", "")
	require.NoError(t, err)
	assert.Equal(t, "T7", id)

	paged := NewPagedServer(t, "/telephony/config/callRouting/translationPatterns", "translationPatterns", []TestPage{
		{Items: []map[string]interface{}{
			{"id": "T1", "level": "Organization"},
			{"id": "T2", "level": "Region", "location": map[string]string{"id": "L1", "name": "HQ"}},
		}},
	})

	patterns, err := NewTestClient(t, paged.URL).TranslationPatterns().List(context.Background(),
		&webex.TranslationPatternListParams{LimitToOrgLevelEnabled: webex.Some(true)}).All()
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	assert.Equal(t, "limitToOrgLevelEnabled=true", <-paged.Queries)
	assert.Equal(t, webex.TranslationPatternLevelOrganization, patterns[0].Level.Value())
	assert.Equal(t, "Region", webex.RawEnum(patterns[1].Level.Value()))
	assert.Equal(t, "HQ", patterns[1].Location.Value().Name.Value())
}
