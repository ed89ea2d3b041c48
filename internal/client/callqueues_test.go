package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/wxc/pkg/webex"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCallQueuesClient(t *testing.T) {
	t.Parallel()

	t.Run("list omits unset parameters", func(t *testing.T) {
		t.Parallel()

		server := NewPagedServer(t, "/telephony/config/queues", "queues", []TestPage{
			{Items: []map[string]interface{}{
				{"id": "Q1", "name": "Sales", "locationId": "L1", "enabled": true},
				{"id": "Q2", "name": "Support", "locationId": "L1"},
			}},
		})
		client := NewTestClient(t, server.URL)

		queues, err := client.CallQueues().List(context.Background(), &webex.CallQueueListParams{
			LocationID: webex.Some("L1"),
		}).All()
		require.NoError(t, err)
		require.Len(t, queues, 2)
		assert.Equal(t, "locationId=L1", <-server.Queries)

		assert.Equal(t, "Sales", queues[0].Name.Value())
		assert.True(t, queues[0].Enabled.OrElse(false))
		assert.False(t, queues[1].Enabled.IsSet())
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(JSONHandler(t, func(r *http.Request) {
			assert.Equal(t, "/telephony/config/locations/L1/queues/Q1", r.URL.Path)
			assert.Equal(t, "orgId=o1", r.URL.RawQuery)
		}, http.StatusOK, map[string]interface{}{
			"id":   "Q1",
			"name": "Sales",
			"callPolicies": map[string]interface{}{
				"policy":      "NEWEST_FIRST",
				"routingType": "PRIORITY_BASED",
			},
			"agents": []map[string]interface{}{{"id": "A1", "type": "PEOPLE", "weight": 50}},
		}))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		queue, err := client.CallQueues().Get(context.Background(), "L1", "Q1", "o1")
		require.NoError(t, err)

		policies := queue.CallPolicies.Value()
		assert.Equal(t, webex.RoutingPolicy("NEWEST_FIRST"), policies.Policy.Value())
		assert.False(t, policies.Policy.Value().IsKnown())
		assert.Equal(t, webex.RoutingTypePriorityBased, policies.RoutingType.Value())

		agents := queue.Agents.Value()
		require.Len(t, agents, 1)
		assert.Equal(t, webex.AgentTypePeople, agents[0].Type.Value())
		assert.Equal(t, 50, agents[0].Weight.Value())
	})

	t.Run("get requires path parameters", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient(t, "https://webexapis.invalid/v1")

		_, err := client.CallQueues().Get(context.Background(), "L1", "", "")

		configErr := &webex.ConfigurationError{}
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "queueId", configErr.Param)
	})

	t.Run("create returns id", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(JSONHandler(t, func(r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/telephony/config/locations/L1/queues", r.URL.Path)

			data, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.JSONEq(t, `{"name":"Sales","extension":"1234","callPolicies":{"policy":"CIRCULAR"}}`, string(data))
		}, http.StatusCreated, map[string]string{"id": "Q9"}))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		id, err := client.CallQueues().Create(context.Background(), "L1", &webex.CallQueueDetail{
			Name:      webex.Some("Sales"),
			Extension: webex.Some("1234"),
			CallPolicies: webex.Some(webex.CallQueueCallPolicies{
				Policy: webex.Some(webex.RoutingPolicyCircular),
			}),
		}, "")
		require.NoError(t, err)
		assert.Equal(t, "Q9", id)
	})

	t.Run("create without id in response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(JSONHandler(t, nil, http.StatusCreated, map[string]string{"name": "Sales"}))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		_, err := client.CallQueues().Create(context.Background(), "L1", &webex.CallQueueDetail{}, "")

		decodeErr := &webex.DecodeError{}
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "id", decodeErr.Key)
	})

	t.Run("update sends null for cleared fields", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(JSONHandler(t, func(r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)

			var body map[string]interface{}

			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]interface{}{"name": "Renamed", "extension": nil}, body)
		}, http.StatusNoContent, nil))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		err := client.CallQueues().Update(context.Background(), "L1", "Q1", &webex.CallQueueDetail{
			Name:      webex.Some("Renamed"),
			Extension: webex.Null[string](),
		}, "")
		require.NoError(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(JSONHandler(t, func(r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/telephony/config/locations/L1/queues/Q1", r.URL.Path)
		}, http.StatusNoContent, nil))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		require.NoError(t, client.CallQueues().Delete(context.Background(), "L1", "Q1", ""))
	})

	t.Run("list agents", func(t *testing.T) {
		t.Parallel()

		server := NewPagedServer(t, "/telephony/config/queues/agents", "agents", []TestPage{
			{Items: []map[string]interface{}{{"id": "A1", "type": "PLACE"}}},
			{Items: []map[string]interface{}{{"id": "A2", "type": "ROBOT"}}},
		})
		client := NewTestClient(t, server.URL)

		var ids []string

		for agent, err := range client.CallQueues().ListAgents(context.Background(), &webex.AgentListParams{
			QueueID:     webex.Some("Q1"),
			JoinEnabled: webex.Some(false),
		}).Items() {
			require.NoError(t, err)

			ids = append(ids, agent.ID.Value())
		}

		assert.Equal(t, []string{"A1", "A2"}, ids)
		assert.Equal(t, "joinEnabled=false&queueId=Q1", <-server.Queries)
	})
}
