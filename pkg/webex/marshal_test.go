package webex_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/wxc/pkg/webex"
)

func TestSerialize_RoundTrip(t *testing.T) {
	t.Parallel()

	original := webex.CallQueueDetail{
		ID:        webex.Some("Q1"),
		Name:      webex.Some("Sales"),
		Enabled:   webex.Some(true),
		Extension: webex.Null[string](),
		CallPolicies: webex.Some(webex.CallQueueCallPolicies{
			Policy:      webex.Some(webex.RoutingPolicyWeighted),
			RoutingType: webex.Some(webex.RoutingType("AI_BASED")),
			CallBounce: webex.Some(webex.CallBounce{
				CallBounceEnabled:  webex.Some(true),
				CallBounceMaxRings: webex.Some(5),
			}),
		}),
		Agents: webex.Some([]webex.CallQueueAgent{
			{ID: webex.Some("A1"), Type: webex.Some(webex.AgentTypeVirtualLine), Weight: webex.Some(100)},
		}),
	}

	raw, err := webex.Serialize(original)
	require.NoError(t, err)

	assert.Equal(t, "Sales", raw["name"])
	assert.Nil(t, raw["extension"])
	assert.Contains(t, raw, "extension")
	assert.NotContains(t, raw, "timeZone")
	assert.Equal(t, json.Number("5"), raw["callPolicies"].(map[string]any)["callBounce"].(map[string]any)["callBounceMaxRings"])
	assert.Equal(t, "AI_BASED", raw["callPolicies"].(map[string]any)["routingType"])

	restored, err := webex.Validate[webex.CallQueueDetail](raw)
	require.NoError(t, err)
	assert.Equal(t, original, *restored)
}

func TestSerializeList(t *testing.T) {
	t.Parallel()

	items, err := webex.SerializeList([]webex.Location{
		{ID: webex.Some("L1")},
		{ID: webex.Some("L2"), Name: webex.Some("Branch")},
	})
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{
		{"id": "L1"},
		{"id": "L2", "name": "Branch"},
	}, items)

	_, err = webex.Serialize([]string{"not", "an", "object"})
	require.Error(t, err)
}

func TestValidate_UnknownEnum(t *testing.T) {
	t.Parallel()

	agent, err := webex.Validate[webex.CallQueueAgent](map[string]any{"id": "A1", "type": "SOME_FUTURE_TYPE"})
	require.NoError(t, err)

	agentType := agent.Type.Value()
	assert.False(t, agentType.IsKnown())
	assert.Equal(t, "SOME_FUTURE_TYPE", webex.RawEnum(agentType))
	assert.Equal(t, webex.AgentTypePeople, webex.KnownOr(agentType, webex.AgentTypePeople))

	raw, err := webex.Serialize(agent)
	require.NoError(t, err)
	assert.Equal(t, "SOME_FUTURE_TYPE", raw["type"])
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	_, err := webex.Validate[webex.CallQueueAgent](map[string]any{"weight": "heavy"})

	decodeErr := &webex.DecodeError{}
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Key, "weight")
	require.ErrorIs(t, err, webex.ErrTypeMismatch)

	_, err = webex.Validate[webex.CallQueueAgent](map[string]any{"bad": make(chan int)})
	require.ErrorIs(t, err, webex.ErrInvalidJSON)

	agent, err := webex.Validate[webex.CallQueueAgent](map[string]any{"id": "A1", "unexpected": []any{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, "A1", agent.ID.Value())
}

func TestValidateJSON_Times(t *testing.T) {
	t.Parallel()

	meeting, err := webex.ValidateJSON[webex.Meeting]([]byte(`{"id":"M1","start":"2026-05-01T09:30:00+02:00","end":null}`))
	require.NoError(t, err)

	assert.True(t, meeting.Start.Value().Equal(time.Date(2026, 5, 1, 7, 30, 0, 0, time.UTC)))
	assert.True(t, meeting.End.IsNull())
	assert.False(t, meeting.Agenda.IsSet())
}
