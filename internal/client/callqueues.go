package client

import (
	"context"

	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// CallQueuesClient implements webex.CallQueuesClient.
type CallQueuesClient struct {
	endpoints *endpoints
}

// NewCallQueuesClient creates a new call queues client.
func NewCallQueuesClient(transport webex.Transport, catalog *webex.Catalog) *CallQueuesClient {
	return &CallQueuesClient{endpoints: &endpoints{transport: transport, catalog: catalog}}
}

func queuePath(locationID, queueID string) webex.PathParams {
	return webex.PathParams{"locationId": locationID, "queueId": queueID}
}

// List implements webex.CallQueuesClient.List.
func (c *CallQueuesClient) List(ctx context.Context, params *webex.CallQueueListParams) *webex.Paginator[webex.CallQueue] {
	return listPaginated[webex.CallQueue](ctx, c.endpoints, "callQueues.list", nil, params.Query())
}

// Get implements webex.CallQueuesClient.Get.
func (c *CallQueuesClient) Get(ctx context.Context, locationID, queueID, orgID string) (*webex.CallQueueDetail, error) {
	return getSingle[webex.CallQueueDetail](ctx, c.endpoints, "callQueues.get", queuePath(locationID, queueID), orgQuery(orgID))
}

// Create implements webex.CallQueuesClient.Create and returns the new queue id.
func (c *CallQueuesClient) Create(ctx context.Context, locationID string, settings *webex.CallQueueDetail, orgID string) (string, error) {
	return createScalar(ctx, c.endpoints, "callQueues.create",
		webex.PathParams{"locationId": locationID}, orgQuery(orgID), settings)
}

// Update implements webex.CallQueuesClient.Update.
func (c *CallQueuesClient) Update(ctx context.Context, locationID, queueID string, settings *webex.CallQueueDetail, orgID string) error {
	return execute(ctx, c.endpoints, "callQueues.update", queuePath(locationID, queueID), orgQuery(orgID), settings)
}

// Delete implements webex.CallQueuesClient.Delete.
func (c *CallQueuesClient) Delete(ctx context.Context, locationID, queueID, orgID string) error {
	return execute(ctx, c.endpoints, "callQueues.delete", queuePath(locationID, queueID), orgQuery(orgID), nil)
}

// ListAgents implements webex.CallQueuesClient.ListAgents.
func (c *CallQueuesClient) ListAgents(ctx context.Context, params *webex.AgentListParams) *webex.Paginator[webex.CallQueueAgent] {
	return listPaginated[webex.CallQueueAgent](ctx, c.endpoints, "callQueues.listAgents", nil, params.Query())
}
