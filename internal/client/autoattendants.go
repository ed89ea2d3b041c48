package client

import (
	"context"

	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// AutoAttendantsClient implements webex.AutoAttendantsClient.
type AutoAttendantsClient struct {
	endpoints *endpoints
}

// NewAutoAttendantsClient creates a new auto attendants client.
func NewAutoAttendantsClient(transport webex.Transport, catalog *webex.Catalog) *AutoAttendantsClient {
	return &AutoAttendantsClient{endpoints: &endpoints{transport: transport, catalog: catalog}}
}

// List implements webex.AutoAttendantsClient.List.
func (c *AutoAttendantsClient) List(ctx context.Context, params *webex.AutoAttendantListParams) *webex.Paginator[webex.AutoAttendant] {
	return listPaginated[webex.AutoAttendant](ctx, c.endpoints, "autoAttendants.list", nil, params.Query())
}

// Get implements webex.AutoAttendantsClient.Get.
func (c *AutoAttendantsClient) Get(ctx context.Context, locationID, autoAttendantID, orgID string) (*webex.AutoAttendant, error) {
	return getSingle[webex.AutoAttendant](ctx, c.endpoints, "autoAttendants.get",
		webex.PathParams{"locationId": locationID, "autoAttendantId": autoAttendantID}, orgQuery(orgID))
}

// Create implements webex.AutoAttendantsClient.Create.
func (c *AutoAttendantsClient) Create(ctx context.Context, locationID string, settings *webex.AutoAttendant, orgID string) (string, error) {
	return createScalar(ctx, c.endpoints, "autoAttendants.create",
		webex.PathParams{"locationId": locationID}, orgQuery(orgID), settings)
}

// Delete implements webex.AutoAttendantsClient.Delete.
func (c *AutoAttendantsClient) Delete(ctx context.Context, locationID, autoAttendantID, orgID string) error {
	return execute(ctx, c.endpoints, "autoAttendants.delete",
		webex.PathParams{"locationId": locationID, "autoAttendantId": autoAttendantID}, orgQuery(orgID), nil)
}
