package client

import (
	"context"

	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// LocationsClient implements webex.LocationsClient.
type LocationsClient struct {
	endpoints *endpoints
}

// NewLocationsClient creates a new locations client.
func NewLocationsClient(transport webex.Transport, catalog *webex.Catalog) *LocationsClient {
	return &LocationsClient{endpoints: &endpoints{transport: transport, catalog: catalog}}
}

// List implements webex.LocationsClient.List.
func (c *LocationsClient) List(ctx context.Context, params *webex.LocationListParams) *webex.Paginator[webex.Location] {
	return listPaginated[webex.Location](ctx, c.endpoints, "locations.list", nil, params.Query())
}

// Get implements webex.LocationsClient.Get.
func (c *LocationsClient) Get(ctx context.Context, locationID, orgID string) (*webex.Location, error) {
	return getSingle[webex.Location](ctx, c.endpoints, "locations.get",
		webex.PathParams{"locationId": locationID}, orgQuery(orgID))
}
