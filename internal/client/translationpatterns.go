package client

import (
	"context"

	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// TranslationPatternsClient implements webex.TranslationPatternsClient.
// Every single-pattern operation exists at organization and location level;
// a non-empty locationID selects the location variant.
type TranslationPatternsClient struct {
	endpoints *endpoints
}

// NewTranslationPatternsClient creates a new translation patterns client.
func NewTranslationPatternsClient(transport webex.Transport, catalog *webex.Catalog) *TranslationPatternsClient {
	return &TranslationPatternsClient{endpoints: &endpoints{transport: transport, catalog: catalog}}
}

// scoped returns the endpoint name and path parameters for the level
// addressed by locationID.
func scoped(operation, translationID, locationID string) (string, webex.PathParams) {
	params := webex.PathParams{}
	if translationID != "" {
		params["translationId"] = translationID
	}

	name := "translationPatterns." + operation
	if locationID != "" {
		name += "ForLocation"
		params["locationId"] = locationID
	}

	return name, params
}

// List implements webex.TranslationPatternsClient.List.
func (c *TranslationPatternsClient) List(ctx context.Context, params *webex.TranslationPatternListParams) *webex.Paginator[webex.TranslationPattern] {
	return listPaginated[webex.TranslationPattern](ctx, c.endpoints, "translationPatterns.list", nil, params.Query())
}

// Get implements webex.TranslationPatternsClient.Get.
func (c *TranslationPatternsClient) Get(ctx context.Context, translationID, locationID, orgID string) (*webex.TranslationPattern, error) {
	name, pathParams := scoped("get", translationID, locationID)

	return getSingle[webex.TranslationPattern](ctx, c.endpoints, name, pathParams, orgQuery(orgID))
}

// Create implements webex.TranslationPatternsClient.Create.
func (c *TranslationPatternsClient) Create(ctx context.Context, pattern *webex.TranslationPattern, locationID, orgID string) (string, error) {
	name, pathParams := scoped("create", "", locationID)

	return createScalar(ctx, c.endpoints, name, pathParams, orgQuery(orgID), pattern)
}

// Update implements webex.TranslationPatternsClient.Update.
func (c *TranslationPatternsClient) Update(ctx context.Context, translationID string, pattern *webex.TranslationPattern, locationID, orgID string) error {
	name, pathParams := scoped("update", translationID, locationID)

	return execute(ctx, c.endpoints, name, pathParams, orgQuery(orgID), pattern)
}

// Delete implements webex.TranslationPatternsClient.Delete.
func (c *TranslationPatternsClient) Delete(ctx context.Context, translationID, locationID, orgID string) error {
	name, pathParams := scoped("delete", translationID, locationID)

	return execute(ctx, c.endpoints, name, pathParams, orgQuery(orgID), nil)
}
