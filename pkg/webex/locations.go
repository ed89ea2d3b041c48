package webex

import "context"

// Address is a postal address.
type Address struct {
	Address1   Optional[string] `json:"address1,omitzero"`
	Address2   Optional[string] `json:"address2,omitzero"`
	City       Optional[string] `json:"city,omitzero"`
	State      Optional[string] `json:"state,omitzero"`
	PostalCode Optional[string] `json:"postalCode,omitzero"`
	Country    Optional[string] `json:"country,omitzero"`
}

// Location is a physical site of an organization.
type Location struct {
	ID                Optional[string]  `json:"id,omitzero"`
	Name              Optional[string]  `json:"name,omitzero"`
	OrgID             Optional[string]  `json:"orgId,omitzero"`
	TimeZone          Optional[string]  `json:"timeZone,omitzero"`
	PreferredLanguage Optional[string]  `json:"preferredLanguage,omitzero"`
	Address           Optional[Address] `json:"address,omitzero"`
	Latitude          Optional[string]  `json:"latitude,omitzero"`
	Longitude         Optional[string]  `json:"longitude,omitzero"`
	Notes             Optional[string]  `json:"notes,omitzero"`
}

// LocationListParams filters a location listing.
type LocationListParams struct {
	OrgID string
	Name  Optional[string]
	ID    Optional[string]
	// Max is the page size. Zero leaves it to the server.
	Max   int
}

// Query renders the parameters that are set.
func (p *LocationListParams) Query() *QueryParams {
	query := NewQueryParams()
	if p == nil {
		return query
	}

	return query.
		WithOrgID(p.OrgID).
		Set("name", p.Name).
		Set("id", p.ID).
		WithMax(p.Max)
}

// LocationsClient defines operations for locations.
type LocationsClient interface {
	List(ctx context.Context, params *LocationListParams) *Paginator[Location]
	Get(ctx context.Context, locationID, orgID string) (*Location, error)
}
