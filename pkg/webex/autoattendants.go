package webex

import "context"

// DialScope limits extension and name dialing.
type DialScope string

const (
	DialScopeEnterprise DialScope = "ENTERPRISE"
	DialScopeGroup      DialScope = "GROUP"
)

// IsKnown implements Enum.
func (d DialScope) IsKnown() bool {
	return d == DialScopeEnterprise || d == DialScopeGroup
}

// AutoAttendant answers calls with a menu.
type AutoAttendant struct {
	ID               Optional[string]    `json:"id,omitzero"`
	Name             Optional[string]    `json:"name,omitzero"`
	LocationName     Optional[string]    `json:"locationName,omitzero"`
	LocationID       Optional[string]    `json:"locationId,omitzero"`
	PhoneNumber      Optional[string]    `json:"phoneNumber,omitzero"`
	Extension        Optional[string]    `json:"extension,omitzero"`
	Enabled          Optional[bool]      `json:"enabled,omitzero"`
	TollFreeNumber   Optional[bool]      `json:"tollFreeNumber,omitzero"`
	FirstName        Optional[string]    `json:"firstName,omitzero"`
	LastName         Optional[string]    `json:"lastName,omitzero"`
	LanguageCode     Optional[string]    `json:"languageCode,omitzero"`
	TimeZone         Optional[string]    `json:"timeZone,omitzero"`
	BusinessSchedule Optional[string]    `json:"businessSchedule,omitzero"`
	HolidaySchedule  Optional[string]    `json:"holidaySchedule,omitzero"`
	ExtensionDialing Optional[DialScope] `json:"extensionDialing,omitzero"`
	NameDialing      Optional[DialScope] `json:"nameDialing,omitzero"`
}

// AutoAttendantListParams filters an auto attendant listing.
type AutoAttendantListParams struct {
	OrgID       string
	LocationID  Optional[string]
	Name        Optional[string]
	PhoneNumber Optional[string]
	Max         int
}

// Query renders the parameters that are set.
func (p *AutoAttendantListParams) Query() *QueryParams {
	query := NewQueryParams()
	if p == nil {
		return query
	}

	return query.
		WithOrgID(p.OrgID).
		Set("locationId", p.LocationID).
		Set("name", p.Name).
		Set("phoneNumber", p.PhoneNumber).
		WithMax(p.Max)
}

// AutoAttendantsClient defines operations for auto attendants.
type AutoAttendantsClient interface {
	List(ctx context.Context, params *AutoAttendantListParams) *Paginator[AutoAttendant]
	Get(ctx context.Context, locationID, autoAttendantID, orgID string) (*AutoAttendant, error)
	Create(ctx context.Context, locationID string, settings *AutoAttendant, orgID string) (string, error)
	Delete(ctx context.Context, locationID, autoAttendantID, orgID string) error
}
