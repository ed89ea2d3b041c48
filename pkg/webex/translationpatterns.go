package webex

import "context"

// TranslationPatternLevel tells where a pattern is defined.
type TranslationPatternLevel string

const (
	TranslationPatternLevelLocation     TranslationPatternLevel = "Location"
	TranslationPatternLevelOrganization TranslationPatternLevel = "Organization"
)

// IsKnown implements Enum.
func (l TranslationPatternLevel) IsKnown() bool {
	return l == TranslationPatternLevelLocation || l == TranslationPatternLevelOrganization
}

// IDAndName references another resource.
type IDAndName struct {
	ID   Optional[string] `json:"id,omitzero"`
	Name Optional[string] `json:"name,omitzero"`
}

// TranslationPattern rewrites dialed digits.
type TranslationPattern struct {
	ID                 Optional[string]                  `json:"id,omitzero"`
	Name               Optional[string]                  `json:"name,omitzero"`
	MatchingPattern    Optional[string]                  `json:"matchingPattern,omitzero"`
	ReplacementPattern Optional[string]                  `json:"replacementPattern,omitzero"`
	Level              Optional[TranslationPatternLevel] `json:"level,omitzero"`
	Location           Optional[IDAndName]               `json:"location,omitzero"`
}

// TranslationPatternListParams filters a translation pattern listing.
type TranslationPatternListParams struct {
	OrgID                  string
	Name                   Optional[string]
	MatchingPattern        Optional[string]
	LimitToLocationID      Optional[string]
	LimitToOrgLevelEnabled Optional[bool]
	Order                  Optional[string]
	Max                    int
}

// Query renders the parameters that are set.
func (p *TranslationPatternListParams) Query() *QueryParams {
	query := NewQueryParams()
	if p == nil {
		return query
	}

	return query.
		WithOrgID(p.OrgID).
		Set("name", p.Name).
		Set("matchingPattern", p.MatchingPattern).
		Set("limitToLocationId", p.LimitToLocationID).
		Set("limitToOrgLevelEnabled", p.LimitToOrgLevelEnabled).
		Set("order", p.Order).
		WithMax(p.Max)
}

// TranslationPatternsClient defines operations for translation patterns. An
// empty locationID addresses the organization level pattern.
type TranslationPatternsClient interface {
	List(ctx context.Context, params *TranslationPatternListParams) *Paginator[TranslationPattern]
	Get(ctx context.Context, translationID, locationID, orgID string) (*TranslationPattern, error)
	Create(ctx context.Context, pattern *TranslationPattern, locationID, orgID string) (string, error)
	Update(ctx context.Context, translationID string, pattern *TranslationPattern, locationID, orgID string) error
	Delete(ctx context.Context, translationID, locationID, orgID string) error
}
