package webex

import "context"

// RoutingPolicy decides which agent a queued call is offered to.
type RoutingPolicy string

const (
	RoutingPolicyCircular     RoutingPolicy = "CIRCULAR"
	RoutingPolicyRegular      RoutingPolicy = "REGULAR"
	RoutingPolicySimultaneous RoutingPolicy = "SIMULTANEOUS"
	RoutingPolicyUniform      RoutingPolicy = "UNIFORM"
	RoutingPolicyWeighted     RoutingPolicy = "WEIGHTED"
)

// IsKnown implements Enum.
func (r RoutingPolicy) IsKnown() bool {
	switch r {
	case RoutingPolicyCircular, RoutingPolicyRegular, RoutingPolicySimultaneous, RoutingPolicyUniform, RoutingPolicyWeighted:
		return true
	}

	return false
}

// RoutingType selects priority or skill based routing.
type RoutingType string

const (
	RoutingTypePriorityBased RoutingType = "PRIORITY_BASED"
	RoutingTypeSkillBased    RoutingType = "SKILL_BASED"
)

// IsKnown implements Enum.
func (r RoutingType) IsKnown() bool {
	switch r {
	case RoutingTypePriorityBased, RoutingTypeSkillBased:
		return true
	}

	return false
}

// AgentType is the kind of member answering queue calls.
type AgentType string

const (
	AgentTypePeople      AgentType = "PEOPLE"
	AgentTypePlace       AgentType = "PLACE"
	AgentTypeVirtualLine AgentType = "VIRTUAL_LINE"
)

// IsKnown implements Enum.
func (a AgentType) IsKnown() bool {
	switch a {
	case AgentTypePeople, AgentTypePlace, AgentTypeVirtualLine:
		return true
	}

	return false
}

// CallQueue is a call queue as returned by the listing.
type CallQueue struct {
	ID           Optional[string] `json:"id,omitzero"`
	Name         Optional[string] `json:"name,omitzero"`
	LocationName Optional[string] `json:"locationName,omitzero"`
	LocationID   Optional[string] `json:"locationId,omitzero"`
	PhoneNumber  Optional[string] `json:"phoneNumber,omitzero"`
	Extension    Optional[string] `json:"extension,omitzero"`
	Enabled      Optional[bool]   `json:"enabled,omitzero"`
}

// CallQueueAgent is a member of one or more call queues.
type CallQueueAgent struct {
	ID          Optional[string]    `json:"id,omitzero"`
	FirstName   Optional[string]    `json:"firstName,omitzero"`
	LastName    Optional[string]    `json:"lastName,omitzero"`
	PhoneNumber Optional[string]    `json:"phoneNumber,omitzero"`
	Extension   Optional[string]    `json:"extension,omitzero"`
	Type        Optional[AgentType] `json:"type,omitzero"`
	Weight      Optional[int]       `json:"weight,omitzero"`
	SkillLevel  Optional[int]       `json:"skillLevel,omitzero"`
	JoinEnabled Optional[bool]      `json:"joinEnabled,omitzero"`
	QueueCount  Optional[int]       `json:"queueCount,omitzero"`
}

// CallBounce controls re-routing of unanswered calls.
type CallBounce struct {
	CallBounceEnabled       Optional[bool] `json:"callBounceEnabled,omitzero"`
	CallBounceMaxRings      Optional[int]  `json:"callBounceMaxRings,omitzero"`
	AgentUnavailableEnabled Optional[bool] `json:"agentUnavailableEnabled,omitzero"`
}

// CallQueueCallPolicies holds the routing settings of a queue.
type CallQueueCallPolicies struct {
	Policy                 Optional[RoutingPolicy] `json:"policy,omitzero"`
	RoutingType            Optional[RoutingType]   `json:"routingType,omitzero"`
	CallBounce             Optional[CallBounce]    `json:"callBounce,omitzero"`
	WaitingOnAgentRingCnt  Optional[int]           `json:"waitingOnAgentRingCnt,omitzero"`
	DistinctiveRingEnabled Optional[bool]          `json:"distinctiveRingEnabled,omitzero"`
}

// CallQueueDetail is the full configuration of a call queue. It is also the
// create and update payload.
type CallQueueDetail struct {
	ID                                 Optional[string]                `json:"id,omitzero"`
	Name                               Optional[string]                `json:"name,omitzero"`
	Enabled                            Optional[bool]                  `json:"enabled,omitzero"`
	LanguageCode                       Optional[string]                `json:"languageCode,omitzero"`
	FirstName                          Optional[string]                `json:"firstName,omitzero"`
	LastName                           Optional[string]                `json:"lastName,omitzero"`
	TimeZone                           Optional[string]                `json:"timeZone,omitzero"`
	PhoneNumber                        Optional[string]                `json:"phoneNumber,omitzero"`
	Extension                          Optional[string]                `json:"extension,omitzero"`
	CallPolicies                       Optional[CallQueueCallPolicies] `json:"callPolicies,omitzero"`
	Agents                             Optional[[]CallQueueAgent]      `json:"agents,omitzero"`
	AllowAgentJoinEnabled              Optional[bool]                  `json:"allowAgentJoinEnabled,omitzero"`
	PhoneNumberForOutgoingCallsEnabled Optional[bool]                  `json:"phoneNumberForOutgoingCallsEnabled,omitzero"`
}

// CallQueueListParams filters a call queue listing.
type CallQueueListParams struct {
	OrgID          string
	LocationID     Optional[string]
	Name           Optional[string]
	PhoneNumber    Optional[string]
	DepartmentID   Optional[string]
	DepartmentName Optional[string]
	Max            int
}

// Query renders the parameters that are set.
func (p *CallQueueListParams) Query() *QueryParams {
	query := NewQueryParams()
	if p == nil {
		return query
	}

	return query.
		WithOrgID(p.OrgID).
		Set("locationId", p.LocationID).
		Set("name", p.Name).
		Set("phoneNumber", p.PhoneNumber).
		Set("departmentId", p.DepartmentID).
		Set("departmentName", p.DepartmentName).
		WithMax(p.Max)
}

// AgentListParams filters the agent listing across queues.
type AgentListParams struct {
	OrgID           string
	LocationID      Optional[string]
	QueueID         Optional[string]
	Name            Optional[string]
	PhoneNumber     Optional[string]
	JoinEnabled     Optional[bool]
	HasCxEssentials Optional[bool]
	Order           Optional[string]
	Max             int
}

// Query renders the parameters that are set.
func (p *AgentListParams) Query() *QueryParams {
	query := NewQueryParams()
	if p == nil {
		return query
	}

	return query.
		WithOrgID(p.OrgID).
		Set("locationId", p.LocationID).
		Set("queueId", p.QueueID).
		Set("name", p.Name).
		Set("phoneNumber", p.PhoneNumber).
		Set("joinEnabled", p.JoinEnabled).
		Set("hasCxEssentials", p.HasCxEssentials).
		Set("order", p.Order).
		WithMax(p.Max)
}

// CallQueuesClient defines operations for call queues.
type CallQueuesClient interface {
	List(ctx context.Context, params *CallQueueListParams) *Paginator[CallQueue]
	Get(ctx context.Context, locationID, queueID, orgID string) (*CallQueueDetail, error)
	Create(ctx context.Context, locationID string, settings *CallQueueDetail, orgID string) (string, error)
	Update(ctx context.Context, locationID, queueID string, settings *CallQueueDetail, orgID string) error
	Delete(ctx context.Context, locationID, queueID, orgID string) error
	ListAgents(ctx context.Context, params *AgentListParams) *Paginator[CallQueueAgent]
}
