package webex

import (
	"context"
	"time"
)

// MeetingType distinguishes series, scheduled occurrences and instances.
type MeetingType string

const (
	MeetingTypeMeetingSeries    MeetingType = "meetingSeries"
	MeetingTypeScheduledMeeting MeetingType = "scheduledMeeting"
	MeetingTypeMeeting          MeetingType = "meeting"
)

// IsKnown implements Enum.
func (m MeetingType) IsKnown() bool {
	switch m {
	case MeetingTypeMeetingSeries, MeetingTypeScheduledMeeting, MeetingTypeMeeting:
		return true
	}

	return false
}

// MeetingState is the lifecycle state of a meeting.
type MeetingState string

const (
	MeetingStateActive     MeetingState = "active"
	MeetingStateScheduled  MeetingState = "scheduled"
	MeetingStateReady      MeetingState = "ready"
	MeetingStateLobby      MeetingState = "lobby"
	MeetingStateInProgress MeetingState = "inProgress"
	MeetingStateEnded      MeetingState = "ended"
	MeetingStateMissed     MeetingState = "missed"
	MeetingStateExpired    MeetingState = "expired"
)

// IsKnown implements Enum.
func (m MeetingState) IsKnown() bool {
	switch m {
	case MeetingStateActive, MeetingStateScheduled, MeetingStateReady, MeetingStateLobby,
		MeetingStateInProgress, MeetingStateEnded, MeetingStateMissed, MeetingStateExpired:
		return true
	}

	return false
}

// Meeting is a Webex meeting.
type Meeting struct {
	ID                       Optional[string]       `json:"id,omitzero"`
	MeetingSeriesID          Optional[string]       `json:"meetingSeriesId,omitzero"`
	MeetingNumber            Optional[string]       `json:"meetingNumber,omitzero"`
	Title                    Optional[string]       `json:"title,omitzero"`
	Agenda                   Optional[string]       `json:"agenda,omitzero"`
	MeetingType              Optional[MeetingType]  `json:"meetingType,omitzero"`
	State                    Optional[MeetingState] `json:"state,omitzero"`
	Timezone                 Optional[string]       `json:"timezone,omitzero"`
	Start                    Optional[time.Time]    `json:"start,omitzero"`
	End                      Optional[time.Time]    `json:"end,omitzero"`
	HostUserID               Optional[string]       `json:"hostUserId,omitzero"`
	HostDisplayName          Optional[string]       `json:"hostDisplayName,omitzero"`
	HostEmail                Optional[string]       `json:"hostEmail,omitzero"`
	WebLink                  Optional[string]       `json:"webLink,omitzero"`
	SiteURL                  Optional[string]       `json:"siteUrl,omitzero"`
	EnabledAutoRecordMeeting Optional[bool]         `json:"enabledAutoRecordMeeting,omitzero"`
	AllowAnyUserToBeCoHost   Optional[bool]         `json:"allowAnyUserToBeCoHost,omitzero"`
}

// MeetingListParams filters a meeting listing.
type MeetingListParams struct {
	MeetingNumber    Optional[string]
	WebLink          Optional[string]
	RoomID           Optional[string]
	MeetingSeriesID  Optional[string]
	MeetingType      Optional[MeetingType]
	State            Optional[MeetingState]
	ParticipantEmail Optional[string]
	Current          Optional[bool]
	From             Optional[time.Time]
	To               Optional[time.Time]
	HostEmail        Optional[string]
	SiteURL          Optional[string]
	IntegrationTag   Optional[string]
	Max              int
}

// Query renders the parameters that are set.
func (p *MeetingListParams) Query() *QueryParams {
	query := NewQueryParams()
	if p == nil {
		return query
	}

	return query.
		Set("meetingNumber", p.MeetingNumber).
		Set("webLink", p.WebLink).
		Set("roomId", p.RoomID).
		Set("meetingSeriesId", p.MeetingSeriesID).
		Set("meetingType", p.MeetingType).
		Set("state", p.State).
		Set("participantEmail", p.ParticipantEmail).
		Set("current", p.Current).
		Set("from", p.From).
		Set("to", p.To).
		Set("hostEmail", p.HostEmail).
		Set("siteUrl", p.SiteURL).
		Set("integrationTag", p.IntegrationTag).
		WithMax(p.Max)
}

// MeetingsClient defines operations for meetings.
type MeetingsClient interface {
	List(ctx context.Context, params *MeetingListParams) *Paginator[Meeting]
	Get(ctx context.Context, meetingID, hostEmail string) (*Meeting, error)
}
