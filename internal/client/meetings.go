package client

import (
	"context"

	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// MeetingsClient implements webex.MeetingsClient.
type MeetingsClient struct {
	endpoints *endpoints
}

// NewMeetingsClient creates a new meetings client.
func NewMeetingsClient(transport webex.Transport, catalog *webex.Catalog) *MeetingsClient {
	return &MeetingsClient{endpoints: &endpoints{transport: transport, catalog: catalog}}
}

// List implements webex.MeetingsClient.List.
func (c *MeetingsClient) List(ctx context.Context, params *webex.MeetingListParams) *webex.Paginator[webex.Meeting] {
	return listPaginated[webex.Meeting](ctx, c.endpoints, "meetings.list", nil, params.Query())
}

// Get implements webex.MeetingsClient.Get. hostEmail is only needed by
// admins reading another user's meeting.
func (c *MeetingsClient) Get(ctx context.Context, meetingID, hostEmail string) (*webex.Meeting, error) {
	query := webex.NewQueryParams()
	if hostEmail != "" {
		query.Set("hostEmail", hostEmail)
	}

	return getSingle[webex.Meeting](ctx, c.endpoints, "meetings.get", webex.PathParams{"meetingId": meetingID}, query)
}
