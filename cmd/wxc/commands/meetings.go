package commands

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// NewMeetingsCommand creates the meetings command group.
func NewMeetingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "meetings",
		Aliases: []string{"meeting", "m"},
		Short:   "Manage meetings",
	}

	cmd.AddCommand(newMeetingsListCommand())
	cmd.AddCommand(newMeetingsGetCommand())

	return cmd
}

func meetingListParams(cmd *cobra.Command, pageSize int) (*webex.MeetingListParams, error) {
	from, err := optionalTime(cmd, "from")
	if err != nil {
		return nil, err
	}

	to, err := optionalTime(cmd, "to")
	if err != nil {
		return nil, err
	}

	return &webex.MeetingListParams{
		MeetingType: optionalEnum[webex.MeetingType](cmd, "type"),
		State:       optionalEnum[webex.MeetingState](cmd, "state"),
		Current:     optionalBool(cmd, "current"),
		From:        from,
		To:          to,
		HostEmail:   optionalString(cmd, "host-email"),
		SiteURL:     optionalString(cmd, "site-url"),
		Max:         pageSize,
	}, nil
}

func newMeetingsListCommand() *cobra.Command {
	var pageSize, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List meetings",
		Example: `  wxc meetings list --type scheduledMeeting --from 2026-03-01T00:00:00Z
  wxc meetings list --state inProgress --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := meetingListParams(cmd, pageSize)
			if err != nil {
				return err
			}

			ctx := context.Background()

			client, err := clientFactory(ctx)
			if err != nil {
				return err
			}

			meetings, err := collect(client.Meetings().List(ctx, params), limit)
			if err != nil {
				return fmt.Errorf("failed to list meetings: %w", err)
			}

			return render(cmd, meetings, func(table *tablewriter.Table) {
				table.Header("Title", "ID", "Number", "Type", "State", "Start", "Host")

				for _, meeting := range meetings {
					_ = table.Append(cell(meeting.Title), cell(meeting.ID), cell(meeting.MeetingNumber),
						cell(meeting.MeetingType), cell(meeting.State), cell(meeting.Start), cell(meeting.HostEmail))
				}
			})
		},
	}

	cmd.Flags().String("type", "", "meeting type (meetingSeries, scheduledMeeting, meeting)")
	cmd.Flags().String("state", "", "meeting state")
	cmd.Flags().String("from", "", "start of the time range (RFC 3339)")
	cmd.Flags().String("to", "", "end of the time range (RFC 3339)")
	cmd.Flags().String("host-email", "", "list meetings of this host (admin only)")
	cmd.Flags().String("site-url", "", "Webex site URL")
	cmd.Flags().Bool("current", false, "only the current scheduled meeting of each series")
	addListFlags(cmd, &pageSize, &limit)

	return cmd
}

func newMeetingsGetCommand() *cobra.Command {
	var hostEmail string

	cmd := &cobra.Command{
		Use:   "get MEETING_ID",
		Short: "Get meeting details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := clientFactory(ctx)
			if err != nil {
				return err
			}

			meeting, err := client.Meetings().Get(ctx, args[0], hostEmail)
			if err != nil {
				return fmt.Errorf("failed to get meeting: %w", err)
			}

			return render(cmd, meeting, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("Title", cell(meeting.Title))
				_ = table.Append("ID", cell(meeting.ID))
				_ = table.Append("Number", cell(meeting.MeetingNumber))
				_ = table.Append("Type", cell(meeting.MeetingType))
				_ = table.Append("State", cell(meeting.State))
				_ = table.Append("Start", cell(meeting.Start))
				_ = table.Append("End", cell(meeting.End))
				_ = table.Append("Time Zone", cell(meeting.Timezone))
				_ = table.Append("Host", cell(meeting.HostDisplayName))
				_ = table.Append("Web Link", cell(meeting.WebLink))
			})
		},
	}

	cmd.Flags().StringVar(&hostEmail, "host-email", "", "host email for admin access")

	return cmd
}
