package commands

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/wxc/internal/constants"
	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// NewAutoAttendantsCommand creates the auto attendants command group.
func NewAutoAttendantsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "auto-attendants",
		Aliases: []string{"auto-attendant", "aa"},
		Short:   "Manage auto attendants",
	}

	cmd.AddCommand(newAutoAttendantsListCommand())
	cmd.AddCommand(newAutoAttendantsGetCommand())

	return cmd
}

func newAutoAttendantsListCommand() *cobra.Command {
	var pageSize, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List auto attendants",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := clientFactory(ctx)
			if err != nil {
				return err
			}

			params := &webex.AutoAttendantListParams{
				OrgID:       orgID(),
				LocationID:  optionalString(cmd, "location"),
				Name:        optionalString(cmd, "name"),
				PhoneNumber: optionalString(cmd, "phone-number"),
				Max:         pageSize,
			}

			attendants, err := collect(client.AutoAttendants().List(ctx, params), limit)
			if err != nil {
				return fmt.Errorf("failed to list auto attendants: %w", err)
			}

			return render(cmd, attendants, func(table *tablewriter.Table) {
				table.Header("Name", "ID", "Location", "Phone Number", "Extension", "Toll Free")

				for _, attendant := range attendants {
					_ = table.Append(cell(attendant.Name), cell(attendant.ID), cell(attendant.LocationName),
						cell(attendant.PhoneNumber), cell(attendant.Extension), cell(attendant.TollFreeNumber))
				}
			})
		},
	}

	cmd.Flags().String("location", "", "filter by location id")
	cmd.Flags().String("name", "", "filter by name")
	cmd.Flags().String("phone-number", "", "filter by phone number")
	addListFlags(cmd, &pageSize, &limit)

	return cmd
}

func newAutoAttendantsGetCommand() *cobra.Command {
	var locationID string

	cmd := &cobra.Command{
		Use:   "get AUTO_ATTENDANT_ID",
		Short: "Get auto attendant details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if locationID == "" {
				return constants.ErrLocationRequired
			}

			ctx := context.Background()

			client, err := clientFactory(ctx)
			if err != nil {
				return err
			}

			attendant, err := client.AutoAttendants().Get(ctx, locationID, args[0], orgID())
			if err != nil {
				return fmt.Errorf("failed to get auto attendant: %w", err)
			}

			return render(cmd, attendant, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("Name", cell(attendant.Name))
				_ = table.Append("ID", cell(attendant.ID))
				_ = table.Append("Enabled", cell(attendant.Enabled))
				_ = table.Append("Phone Number", cell(attendant.PhoneNumber))
				_ = table.Append("Extension", cell(attendant.Extension))
				_ = table.Append("Business Schedule", cell(attendant.BusinessSchedule))
				_ = table.Append("Holiday Schedule", cell(attendant.HolidaySchedule))
				_ = table.Append("Extension Dialing", cell(attendant.ExtensionDialing))
				_ = table.Append("Name Dialing", cell(attendant.NameDialing))
			})
		},
	}

	cmd.Flags().StringVarP(&locationID, "location", "l", "", "location id of the auto attendant")

	return cmd
}
