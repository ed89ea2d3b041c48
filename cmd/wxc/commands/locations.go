package commands

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// NewLocationsCommand creates the locations command group.
func NewLocationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "locations",
		Aliases: []string{"location", "loc"},
		Short:   "Manage locations",
		Long:    "List and inspect Webex locations",
	}

	cmd.AddCommand(newLocationsListCommand())
	cmd.AddCommand(newLocationsGetCommand())

	return cmd
}

func newLocationsListCommand() *cobra.Command {
	var pageSize, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List locations",
		Long:  "List the locations of the organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := clientFactory(ctx)
			if err != nil {
				return err
			}

			params := &webex.LocationListParams{
				OrgID: orgID(),
				Name:  optionalString(cmd, "name"),
				Max:   pageSize,
			}

			locations, err := collect(client.Locations().List(ctx, params), limit)
			if err != nil {
				return fmt.Errorf("failed to list locations: %w", err)
			}

			return render(cmd, locations, func(table *tablewriter.Table) {
				table.Header("Name", "ID", "Time Zone", "City", "Country")

				for _, location := range locations {
					address := location.Address.Value()
					_ = table.Append(cell(location.Name), cell(location.ID), cell(location.TimeZone),
						cell(address.City), cell(address.Country))
				}
			})
		},
	}

	cmd.Flags().String("name", "", "filter by location name")
	addListFlags(cmd, &pageSize, &limit)

	return cmd
}

func newLocationsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get LOCATION_ID",
		Short: "Get location details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := clientFactory(ctx)
			if err != nil {
				return err
			}

			location, err := client.Locations().Get(ctx, args[0], orgID())
			if err != nil {
				return fmt.Errorf("failed to get location: %w", err)
			}

			return render(cmd, location, func(table *tablewriter.Table) {
				address := location.Address.Value()

				table.Header("Property", "Value")
				_ = table.Append("Name", cell(location.Name))
				_ = table.Append("ID", cell(location.ID))
				_ = table.Append("Org ID", cell(location.OrgID))
				_ = table.Append("Time Zone", cell(location.TimeZone))
				_ = table.Append("Language", cell(location.PreferredLanguage))
				_ = table.Append("Address", cell(address.Address1))
				_ = table.Append("City", cell(address.City))
				_ = table.Append("State", cell(address.State))
				_ = table.Append("Postal Code", cell(address.PostalCode))
				_ = table.Append("Country", cell(address.Country))
			})
		},
	}
}
