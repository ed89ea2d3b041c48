package commands

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/wxc/internal/constants"
	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// NewQueuesCommand creates the call queues command group.
func NewQueuesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "queues",
		Aliases: []string{"queue", "call-queues"},
		Short:   "Manage call queues",
		Long:    "List, inspect and delete Webex Calling call queues",
	}

	cmd.AddCommand(newQueuesListCommand())
	cmd.AddCommand(newQueuesGetCommand())
	cmd.AddCommand(newQueuesAgentsCommand())
	cmd.AddCommand(newQueuesDeleteCommand())

	return cmd
}

func newQueuesListCommand() *cobra.Command {
	var pageSize, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List call queues",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := clientFactory(ctx)
			if err != nil {
				return err
			}

			params := &webex.CallQueueListParams{
				OrgID:       orgID(),
				LocationID:  optionalString(cmd, "location"),
				Name:        optionalString(cmd, "name"),
				PhoneNumber: optionalString(cmd, "phone-number"),
				Max:         pageSize,
			}

			queues, err := collect(client.CallQueues().List(ctx, params), limit)
			if err != nil {
				return fmt.Errorf("failed to list call queues: %w", err)
			}

			return render(cmd, queues, func(table *tablewriter.Table) {
				table.Header("Name", "ID", "Location", "Phone Number", "Extension", "Enabled")

				for _, queue := range queues {
					_ = table.Append(cell(queue.Name), cell(queue.ID), cell(queue.LocationName),
						cell(queue.PhoneNumber), cell(queue.Extension), cell(queue.Enabled))
				}
			})
		},
	}

	cmd.Flags().String("location", "", "filter by location id")
	cmd.Flags().String("name", "", "filter by queue name")
	cmd.Flags().String("phone-number", "", "filter by phone number")
	addListFlags(cmd, &pageSize, &limit)

	return cmd
}

func newQueuesGetCommand() *cobra.Command {
	var locationID string

	cmd := &cobra.Command{
		Use:   "get QUEUE_ID",
		Short: "Get call queue details",
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

			queue, err := client.CallQueues().Get(ctx, locationID, args[0], orgID())
			if err != nil {
				return fmt.Errorf("failed to get call queue: %w", err)
			}

			return render(cmd, queue, func(table *tablewriter.Table) {
				policies := queue.CallPolicies.Value()

				table.Header("Property", "Value")
				_ = table.Append("Name", cell(queue.Name))
				_ = table.Append("ID", cell(queue.ID))
				_ = table.Append("Enabled", cell(queue.Enabled))
				_ = table.Append("Phone Number", cell(queue.PhoneNumber))
				_ = table.Append("Extension", cell(queue.Extension))
				_ = table.Append("Language", cell(queue.LanguageCode))
				_ = table.Append("Time Zone", cell(queue.TimeZone))
				_ = table.Append("Routing Policy", cell(policies.Policy))
				_ = table.Append("Routing Type", cell(policies.RoutingType))
				_ = table.Append("Agents", fmt.Sprint(len(queue.Agents.Value())))
			})
		},
	}

	cmd.Flags().StringVarP(&locationID, "location", "l", "", "location id of the queue")

	return cmd
}

func newQueuesAgentsCommand() *cobra.Command {
	var pageSize, limit int

	cmd := &cobra.Command{
		Use:   "agents",
		Short: "List call queue agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := clientFactory(ctx)
			if err != nil {
				return err
			}

			params := &webex.AgentListParams{
				OrgID:       orgID(),
				LocationID:  optionalString(cmd, "location"),
				QueueID:     optionalString(cmd, "queue"),
				Name:        optionalString(cmd, "name"),
				JoinEnabled: optionalBool(cmd, "join-enabled"),
				Max:         pageSize,
			}

			agents, err := collect(client.CallQueues().ListAgents(ctx, params), limit)
			if err != nil {
				return fmt.Errorf("failed to list agents: %w", err)
			}

			return render(cmd, agents, func(table *tablewriter.Table) {
				table.Header("First Name", "Last Name", "ID", "Type", "Extension", "Queues")

				for _, agent := range agents {
					_ = table.Append(cell(agent.FirstName), cell(agent.LastName), cell(agent.ID),
						cell(agent.Type), cell(agent.Extension), cell(agent.QueueCount))
				}
			})
		},
	}

	cmd.Flags().String("location", "", "filter by location id")
	cmd.Flags().String("queue", "", "filter by queue id")
	cmd.Flags().String("name", "", "filter by agent name")
	cmd.Flags().Bool("join-enabled", false, "filter by whether the agent has joined")
	addListFlags(cmd, &pageSize, &limit)

	return cmd
}

func newQueuesDeleteCommand() *cobra.Command {
	var (
		locationID string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "delete QUEUE_ID",
		Short: "Delete a call queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if locationID == "" {
				return constants.ErrLocationRequired
			}

			if !force {
				return constants.ErrConfirmationRequired
			}

			ctx := context.Background()

			client, err := clientFactory(ctx)
			if err != nil {
				return err
			}

			err = client.CallQueues().Delete(ctx, locationID, args[0], orgID())
			if err != nil {
				return fmt.Errorf("failed to delete call queue: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted call queue %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVarP(&locationID, "location", "l", "", "location id of the queue")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "confirm the deletion")

	return cmd
}
