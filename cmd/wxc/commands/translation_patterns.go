package commands

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/wxc/internal/constants"
	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// NewTranslationPatternsCommand creates the translation patterns command
// group. Commands address the organization level unless --location is set.
func NewTranslationPatternsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "translation-patterns",
		Aliases: []string{"translation-pattern", "tp"},
		Short:   "Manage translation patterns",
	}

	cmd.AddCommand(newTranslationPatternsListCommand())
	cmd.AddCommand(newTranslationPatternsGetCommand())
	cmd.AddCommand(newTranslationPatternsDeleteCommand())

	return cmd
}

func newTranslationPatternsListCommand() *cobra.Command {
	var pageSize, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List translation patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := clientFactory(ctx)
			if err != nil {
				return err
			}

			params := &webex.TranslationPatternListParams{
				OrgID:                  orgID(),
				Name:                   optionalString(cmd, "name"),
				MatchingPattern:        optionalString(cmd, "matching-pattern"),
				LimitToLocationID:      optionalString(cmd, "location"),
				LimitToOrgLevelEnabled: optionalBool(cmd, "org-level"),
				Max:                    pageSize,
			}

			patterns, err := collect(client.TranslationPatterns().List(ctx, params), limit)
			if err != nil {
				return fmt.Errorf("failed to list translation patterns: %w", err)
			}

			return render(cmd, patterns, func(table *tablewriter.Table) {
				table.Header("Name", "ID", "Matching", "Replacement", "Level", "Location")

				for _, pattern := range patterns {
					_ = table.Append(cell(pattern.Name), cell(pattern.ID), cell(pattern.MatchingPattern),
						cell(pattern.ReplacementPattern), cell(pattern.Level), cell(pattern.Location.Value().Name))
				}
			})
		},
	}

	cmd.Flags().String("name", "", "filter by name")
	cmd.Flags().String("matching-pattern", "", "filter by matching pattern")
	cmd.Flags().String("location", "", "only patterns of this location")
	cmd.Flags().Bool("org-level", false, "only organization level patterns")
	addListFlags(cmd, &pageSize, &limit)

	return cmd
}

func newTranslationPatternsGetCommand() *cobra.Command {
	var locationID string

	cmd := &cobra.Command{
		Use:   "get TRANSLATION_ID",
		Short: "Get translation pattern details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := clientFactory(ctx)
			if err != nil {
				return err
			}

			pattern, err := client.TranslationPatterns().Get(ctx, args[0], locationID, orgID())
			if err != nil {
				return fmt.Errorf("failed to get translation pattern: %w", err)
			}

			return render(cmd, pattern, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("Name", cell(pattern.Name))
				_ = table.Append("ID", cell(pattern.ID))
				_ = table.Append("Matching Pattern", cell(pattern.MatchingPattern))
				_ = table.Append("Replacement Pattern", cell(pattern.ReplacementPattern))
				_ = table.Append("Level", cell(pattern.Level))
			})
		},
	}

	cmd.Flags().StringVarP(&locationID, "location", "l", "", "location id for a location level pattern")

	return cmd
}

func newTranslationPatternsDeleteCommand() *cobra.Command {
	var (
		locationID string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "delete TRANSLATION_ID",
		Short: "Delete a translation pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return constants.ErrConfirmationRequired
			}

			ctx := context.Background()

			client, err := clientFactory(ctx)
			if err != nil {
				return err
			}

			err = client.TranslationPatterns().Delete(ctx, args[0], locationID, orgID())
			if err != nil {
				return fmt.Errorf("failed to delete translation pattern: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted translation pattern %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVarP(&locationID, "location", "l", "", "location id for a location level pattern")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "confirm the deletion")

	return cmd
}
