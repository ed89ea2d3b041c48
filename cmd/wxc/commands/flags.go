package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// optionalString returns the flag value when the user set it.
func optionalString(cmd *cobra.Command, name string) webex.Optional[string] {
	if !cmd.Flags().Changed(name) {
		return webex.Optional[string]{}
	}

	value, _ := cmd.Flags().GetString(name)

	return webex.Some(value)
}

// optionalBool returns the flag value when the user set it.
func optionalBool(cmd *cobra.Command, name string) webex.Optional[bool] {
	if !cmd.Flags().Changed(name) {
		return webex.Optional[bool]{}
	}

	value, _ := cmd.Flags().GetBool(name)

	return webex.Some(value)
}

// optionalTime parses an RFC 3339 flag value when the user set it.
func optionalTime(cmd *cobra.Command, name string) (webex.Optional[time.Time], error) {
	if !cmd.Flags().Changed(name) {
		return webex.Optional[time.Time]{}, nil
	}

	raw, _ := cmd.Flags().GetString(name)

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return webex.Optional[time.Time]{}, fmt.Errorf("invalid --%s: %w", name, err)
	}

	return webex.Some(parsed), nil
}

// optionalEnum converts a string flag to an enum without checking it against
// the known literals, so values newer than this build still pass through.
func optionalEnum[E webex.Enum](cmd *cobra.Command, name string) webex.Optional[E] {
	value, ok := optionalString(cmd, name).Get()
	if !ok {
		return webex.Optional[E]{}
	}

	return webex.Some(E(value))
}

// addListFlags registers the paging flags shared by list commands.
func addListFlags(cmd *cobra.Command, pageSize, limit *int) {
	cmd.Flags().IntVar(pageSize, "max", 0, "page size requested from the server")
	cmd.Flags().IntVar(limit, "limit", 0, "stop after this many items (0 lists everything)")
}
