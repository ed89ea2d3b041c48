package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/wxc/internal/constants"
	"github.com/fivetwenty-io/wxc/pkg/webex"
)

func outputFormat() string {
	format := viper.GetString("output")
	if format == "" {
		return constants.FormatTable
	}

	return format
}

func validOutputFormat(format string) bool {
	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return true
	}

	return false
}

func renderJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// renderYAML goes through JSON first so models print with their wire names
// and absent fields stay out.
func renderYAML(w io.Writer, data any) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	var plain any

	err = json.Unmarshal(encoded, &plain)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err = encoder.Encode(plain)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// render prints data as json or yaml, or calls table for the table format.
func render(cmd *cobra.Command, data any, table func(*tablewriter.Table)) error {
	switch format := outputFormat(); format {
	case constants.FormatJSON:
		return renderJSON(cmd.OutOrStdout(), data)
	case constants.FormatYAML:
		return renderYAML(cmd.OutOrStdout(), data)
	case constants.FormatTable:
		writer := tablewriter.NewWriter(cmd.OutOrStdout())
		table(writer)

		err := writer.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}
}

// cell formats an optional value for a table.
func cell[T any](value webex.Optional[T]) string {
	v, ok := value.Get()
	if !ok {
		return constants.NotAvailable
	}

	switch typed := any(v).(type) {
	case time.Time:
		return typed.Format("2006-01-02 15:04")
	case bool:
		if typed {
			return constants.BooleanTrue
		}

		return constants.BooleanFalse
	default:
		return fmt.Sprint(typed)
	}
}

// collect drains p, stopping after limit items when limit is positive.
func collect[T any](p *webex.Paginator[T], limit int) ([]T, error) {
	var items []T

	for item, err := range p.Items() {
		if err != nil {
			return items, err
		}

		items = append(items, item)
		if limit > 0 && len(items) >= limit {
			break
		}
	}

	return items, nil
}
