package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/wxc/internal/constants"
	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// NewCatalogCommand creates the catalog command group, which lists the
// endpoints the client knows and calls any of them by name.
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"endpoints", "api"},
		Short:   "Browse and call catalog endpoints",
	}

	cmd.AddCommand(newCatalogListCommand())
	cmd.AddCommand(newCatalogShowCommand())
	cmd.AddCommand(newCatalogCallCommand())

	return cmd
}

func newCatalogListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := webex.DefaultCatalog()
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			endpoints := make([]*webex.Endpoint, 0, catalog.Len())

			for _, name := range catalog.Names() {
				endpoint, err := catalog.Lookup(name)
				if err != nil {
					return fmt.Errorf("failed to load catalog: %w", err)
				}

				endpoints = append(endpoints, endpoint)
			}

			return render(cmd, endpoints, func(table *tablewriter.Table) {
				table.Header("Name", "Method", "Path", "Response")

				for _, endpoint := range endpoints {
					_ = table.Append(endpoint.Name, endpoint.Method, endpoint.Path, shapeLabel(endpoint.Response))
				}
			})
		},
	}
}

func newCatalogShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show a catalog endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint, err := lookupEndpoint(args[0])
			if err != nil {
				return err
			}

			return render(cmd, endpoint, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("Name", endpoint.Name)
				_ = table.Append("Description", endpoint.Description)
				_ = table.Append("Method", endpoint.Method)
				_ = table.Append("Path", endpoint.Path)
				_ = table.Append("Path Parameters", strings.Join(endpoint.PathParams(), ", "))
				_ = table.Append("Query Parameters", strings.Join(endpoint.Query, ", "))
				_ = table.Append("Body", valueOr(endpoint.Body, constants.NotAvailable))
				_ = table.Append("Response", shapeLabel(endpoint.Response))
			})
		},
	}
}

func newCatalogCallCommand() *cobra.Command {
	var (
		pathArgs  []string
		queryArgs []string
		bodyFile  string
		pageSize  int
		maxPages  int
	)

	cmd := &cobra.Command{
		Use:   "call NAME",
		Short: "Call a catalog endpoint",
		Long: `Call any catalog endpoint by name.

Path placeholders and query parameters are given as key=value pairs. The
organization from --org-id is added when the endpoint accepts orgId. Listings
are followed to the last page unless --max-pages is set.`,
		Example: `  wxc catalog call locations.get --path locationId=L1
  wxc catalog call callQueues.list --query locationId=L1 --page-size 50
  wxc catalog call autoAttendants.create --path locationId=L1 --body aa.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint, err := lookupEndpoint(args[0])
			if err != nil {
				return err
			}

			call, err := buildCall(endpoint, pathArgs, queryArgs, bodyFile, cmd.InOrStdin())
			if err != nil {
				return err
			}

			if pageSize > 0 || maxPages > 0 {
				call.Pagination = webex.DefaultPaginationOptions()
				call.Pagination.PageSize = pageSize
				call.Pagination.MaxPages = maxPages
			}

			ctx := context.Background()

			client, err := clientFactory(ctx)
			if err != nil {
				return err
			}

			result, err := client.Invoke(ctx, endpoint.Name, call)
			if err != nil {
				return fmt.Errorf("failed to call %s: %w", endpoint.Name, err)
			}

			return renderResult(cmd, result)
		},
	}

	cmd.Flags().StringArrayVarP(&pathArgs, "path", "p", nil, "path parameter as key=value (repeatable)")
	cmd.Flags().StringArrayVarP(&queryArgs, "query", "q", nil, "query parameter as key=value (repeatable)")
	cmd.Flags().StringVarP(&bodyFile, "body", "b", "", "JSON request body file, - for stdin")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "page size for listings")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "stop a listing after this many pages")

	return cmd
}

func lookupEndpoint(name string) (*webex.Endpoint, error) {
	catalog, err := webex.DefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	endpoint, err := catalog.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrUnknownEndpoint, name)
	}

	return endpoint, nil
}

func shapeLabel(shape webex.Shape) string {
	if shape.Key == "" {
		return string(shape.Kind)
	}

	return fmt.Sprintf("%s (%s)", shape.Kind, shape.Key)
}

// buildCall assembles the call inputs from the command line.
func buildCall(endpoint *webex.Endpoint, pathArgs, queryArgs []string, bodyFile string, stdin io.Reader) (*webex.Call, error) {
	pathParams, err := parseKeyValues(pathArgs)
	if err != nil {
		return nil, err
	}

	queryValues, err := parseKeyValues(queryArgs)
	if err != nil {
		return nil, err
	}

	query := webex.NewQueryParams()

	for key, value := range queryValues {
		query.Set(key, value)
	}

	if org := orgID(); org != "" && !query.Has("orgId") && endpoint.AcceptsQuery("orgId") {
		query.WithOrgID(org)
	}

	call := &webex.Call{PathParams: webex.PathParams(pathParams), Query: query}

	if bodyFile != "" {
		body, err := readBody(bodyFile, stdin)
		if err != nil {
			return nil, err
		}

		call.Body = body
	}

	return call, nil
}

// parseKeyValues splits key=value arguments. Later duplicates win.
func parseKeyValues(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidKeyValue, arg)
		}

		values[key] = value
	}

	return values, nil
}

// validateFilePath rejects relative paths that climb out of the working
// directory and anything that is not a regular file.
func validateFilePath(filePath string) error {
	cleanPath := filepath.Clean(filePath)

	if filepath.IsAbs(filePath) {
		if cleanPath != filePath {
			return constants.ErrDirectoryTraversal
		}
	} else if cleanPath == ".." || strings.HasPrefix(cleanPath, ".."+string(filepath.Separator)) {
		return constants.ErrDirectoryTraversal
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}

	if !info.Mode().IsRegular() {
		return constants.ErrNotRegularFile
	}

	return nil
}

// readBody reads a JSON object or array from a file or, for "-", stdin.
func readBody(bodyFile string, stdin io.Reader) (json.RawMessage, error) {
	var (
		data []byte
		err  error
	)

	if bodyFile == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		err = validateFilePath(bodyFile)
		if err != nil {
			return nil, fmt.Errorf("invalid body file: %w", err)
		}

		data, err = os.ReadFile(filepath.Clean(bodyFile))
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if !json.Valid([]byte(trimmed)) || (!strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[")) {
		return nil, constants.ErrInvalidBodyFile
	}

	return json.RawMessage(trimmed), nil
}

// renderResult prints the untyped result of a catalog call.
func renderResult(cmd *cobra.Command, result any) error {
	out := cmd.OutOrStdout()

	switch typed := result.(type) {
	case nil:
		_, _ = fmt.Fprintln(out, "OK")

		return nil
	case map[string]any:
		return render(cmd, typed, func(table *tablewriter.Table) {
			table.Header("Field", "Value")

			for _, key := range slices.Sorted(maps.Keys(typed)) {
				_ = table.Append(key, compact(typed[key]))
			}
		})
	case []any:
		return render(cmd, typed, func(table *tablewriter.Table) {
			table.Header("#", "Item")

			for i, item := range typed {
				_ = table.Append(fmt.Sprint(i+1), compact(item))
			}
		})
	case string, float64, bool, json.Number:
		if outputFormat() == constants.FormatTable {
			_, _ = fmt.Fprintln(out, typed)

			return nil
		}

		return render(cmd, typed, nil)
	default:
		return fmt.Errorf("%w: %T", constants.ErrUnsupportedShapeInCLI, result)
	}
}

// compact renders a value on one line for a table cell.
func compact(value any) string {
	if s, ok := value.(string); ok {
		return s
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}

	return string(data)
}
