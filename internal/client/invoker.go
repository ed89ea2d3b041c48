package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// Invoke implements webex.CatalogClient. Paginated endpoints are drained
// through a Paginator, so the result of a listing is every item in order.
func (c *Client) Invoke(ctx context.Context, name string, call *webex.Call) (any, error) {
	return invoke(ctx, c.endpoints, name, call)
}

func invoke(ctx context.Context, e *endpoints, name string, call *webex.Call) (any, error) {
	if call == nil {
		call = &webex.Call{}
	}

	endpoint, req, err := e.build(name, call.PathParams, call.Query, call.Body)
	if err != nil {
		return nil, err
	}

	if endpoint.Response.Kind == webex.ShapePaginated {
		items, err := webex.FetchAllPages[any](ctx, e.transport, req, endpoint.Response.Key, call.Pagination)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		return items, nil
	}

	resp, err := e.send(ctx, name, req)
	if err != nil {
		return nil, err
	}

	result, err := webex.DecodeShape(resp.Body, endpoint.Response)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", name, err)
	}

	return result, nil
}
