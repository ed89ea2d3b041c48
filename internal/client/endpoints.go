package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/wxc/pkg/webex"
)

// endpoints resolves catalog entries and sends them. Every resource client
// method is a thin call into one of the helpers below.
type endpoints struct {
	transport webex.Transport
	catalog   *webex.Catalog
}

func (e *endpoints) build(name string, pathParams webex.PathParams, query *webex.QueryParams, body any) (*webex.Endpoint, *webex.RequestDescriptor, error) {
	endpoint, err := e.catalog.Lookup(name)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck // already names the endpoint
	}

	req, err := endpoint.Build(pathParams, query, body)
	if err != nil {
		return nil, nil, fmt.Errorf("building %s: %w", name, err)
	}

	return endpoint, req, nil
}

func (e *endpoints) send(ctx context.Context, name string, req *webex.RequestDescriptor) (*webex.Response, error) {
	if e.transport == nil {
		return nil, webex.ErrTransportRequired
	}

	resp, err := e.transport.Send(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return resp, nil
}

// orgQuery is the query of endpoints that only take orgId.
func orgQuery(orgID string) *webex.QueryParams {
	return webex.NewQueryParams().WithOrgID(orgID)
}

func getSingle[T any](ctx context.Context, e *endpoints, name string, pathParams webex.PathParams, query *webex.QueryParams) (*T, error) {
	_, req, err := e.build(name, pathParams, query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := e.send(ctx, name, req)
	if err != nil {
		return nil, err
	}

	result, err := webex.DecodeSingle[T](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", name, err)
	}

	return result, nil
}

func listPaginated[T any](ctx context.Context, e *endpoints, name string, pathParams webex.PathParams, query *webex.QueryParams) *webex.Paginator[T] {
	endpoint, req, err := e.build(name, pathParams, query, nil)
	if err != nil {
		return webex.NewFailedPaginator[T](err)
	}

	return webex.Paginate[T](ctx, e.transport, req, endpoint.Response.Key, nil)
}

func createScalar(ctx context.Context, e *endpoints, name string, pathParams webex.PathParams, query *webex.QueryParams, body any) (string, error) {
	endpoint, req, err := e.build(name, pathParams, query, body)
	if err != nil {
		return "", err
	}

	resp, err := e.send(ctx, name, req)
	if err != nil {
		return "", err
	}

	value, err := webex.DecodeScalar[string](resp.Body, endpoint.Response.Key)
	if err != nil {
		return "", fmt.Errorf("parsing %s response: %w", name, err)
	}

	return value, nil
}

func execute(ctx context.Context, e *endpoints, name string, pathParams webex.PathParams, query *webex.QueryParams, body any) error {
	_, req, err := e.build(name, pathParams, query, body)
	if err != nil {
		return err
	}

	_, err = e.send(ctx, name, req)

	return err
}
