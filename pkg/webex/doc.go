// Package webex provides types, interfaces, and helpers for working with the
// Webex REST API.
//
// # Overview
//
// The webex package defines the domain models (Location, CallQueueDetail,
// AutoAttendant, TranslationPattern, Meeting) and the interfaces for
// resource-oriented clients (LocationsClient, CallQueuesClient, ...). A
// concrete implementation is provided by the wxcclient package, which wires
// configuration, transport, and authentication. Most consumers should import
// wxcclient to construct a client and then use the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/wxc/pkg/webex"
//	  "github.com/fivetwenty-io/wxc/pkg/wxcclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := wxcclient.NewWithToken("https://webexapis.com/v1", token)
//	  if err != nil { log.Fatal(err) }
//
//	  queues, err := cli.CallQueues().List(ctx, &webex.CallQueueListParams{Max: 50}).All()
//	  if err != nil { log.Fatal(err) }
//	  _ = queues
//	}
//
// # Models
//
// Model fields are Optional values. A field the server left out stays absent
// and is omitted again on the way back, while Null marks an explicit JSON
// null. Enumerations are string types with an IsKnown method: tokens the
// server adds later decode without error and round-trip unchanged.
//
// # Requests, responses and pagination
//
// BuildRequest turns a path template, path parameters, QueryParams and a body
// into a RequestDescriptor that any Transport can send. Each Endpoint in the
// Catalog declares the query parameters it accepts and the Shape of its
// response, which DecodeShape, DecodeSingle, DecodeList and DecodeScalar
// apply. Paginated listings are consumed through a Paginator:
//
//	p := cli.Locations().List(ctx, &webex.LocationListParams{OrgID: orgID})
//	for location, err := range p.Items() {
//	  if err != nil { break }
//	  _ = location
//	}
//
// Pages are fetched lazily, one at a time, following the Link rel="next"
// header or a nextUrl field in the body.
//
// # Errors
//
// ConfigurationError reports a request that could not be built, DecodeError a
// body that does not fit its declared shape, and TransportError a network
// failure or non-2xx status. Helpers such as IsNotFound and IsRateLimited
// branch on the status code.
package webex
