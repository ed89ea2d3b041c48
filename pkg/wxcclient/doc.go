// Package wxcclient provides the primary entry point for constructing a
// Webex API client that implements the webex.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the webex package. Most
// applications should import wxcclient to build a client, then use the
// returned webex.Client to access resource-specific clients, for example
// Locations(), CallQueues(), Meetings(), etc.
//
// Quick start
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
//
//	  // With an access token you already have (personal, bot or service app):
//	  cli, err := wxcclient.NewWithToken("", "NzQ5...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an integration's refresh token:
//	  cli, err = wxcclient.NewWithRefreshToken(ctx, "", "client-id", "client-secret", "refresh-token")
//	  if err != nil { log.Fatal(err) }
//
//	  location, err := cli.Locations().Get(ctx, "Y2lzY29...", "")
//	  if err != nil { log.Fatal(err) }
//	  _ = location
//	}
//
// # Endpoints
//
// An empty endpoint selects https://webexapis.com/v1. Endpoints without a
// scheme get https:// and a trailing slash is dropped.
//
// # Raw catalog calls
//
// Every endpoint of the built-in catalog can also be called by name with
// Invoke, which returns untyped JSON values shaped by the endpoint's declared
// response.
package wxcclient
