// Package smcclient provides the primary entry point for constructing a
// Marketing Cloud REST API client that implements the smc.Client interface.
//
// It layers configuration, HTTP transport, and client-credentials
// authentication on top of the types defined in the smc package. Most
// applications should import smcclient to build a client, then use the
// returned smc.Client to issue raw requests or walk rowset endpoints.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/smc-io/smc-client/pkg/smc"
//	  "github.com/smc-io/smc-client/pkg/smcclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := smcclient.NewWithClientCredentials(ctx,
//	    "https://example-tenant.auth.marketingcloudapis.com",
//	    "client-id", "client-secret")
//	  if err != nil { log.Fatal(err) }
//
//	  rows, err := smc.FetchAllRows(ctx, cli.CustomObjects(), "Order_Events", nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = rows
//	}
//
// Construction performs a blocking token fetch, so a client that was
// successfully created holds a valid session token. Tokens are replaced by
// explicit refresh only; there is no expiry tracking and no retry logic.
package smcclient
