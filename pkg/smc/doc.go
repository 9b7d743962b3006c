// Package smc provides types, interfaces, and helpers for working with the
// Marketing Cloud REST API.
//
// # Overview
//
// The smc package defines the domain types (Credentials, RowsetResponse, Row)
// and the interfaces for the client and its resource clients
// (CustomObjectsClient, DataExtensionsClient). A concrete implementation is
// provided by the smcclient package, which wires configuration, transport,
// and authentication. Most consumers should import smcclient to construct a
// client and then interact with the interfaces exposed here.
//
// Getting a client
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
//	  cli, err := smcclient.NewWithClientCredentials(ctx,
//	    "https://example-tenant.auth.marketingcloudapis.com",
//	    "client-id", "client-secret")
//	  if err != nil { log.Fatal(err) }
//	  _ = cli
//	}
//
// The data-API base URL is derived from the auth URL by swapping the host
// segment "auth" for "rest"; construction performs a blocking token fetch and
// fails with an AuthenticationError when the token endpoint does not yield an
// access token.
//
// # Pagination
//
// Rowset endpoints are walked with a lazy, pull-based iterator. The token is
// refreshed before each page fetch and continuation follows the
// server-supplied next link:
//
//	it := smc.NewRowIterator(ctx, cli.CustomObjects(), "Order_Events", nil)
//	for it.HasNext() {
//	  row, err := it.Next()
//	  if err != nil { break }
//	  _ = row
//	}
//
// FetchAllRows collects everything into memory, and StreamRowsetPages sends
// one result per page over a channel for callers that want to bound memory
// while processing pages concurrently with fetching.
//
// # Errors
//
// Failures are represented by AuthenticationError, MalformedResponseError,
// and wrapped transport errors. Helpers IsAuthenticationError and
// IsMalformedResponse make it easy to branch on the common cases. The client
// never retries; transient failures surface to the caller unchanged.
//
// # Concurrency
//
// A client instance mutates its token in place and is meant for
// single-goroutine use. Share one across goroutines only with external
// synchronization.
package smc
