// Package crs provides types, interfaces, and helpers for working with the
// cloud recognition management API.
//
// # Overview
//
// The crs package defines the domain types (TargetCollection, Target,
// OperationStatus) and the interfaces for the resource-oriented clients
// (TargetCollectionsClient, TargetsClient). A concrete implementation is
// provided by the crsclient package, which wires configuration and the HTTP
// transport. Most consumers should import crsclient to construct a client
// and then interact with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/AltairMartinez/wikitude-cloud-recognition/pkg/crs"
//	  "github.com/AltairMartinez/wikitude-cloud-recognition/pkg/crsclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := crsclient.NewWithToken("https://api.example.com", "token", "2")
//	  if err != nil { log.Fatal(err) }
//
//	  tc, err := cli.TargetCollections().Create(ctx, "shelf1")
//	  if err != nil { log.Fatal(err) }
//	  _ = tc
//	}
//
// # Asynchronous operations
//
// Target generation and bulk target addition run in the background on the
// server. The corresponding client methods block, polling the status URL
// the server hands back, and return the final OperationStatus once the
// server reports completion. Polling is unbounded unless Config.PollTimeout
// is set or the supplied context is cancelled.
//
// # Errors
//
// Non-success responses are surfaced as *ServiceError (structured
// diagnostic JSON from the service) or *GeneralError (anything else).
// Helpers such as IsNotFound and IsUnauthorized make it easy to branch on
// common cases.
package crs
