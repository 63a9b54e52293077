// Package crsclient provides the primary entry point for constructing a
// cloud recognition API client that implements the crs.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the crs package. Most applications should
// import crsclient to build a client, then use the returned crs.Client to
// access the resource-specific clients TargetCollections() and Targets().
//
// Quick start
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
//
//	  cli, err := crsclient.New(&crs.Config{
//	    APIEndpoint: "https://api.example.com",
//	    Token:       "your-api-token",
//	    Version:     "2",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  tc, err := cli.TargetCollections().Create(ctx, "shelf1")
//	  if err != nil { log.Fatal(err) }
//
//	  _, err = cli.Targets().Create(ctx, tc.ID, crs.Target{
//	    "name":     "product-1",
//	    "imageUrl": "https://example.com/product-1.jpg",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Make the new targets recognizable. Blocks until the server
//	  // finishes generating the recognition database.
//	  _, err = cli.TargetCollections().Generate(ctx, tc.ID)
//	  if err != nil { log.Fatal(err) }
//	}
//
// The package also provides the convenience constructor NewWithToken that
// wraps New with the appropriate configuration.
package crsclient
