// Package iof defines the public API surface of the IOF client: the Client
// interface with one sub-client per platform rail, configuration, typed
// resource models, the error taxonomy and generic pagination helpers.
//
// Construct a client with the iofclient package:
//
//	client, err := iofclient.NewWithAPIKey("https://api.iofinance.io", apiKey)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	contracts, err := client.Contracts().List(ctx, nil)
package iof
