// Package wgapi provides a client for the World of Tanks public web API.
//
// The client validates typed parameters, assembles the request URL for the
// selected region and returns the raw response body. It does not decode JSON,
// inspect status codes, cache or retry.
//
// # Usage
//
//	client, err := wgapi.New("your-application-id", "eu",
//		wgapi.WithHTTPS(),
//		wgapi.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	body, err := client.ListClans(ctx, "Panzer", wgapi.ClanListOptions{
//		Limit:  20,
//		Fields: []string{"clan_id", "tag", "name"},
//	})
//
// # Regions
//
// The region selects the API host api.worldoftanks.<domain>:
//
//	na        -> com
//	ru        -> ru
//	eu        -> eu
//	sea, asia -> sea
//
// # Errors
//
// Construction failures wrap ErrInvalidConfiguration, bad arguments wrap
// ErrInvalidArgument, and failed HTTP exchanges are returned as
// *TransportError:
//
//	var te *wgapi.TransportError
//	if errors.As(err, &te) && te.Timeout() {
//		// retry later
//	}
//
// Errors reported by the API itself ({"status":"error",...}) arrive as a
// normal response body and are left to the caller.
package wgapi
