// Package duckapi fetches a random duck from the random-d.uk API and turns
// the response into a validated image URL.
//
// The work is split in two steps so each can be tested on its own:
//
//	doc, err := duckapi.Fetch(ctx, client, duckapi.DefaultEndpoint)  // GET + JSON decode
//	u, err := duckapi.ExtractURL(doc, duckapi.DefaultEndpoint)        // "url" key + URL validation
//
// RandomDuckURL runs both. Every failure is an *Error whose Kind tells the
// caller which step failed; nothing is retried.
package duckapi
