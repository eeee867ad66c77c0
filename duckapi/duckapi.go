package duckapi

import (
	"context"
	"net/url"

	"github.com/jongio/duckurl/httpclient"
	"github.com/jongio/duckurl/logutil"
)

// DefaultEndpoint returns a JSON object whose "url" is a random duck image.
const DefaultEndpoint = "https://random-d.uk/api/v2/random"

func logger() *logutil.ComponentLogger {
	return logutil.NewLogger("duckapi")
}

// RandomDuckURL fetches endpoint once and extracts the duck image URL.
// The first failing step ends the pipeline.
func RandomDuckURL(ctx context.Context, client httpclient.Doer, endpoint string) (*url.URL, error) {
	doc, err := Fetch(ctx, client, endpoint)
	if err != nil {
		return nil, err
	}

	u, err := ExtractURL(doc, endpoint)
	if err != nil {
		return nil, err
	}

	logger().WithOperation("extract").Debug("duck url extracted", "url", u.String())
	return u, nil
}
