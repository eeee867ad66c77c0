// Package testutil provides common testing utilities for duckurl packages.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Serving canned JSON responses (JSONServer)
//   - Producing an endpoint that refuses connections (RefusedEndpoint)
//   - Creating temporary directories with automatic cleanup (TempDir)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestRandomDuckURL(t *testing.T) {
//	    server := testutil.JSONServer(t, http.StatusOK, `{"url":"https://random-d.uk/api/1.jpg"}`)
//	    u, err := duckapi.RandomDuckURL(ctx, httpclient.NewClient(time.Second), server.URL)
//	    ...
//	}
package testutil
