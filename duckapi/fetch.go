package duckapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/jongio/duckurl/httpclient"
)

// Fetch sends one GET to endpoint and decodes the body as an untyped JSON
// value (map[string]any, []any, string, json.Number, bool or nil).
// The status code is not checked; a JSON error body is handed to the
// extractor like any other document.
func Fetch(ctx context.Context, client httpclient.Doer, endpoint string) (any, error) {
	log := logger().WithOperation("fetch").WithFields("endpoint", endpoint)

	resp, err := client.Get(ctx, endpoint)
	if err != nil {
		var readErr *httpclient.ReadError
		if errors.As(err, &readErr) {
			return nil, &Error{Kind: KindRead, Endpoint: endpoint, Err: err}
		}
		return nil, &Error{Kind: KindTransport, Endpoint: endpoint, Err: err}
	}
	log.Debug("response received", "status", resp.StatusCode, "bytes", len(resp.Body))

	if !utf8.Valid(resp.Body) {
		return nil, &Error{Kind: KindRead, Endpoint: endpoint, Err: ErrInvalidUTF8}
	}

	doc, err := DecodeJSON(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Endpoint: endpoint, Err: err}
	}
	return doc, nil
}

// DecodeJSON parses exactly one JSON value from data. Numbers are kept as
// json.Number so the value re-encodes without loss.
func DecodeJSON(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var doc any
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyBody
		}
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, fmt.Errorf("syntax error at offset %d: %w", syntaxErr.Offset, err)
		}
		return nil, err
	}

	var trailing json.RawMessage
	if err := decoder.Decode(&trailing); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid trailing data after offset %d", decoder.InputOffset())
	}
	return doc, nil
}
