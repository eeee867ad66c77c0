package duckapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/jongio/duckurl/urlutil"
)

// URLKey is the top-level key holding the image URL.
const URLKey = "url"

// ExtractURL reads the top-level "url" string from doc and parses it as an
// absolute URL. endpoint is only used in error messages.
func ExtractURL(doc any, endpoint string) (*url.URL, error) {
	raw, err := lookupString(doc, URLKey)
	if err != nil {
		return nil, &Error{
			Kind:     KindSchema,
			Endpoint: endpoint,
			Key:      URLKey,
			Document: RenderJSON(doc),
			Err:      err,
		}
	}

	parsed, err := urlutil.ParseAbsolute(raw)
	if err != nil {
		return nil, &Error{
			Kind:     KindValidation,
			Endpoint: endpoint,
			Key:      URLKey,
			Value:    raw,
			Err:      err,
		}
	}
	return urlutil.Canonical(parsed), nil
}

func lookupString(doc any, key string) (string, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return "", fmt.Errorf("%w (got %s)", ErrNotObject, jsonType(doc))
	}
	value, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrKeyMissing, key)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w (got %s)", ErrNotString, jsonType(value))
	}
	return s, nil
}

// RenderJSON returns the compact JSON text of an untyped value.
func RenderJSON(v any) string {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number, float64, int, int64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
