package duckapi

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind string

const (
	// KindTransport: the request could not be sent or no response arrived.
	KindTransport Kind = "transport"
	// KindRead: a response arrived but its body could not be read as text.
	KindRead Kind = "read"
	// KindDecode: the body text is not valid JSON.
	KindDecode Kind = "decode"
	// KindSchema: the JSON has no top-level "url" string.
	KindSchema Kind = "schema"
	// KindValidation: the "url" string is not a well-formed URL.
	KindValidation Kind = "validation"
)

// Category groups read and decode failures as "decoding".
func (k Kind) Category() string {
	switch k {
	case KindRead, KindDecode:
		return "decoding"
	default:
		return string(k)
	}
}

// ExitCode is the process exit status used for a failure of this kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindTransport:
		return 3
	case KindRead, KindDecode:
		return 4
	case KindSchema:
		return 5
	case KindValidation:
		return 6
	default:
		return 1
	}
}

// Reasons wrapped by schema and read errors.
var (
	ErrNotObject   = errors.New("document is not a JSON object")
	ErrKeyMissing  = errors.New("key is not present")
	ErrNotString   = errors.New("value is not a string")
	ErrInvalidUTF8 = errors.New("body is not valid UTF-8 text")
	ErrEmptyBody   = errors.New("body is empty")
)

// Error is returned by Fetch, ExtractURL and RandomDuckURL.
type Error struct {
	Kind     Kind
	Endpoint string
	// Key is the queried key for schema and validation errors.
	Key string
	// Value is the offending string for validation errors.
	Value string
	// Document is the compact JSON of the response for schema errors.
	Document string
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("network error while requesting %s: %v", e.Endpoint, e.Err)
	case KindRead:
		return fmt.Sprintf("failed to read the response from %s: %v", e.Endpoint, e.Err)
	case KindDecode:
		return fmt.Sprintf("the response from %s is not valid JSON: %v", e.Endpoint, e.Err)
	case KindSchema:
		return fmt.Sprintf("the response from %s did not contain a %q key.\napi_response: %s",
			e.Endpoint, e.Key, e.Document)
	case KindValidation:
		return fmt.Sprintf("the %q value %q from %s is not a valid URL: %v", e.Key, e.Value, e.Endpoint, e.Err)
	default:
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports a match when target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Kind
	}
	return ""
}
