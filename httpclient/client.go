package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Transport timeouts.
const (
	DialTimeout           = 5 * time.Second
	KeepAliveTimeout      = 30 * time.Second
	TLSHandshakeTimeout   = 5 * time.Second
	IdleConnTimeout       = 90 * time.Second
	ExpectContinueTimeout = 1 * time.Second
)

const (
	// DefaultTimeout bounds a whole request, including reading the body.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxResponseSize is used when RequestOptions.MaxResponseSize is zero.
	DefaultMaxResponseSize int64 = 10 * 1024 * 1024
)

// ErrResponseTooLarge is wrapped by ReadError when a body exceeds the limit.
var ErrResponseTooLarge = errors.New("response body exceeds maximum size")

// Doer is the part of Client the duck API code depends on.
type Doer interface {
	Get(ctx context.Context, url string) (*Response, error)
}

// RequestOptions describes a single request.
type RequestOptions struct {
	Method          string
	URL             string
	MaxResponseSize int64
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// TransportError means no response was received.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the failure was a timeout or deadline.
func (e *TransportError) Timeout() bool {
	var netErr net.Error
	if errors.As(e.Err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// ReadError means a response arrived but its body could not be consumed.
type ReadError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading response from %s (status %d): %v", e.URL, e.StatusCode, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Client issues single-attempt HTTP requests. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a Client. A zero timeout means no overall deadline.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newTransport(),
		},
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func (c *Client) WithUserAgent(ua string) *Client {
	c.userAgent = ua
	return c
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout:   DialTimeout,
			KeepAlive: KeepAliveTimeout,
		}).DialContext,
		TLSHandshakeTimeout:   TLSHandshakeTimeout,
		ExpectContinueTimeout: ExpectContinueTimeout,
		ForceAttemptHTTP2:     true,
	}
}

// Get performs a GET request with default options.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	return c.Execute(ctx, RequestOptions{Method: http.MethodGet, URL: url})
}

// Execute sends the request once and reads the whole body.
func (c *Client) Execute(ctx context.Context, opts RequestOptions) (*Response, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	maxSize := opts.MaxResponseSize
	if maxSize <= 0 {
		maxSize = DefaultMaxResponseSize
	}

	req, err := http.NewRequestWithContext(ctx, method, opts.URL, nil)
	if err != nil {
		return nil, &TransportError{Method: method, URL: opts.URL, Err: err}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, URL: opts.URL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	// Read one byte past the limit to detect oversized bodies.
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSize+1))
	if err != nil {
		return nil, &ReadError{URL: opts.URL, StatusCode: resp.StatusCode, Err: err}
	}
	if int64(len(body)) > maxSize {
		return nil, &ReadError{
			URL:        opts.URL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w (%d bytes)", ErrResponseTooLarge, maxSize),
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
