package httpclient

import (
	"context"
	"sync"
)

// MockDoer is a Doer for tests. It returns Response or Error and records
// every requested URL.
type MockDoer struct {
	Response *Response
	Error    error

	mu       sync.Mutex
	requests []string
}

// Get records url and returns the configured response or error.
func (m *MockDoer) Get(ctx context.Context, url string) (*Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, url)
	m.mu.Unlock()

	if m.Error != nil {
		return nil, m.Error
	}
	return m.Response, nil
}

// Requests returns the URLs passed to Get so far.
func (m *MockDoer) Requests() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.requests...)
}
