// Package httpclient wraps net/http with the transport settings and error
// types duckurl needs: one attempt per request, a bounded body size, and
// separate error types for "no response" and "response could not be read".
package httpclient
