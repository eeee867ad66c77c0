// Package mcpserver exposes the duck URL pipeline as a Model Context Protocol
// tool served over stdio.
//
// The server registers a single tool, random_duck_url. Each call performs
// exactly one request; there is no retry, caching or rate limiting. The
// optional "endpoint" argument replaces the configured endpoint for that
// call only.
package mcpserver
