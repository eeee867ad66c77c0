// Package urlutil validates and canonicalises the URLs that duckurl reads
// from configuration and from API responses.
//
// # Usage
//
// Use Validate for URLs duckurl itself requests or opens; only http:// and
// https:// pass:
//
//	if err := urlutil.Validate(endpoint); err != nil {
//		return fmt.Errorf("invalid endpoint: %w", err)
//	}
//
// Use ParseAbsolute for URLs that are only reported, then Canonical to get
// the form that is printed:
//
//	u, err := urlutil.ParseAbsolute(raw)
//	if err != nil {
//		return err
//	}
//	fmt.Println(urlutil.Canonical(u))
//
// # Parsing Rules
//
//   - URL must not be empty or only whitespace
//   - URL must be absolute (have a scheme); relative strings are rejected
//   - http, https, ftp, ws and wss URLs must have a host
//   - a port, when present, must be in 0-65535
//   - URL must not exceed 2048 characters
//   - URL must be parseable by net/url.Parse (RFC 3986)
//
// # Canonical Form
//
// Scheme is lowercased. For http, https, ftp, ws and wss the host is
// lowercased, the scheme's default port is dropped and an empty path
// becomes "/". Dot segments are removed from hierarchical paths.
package urlutil
