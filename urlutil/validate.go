package urlutil

import (
	"fmt"
	neturl "net/url"
	"strconv"
	"strings"
)

const (
	// MaxURLLength is the RFC 2616 practical limit for URL length
	MaxURLLength = 2048
)

// defaultPorts lists the special schemes and the port each one implies.
// These schemes require a host and always have a path.
var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ftp":   "21",
	"ws":    "80",
	"wss":   "443",
}

// Validate checks that rawURL is an absolute http:// or https:// URL with a
// host and a valid port, no longer than MaxURLLength after trimming
// surrounding whitespace. Use it for URLs duckurl requests or opens.
func Validate(rawURL string) error {
	parsed, err := ParseAbsolute(rawURL)
	if err != nil {
		return err
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("url must use http:// or https://, got: %s", parsed.Scheme)
	}
	return nil
}

// ParseAbsolute parses rawURL as an absolute URL of any scheme. Special
// schemes (http, https, ftp, ws, wss) must carry a host; opaque forms such
// as mailto:duck@example.com are accepted as they are. Ports must fit in
// 16 bits.
//
// Example:
//
//	parsed, err := urlutil.ParseAbsolute(value)
//	if err != nil {
//		return err
//	}
//	fmt.Println(urlutil.Canonical(parsed))
func ParseAbsolute(rawURL string) (*neturl.URL, error) {
	rawURL = strings.TrimSpace(rawURL)

	if rawURL == "" {
		return nil, fmt.Errorf("url cannot be empty")
	}

	if len(rawURL) > MaxURLLength {
		return nil, fmt.Errorf("url exceeds maximum length of %d characters", MaxURLLength)
	}

	parsed, err := neturl.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL format: %w", err)
	}

	if parsed.Scheme == "" {
		return nil, fmt.Errorf("url must be absolute (missing scheme)")
	}

	if _, special := defaultPorts[strings.ToLower(parsed.Scheme)]; special && parsed.Host == "" {
		return nil, fmt.Errorf("url missing host/domain")
	}

	if port := parsed.Port(); port != "" {
		if _, err := strconv.ParseUint(port, 10, 16); err != nil {
			return nil, fmt.Errorf("port out of range: %s", port)
		}
	}

	return parsed, nil
}

// Canonical returns a copy of u in the form duckurl prints. For special
// schemes the host is lowercased, a default port is dropped and an empty
// path becomes "/". "." and ".." path segments are resolved for every
// hierarchical URL. The input is not modified.
func Canonical(u *neturl.URL) *neturl.URL {
	if u == nil {
		return nil
	}
	c := *u
	if u.User != nil {
		user := *u.User
		c.User = &user
	}
	c.Scheme = strings.ToLower(c.Scheme)

	if defaultPort, special := defaultPorts[c.Scheme]; special {
		c.Host = strings.ToLower(c.Host)
		if port := c.Port(); port == defaultPort || (port == "" && strings.HasSuffix(c.Host, ":")) {
			c.Host = c.Host[:strings.LastIndex(c.Host, ":")]
		}
		if c.Path == "" && c.Opaque == "" {
			c.Path = "/"
			c.RawPath = ""
		}
	}

	if c.Opaque == "" && strings.HasPrefix(c.Path, "/") {
		c.Path = removeDotSegments(c.Path)
		if c.RawPath != "" {
			c.RawPath = removeDotSegments(c.RawPath)
		}
	}
	return &c
}

// removeDotSegments applies RFC 3986 section 5.2.4 to an absolute path.
// A trailing "." or ".." leaves a trailing slash.
func removeDotSegments(p string) string {
	if !strings.Contains(p, ".") {
		return p
	}
	segments := strings.Split(p, "/")
	out := make([]string, 0, len(segments))
	for i, seg := range segments {
		last := i == len(segments)-1
		switch seg {
		case ".":
			if last {
				out = append(out, "")
			}
		case "..":
			if len(out) > 1 {
				out = out[:len(out)-1]
			}
			if last {
				out = append(out, "")
			}
		default:
			out = append(out, seg)
		}
	}
	return strings.Join(out, "/")
}
