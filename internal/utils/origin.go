package utils

import (
	"net/url"
	"strings"
)

// OriginHostname extracts the hostname from an Origin header value. Origin
// is always a full origin (scheme://host[:port]); only the hostname takes
// part in the domain comparison, never the scheme or port. Returns "" when
// the value cannot be parsed.
func OriginHostname(origin string) string {
	u, err := url.Parse(origin)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// NormalizeHostname reduces a stored website domain to a bare hostname.
// Domains may have been registered as "example.com", "example.com:3001" or
// "https://example.com"; a scheme is prefixed when missing so url.Parse
// treats the value as a host rather than a path. When parsing fails the raw
// stored string is returned so the comparison still has something to work
// with.
func NormalizeHostname(domain string) string {
	raw := domain
	if !strings.HasPrefix(raw, "http") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return domain
	}
	return u.Hostname()
}
