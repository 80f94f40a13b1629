package app

import (
	"net/url"
	"strings"
)

// originHost strips the scheme from an origin URL, leaving "host[:port]".
func originHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return origin
	}
	return u.Host
}

// originAllowed reports whether host matches any configured pattern. A
// pattern is an exact host, a "*.domain" subdomain wildcard, or a "host:*"
// any-port wildcard.
func originAllowed(patterns []string, host string) bool {
	for _, pattern := range patterns {
		switch {
		case pattern == host:
			return true
		case strings.HasPrefix(pattern, "*."):
			if strings.HasSuffix(host, pattern[1:]) {
				return true
			}
		case strings.HasSuffix(pattern, ":*"):
			if strings.HasPrefix(host, pattern[:len(pattern)-1]) {
				return true
			}
		}
	}
	return false
}
