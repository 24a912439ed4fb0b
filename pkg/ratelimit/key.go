package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strings"
)

// Storage keys are capped so backends like Redis never see unbounded key
// material from client-controlled headers.
const maxKeyLength = 64

// KeyFunc extracts a rate limit key from an HTTP request.
// An empty key means the request cannot be attributed and is not limited.
type KeyFunc func(*http.Request) string

// KeyByIP keys requests by client IP, honoring X-Forwarded-For when present.
func KeyByIP() KeyFunc {
	return func(r *http.Request) string {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			// The left-most entry is the originating client.
			first, _, _ := strings.Cut(fwd, ",")
			if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
				return ip.String()
			}
		}
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return r.RemoteAddr
		}
		return host
	}
}

// Composite combines multiple key extractors into a single key. Combined keys
// longer than 64 characters are replaced with a 128-bit SHA-256 prefix.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}

		if len(parts) == 0 {
			return ""
		}

		combined := strings.Join(parts, ":")
		if len(combined) > maxKeyLength {
			hash := sha256.Sum256([]byte(combined))
			return hex.EncodeToString(hash[:16])
		}

		return combined
	}
}
