package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const (
	// Header is the canonical request ID header name.
	Header = "X-Request-ID"

	maxIDLength = 128
)

// Client-supplied IDs are restricted to a safe charset so they can be echoed
// into response headers and logs without escaping.
var validIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Middleware attaches a request ID to every request. A valid client-supplied
// X-Request-ID is reused; anything else is replaced with a fresh UUIDv4. The
// chosen ID is stored in the request context and echoed in the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if !isValidRequestID(requestID) {
			requestID = uuid.New().String()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}

func isValidRequestID(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
