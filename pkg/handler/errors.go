package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error carrying an HTTP status code and a stable machine
// readable key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	if e.Key != "" {
		return e.Key
	}
	return http.StatusText(e.Code)
}

// NewHTTPError creates an HTTPError with the given status code and key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest         = NewHTTPError(http.StatusBadRequest, "bad_request")
	ErrNotFound           = NewHTTPError(http.StatusNotFound, "not_found")
	ErrTooManyRequests    = NewHTTPError(http.StatusTooManyRequests, "too_many_requests")
	ErrInternalServer     = NewHTTPError(http.StatusInternalServerError, "internal_error")
	ErrServiceUnavailable = NewHTTPError(http.StatusServiceUnavailable, "service_unavailable")
)
