package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/salesdesk/pkg/binder"
	"github.com/dmitrymomot/salesdesk/pkg/validator"
)

// JSONEnvelope is the wire format for every JSON response. Successful
// responses carry data, failed ones carry ordered error messages.
type JSONEnvelope struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONEnvelope
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus overrides the HTTP status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON creates a successful response with the given payload.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   JSONEnvelope{Success: true, Data: v},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError creates a failed response from an error.
//
// Validation errors map to 422 with one message per failed field, in field
// order. Binder errors map to 400. HTTPError keeps its own status code.
// Anything else is a 500 with a generic message so internals never leak.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusInternalServerError,
		body:   JSONEnvelope{Success: false},
	}

	switch {
	case err == nil:
		r.body.Errors = []string{http.StatusText(http.StatusInternalServerError)}

	case validator.IsValidationError(err):
		r.status = http.StatusUnprocessableEntity
		r.body.Errors = validator.ExtractValidationErrors(err).Messages()

	case isBinderError(err):
		r.status = http.StatusBadRequest
		r.body.Errors = []string{err.Error()}

	default:
		var httpErr HTTPError
		if errors.As(err, &httpErr) {
			r.status = httpErr.Code
			r.body.Errors = []string{httpErr.Error()}
			break
		}
		r.body.Errors = []string{http.StatusText(http.StatusInternalServerError)}
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

func isBinderError(err error) bool {
	return errors.Is(err, binder.ErrInvalidJSON) ||
		errors.Is(err, binder.ErrInvalidForm) ||
		errors.Is(err, binder.ErrInvalidQuery) ||
		errors.Is(err, binder.ErrMissingContentType) ||
		errors.Is(err, binder.ErrUnsupportedMediaType)
}
