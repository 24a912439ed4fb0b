package binder

import (
	"fmt"
	"net/http"
	"strings"
)

// BindForm returns a binder for application/x-www-form-urlencoded bodies.
//
// Struct tags control field mapping: `form:"name"` binds the field to form
// value "name", `form:"-"` skips it. Basic types, slices, and pointers for
// optional fields are supported.
func BindForm() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if _, err := requireMediaType(r, "application/x-www-form-urlencoded"); err != nil {
			return err
		}

		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}

		return bindToStruct(v, "form", r.Form, ErrInvalidForm)
	}
}

// requireMediaType validates the request Content-Type against the expected
// media type, ignoring parameters such as charset.
func requireMediaType(r *http.Request, expected string) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", fmt.Errorf("%w: expected %s", ErrMissingContentType, expected)
	}

	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}

	if mediaType != expected {
		return "", fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mediaType, expected)
	}
	return mediaType, nil
}
