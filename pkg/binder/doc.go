// Package binder converts HTTP request data into Go structs.
//
// Three binders cover the common request shapes: BindJSON for JSON bodies
// (strict decoding: unknown fields and trailing data are rejected), BindForm
// for urlencoded form bodies, and BindQuery for URL query parameters. Form
// and query binding share one reflection core driven by struct tags:
//
//	type HistoryQuery struct {
//	    Limit  int    `query:"limit"`
//	    Cursor string `query:"cursor"`
//	}
//
// All binders return errors wrapping the package sentinels
// (ErrInvalidJSON, ErrInvalidForm, ErrInvalidQuery, ErrMissingContentType,
// ErrUnsupportedMediaType) so callers can map them to HTTP status codes with
// errors.Is.
package binder
