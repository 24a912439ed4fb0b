package binder

import "net/http"

// BindQuery returns a binder for URL query parameters.
//
// Struct tags control parameter mapping: `query:"page"` binds the field to
// ?page=, `query:"-"` skips it. Multi-value parameters bind to slices, both
// as repeated parameters and comma-separated lists.
func BindQuery() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
